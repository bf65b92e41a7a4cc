package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Dimpl interface {
	CreateSeller(ctx context.Context, fields entity.Fields) (entity.Seller, error)
	UpdateSeller(ctx context.Context, sellerID string, fields entity.Fields) (entity.Seller, error)
	CreateInvoice(ctx context.Context, fields entity.Fields) (entity.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (entity.Invoice, error)
	ParseWebhookBody(ctx context.Context, body []byte) (entity.Invoice, error)
}

type Producer interface {
	SendInvoiceStatus(ctx context.Context, invoiceID, status, source string)
}

// Invoice status event sources.
const (
	SourceCreate  = "create"
	SourceFetch   = "fetch"
	SourceWebhook = "webhook"
)

type Service struct {
	dimpl    Dimpl
	producer Producer
}

func New(dimpl Dimpl, producer Producer) *Service {
	return &Service{
		dimpl:    dimpl,
		producer: producer,
	}
}

func (s *Service) CreateSeller(ctx context.Context, fields entity.Fields) (entity.Seller, error) {
	seller, err := s.dimpl.CreateSeller(ctx, fields)
	if err != nil {
		return entity.Seller{}, fmt.Errorf("create seller: %w", err)
	}

	slog.InfoContext(logger.WithSellerID(ctx, seller.ID()), "seller created")

	return seller, nil
}

func (s *Service) UpdateSeller(ctx context.Context, sellerID string, fields entity.Fields) (entity.Seller, error) {
	ctx = logger.WithSellerID(ctx, sellerID)

	seller, err := s.dimpl.UpdateSeller(ctx, sellerID, fields)
	if err != nil {
		return entity.Seller{}, fmt.Errorf("update seller: %w", err)
	}

	slog.InfoContext(ctx, "seller updated")

	return seller, nil
}

func (s *Service) CreateInvoice(ctx context.Context, fields entity.Fields) (entity.Invoice, error) {
	invoice, err := s.dimpl.CreateInvoice(ctx, fields)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	s.publish(ctx, invoice, SourceCreate)

	return invoice, nil
}

func (s *Service) Invoice(ctx context.Context, invoiceID string) (entity.Invoice, error) {
	invoice, err := s.dimpl.GetInvoice(ctx, invoiceID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", invoiceID, err)
	}

	s.publish(ctx, invoice, SourceFetch)

	return invoice, nil
}

// HandleInvoiceWebhook returns a zero Invoice for notifications that carry no event.
func (s *Service) HandleInvoiceWebhook(ctx context.Context, body []byte) (entity.Invoice, error) {
	invoice, err := s.dimpl.ParseWebhookBody(ctx, body)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("parse webhook body: %w", err)
	}

	if invoice.IsZero() {
		slog.WarnContext(ctx, "webhook body ignored", "size", len(body))
		return invoice, nil
	}

	s.publish(ctx, invoice, SourceWebhook)

	return invoice, nil
}

func (s *Service) publish(ctx context.Context, invoice entity.Invoice, source string) {
	ctx = logger.WithInvoiceID(ctx, invoice.ID())

	slog.InfoContext(ctx, "invoice classified", "status", invoice.Status, "source", source)

	s.producer.SendInvoiceStatus(ctx, invoice.ID(), invoice.Status.String(), source)
}
