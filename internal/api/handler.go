package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/factoring/internal/entity"
)

// @title Factoring API
// @version 1.0
// @description Seller onboarding and invoice financing through Dimpl
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	CreateSeller(ctx context.Context, fields entity.Fields) (entity.Seller, error)
	UpdateSeller(ctx context.Context, sellerID string, fields entity.Fields) (entity.Seller, error)
	CreateInvoice(ctx context.Context, fields entity.Fields) (entity.Invoice, error)
	Invoice(ctx context.Context, invoiceID string) (entity.Invoice, error)
	HandleInvoiceWebhook(ctx context.Context, body []byte) (entity.Invoice, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// FileRequest is a file attachment. Content is base64 encoded.
type FileRequest struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType" enums:"image/jpeg,image/png,application/pdf"`
	FileName    string `json:"fileName,omitempty"`
}

type SellerRequest struct {
	Phone                string       `json:"phone"`
	Email                string       `json:"email"`
	GivenName            string       `json:"givenName"`
	FamilyName           string       `json:"familyName"`
	Nationality          string       `json:"nationality,omitempty"`
	BirthDate            string       `json:"birthDate,omitempty" format:"date-time"`
	BirthCity            string       `json:"birthCity,omitempty"`
	BirthCountry         string       `json:"birthCountry,omitempty" example:"FR"`
	AddressFirst         string       `json:"addressFirst,omitempty"`
	AddressCity          string       `json:"addressCity,omitempty"`
	AddressPostal        string       `json:"addressPostal,omitempty"`
	AddressCountry       string       `json:"addressCountry,omitempty" example:"FR"`
	IdentifierType       string       `json:"identifierType" enums:"siren,cif,nif,kvk,hr,chrn,bern,vat"`
	Identifier           string       `json:"identifier"`
	IBAN                 string       `json:"iban"`
	IDFileFront          FileRequest  `json:"idFileFront"`
	IDFileBack           *FileRequest `json:"idFileBack,omitempty"`
	TermsAcceptationDate string       `json:"termsAcceptationDate" format:"date-time"`
}

type InvoiceRequest struct {
	SellerID                   string        `json:"sellerId"`
	IdentifierType             string        `json:"identifierType" enums:"siren,cif,nif,kvk,hr,chrn,bern,vat"`
	Identifier                 string        `json:"identifier"`
	Email                      string        `json:"email,omitempty"`
	Phone                      string        `json:"phone,omitempty"`
	InvoiceNumber              string        `json:"invoiceNumber"`
	IssueDate                  string        `json:"issueDate" format:"date-time"`
	DueDate                    string        `json:"dueDate" format:"date-time"`
	AmountWithoutTaxes         int64         `json:"amountWithoutTaxes" example:"50000"`
	AmountOfTaxes              int64         `json:"amountOfTaxes" example:"10000"`
	File                       FileRequest   `json:"file"`
	AdditionalFiles            []FileRequest `json:"additionalFiles,omitempty"`
	DeliveryValidationDateTime string        `json:"deliveryValidationDateTime" format:"date-time"`
}

// CreateSeller registers a seller
// @Summary Create seller
// @Description Validates seller data and registers the seller at Dimpl
// @Tags sellers
// @Accept json
// @Produce json
// @Param SellerRequest body SellerRequest true "Seller"
// @Success 201 {object} map[string]any "Dimpl seller"
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Invalid seller data"
// @Failure 502 {object} ErrorResponse "Dimpl rejected the request"
// @Failure 500 {object} ErrorResponse "Failed to create seller"
// @Router /sellers [post]
// @Security ApiKeyAuth
func (h *Handler) CreateSeller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := decodeFields(r, "idFileFront", "idFileBack")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	seller, err := h.s.CreateSeller(ctx, fields)
	if err != nil {
		sendServiceErr(ctx, w, err, "Не удалось создать продавца")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, seller.Data)
}

// UpdateSeller updates seller data
// @Summary Update seller
// @Description Sends the supplied seller fields to Dimpl, nothing is required
// @Tags sellers
// @Accept json
// @Produce json
// @Param sellerId path string true "Seller ID"
// @Param SellerRequest body SellerRequest true "Seller fields to change"
// @Success 200 {object} map[string]any "Dimpl seller"
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Invalid seller data"
// @Failure 502 {object} ErrorResponse "Dimpl rejected the request"
// @Failure 500 {object} ErrorResponse "Failed to update seller"
// @Router /sellers/{sellerId} [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateSeller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := decodeFields(r, "idFileFront", "idFileBack")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	seller, err := h.s.UpdateSeller(ctx, chi.URLParam(r, "sellerId"), fields)
	if err != nil {
		sendServiceErr(ctx, w, err, "Не удалось обновить продавца")
		return
	}

	SendJSON(ctx, w, http.StatusOK, seller.Data)
}

// CreateInvoice submits an invoice for financing
// @Summary Create invoice
// @Description Validates the invoice, submits it to Dimpl for financing and returns it with its status
// @Tags invoices
// @Accept json
// @Produce json
// @Param InvoiceRequest body InvoiceRequest true "Invoice"
// @Success 201 {object} map[string]any "Dimpl invoice with status"
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Invalid invoice data"
// @Failure 502 {object} ErrorResponse "Dimpl rejected the request"
// @Failure 500 {object} ErrorResponse "Failed to create invoice"
// @Router /invoices [post]
// @Security ApiKeyAuth
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := decodeFields(r, "file", "additionalFiles")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	invoice, err := h.s.CreateInvoice(ctx, fields)
	if err != nil {
		sendServiceErr(ctx, w, err, "Не удалось создать счет")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, invoice.Fields())
}

// Invoice returns an invoice
// @Summary Get invoice
// @Description Fetches the invoice from Dimpl and classifies its status
// @Tags invoices
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {object} map[string]any "Dimpl invoice with status"
// @Failure 502 {object} ErrorResponse "Dimpl rejected the request"
// @Failure 500 {object} ErrorResponse "Failed to get invoice"
// @Router /invoices/{invoiceId} [get]
// @Security ApiKeyAuth
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoice, err := h.s.Invoice(ctx, chi.URLParam(r, "invoiceId"))
	if err != nil {
		sendServiceErr(ctx, w, err, "Не удалось получить счет")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoice.Fields())
}

// InvoiceWebhook receives invoice status notifications
// @Summary Invoice webhook
// @Description Receives a Dimpl invoice notification and returns the refreshed invoice
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any "Dimpl invoice with status"
// @Success 204 "Notification carries no event"
// @Failure 502 {object} ErrorResponse "Dimpl rejected the invoice request"
// @Failure 500 {object} ErrorResponse "Failed to handle notification"
// @Router /webhooks/invoices [post]
func (h *Handler) InvoiceWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось прочитать запрос")
		return
	}

	invoice, err := h.s.HandleInvoiceWebhook(ctx, body)
	if err != nil {
		sendServiceErr(ctx, w, err, "Не удалось обработать уведомление")
		return
	}

	if invoice.IsZero() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoice.Fields())
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "Сервис работает!"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Сервис работает!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Сервис не работает!")
		return
	}
}

func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	var remoteErr *entity.RemoteRequestError

	switch {
	case errors.Is(err, entity.ErrValidation):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Некорректные данные")
	case errors.As(err, &remoteErr):
		slog.ErrorContext(ctx, "api error", "error", err.Error(), "remote_status", remoteErr.StatusCode)
		SendJSON(ctx, w, http.StatusBadGateway, ErrorResponse{
			Message:      msg,
			Description:  remoteErr.Error(),
			RemoteStatus: remoteErr.StatusCode,
		})
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}

// decodeFields decodes a JSON object keeping numbers as json.Number and
// replaces the base64 content of the named file fields with raw bytes.
func decodeFields(r *http.Request, fileFields ...string) (entity.Fields, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var fields entity.Fields

	err := dec.Decode(&fields)
	if err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	if fields == nil {
		return nil, errors.New("decode request: expected a JSON object")
	}

	for _, name := range fileFields {
		switch v := fields[name].(type) {
		case map[string]any:
			if err = decodeFileContent(v); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		case []any:
			for i, item := range v {
				f, ok := item.(map[string]any)
				if !ok {
					continue
				}

				if err = decodeFileContent(f); err != nil {
					return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
				}
			}
		}
	}

	return fields, nil
}

func decodeFileContent(f map[string]any) error {
	s, ok := f["content"].(string)
	if !ok {
		return nil
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode base64 content: %w", err)
	}

	f["content"] = b

	return nil
}
