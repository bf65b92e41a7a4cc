package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	invoiceStatusTopic string
	now                func() time.Time
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		w:                  w,
		invoiceStatusTopic: topic,
		now:                time.Now,
	}
}

type InvoiceStatusEvent struct {
	InvoiceID  string    `json:"invoice_id"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (p *Producer) SendInvoiceStatus(ctx context.Context, invoiceID, status, source string) {
	event := InvoiceStatusEvent{
		InvoiceID:  invoiceID,
		Status:     status,
		Source:     source,
		OccurredAt: p.now().UTC(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(invoiceID),
		Value: b,
		Topic: p.invoiceStatusTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops events. It is used when Kafka is disabled.
type NopProducer struct {
	l *slog.Logger
}

func NewNopProducer(l *slog.Logger) *NopProducer {
	return &NopProducer{l: l.WithGroup("kafka")}
}

func (p *NopProducer) SendInvoiceStatus(ctx context.Context, invoiceID, status, source string) {
	p.l.DebugContext(ctx, "invoice status event dropped", "invoice_id", invoiceID, "status", status, "source", source)
}

func (p *NopProducer) Close() {}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
