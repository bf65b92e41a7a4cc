package dimpl

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/factoring/internal/entity"
)

// ParseWebhookBody interprets an invoice status notification. The body is a
// JSON array whose first element is the event.
//
// A rejected event is returned as REFUSED without further requests. For any
// other event carrying an invoice id, the invoice is fetched and its
// classification returned; a failed fetch is returned as an error. An event
// without an invoice id is returned with its own classification.
//
// A body that is not a non-empty array of objects yields a zero Invoice and no
// error.
func (c *Client) ParseWebhookBody(ctx context.Context, body []byte) (entity.Invoice, error) {
	event, ok := webhookEvent(body)
	if !ok {
		return entity.Invoice{}, nil
	}

	hook := c.invoice(event)
	if hook.Status == entity.InvoiceStatusRefused {
		return hook, nil
	}

	// The event may carry its own "id", the invoice is named by "invoiceId".
	invoiceID := event.String("invoiceId")
	if invoiceID == "" {
		return hook, nil
	}

	invoice, err := c.GetInvoice(ctx, invoiceID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", invoiceID, err)
	}

	return invoice, nil
}

func webhookEvent(body []byte) (entity.Fields, bool) {
	var events []any
	if err := decodeJSON(body, &events); err != nil || len(events) == 0 {
		return nil, false
	}

	event, ok := events[0].(map[string]any)
	if !ok {
		return nil, false
	}

	return event, true
}
