package dimpl_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/factoring/internal/entity"
)

func TestClient_ParseWebhookBody(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name      string
		body      string
		wantCalls int32
		want      entity.InvoiceStatus
		wantZero  bool
	}{
		{
			name:      "accepted event is refreshed",
			body:      `[{"invoiceId": "inv-1", "status": "Accepted"}]`,
			wantCalls: 1,
			want:      entity.InvoiceStatusPending,
		},
		{
			name:      "event id is not the invoice id",
			body:      `[{"id": "evt-9", "invoiceId": "inv-1", "status": "Accepted"}]`,
			wantCalls: 1,
			want:      entity.InvoiceStatusPending,
		},
		{
			name:      "trailing whitespace",
			body:      "[{\"status\": \"Accepted\"}]\n",
			wantCalls: 0,
			want:      entity.InvoiceStatusAccepted,
		},
		{
			name:      "rejected event is not refreshed",
			body:      `[{"invoiceId": "inv-1", "status": "Rejected"}]`,
			wantCalls: 0,
			want:      entity.InvoiceStatusRefused,
		},
		{
			name:      "not eligible event is not refreshed",
			body:      `[{"invoiceId": "inv-1", "notEligibleReason": "unknown buyer"}]`,
			wantCalls: 0,
			want:      entity.InvoiceStatusRefused,
		},
		{
			name:      "event without invoice id",
			body:      `[{"status": "Accepted"}]`,
			wantCalls: 0,
			want:      entity.InvoiceStatusAccepted,
		},
		{
			name:      "only the first event is used",
			body:      `[{"invoiceId": "inv-1", "status": "Rejected"}, {"invoiceId": "inv-2", "status": "Accepted"}]`,
			wantCalls: 0,
			want:      entity.InvoiceStatusRefused,
		},
		{name: "malformed json", body: `[{"invoiceId":`, wantZero: true},
		{name: "trailing garbage", body: `[{"invoiceId": "inv-1", "status": "Accepted"}] not json`, wantZero: true},
		{name: "two arrays", body: `[{"invoiceId": "inv-1"}][]`, wantZero: true},
		{name: "empty array", body: `[]`, wantZero: true},
		{name: "object instead of array", body: `{"invoiceId": "inv-1"}`, wantZero: true},
		{name: "first element not an object", body: `["inv-1"]`, wantZero: true},
		{name: "empty body", body: ``, wantZero: true},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, calls := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/invoices/inv-1", r.URL.Path)
				_, _ = fmt.Fprint(w, invoiceResponse(time.Now().AddDate(0, 0, 7), nil))
			})

			invoice, err := client.ParseWebhookBody(context.Background(), []byte(tt.body))
			require.NoError(t, err)
			require.Equal(t, tt.wantCalls, calls.Load())

			if tt.wantZero {
				require.True(t, invoice.IsZero())
				return
			}

			require.Equal(t, tt.want, invoice.Status)
		})
	}
}

func TestClient_ParseWebhookBody_FetchFails(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"title": "this invoice does not exist"}`)
	})

	invoice, err := client.ParseWebhookBody(context.Background(), []byte(`[{"invoiceId": "inv-1", "status": "Accepted"}]`))
	require.ErrorIs(t, err, entity.ErrRemoteRequest)
	require.True(t, invoice.IsZero())
}
