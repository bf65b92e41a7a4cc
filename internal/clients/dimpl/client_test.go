package dimpl_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/factoring/internal/clients/dimpl"
	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/pkg/config"
)

func newClient(t *testing.T, handler http.HandlerFunc) (*dimpl.Client, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return dimpl.NewClient(config.Dimpl{
		BaseURL:       server.URL + "/",
		APIKey:        "secret",
		Timeout:       5 * time.Second,
		RetryAttempts: 2,
		RetryWaitMin:  time.Millisecond,
		RetryWaitMax:  time.Millisecond,
	}), &calls
}

func sellerFields() entity.Fields {
	return entity.Fields{
		"phone":                "+33612345678",
		"email":                "owner@example.com",
		"givenName":            "Jane",
		"familyName":           "Doe",
		"identifierType":       "siren",
		"identifier":           "123 456 789",
		"iban":                 "fr14 3000 1019 0100 00z6 7067 032",
		"idFileFront":          map[string]any{"content": "front", "contentType": "image/jpeg"},
		"idFileBack":           nil,
		"termsAcceptationDate": time.Date(2023, 10, 1, 10, 0, 0, 0, time.UTC),
	}
}

func invoiceResponse(dueDate time.Time, completelyPaidDate any) string {
	body, _ := json.Marshal(map[string]any{
		"id":       "inv-1",
		"sellerId": "seller-1",
		"buyerIdentifier": map[string]any{
			"type":  "siren",
			"value": "123456789",
		},
		"creationDate":            time.Now().Format(time.RFC3339),
		"number":                  "123",
		"issueDate":               time.Now().Format(time.RFC3339),
		"dueDate":                 dueDate.Format(time.RFC3339),
		"amountWithoutTaxesCents": 50000,
		"amountOfTaxesCents":      0,
		"completelyPaidDate":      completelyPaidDate,
		"amountLeftToPayCents":    50000,
	})

	return string(body)
}

func TestClient_CreateSeller(t *testing.T) {
	t.Parallel()

	client, calls := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/sellers", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(dimpl.APIKeyHeader))

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}

		assert.Equal(t, "FR1430001019010000Z67067032", r.FormValue("iban"))
		assert.Equal(t, "123456789", r.FormValue("identifier"))
		assert.Equal(t, "siren", r.FormValue("identifierType"))
		assert.Equal(t, "2023-10-01T10:00:00Z", r.FormValue("dimplTermsAcceptationDateTime"))
		assert.Len(t, r.MultipartForm.File["ownerIdFile"], 1)
		assert.Empty(t, r.MultipartForm.File["ownerIdVerso"])

		_, _ = fmt.Fprint(w, `{"sellerId": "seller-1"}`)
	})

	seller, err := client.CreateSeller(context.Background(), sellerFields())
	require.NoError(t, err)
	require.Equal(t, "seller-1", seller.ID())
	require.EqualValues(t, 1, calls.Load())
}

func TestClient_CreateSeller_InvalidInput(t *testing.T) {
	t.Parallel()

	client, calls := newClient(t, func(w http.ResponseWriter, r *http.Request) {})

	fields := sellerFields()
	fields["identifierType"] = "Little Rock"

	_, err := client.CreateSeller(context.Background(), fields)
	require.ErrorIs(t, err, entity.ErrValidation)
	require.Zero(t, calls.Load())

	fields = sellerFields()
	fields["email"] = "owner"

	_, err = client.CreateSeller(context.Background(), fields)
	require.ErrorIs(t, err, entity.ErrValidation)
	require.Zero(t, calls.Load())
}

func TestClient_UpdateSeller(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v2/sellers/seller-1", r.URL.Path)

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}

		assert.Equal(t, "+33700000000", r.FormValue("ownerMobilePhone"))
		assert.NotContains(t, r.MultipartForm.Value, "ownerEmail")

		_, _ = fmt.Fprint(w, `{"sellerId": "seller-1", "ownerMobilePhone": "+33700000000"}`)
	})

	seller, err := client.UpdateSeller(context.Background(), "seller-1", entity.Fields{"phone": "+33700000000", "email": nil})
	require.NoError(t, err)
	require.Equal(t, "+33700000000", seller.Data["ownerMobilePhone"])

	_, err = client.UpdateSeller(context.Background(), "", entity.Fields{})
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestClient_GetInvoice(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		body string
		want entity.InvoiceStatus
	}{
		{
			name: "pending",
			body: invoiceResponse(time.Now().AddDate(0, 0, 7), nil),
			want: entity.InvoiceStatusPending,
		},
		{
			name: "late",
			body: invoiceResponse(time.Now().AddDate(0, 0, -7), nil),
			want: entity.InvoiceStatusLate,
		},
		{
			name: "paid",
			body: invoiceResponse(time.Now().AddDate(0, 0, -7), "2023-001"),
			want: entity.InvoiceStatusPaid,
		},
		{
			name: "not json",
			body: "ok",
			want: entity.InvoiceStatusProcessing,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v2/invoices/inv-1", r.URL.Path)

				_, _ = fmt.Fprint(w, tt.body)
			})

			invoice, err := client.GetInvoice(context.Background(), "inv-1")
			require.NoError(t, err)
			require.Equal(t, tt.want, invoice.Status)
			require.NotNil(t, invoice.Data)
		})
	}
}

func TestClient_CreateInvoice(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/invoices/add-and-finance", r.URL.Path)

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}

		assert.Equal(t, "50000", r.FormValue("invoiceAmountWithoutTaxesCents"))
		assert.Equal(t, "0", r.FormValue("invoiceAmountOfTaxesCents"))
		assert.Equal(t, "siren", r.FormValue("buyerIdentifierType"))

		files := r.MultipartForm.File["additionalFiles"]
		if assert.Len(t, files, 2) {
			assert.Equal(t, "additionalFiles_0", files[0].Filename)
			assert.Equal(t, "additionalFiles_1", files[1].Filename)
		}

		invoiceFile := r.MultipartForm.File["invoiceFile"]
		if assert.Len(t, invoiceFile, 1) {
			assert.Equal(t, "file", invoiceFile[0].Filename)
			assert.Equal(t, "application/pdf", invoiceFile[0].Header.Get("Content-Type"))
		}

		_, _ = fmt.Fprint(w, `{"invoiceId": "inv-1", "notEligibleReason": "buyer unknown"}`)
	})

	now := time.Now()

	invoice, err := client.CreateInvoice(context.Background(), entity.Fields{
		"sellerId":           "seller-1",
		"identifierType":     "SIREN",
		"identifier":         "123456789",
		"invoiceNumber":      "123",
		"issueDate":          now,
		"dueDate":            now.AddDate(0, 1, 0),
		"amountWithoutTaxes": 50000,
		"amountOfTaxes":      0,
		"file":               entity.File{Content: []byte("%PDF"), ContentType: entity.ContentTypePDF},
		"additionalFiles": []entity.File{
			{Content: []byte("a"), ContentType: entity.ContentTypePNG},
			{Content: []byte("b"), ContentType: entity.ContentTypeJPEG},
		},
		"deliveryValidationDateTime": now,
	})
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusRefused, invoice.Status)
	require.Equal(t, "inv-1", invoice.ID())
}

func TestClient_RemoteErrors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		statusCode int
		body       string
		want       string
	}{
		{
			name:       "single field error",
			statusCode: http.StatusBadRequest,
			body: `{"title": "One or more validation errors occurred.",
				"errors": {"sellerId": ["The value '123-id' is not valid."]}}`,
			want: "Error 400 : One or more validation errors occurred. (sellerId => The value '123-id' is not valid.)",
		},
		{
			name:       "field errors keep body order",
			statusCode: http.StatusBadRequest,
			body: `{"title": "One or more validation errors occurred.", "errors": {
				"sellerId": "The value '123-id' is not valid.",
				"buyerIdentifier": "The value '123456789' is not valid."}}`,
			want: "Error 400 : One or more validation errors occurred. " +
				"(sellerId => The value '123-id' is not valid. | buyerIdentifier => The value '123456789' is not valid.)",
		},
		{
			name:       "title only",
			statusCode: http.StatusBadRequest,
			body:       `{"title": "Facture existe déjà : '123'"}`,
			want:       "Error 400 : Facture existe déjà : '123' ()",
		},
		{
			name:       "message instead of title",
			statusCode: http.StatusNotFound,
			body:       `{"message": "this invoice does not exist"}`,
			want:       "Error 404 : this invoice does not exist ()",
		},
		{
			name:       "raw body",
			statusCode: http.StatusBadRequest,
			body:       `invalid field 'identifier' format`,
			want:       "Error 400 : invalid field 'identifier' format ()",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, calls := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = fmt.Fprint(w, tt.body)
			})

			_, err := client.GetInvoice(context.Background(), "inv-1")
			require.ErrorIs(t, err, entity.ErrRemoteRequest)

			var remoteErr *entity.RemoteRequestError
			require.ErrorAs(t, err, &remoteErr)
			require.Equal(t, tt.statusCode, remoteErr.StatusCode)
			require.Equal(t, tt.want, remoteErr.Error())
			require.EqualValues(t, 1, calls.Load())
		})
	}
}

func TestClient_ServerErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	client, calls := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetInvoice(context.Background(), "inv-1")
	require.ErrorIs(t, err, entity.ErrRemoteRequest)
	require.EqualValues(t, 1, calls.Load())
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := dimpl.NewClient(config.Dimpl{
		BaseURL:      server.URL,
		APIKey:       "secret",
		Timeout:      time.Second,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
	})

	_, err := client.GetInvoice(context.Background(), "inv-1")
	require.Error(t, err)
	require.NotErrorIs(t, err, entity.ErrRemoteRequest)
	require.NotErrorIs(t, err, entity.ErrValidation)
}

func dropConnection(t *testing.T) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !assert.True(t, ok) {
			return
		}

		conn, _, err := hj.Hijack()
		if assert.NoError(t, err) {
			_ = conn.Close()
		}
	}
}

func TestClient_TransportErrorRetries(t *testing.T) {
	t.Parallel()

	t.Run("get is retried", func(t *testing.T) {
		t.Parallel()

		client, calls := newClient(t, dropConnection(t))

		_, err := client.GetInvoice(context.Background(), "inv-1")
		require.Error(t, err)
		require.NotErrorIs(t, err, entity.ErrRemoteRequest)
		require.EqualValues(t, 3, calls.Load())
	})

	t.Run("create invoice is sent once", func(t *testing.T) {
		t.Parallel()

		client, calls := newClient(t, dropConnection(t))

		now := time.Now()

		_, err := client.CreateInvoice(context.Background(), entity.Fields{
			"sellerId":                   "seller-1",
			"identifierType":             "siren",
			"identifier":                 "123456789",
			"invoiceNumber":              "123",
			"issueDate":                  now,
			"dueDate":                    now.AddDate(0, 1, 0),
			"amountWithoutTaxes":         50000,
			"amountOfTaxes":              0,
			"file":                       entity.File{Content: []byte("%PDF"), ContentType: entity.ContentTypePDF},
			"deliveryValidationDateTime": now,
		})
		require.Error(t, err)
		require.EqualValues(t, 1, calls.Load())
	})

	t.Run("create seller is sent once", func(t *testing.T) {
		t.Parallel()

		client, calls := newClient(t, dropConnection(t))

		_, err := client.CreateSeller(context.Background(), sellerFields())
		require.Error(t, err)
		require.EqualValues(t, 1, calls.Load())
	})
}

func TestClient_ReadsWholeBody(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NotEmpty(t, body)

		w.WriteHeader(http.StatusCreated)
	})

	seller, err := client.CreateSeller(context.Background(), sellerFields())
	require.NoError(t, err)
	require.Equal(t, entity.Fields{}, seller.Data)
}
