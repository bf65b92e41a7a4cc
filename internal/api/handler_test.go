package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/factoring/internal/api"
	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/internal/mocks"
)

const apiKey = "dev"

type ClientAPI struct {
	url         string
	serviceMock *mocks.MockService
}

func NewClientAPI(t *testing.T) ClientAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockService(ctrl)

	router := api.NewRouter(api.NewHandler(serviceMock), api.NewMiddleware(true, apiKey))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return ClientAPI{url: server.URL + "/api", serviceMock: serviceMock}
}

func (c ClientAPI) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, c.url+path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("X-Api-Key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var data map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &data))
	}

	return resp.StatusCode, data
}

func TestHandler_CreateSeller(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	c.serviceMock.EXPECT().CreateSeller(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields entity.Fields) (entity.Seller, error) {
			front, ok := fields["idFileFront"].(map[string]any)
			if assert.True(t, ok) {
				assert.Equal(t, []byte("front"), front["content"])
			}

			assert.Equal(t, json.Number("75001"), fields["addressPostal"])

			return entity.Seller{Data: entity.Fields{"sellerId": "seller-1"}}, nil
		})

	code, data := c.do(t, http.MethodPost, "/sellers", `{
		"email": "owner@example.com",
		"addressPostal": 75001,
		"idFileFront": {"content": "ZnJvbnQ=", "contentType": "image/png"}
	}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, map[string]any{"sellerId": "seller-1"}, data)
}

func TestHandler_CreateSeller_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		body       string
		err        error
		wantCode   int
		wantRemote float64
	}{
		{
			name:     "invalid json",
			body:     `{"email": `,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not an object",
			body:     `null`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid base64",
			body:     `{"idFileFront": {"content": "%%%"}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "validation error",
			body:     `{}`,
			err:      &entity.ValidationError{Field: "email", Reason: "required field is missing"},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:       "remote error",
			body:       `{}`,
			err:        &entity.RemoteRequestError{StatusCode: 400, Message: "invalid field 'identifier' format"},
			wantCode:   http.StatusBadGateway,
			wantRemote: 400,
		},
		{
			name:     "transport error",
			body:     `{}`,
			err:      io.ErrUnexpectedEOF,
			wantCode: http.StatusInternalServerError,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewClientAPI(t)

			if tt.err != nil {
				c.serviceMock.EXPECT().CreateSeller(gomock.Any(), gomock.Any()).Return(entity.Seller{}, tt.err)
			}

			code, data := c.do(t, http.MethodPost, "/sellers", tt.body)
			require.Equal(t, tt.wantCode, code)
			require.NotEmpty(t, data["message"])

			if tt.wantRemote != 0 {
				require.Equal(t, tt.wantRemote, data["remoteStatus"])
				require.Equal(t, "Error 400 : invalid field 'identifier' format ()", data["description"])
			}
		})
	}
}

func TestHandler_UpdateSeller(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	c.serviceMock.EXPECT().UpdateSeller(gomock.Any(), "seller-1", entity.Fields{"phone": "+33700000000"}).
		Return(entity.Seller{Data: entity.Fields{"sellerId": "seller-1"}}, nil)

	code, _ := c.do(t, http.MethodPut, "/sellers/seller-1", `{"phone": "+33700000000"}`)
	require.Equal(t, http.StatusOK, code)
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	c.serviceMock.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields entity.Fields) (entity.Invoice, error) {
			files, ok := fields["additionalFiles"].([]any)
			if assert.True(t, ok) && assert.Len(t, files, 1) {
				assert.Equal(t, map[string]any{"content": []byte("one"), "contentType": "image/png"}, files[0])
			}

			return entity.Invoice{
				Status: entity.InvoiceStatusPending,
				Data:   entity.Fields{"invoiceId": "inv-1"},
			}, nil
		})

	code, data := c.do(t, http.MethodPost, "/invoices", `{
		"sellerId": "seller-1",
		"file": {"content": "JVBERg==", "contentType": "application/pdf"},
		"additionalFiles": [{"content": "b25l", "contentType": "image/png"}]
	}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, map[string]any{"invoiceId": "inv-1", "status": "PENDING"}, data)
}

func TestHandler_Invoice(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	c.serviceMock.EXPECT().Invoice(gomock.Any(), "inv-1").
		Return(entity.Invoice{Status: entity.InvoiceStatusLate, Data: entity.Fields{"id": "inv-1"}}, nil)

	code, data := c.do(t, http.MethodGet, "/invoices/inv-1", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "LATE", data["status"])
}

func TestHandler_InvoiceWebhook(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	body := `[{"invoiceId": "inv-1", "status": "Accepted"}]`

	c.serviceMock.EXPECT().HandleInvoiceWebhook(gomock.Any(), []byte(body)).
		Return(entity.Invoice{Status: entity.InvoiceStatusPending, Data: entity.Fields{"id": "inv-1"}}, nil)
	c.serviceMock.EXPECT().HandleInvoiceWebhook(gomock.Any(), []byte(`[]`)).
		Return(entity.Invoice{}, nil)

	code, data := c.do(t, http.MethodPost, "/webhooks/invoices", body)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "PENDING", data["status"])

	code, data = c.do(t, http.MethodPost, "/webhooks/invoices", `[]`)
	require.Equal(t, http.StatusNoContent, code)
	require.Nil(t, data)
}

func TestMiddleware_APIKeyAuth(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	for _, key := range []string{"", "wrong"} {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, c.url+"/invoices/inv-1", nil)
		require.NoError(t, err)

		if key != "" {
			req.Header.Set("X-Api-Key", key)
		}

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, c.url+"/health", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
