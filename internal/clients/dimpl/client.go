// Package dimpl is a client of the Dimpl invoice financing API.
package dimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/internal/resolver"
	"github.com/samandr77/microservices/factoring/internal/status"
	"github.com/samandr77/microservices/factoring/pkg/config"
	"github.com/samandr77/microservices/factoring/pkg/transport"
)

const (
	apiVersion = "v2"

	// APIKeyHeader carries the account API key on every request.
	APIKeyHeader = "DimplApiKey"

	sellersPath       = "/" + apiVersion + "/sellers"
	invoicesPath      = "/" + apiVersion + "/invoices"
	createInvoicePath = invoicesPath + "/add-and-finance"

	defaultRetryWaitMax = time.Second * 5
)

type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

type noRetryKey struct{}

// withoutRetry marks requests that must not be sent twice. A POST that failed
// in transport may still have reached the remote side.
func withoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

// NewClient builds a client retrying GET and PUT requests on transport
// failures. POST requests create sellers and invoices and are never retried.
func NewClient(cfg config.Dimpl) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewAPIKeyRoundTripper(http.DefaultTransport, APIKeyHeader, cfg.APIKey)

	if retryClient.RetryWaitMax < retryClient.RetryWaitMin {
		retryClient.RetryWaitMax = defaultRetryWaitMax
	}

	retryClient.Logger = nil

	// Only transport failures are retried. Remote answers, including 5xx,
	// are reported to the caller as they are.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err == nil {
			return false, nil
		}

		if noRetry, _ := ctx.Value(noRetryKey{}).(bool); noRetry {
			return false, nil
		}

		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    retryClient.StandardClient(),
		now:     time.Now,
	}
}

// CreateSeller registers a seller. Input fields are resolved and validated
// before any request is made.
func (c *Client) CreateSeller(ctx context.Context, fields entity.Fields) (entity.Seller, error) {
	payload, err := resolver.CreateSeller(fields)
	if err != nil {
		return entity.Seller{}, fmt.Errorf("resolve seller: %w", err)
	}

	data, err := c.sendFormData(ctx, http.MethodPost, sellersPath, payload)
	if err != nil {
		return entity.Seller{}, err
	}

	return entity.Seller{Data: data}, nil
}

// UpdateSeller changes the supplied fields of an existing seller.
func (c *Client) UpdateSeller(ctx context.Context, sellerID string, fields entity.Fields) (entity.Seller, error) {
	if sellerID == "" {
		return entity.Seller{}, &entity.ValidationError{Field: "sellerId", Reason: "required field is missing"}
	}

	payload, err := resolver.UpdateSeller(fields)
	if err != nil {
		return entity.Seller{}, fmt.Errorf("resolve seller: %w", err)
	}

	data, err := c.sendFormData(ctx, http.MethodPut, sellersPath+"/"+url.PathEscape(sellerID), payload)
	if err != nil {
		return entity.Seller{}, err
	}

	return entity.Seller{Data: data}, nil
}

// CreateInvoice submits an invoice for financing and classifies the answer.
func (c *Client) CreateInvoice(ctx context.Context, fields entity.Fields) (entity.Invoice, error) {
	payload, err := resolver.CreateInvoice(fields)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("resolve invoice: %w", err)
	}

	data, err := c.sendFormData(ctx, http.MethodPost, createInvoicePath, payload)
	if err != nil {
		return entity.Invoice{}, err
	}

	return c.invoice(data), nil
}

// GetInvoice fetches an invoice by its remote identifier and classifies it.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (entity.Invoice, error) {
	if invoiceID == "" {
		return entity.Invoice{}, &entity.ValidationError{Field: "invoiceId", Reason: "required field is missing"}
	}

	data, err := c.sendGetRequest(ctx, invoicesPath+"/"+url.PathEscape(invoiceID))
	if err != nil {
		return entity.Invoice{}, err
	}

	return c.invoice(data), nil
}

func (c *Client) invoice(data entity.Fields) entity.Invoice {
	return entity.Invoice{
		Status: status.Classify(data, c.now()),
		Data:   data,
	}
}
