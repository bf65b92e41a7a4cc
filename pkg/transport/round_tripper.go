package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/factoring/pkg/logger"
)

// APIKeyRoundTripper authenticates outgoing requests with a static API key
// header, propagates the request id and logs every exchange.
type APIKeyRoundTripper struct {
	Transport http.RoundTripper
	header    string
	key       string
}

func NewAPIKeyRoundTripper(transport http.RoundTripper, header, key string) *APIKeyRoundTripper {
	return &APIKeyRoundTripper{Transport: transport, header: header, key: key}
}

func (a *APIKeyRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	r = r.Clone(ctx)

	if a.key != "" {
		r.Header.Set(a.header, a.key)
	}

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := a.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
	)

	return resp, nil
}
