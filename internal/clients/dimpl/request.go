package dimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/pkg/formdata"
)

func (c *Client) sendGetRequest(ctx context.Context, path string) (entity.Fields, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// sendFormData sends payload as multipart/form-data. Only POST and PUT are
// allowed, POST is sent at most once.
func (c *Client) sendFormData(ctx context.Context, method, path string, payload formdata.Value) (entity.Fields, error) {
	if method != http.MethodPost && method != http.MethodPut {
		return nil, fmt.Errorf("%w: %s", entity.ErrMethodNotAllowed, method)
	}

	if method == http.MethodPost {
		ctx = withoutRetry(ctx)
	}

	body, contentType, err := formdata.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (entity.Fields, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, parseRemoteError(resp.StatusCode, body)
	}

	return decodeObject(body), nil
}

// decodeObject decodes a JSON object keeping numbers as json.Number. Anything
// else, including an empty body, yields an empty mapping.
func decodeObject(body []byte) entity.Fields {
	var data entity.Fields
	if err := decodeJSON(body, &data); err != nil || data == nil {
		return entity.Fields{}
	}

	return data
}

// decodeJSON decodes a single JSON value keeping numbers as json.Number.
// Anything after the value other than whitespace is an error.
func decodeJSON(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("decode json: unexpected data after top-level value")
	}

	return nil
}
