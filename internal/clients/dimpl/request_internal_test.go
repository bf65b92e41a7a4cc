package dimpl

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/pkg/formdata"
)

func TestSendFormData_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	c := &Client{baseURL: "http://127.0.0.1:1", http: http.DefaultClient}

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		_, err := c.sendFormData(context.Background(), method, sellersPath, formdata.Object())
		require.ErrorIs(t, err, entity.ErrMethodNotAllowed)
	}
}

func TestDecodeObject(t *testing.T) {
	t.Parallel()

	require.Equal(t, entity.Fields{}, decodeObject(nil))
	require.Equal(t, entity.Fields{}, decodeObject([]byte(`[1, 2]`)))
	require.Equal(t, entity.Fields{}, decodeObject([]byte(`null`)))
	require.Equal(t, entity.Fields{}, decodeObject([]byte(`{"id": "inv-1"} not json`)))
	require.Equal(t, entity.Fields{"id": "inv-1"}, decodeObject([]byte("{\"id\": \"inv-1\"}\n")))
	require.Equal(t, entity.Fields{"amountLeftToPayCents": json.Number("100")},
		decodeObject([]byte(`{"amountLeftToPayCents": 100}`)))
}
