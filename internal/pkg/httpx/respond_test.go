// internal/pkg/httpx/respond_test.go
package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emporium/internal/pkg/apperr"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCollectionEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Collection(rec, []int{1, 2, 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"collection":[1,2,3]}`, rec.Body.String())
}

func TestCollectionEmptySlice(t *testing.T) {
	rec := httptest.NewRecorder()
	Collection(rec, []string{})
	assert.JSONEq(t, `{"collection":[]}`, rec.Body.String())
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{"invalid input", apperr.InvalidInput("order must reference a cart"), http.StatusBadRequest, "BAD_REQUEST"},
		{"illegal transition", apperr.IllegalTransition("order is already IN_PAYMENT"), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", apperr.NotFound("order with id 9 not found"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", apperr.Conflict("duplicate favourite"), http.StatusConflict, "CONFLICT"},
		{"upstream", apperr.Upstream("order service unreachable"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/orders/9", nil)
			Error(req, rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.err.Error(), body["msg"])
			assert.Equal(t, tt.wantText, body["httpStatus"])

			_, err := time.Parse(time.RFC3339, body["timestamp"])
			assert.NoError(t, err)
		})
	}
}

func TestErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	Error(req, rec, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "internal server error", body["msg"])
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["httpStatus"])
	assert.NotContains(t, rec.Body.String(), "3306")
}
