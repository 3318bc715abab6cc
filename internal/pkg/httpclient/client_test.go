// internal/pkg/httpclient/client_test.go
package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"emporium/internal/pkg/apperr"
)

func newTestClient() *Client {
	return NewClient(otel.Tracer("httpclient-test"))
}

func TestGetDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orderId": 7, "orderStatus": "ORDERED"}`))
	}))
	defer server.Close()

	var out struct {
		OrderID     int    `json:"orderId"`
		OrderStatus string `json:"orderStatus"`
	}
	err := newTestClient().Get(context.Background(), server.URL+"/api/orders/7", &out)
	require.NoError(t, err)
	assert.Equal(t, 7, out.OrderID)
	assert.Equal(t, "ORDERED", out.OrderStatus)
}

func TestGetMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var out map[string]any
	err := newTestClient().Get(context.Background(), server.URL+"/api/orders/9", &out)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetMapsServerErrorToUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var out map[string]any
	err := newTestClient().Get(context.Background(), server.URL+"/api/orders/1", &out)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUpstreamUnavailable))
}

func TestGetMapsConnectionFailureToUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // 立即关掉，模拟拒绝连接

	var out map[string]any
	err := newTestClient().Get(context.Background(), server.URL+"/api/orders/1", &out)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUpstreamUnavailable))
}

func TestPatchStatus(t *testing.T) {
	var gotMethod string
	var gotBody int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody = r.ContentLength
		w.Write([]byte(`{"orderId": 1, "orderStatus": "IN_PAYMENT"}`))
	}))
	defer server.Close()

	err := newTestClient().PatchStatus(context.Background(), server.URL+"/api/orders/1/status")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.LessOrEqual(t, gotBody, int64(0))
}

func TestPatchStatusMapsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := newTestClient().PatchStatus(context.Background(), server.URL+"/api/orders/1/status")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUpstreamUnavailable))
}
