// internal/service/payment/interfaces/http_handler_test.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/payment/application"
)

type stubPaymentService struct {
	findAllFn      func(ctx context.Context) ([]application.PaymentDto, error)
	findByIDFn     func(ctx context.Context, paymentID int) (application.PaymentDto, error)
	createFn       func(ctx context.Context, dto application.PaymentDto) (application.PaymentDto, error)
	updateStatusFn func(ctx context.Context, paymentID int) (application.PaymentDto, error)
	cancelFn       func(ctx context.Context, paymentID int) error
}

func (s *stubPaymentService) FindAll(ctx context.Context) ([]application.PaymentDto, error) {
	return s.findAllFn(ctx)
}

func (s *stubPaymentService) FindByID(ctx context.Context, paymentID int) (application.PaymentDto, error) {
	return s.findByIDFn(ctx, paymentID)
}

func (s *stubPaymentService) Create(ctx context.Context, dto application.PaymentDto) (application.PaymentDto, error) {
	return s.createFn(ctx, dto)
}

func (s *stubPaymentService) UpdateStatus(ctx context.Context, paymentID int) (application.PaymentDto, error) {
	return s.updateStatusFn(ctx, paymentID)
}

func (s *stubPaymentService) Cancel(ctx context.Context, paymentID int) error {
	return s.cancelFn(ctx, paymentID)
}

func newPaymentRouter(stub *stubPaymentService) chi.Router {
	r := chi.NewRouter()
	NewPaymentHandler(stub).RegisterRoutes(r)
	return r
}

func TestPaymentPutIsAliasForPatch(t *testing.T) {
	var calls []int
	stub := &stubPaymentService{
		updateStatusFn: func(ctx context.Context, paymentID int) (application.PaymentDto, error) {
			calls = append(calls, paymentID)
			return application.PaymentDto{PaymentID: paymentID, PaymentStatus: "IN_PROGRESS"}, nil
		},
	}
	router := newPaymentRouter(stub)

	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/api/payments/5", nil))
		require.Equal(t, http.StatusOK, rec.Code, method)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "IN_PROGRESS", body["paymentStatus"])
	}
	assert.Equal(t, []int{5, 5}, calls)
}

func TestPaymentCreateUpstreamFailure(t *testing.T) {
	stub := &stubPaymentService{
		createFn: func(ctx context.Context, dto application.PaymentDto) (application.PaymentDto, error) {
			return application.PaymentDto{}, apperr.Upstream("payment 1 created but order 7 could not be moved to IN_PAYMENT")
		},
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/", strings.NewReader(`{"order":{"orderId":7}}`))
	newPaymentRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SERVICE_UNAVAILABLE", body["httpStatus"])
}

func TestPaymentCancelReturnsTrue(t *testing.T) {
	stub := &stubPaymentService{
		cancelFn: func(ctx context.Context, paymentID int) error { return nil },
	}
	rec := httptest.NewRecorder()
	newPaymentRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/payments/2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()))
}

func TestPaymentListEnvelope(t *testing.T) {
	orderID := 7
	stub := &stubPaymentService{
		findAllFn: func(ctx context.Context) ([]application.PaymentDto, error) {
			return []application.PaymentDto{
				{PaymentID: 1, PaymentStatus: "NOT_STARTED", Order: &application.OrderRefDto{OrderID: &orderID, OrderStatus: "IN_PAYMENT"}},
			}, nil
		},
	}
	rec := httptest.NewRecorder()
	newPaymentRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/payments/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Collection []map[string]any `json:"collection"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Collection, 1)
	order, ok := body.Collection[0]["order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), order["orderId"])
}
