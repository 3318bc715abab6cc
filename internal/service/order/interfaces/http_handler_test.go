// internal/service/order/interfaces/http_handler_test.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/order/application"
)

type stubOrderService struct {
	findAllFn      func(ctx context.Context) ([]application.OrderDto, error)
	findByIDFn     func(ctx context.Context, orderID int) (application.OrderDto, error)
	createFn       func(ctx context.Context, dto application.OrderDto) (application.OrderDto, error)
	updateStatusFn func(ctx context.Context, orderID int) (application.OrderDto, error)
	updateFn       func(ctx context.Context, orderID int, dto application.OrderDto) (application.OrderDto, error)
	deleteFn       func(ctx context.Context, orderID int) error
}

func (s *stubOrderService) FindAll(ctx context.Context) ([]application.OrderDto, error) {
	return s.findAllFn(ctx)
}

func (s *stubOrderService) FindByID(ctx context.Context, orderID int) (application.OrderDto, error) {
	return s.findByIDFn(ctx, orderID)
}

func (s *stubOrderService) Create(ctx context.Context, dto application.OrderDto) (application.OrderDto, error) {
	return s.createFn(ctx, dto)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, orderID int) (application.OrderDto, error) {
	return s.updateStatusFn(ctx, orderID)
}

func (s *stubOrderService) Update(ctx context.Context, orderID int, dto application.OrderDto) (application.OrderDto, error) {
	return s.updateFn(ctx, orderID, dto)
}

func (s *stubOrderService) Delete(ctx context.Context, orderID int) error {
	return s.deleteFn(ctx, orderID)
}

func newOrderRouter(stub *stubOrderService) chi.Router {
	r := chi.NewRouter()
	NewOrderHandler(stub).RegisterRoutes(r)
	return r
}

func TestOrderListEnvelope(t *testing.T) {
	stub := &stubOrderService{
		findAllFn: func(ctx context.Context) ([]application.OrderDto, error) {
			return []application.OrderDto{
				{OrderID: 1, OrderDesc: "books", OrderFee: decimal.NewFromInt(12), OrderStatus: "CREATED"},
			}, nil
		},
	}
	rec := httptest.NewRecorder()
	newOrderRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Collection []map[string]any `json:"collection"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Collection, 1)
	assert.Equal(t, "books", body.Collection[0]["orderDesc"])
	assert.Equal(t, "CREATED", body.Collection[0]["orderStatus"])
}

func TestOrderGetNotFound(t *testing.T) {
	stub := &stubOrderService{
		findByIDFn: func(ctx context.Context, orderID int) (application.OrderDto, error) {
			return application.OrderDto{}, apperr.NotFound("order with id %d not found", orderID)
		},
	}
	rec := httptest.NewRecorder()
	newOrderRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["httpStatus"])
	assert.Equal(t, "order with id 9 not found", body["msg"])
}

func TestOrderNonNumericID(t *testing.T) {
	stub := &stubOrderService{}
	rec := httptest.NewRecorder()
	newOrderRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderCreateInvalidBody(t *testing.T) {
	stub := &stubOrderService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/", strings.NewReader("{not json"))
	newOrderRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderStatusAdvanceTerminal(t *testing.T) {
	stub := &stubOrderService{
		updateStatusFn: func(ctx context.Context, orderID int) (application.OrderDto, error) {
			return application.OrderDto{}, apperr.IllegalTransition("order is already IN_PAYMENT and cannot be updated further")
		},
	}
	rec := httptest.NewRecorder()
	newOrderRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/orders/1/status", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BAD_REQUEST", body["httpStatus"])
}

func TestOrderDeleteReturnsTrue(t *testing.T) {
	var deleted int
	stub := &stubOrderService{
		deleteFn: func(ctx context.Context, orderID int) error {
			deleted = orderID
			return nil
		},
	}
	rec := httptest.NewRecorder()
	newOrderRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/orders/3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, deleted)
	assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()))
}
