// internal/service/payment/application/service_test.go
package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/payment/domain"
	"emporium/internal/service/payment/domain/port"
)

type fakePaymentRepo struct {
	payments map[int]*domain.Payment
	nextID   int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int]*domain.Payment{}, nextID: 1}
}

func (r *fakePaymentRepo) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	out := make([]*domain.Payment, 0, len(r.payments))
	for id := 1; id < r.nextID; id++ {
		if p, ok := r.payments[id]; ok {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) FindByID(ctx context.Context, paymentID int) (*domain.Payment, error) {
	p, ok := r.payments[paymentID]
	if !ok {
		return nil, apperr.NotFound("payment with id %d not found", paymentID)
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) Save(ctx context.Context, payment *domain.Payment) error {
	if payment.PaymentID == 0 {
		payment.PaymentID = r.nextID
		r.nextID++
	}
	copied := *payment
	r.payments[payment.PaymentID] = &copied
	return nil
}

type fakeOrderService struct {
	orders     map[int]*port.Order
	fetchErr   error
	advanceErr error
	advanced   []int
}

func newFakeOrderService() *fakeOrderService {
	return &fakeOrderService{orders: map[int]*port.Order{}}
}

func (s *fakeOrderService) addOrder(orderID int, status string) {
	s.orders[orderID] = &port.Order{
		OrderID:     orderID,
		OrderDate:   time.Now(),
		OrderDesc:   "test order",
		OrderFee:    decimal.NewFromInt(42),
		OrderStatus: status,
	}
}

func (s *fakeOrderService) Fetch(ctx context.Context, orderID int) (*port.Order, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	order, ok := s.orders[orderID]
	if !ok {
		return nil, apperr.NotFound("remote order %d not found", orderID)
	}
	return order, nil
}

func (s *fakeOrderService) AdvanceStatus(ctx context.Context, orderID int) error {
	if s.advanceErr != nil {
		return s.advanceErr
	}
	s.advanced = append(s.advanced, orderID)
	if order, ok := s.orders[orderID]; ok {
		order.OrderStatus = "IN_PAYMENT"
	}
	return nil
}

func orderRef(orderID int) *OrderRefDto {
	return &OrderRefDto{OrderID: &orderID}
}

func TestPaymentCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists payment and advances order", func(t *testing.T) {
		repo := newFakePaymentRepo()
		orders := newFakeOrderService()
		orders.addOrder(1, "ORDERED")
		svc := NewPaymentService(repo, orders)

		dto, err := svc.Create(ctx, PaymentDto{IsPayed: false, Order: orderRef(1)})
		require.NoError(t, err)
		assert.Equal(t, 1, dto.PaymentID)
		assert.Equal(t, string(domain.StatusNotStarted), dto.PaymentStatus)
		assert.Equal(t, []int{1}, orders.advanced)
		assert.Len(t, repo.payments, 1)
	})

	t.Run("missing order reference rejected", func(t *testing.T) {
		repo := newFakePaymentRepo()
		svc := NewPaymentService(repo, newFakeOrderService())

		_, err := svc.Create(ctx, PaymentDto{})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
		assert.Empty(t, repo.payments)
	})

	t.Run("unknown order passes 404 through without persisting", func(t *testing.T) {
		repo := newFakePaymentRepo()
		svc := NewPaymentService(repo, newFakeOrderService())

		_, err := svc.Create(ctx, PaymentDto{Order: orderRef(99)})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
		assert.Empty(t, repo.payments)
	})

	t.Run("order not yet ORDERED rejected without persisting", func(t *testing.T) {
		repo := newFakePaymentRepo()
		orders := newFakeOrderService()
		orders.addOrder(1, "CREATED")
		svc := NewPaymentService(repo, orders)

		_, err := svc.Create(ctx, PaymentDto{Order: orderRef(1)})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
		assert.Empty(t, repo.payments)
		assert.Empty(t, orders.advanced)
	})

	t.Run("failed order advance leaves payment persisted", func(t *testing.T) {
		repo := newFakePaymentRepo()
		orders := newFakeOrderService()
		orders.addOrder(1, "ORDERED")
		orders.advanceErr = apperr.Upstream("order service unreachable")
		svc := NewPaymentService(repo, orders)

		_, err := svc.Create(ctx, PaymentDto{Order: orderRef(1)})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindUpstreamUnavailable))
		// 第二步失败不回滚：支付行留在库里，不一致对外可见
		assert.Len(t, repo.payments, 1)
	})
}

func TestPaymentFindAll(t *testing.T) {
	ctx := context.Background()
	repo := newFakePaymentRepo()
	orders := newFakeOrderService()
	svc := NewPaymentService(repo, orders)

	orders.addOrder(1, "IN_PAYMENT")
	orders.addOrder(2, "ORDERED")
	require.NoError(t, repo.Save(ctx, domain.NewPayment(1, true)))
	require.NoError(t, repo.Save(ctx, domain.NewPayment(2, false)))
	require.NoError(t, repo.Save(ctx, domain.NewPayment(3, false))) // 订单不存在

	dtos, err := svc.FindAll(ctx)
	require.NoError(t, err)
	// 只有订单处于 IN_PAYMENT 的条目保留
	require.Len(t, dtos, 1)
	assert.Equal(t, 1, *dtos[0].Order.OrderID)
	assert.Equal(t, "IN_PAYMENT", dtos[0].Order.OrderStatus)
	assert.Equal(t, "test order", dtos[0].Order.OrderDesc)
}

func TestPaymentFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("strict enrichment fails the read on remote failure", func(t *testing.T) {
		repo := newFakePaymentRepo()
		orders := newFakeOrderService()
		require.NoError(t, repo.Save(ctx, domain.NewPayment(1, false)))
		orders.fetchErr = apperr.Upstream("order service unreachable")
		svc := NewPaymentService(repo, orders)

		_, err := svc.FindByID(ctx, 1)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindUpstreamUnavailable))
	})

	t.Run("attaches full order view", func(t *testing.T) {
		repo := newFakePaymentRepo()
		orders := newFakeOrderService()
		orders.addOrder(1, "IN_PAYMENT")
		require.NoError(t, repo.Save(ctx, domain.NewPayment(1, true)))
		svc := NewPaymentService(repo, orders)

		dto, err := svc.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "IN_PAYMENT", dto.Order.OrderStatus)
		assert.Equal(t, "42", dto.Order.OrderFee)
	})

	t.Run("unknown payment returns 404", func(t *testing.T) {
		svc := NewPaymentService(newFakePaymentRepo(), newFakeOrderService())
		_, err := svc.FindByID(ctx, 9)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestPaymentUpdateStatusAndCancel(t *testing.T) {
	ctx := context.Background()
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo, newFakeOrderService())
	require.NoError(t, repo.Save(ctx, domain.NewPayment(1, false)))

	dto, err := svc.UpdateStatus(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), dto.PaymentStatus)

	dto, err = svc.UpdateStatus(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), dto.PaymentStatus)

	_, err = svc.UpdateStatus(ctx, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindIllegalTransition))

	err = svc.Cancel(ctx, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))

	require.NoError(t, repo.Save(ctx, domain.NewPayment(2, false)))
	require.NoError(t, svc.Cancel(ctx, 2))
	assert.Equal(t, domain.StatusCanceled, repo.payments[2].PaymentStatus)
}
