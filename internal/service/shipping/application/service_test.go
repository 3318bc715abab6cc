// internal/service/shipping/application/service_test.go
package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/shipping/domain"
	"emporium/internal/service/shipping/domain/port"
)

type fakeItemRepo struct {
	items []*domain.OrderItem
}

func (r *fakeItemRepo) FindAllActive(ctx context.Context) ([]*domain.OrderItem, error) {
	out := make([]*domain.OrderItem, 0, len(r.items))
	for _, i := range r.items {
		if i.IsActive {
			copied := *i
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) FindActiveByOrderID(ctx context.Context, orderID int) (*domain.OrderItem, error) {
	for _, i := range r.items {
		if i.OrderID == orderID && i.IsActive {
			copied := *i
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("order item for order %d not found", orderID)
}

func (r *fakeItemRepo) Save(ctx context.Context, item *domain.OrderItem) error {
	for idx, existing := range r.items {
		if existing.OrderID == item.OrderID && existing.ProductID == item.ProductID {
			copied := *item
			r.items[idx] = &copied
			return nil
		}
	}
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

type fakeProductPort struct{}

func (fakeProductPort) Fetch(ctx context.Context, productID int) (*port.Product, error) {
	return &port.Product{ProductID: productID, ProductTitle: "widget"}, nil
}

type fakeOrderPort struct {
	statuses map[int]string
}

func (s *fakeOrderPort) Fetch(ctx context.Context, orderID int) (*port.Order, error) {
	status, ok := s.statuses[orderID]
	if !ok {
		return nil, apperr.NotFound("remote order %d not found", orderID)
	}
	return &port.Order{OrderID: orderID, OrderStatus: status}, nil
}

func TestShippingFindAllFiltersByOrderStatus(t *testing.T) {
	ctx := context.Background()
	repo := &fakeItemRepo{items: []*domain.OrderItem{
		domain.NewOrderItem(1, 10, 2),
		domain.NewOrderItem(2, 11, 1), // 订单已进入支付
		domain.NewOrderItem(3, 12, 5), // 订单不存在
	}}
	orders := &fakeOrderPort{statuses: map[int]string{1: "ORDERED", 2: "IN_PAYMENT"}}
	svc := NewShippingService(repo, fakeProductPort{}, orders)

	dtos, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, 1, dtos[0].OrderID)
	assert.Equal(t, "widget", dtos[0].Product.ProductTitle)
	assert.Equal(t, "ORDERED", dtos[0].Order.OrderStatus)
}

func TestShippingFindByOrderID(t *testing.T) {
	ctx := context.Background()
	repo := &fakeItemRepo{items: []*domain.OrderItem{domain.NewOrderItem(1, 10, 2)}}

	t.Run("strict enrichment fails on remote failure", func(t *testing.T) {
		svc := NewShippingService(repo, fakeProductPort{}, &fakeOrderPort{statuses: map[int]string{}})
		_, err := svc.FindByOrderID(ctx, 1)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindUpstreamUnavailable))
	})

	t.Run("returns enriched item regardless of order status", func(t *testing.T) {
		svc := NewShippingService(repo, fakeProductPort{}, &fakeOrderPort{statuses: map[int]string{1: "IN_PAYMENT"}})
		dto, err := svc.FindByOrderID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "IN_PAYMENT", dto.Order.OrderStatus)
	})
}

func TestShippingCreate(t *testing.T) {
	ctx := context.Background()
	repo := &fakeItemRepo{}
	svc := NewShippingService(repo, fakeProductPort{}, &fakeOrderPort{})

	dto, err := svc.Create(ctx, OrderItemDto{OrderID: 1, ProductID: 10, OrderedQuantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, dto.OrderID)
	assert.Len(t, repo.items, 1)
	assert.True(t, repo.items[0].IsActive)

	_, err = svc.Create(ctx, OrderItemDto{OrderID: 1, ProductID: 10})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
}

func TestShippingDelete(t *testing.T) {
	ctx := context.Background()
	repo := &fakeItemRepo{items: []*domain.OrderItem{domain.NewOrderItem(1, 10, 2)}}
	svc := NewShippingService(repo, fakeProductPort{}, &fakeOrderPort{})

	require.NoError(t, svc.Delete(ctx, 1))
	assert.False(t, repo.items[0].IsActive)

	err := svc.Delete(ctx, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
