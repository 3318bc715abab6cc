// internal/service/shipping/application/service.go
package application

import (
	"context"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/enrich"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/shipping/domain"
	"emporium/internal/service/shipping/domain/port"
)

const orderStatusOrdered = "ORDERED"

// ShippingService 管理发货条目，并在读路径上聚合商品与订单视图。
type ShippingService struct {
	items    domain.OrderItemRepository
	products port.ProductService
	orders   port.OrderService
}

// NewShippingService 创建发货应用服务。
func NewShippingService(
	items domain.OrderItemRepository,
	products port.ProductService,
	orders port.OrderService,
) *ShippingService {
	return &ShippingService{items: items, products: products, orders: orders}
}

// attach 拉取商品和订单视图，并返回订单状态供调用方过滤。
func (s *ShippingService) attach(ctx context.Context, dto *OrderItemDto) error {
	product, err := s.products.Fetch(ctx, dto.ProductID)
	if err != nil {
		return err
	}
	order, err := s.orders.Fetch(ctx, dto.OrderID)
	if err != nil {
		return err
	}
	dto.Product = product
	dto.Order = order
	return nil
}

// FindAll 列出活跃发货条目。只保留远程订单仍处于 ORDERED 的条目，
// 远程失败或状态不符的条目被丢弃。
func (s *ShippingService) FindAll(ctx context.Context) ([]OrderItemDto, error) {
	items, err := s.items.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]OrderItemDto, 0, len(items))
	for _, i := range items {
		dtos = append(dtos, toOrderItemDto(i))
	}
	dtos = enrich.List(ctx, dtos, 0, func(ctx context.Context, dto *OrderItemDto) error {
		if err := s.attach(ctx, dto); err != nil {
			logger.Ctx(ctx).Warn().Err(err).
				Int("order_id", dto.OrderID).
				Msg("dropping order item from list: enrichment failed")
			return err
		}
		if dto.Order.OrderStatus != orderStatusOrdered {
			logger.Ctx(ctx).Warn().
				Int("order_id", dto.OrderID).
				Str("order_status", dto.Order.OrderStatus).
				Msg("dropping order item from list: order not in ORDERED")
			return apperr.InvalidInput("order %d is not in ORDERED", dto.OrderID)
		}
		return nil
	})
	return dtos, nil
}

// FindByOrderID 返回单条发货条目，严格富化。
func (s *ShippingService) FindByOrderID(ctx context.Context, orderID int) (OrderItemDto, error) {
	item, err := s.items.FindActiveByOrderID(ctx, orderID)
	if err != nil {
		return OrderItemDto{}, err
	}
	dto := toOrderItemDto(item)
	err = enrich.One(ctx, &dto, func(ctx context.Context, dto *OrderItemDto) error {
		if err := s.attach(ctx, dto); err != nil {
			return apperr.Wrap(apperr.KindUpstreamUnavailable, err,
				"failed to enrich order item for order %d", orderID)
		}
		return nil
	})
	if err != nil {
		return OrderItemDto{}, err
	}
	return dto, nil
}

// Create 持久化一条活跃发货条目。
func (s *ShippingService) Create(ctx context.Context, dto OrderItemDto) (OrderItemDto, error) {
	if dto.OrderID == 0 || dto.ProductID == 0 {
		return OrderItemDto{}, apperr.InvalidInput("order item must reference an order and a product")
	}
	if dto.OrderedQuantity <= 0 {
		return OrderItemDto{}, apperr.InvalidInput("orderedQuantity must be positive")
	}
	item := domain.NewOrderItem(dto.OrderID, dto.ProductID, dto.OrderedQuantity)
	if err := s.items.Save(ctx, item); err != nil {
		return OrderItemDto{}, err
	}
	logger.Ctx(ctx).Info().
		Int("order_id", item.OrderID).
		Int("product_id", item.ProductID).
		Msg("order item created")
	return toOrderItemDto(item), nil
}

// Delete 软删除活跃条目。
func (s *ShippingService) Delete(ctx context.Context, orderID int) error {
	item, err := s.items.FindActiveByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	item.SoftDelete()
	if err := s.items.Save(ctx, item); err != nil {
		return err
	}
	logger.Ctx(ctx).Info().Int("order_id", orderID).Msg("order item soft deleted")
	return nil
}
