// internal/service/order/application/service.go
package application

import (
	"context"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/order/domain"
)

// OrderService 拥有订单状态机及其不变式：
// 购物车关联在创建时落定、状态只能单步前移、软删除只对非终态开放。
type OrderService struct {
	orders domain.OrderRepository
	carts  domain.CartRepository
}

// NewOrderService 创建订单应用服务。
func NewOrderService(orders domain.OrderRepository, carts domain.CartRepository) *OrderService {
	return &OrderService{orders: orders, carts: carts}
}

// FindAll 返回所有活跃订单。无分页，无远程补全。
func (s *OrderService) FindAll(ctx context.Context) ([]OrderDto, error) {
	logger.Ctx(ctx).Info().Msg("fetching all active orders")

	orders, err := s.orders.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]OrderDto, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, toOrderDto(o))
	}
	return dtos, nil
}

// FindByID 返回单个活跃订单。
func (s *OrderService) FindByID(ctx context.Context, orderID int) (OrderDto, error) {
	logger.Ctx(ctx).Info().Int("order_id", orderID).Msg("fetching active order")

	order, err := s.orders.FindActiveByID(ctx, orderID)
	if err != nil {
		return OrderDto{}, err
	}
	return toOrderDto(order), nil
}

// Create 创建新订单。调用方提供的 id 和状态一律忽略；
// 关联的购物车必须在本地存在。
func (s *OrderService) Create(ctx context.Context, dto OrderDto) (OrderDto, error) {
	logger.Ctx(ctx).Info().Str("order_desc", dto.OrderDesc).Msg("saving new order")

	if dto.Cart == nil || dto.Cart.CartID == nil {
		return OrderDto{}, apperr.InvalidInput("order must reference a cart")
	}
	cartID := *dto.Cart.CartID
	if _, err := s.carts.FindActiveByID(ctx, cartID); err != nil {
		return OrderDto{}, err
	}

	order := domain.NewOrder(dto.OrderDesc, dto.OrderFee, cartID)
	if err := s.orders.Save(ctx, order); err != nil {
		return OrderDto{}, err
	}
	return toOrderDto(order), nil
}

// UpdateStatus 将订单状态单步推进：CREATED -> ORDERED -> IN_PAYMENT（终态）。
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int) (OrderDto, error) {
	log := logger.Ctx(ctx)
	log.Info().Int("order_id", orderID).Msg("updating order status")

	order, err := s.orders.FindActiveByID(ctx, orderID)
	if err != nil {
		return OrderDto{}, err
	}

	previous := order.Status
	if err := order.AdvanceStatus(); err != nil {
		return OrderDto{}, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return OrderDto{}, err
	}

	log.Info().
		Int("order_id", orderID).
		Str("from", string(previous)).
		Str("to", string(order.Status)).
		Msg("order status advanced")
	return toOrderDto(order), nil
}

// Update 只覆盖描述和费用；状态、购物车关联和创建时间保持原值。
func (s *OrderService) Update(ctx context.Context, orderID int, dto OrderDto) (OrderDto, error) {
	logger.Ctx(ctx).Info().Int("order_id", orderID).Msg("updating order")

	order, err := s.orders.FindActiveByID(ctx, orderID)
	if err != nil {
		return OrderDto{}, err
	}

	order.UpdateDetails(dto.OrderDesc, dto.OrderFee)
	if err := s.orders.Save(ctx, order); err != nil {
		return OrderDto{}, err
	}
	return toOrderDto(order), nil
}

// Delete 软删除订单；IN_PAYMENT 状态的订单拒绝删除。
func (s *OrderService) Delete(ctx context.Context, orderID int) error {
	log := logger.Ctx(ctx)
	log.Info().Int("order_id", orderID).Msg("soft deleting order")

	order, err := s.orders.FindActiveByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := order.SoftDelete(); err != nil {
		return err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return err
	}

	log.Info().Int("order_id", orderID).Msg("order marked inactive")
	return nil
}
