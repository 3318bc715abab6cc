// internal/service/payment/application/service.go
package application

import (
	"context"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/enrich"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/payment/domain"
	"emporium/internal/service/payment/domain/port"
)

// 订单侧状态常量。支付服务不 import 订单服务的代码，
// 服务之间只靠 HTTP 契约耦合。
const (
	orderStatusOrdered   = "ORDERED"
	orderStatusInPayment = "IN_PAYMENT"
)

// PaymentService 协调支付生命周期，以及与订单服务的两步交互。
type PaymentService struct {
	payments domain.PaymentRepository
	orders   port.OrderService
}

// NewPaymentService 创建支付应用服务。
func NewPaymentService(payments domain.PaymentRepository, orders port.OrderService) *PaymentService {
	return &PaymentService{payments: payments, orders: orders}
}

// FindAll 列出所有支付，并用远程订单视图富化。
// 列表走尽力而为策略：远程拉不到或订单不在 IN_PAYMENT 的条目被丢弃，
// 不让单个坏条目拖垮整个列表。
func (s *PaymentService) FindAll(ctx context.Context) ([]PaymentDto, error) {
	payments, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]PaymentDto, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, toPaymentDto(p))
	}

	dtos = enrich.List(ctx, dtos, 0, func(ctx context.Context, dto *PaymentDto) error {
		order, err := s.orders.Fetch(ctx, *dto.Order.OrderID)
		if err != nil {
			logger.Ctx(ctx).Warn().Err(err).
				Int("order_id", *dto.Order.OrderID).
				Msg("dropping payment from list: order fetch failed")
			return err
		}
		if order.OrderStatus != orderStatusInPayment {
			logger.Ctx(ctx).Warn().
				Int("order_id", order.OrderID).
				Str("order_status", order.OrderStatus).
				Msg("dropping payment from list: order not in payment")
			return apperr.InvalidInput("order %d is not in payment", order.OrderID)
		}
		attachOrderView(dto, order)
		return nil
	})
	return dtos, nil
}

// FindByID 返回单个支付，严格富化：订单拉取失败时整个请求失败。
func (s *PaymentService) FindByID(ctx context.Context, paymentID int) (PaymentDto, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return PaymentDto{}, err
	}
	dto := toPaymentDto(payment)
	err = enrich.One(ctx, &dto, func(ctx context.Context, dto *PaymentDto) error {
		order, err := s.orders.Fetch(ctx, payment.OrderID)
		if err != nil {
			return apperr.Wrap(apperr.KindUpstreamUnavailable, err,
				"failed to fetch order %d for payment %d", payment.OrderID, paymentID)
		}
		attachOrderView(dto, order)
		return nil
	})
	if err != nil {
		return PaymentDto{}, err
	}
	return dto, nil
}

// Create 是两步协调器：
//  1. 远程校验订单存在且处于 ORDERED；
//  2. 本地持久化支付；
//  3. 远程把订单推进到 IN_PAYMENT。
//
// 第 3 步失败时支付保留，不做补偿回滚。调用方会收到 503，
// 支付与订单之间的不一致需要人工或对账流程修复。
func (s *PaymentService) Create(ctx context.Context, dto PaymentDto) (PaymentDto, error) {
	if dto.Order == nil || dto.Order.OrderID == nil {
		return PaymentDto{}, apperr.InvalidInput("payment must reference an order")
	}
	orderID := *dto.Order.OrderID

	order, err := s.orders.Fetch(ctx, orderID)
	if err != nil {
		return PaymentDto{}, err
	}
	if order.OrderStatus != orderStatusOrdered {
		return PaymentDto{}, apperr.InvalidInput(
			"order %d has status %s, payment requires ORDERED", orderID, order.OrderStatus)
	}

	payment := domain.NewPayment(orderID, dto.IsPayed)
	if err := s.payments.Save(ctx, payment); err != nil {
		return PaymentDto{}, err
	}

	if err := s.orders.AdvanceStatus(ctx, orderID); err != nil {
		logger.Ctx(ctx).Error().Err(err).
			Int("payment_id", payment.PaymentID).
			Int("order_id", orderID).
			Msg("payment persisted but order status advance failed")
		return PaymentDto{}, apperr.Wrap(apperr.KindUpstreamUnavailable, err,
			"payment %d created but order %d could not be moved to IN_PAYMENT", payment.PaymentID, orderID)
	}

	logger.Ctx(ctx).Info().
		Int("payment_id", payment.PaymentID).
		Int("order_id", orderID).
		Msg("payment created and order moved to IN_PAYMENT")
	return toPaymentDto(payment), nil
}

// UpdateStatus 将支付状态单步推进。
func (s *PaymentService) UpdateStatus(ctx context.Context, paymentID int) (PaymentDto, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return PaymentDto{}, err
	}
	from := payment.PaymentStatus
	if err := payment.AdvanceStatus(); err != nil {
		return PaymentDto{}, err
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return PaymentDto{}, err
	}
	logger.Ctx(ctx).Info().
		Int("payment_id", paymentID).
		Str("from", string(from)).
		Str("to", string(payment.PaymentStatus)).
		Msg("payment status advanced")
	return toPaymentDto(payment), nil
}

// Cancel 取消支付。记录保留，状态置为 CANCELED。
func (s *PaymentService) Cancel(ctx context.Context, paymentID int) error {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if err := payment.Cancel(); err != nil {
		return err
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return err
	}
	logger.Ctx(ctx).Info().Int("payment_id", paymentID).Msg("payment canceled")
	return nil
}
