// internal/service/order/domain/status.go
package domain

import "emporium/internal/pkg/apperr"

// OrderStatus 定义订单的生命周期状态。
type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"    // 订单已记录，购买意向未确认
	StatusOrdered   OrderStatus = "ORDERED"    // 购买已确认，等待支付发起
	StatusInPayment OrderStatus = "IN_PAYMENT" // 支付已发起，终态
)

// NextOrderStatus 是纯转移函数：返回下一个状态或类型化的转移错误。
// 序列固定为 CREATED -> ORDERED -> IN_PAYMENT，单步推进，不允许跳跃。
func NextOrderStatus(current OrderStatus) (OrderStatus, error) {
	switch current {
	case StatusCreated:
		return StatusOrdered, nil
	case StatusOrdered:
		return StatusInPayment, nil
	case StatusInPayment:
		return "", apperr.IllegalTransition("order is already IN_PAYMENT and cannot be updated further")
	default:
		return "", apperr.IllegalTransition("unknown order status: %s", current)
	}
}
