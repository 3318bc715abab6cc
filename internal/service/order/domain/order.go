// internal/service/order/domain/order.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"emporium/internal/pkg/apperr"
)

// Order 是订单聚合的根实体。
// 每个订单从创建起就关联且只关联一个购物车，之后不可变更。
// IsActive=false 表示逻辑删除：对所有读路径不可见，也不再接受变更。
type Order struct {
	OrderID   int
	OrderDate time.Time
	OrderDesc string
	OrderFee  decimal.Decimal
	Status    OrderStatus
	IsActive  bool
	CartID    int
}

// NewOrder 创建一个新订单：初始状态 CREATED、活跃、创建时间取当前时刻。
// 调用方传入的 id 和状态在上层已被清除。
func NewOrder(desc string, fee decimal.Decimal, cartID int) *Order {
	return &Order{
		OrderDate: time.Now(),
		OrderDesc: desc,
		OrderFee:  fee,
		Status:    StatusCreated,
		IsActive:  true,
		CartID:    cartID,
	}
}

// AdvanceStatus 将订单状态单步推进。
func (o *Order) AdvanceStatus() error {
	next, err := NextOrderStatus(o.Status)
	if err != nil {
		return err
	}
	o.Status = next
	return nil
}

// UpdateDetails 只覆盖描述和费用；状态、购物车关联和创建时间保持不变。
func (o *Order) UpdateDetails(desc string, fee decimal.Decimal) {
	o.OrderDesc = desc
	o.OrderFee = fee
}

// SoftDelete 逻辑删除。已进入支付的订单不允许删除。
func (o *Order) SoftDelete() error {
	if o.Status == StatusInPayment {
		return apperr.IllegalTransition("order %d is already IN_PAYMENT and cannot be deleted", o.OrderID)
	}
	o.IsActive = false
	return nil
}
