// internal/service/payment/domain/payment.go
package domain

import (
	"time"

	"emporium/internal/pkg/apperr"
)

// PaymentStatus 定义支付的生命周期状态。
type PaymentStatus string

const (
	StatusNotStarted PaymentStatus = "NOT_STARTED" // 支付已登记，未开始处理
	StatusInProgress PaymentStatus = "IN_PROGRESS" // 支付处理中
	StatusCompleted  PaymentStatus = "COMPLETED"   // 支付完成，吸收态
	StatusCanceled   PaymentStatus = "CANCELED"    // 支付取消，吸收态
)

// NextPaymentStatus 是纯转移函数：NOT_STARTED -> IN_PROGRESS -> COMPLETED。
// 两个吸收态不再接受任何推进。
func NextPaymentStatus(current PaymentStatus) (PaymentStatus, error) {
	switch current {
	case StatusNotStarted:
		return StatusInProgress, nil
	case StatusInProgress:
		return StatusCompleted, nil
	case StatusCompleted:
		return "", apperr.IllegalTransition("payment is already COMPLETED and cannot be updated further")
	case StatusCanceled:
		return "", apperr.IllegalTransition("payment is CANCELED and cannot be updated")
	default:
		return "", apperr.IllegalTransition("unknown payment status: %s", current)
	}
}

// Payment 是支付实体。对订单的引用是远程前置条件：
// 创建时经网络校验订单存在且处于 ORDERED，不依赖本地外键。
type Payment struct {
	PaymentID     int
	IsPayed       bool
	PaymentDate   time.Time
	PaymentStatus PaymentStatus
	OrderID       int
}

// NewPayment 创建一个新支付，初始状态 NOT_STARTED。
func NewPayment(orderID int, isPayed bool) *Payment {
	return &Payment{
		IsPayed:       isPayed,
		PaymentDate:   time.Now(),
		PaymentStatus: StatusNotStarted,
		OrderID:       orderID,
	}
}

// AdvanceStatus 将支付状态单步推进。
func (p *Payment) AdvanceStatus() error {
	next, err := NextPaymentStatus(p.PaymentStatus)
	if err != nil {
		return err
	}
	p.PaymentStatus = next
	return nil
}

// Cancel 取消支付。只有两个非终态可以取消。
func (p *Payment) Cancel() error {
	switch p.PaymentStatus {
	case StatusCompleted:
		return apperr.InvalidInput("cannot cancel a completed payment")
	case StatusCanceled:
		return apperr.InvalidInput("payment %d is already canceled", p.PaymentID)
	}
	p.PaymentStatus = StatusCanceled
	return nil
}
