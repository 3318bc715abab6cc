// internal/service/payment/application/dto.go
package application

import (
	"time"

	"emporium/internal/service/payment/domain"
	"emporium/internal/service/payment/domain/port"
)

// OrderRefDto 是入参里对订单的引用，出参时携带富化后的订单视图。
type OrderRefDto struct {
	OrderID     *int       `json:"orderId"`
	OrderDate   *time.Time `json:"orderDate,omitempty"`
	OrderDesc   string     `json:"orderDesc,omitempty"`
	OrderFee    string     `json:"orderFee,omitempty"`
	OrderStatus string     `json:"orderStatus,omitempty"`
}

// PaymentDto 是支付的传输对象。
type PaymentDto struct {
	PaymentID     int          `json:"paymentId,omitempty"`
	IsPayed       bool         `json:"isPayed"`
	PaymentDate   time.Time    `json:"paymentDate"`
	PaymentStatus string       `json:"paymentStatus,omitempty"`
	Order         *OrderRefDto `json:"order,omitempty"`
}

func toPaymentDto(p *domain.Payment) PaymentDto {
	orderID := p.OrderID
	return PaymentDto{
		PaymentID:     p.PaymentID,
		IsPayed:       p.IsPayed,
		PaymentDate:   p.PaymentDate,
		PaymentStatus: string(p.PaymentStatus),
		Order:         &OrderRefDto{OrderID: &orderID},
	}
}

func attachOrderView(dto *PaymentDto, order *port.Order) {
	orderID := order.OrderID
	orderDate := order.OrderDate
	dto.Order = &OrderRefDto{
		OrderID:     &orderID,
		OrderDate:   &orderDate,
		OrderDesc:   order.OrderDesc,
		OrderFee:    order.OrderFee.String(),
		OrderStatus: order.OrderStatus,
	}
}
