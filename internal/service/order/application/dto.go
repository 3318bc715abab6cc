// internal/service/order/application/dto.go
package application

import (
	"time"

	"github.com/shopspring/decimal"

	"emporium/internal/service/order/domain"
	"emporium/internal/service/order/domain/port"
)

// CartRefDto 是订单里对购物车的引用，创建订单时必填。
type CartRefDto struct {
	CartID *int `json:"cartId"`
}

// OrderDto 是订单的传输对象，请求和响应共用。
type OrderDto struct {
	OrderID     int             `json:"orderId,omitempty"`
	OrderDate   time.Time       `json:"orderDate"`
	OrderDesc   string          `json:"orderDesc"`
	OrderFee    decimal.Decimal `json:"orderFee"`
	OrderStatus string          `json:"orderStatus,omitempty"`
	Cart        *CartRefDto     `json:"cart,omitempty"`
}

// CartDto 是购物车的传输对象；User 字段由读路径按需补全。
type CartDto struct {
	CartID int        `json:"cartId,omitempty"`
	UserID int        `json:"userId"`
	User   *port.User `json:"user,omitempty"`
}

func toOrderDto(o *domain.Order) OrderDto {
	cartID := o.CartID
	return OrderDto{
		OrderID:     o.OrderID,
		OrderDate:   o.OrderDate,
		OrderDesc:   o.OrderDesc,
		OrderFee:    o.OrderFee,
		OrderStatus: string(o.Status),
		Cart:        &CartRefDto{CartID: &cartID},
	}
}

func toCartDto(c *domain.Cart) CartDto {
	return CartDto{
		CartID: c.CartID,
		UserID: c.UserID,
	}
}
