// internal/service/payment/domain/port/order.go
package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Order 是订单服务返回的远程订单视图。
// 支付服务不持久化订单数据，只在单次请求中使用。
type Order struct {
	OrderID     int             `json:"orderId"`
	OrderDate   time.Time       `json:"orderDate"`
	OrderDesc   string          `json:"orderDesc"`
	OrderFee    decimal.Decimal `json:"orderFee"`
	OrderStatus string          `json:"orderStatus"`
}

// OrderService 抽象对订单服务的同步调用。
// AdvanceStatus 对应订单侧的单步状态推进，PATCH 触发器语义。
type OrderService interface {
	Fetch(ctx context.Context, orderID int) (*Order, error)
	AdvanceStatus(ctx context.Context, orderID int) error
}
