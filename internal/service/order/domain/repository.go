// internal/service/order/domain/repository.go
package domain

import "context"

// OrderRepository 是订单的持久化端口。
// 活跃性过滤在仓储层统一实施：所有读方法只返回 IsActive=true 的记录，
// 未命中时返回 apperr.KindNotFound 类别的错误。
type OrderRepository interface {
	FindAllActive(ctx context.Context) ([]*Order, error)
	FindActiveByID(ctx context.Context, orderID int) (*Order, error)
	Save(ctx context.Context, order *Order) error
}

// CartRepository 是购物车的持久化端口。
type CartRepository interface {
	FindAllActive(ctx context.Context) ([]*Cart, error)
	FindActiveByID(ctx context.Context, cartID int) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
}
