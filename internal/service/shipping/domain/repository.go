// internal/service/shipping/domain/repository.go
package domain

import "context"

// OrderItemRepository 是发货条目的持久化端口，活跃行可见。
type OrderItemRepository interface {
	FindAllActive(ctx context.Context) ([]*OrderItem, error)
	FindActiveByOrderID(ctx context.Context, orderID int) (*OrderItem, error)
	Save(ctx context.Context, item *OrderItem) error
}
