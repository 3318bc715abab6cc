// internal/service/shipping/domain/order_item.go
package domain

// OrderItem 是订单的发货条目。键是 (OrderID, ProductID)，
// 但查找按 OrderID 收敛到单条活跃记录。
type OrderItem struct {
	OrderID         int
	ProductID       int
	OrderedQuantity int
	IsActive        bool
}

// NewOrderItem 创建一条活跃的发货条目。
func NewOrderItem(orderID, productID, orderedQuantity int) *OrderItem {
	return &OrderItem{
		OrderID:         orderID,
		ProductID:       productID,
		OrderedQuantity: orderedQuantity,
		IsActive:        true,
	}
}

// SoftDelete 把条目标记为不活跃，行保留。
func (i *OrderItem) SoftDelete() {
	i.IsActive = false
}
