// internal/service/shipping/infrastructure/gorm_model.go
package infrastructure

// OrderItemModel 是发货条目的 GORM 持久化模型，复合主键。
type OrderItemModel struct {
	OrderID         int  `gorm:"column:order_id;primaryKey"`
	ProductID       int  `gorm:"column:product_id;primaryKey"`
	OrderedQuantity int  `gorm:"column:ordered_quantity"`
	IsActive        bool `gorm:"column:is_active"`
}

// TableName 指定表名。
func (OrderItemModel) TableName() string {
	return "order_items"
}
