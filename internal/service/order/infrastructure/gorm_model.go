// internal/service/order/infrastructure/gorm_model.go
package infrastructure

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel 对应数据库中的 orders 表。
type OrderModel struct {
	OrderID   int             `gorm:"column:order_id;primaryKey;autoIncrement"`
	OrderDate time.Time       `gorm:"column:order_date"`
	OrderDesc string          `gorm:"column:order_desc;type:varchar(255)"`
	OrderFee  decimal.Decimal `gorm:"column:order_fee;type:decimal(10,2)"`
	Status    string          `gorm:"column:status;type:varchar(32)"`
	IsActive  bool            `gorm:"column:is_active"`
	CartID    int             `gorm:"column:cart_id;index"`
}

// TableName 指定 GORM 使用的表名。
func (OrderModel) TableName() string {
	return "orders"
}

// CartModel 对应数据库中的 carts 表。
type CartModel struct {
	CartID   int  `gorm:"column:cart_id;primaryKey;autoIncrement"`
	UserID   int  `gorm:"column:user_id;index"`
	IsActive bool `gorm:"column:is_active"`
}

// TableName 指定 GORM 使用的表名。
func (CartModel) TableName() string {
	return "carts"
}
