// internal/service/payment/infrastructure/gorm_model.go
package infrastructure

import "time"

// PaymentModel 是支付的 GORM 持久化模型。
// order_id 只是一个数值引用，没有本地外键约束。
type PaymentModel struct {
	PaymentID     int       `gorm:"column:payment_id;primaryKey;autoIncrement"`
	IsPayed       bool      `gorm:"column:is_payed"`
	PaymentDate   time.Time `gorm:"column:payment_date"`
	PaymentStatus string    `gorm:"column:payment_status;type:varchar(32)"`
	OrderID       int       `gorm:"column:order_id;index"`
}

// TableName 指定表名。
func (PaymentModel) TableName() string {
	return "payments"
}
