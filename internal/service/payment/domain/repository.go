// internal/service/payment/domain/repository.go
package domain

import "context"

// PaymentRepository 是支付的持久化端口。
// 支付没有软删除：取消通过状态字段表达，记录始终可见。
type PaymentRepository interface {
	FindAll(ctx context.Context) ([]*Payment, error)
	FindByID(ctx context.Context, paymentID int) (*Payment, error)
	Save(ctx context.Context, payment *Payment) error
}
