// internal/service/payment/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/payment/domain"
)

// GormPaymentRepository 是 PaymentRepository 的 GORM 实现。
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository 创建支付仓储。
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	var models []*PaymentModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}
	payments := make([]*domain.Payment, 0, len(models))
	for _, m := range models {
		payments = append(payments, toDomainPayment(m))
	}
	return payments, nil
}

func (r *GormPaymentRepository) FindByID(ctx context.Context, paymentID int) (*domain.Payment, error) {
	var model PaymentModel
	err := r.db.WithContext(ctx).First(&model, "payment_id = ?", paymentID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment with id %d not found", paymentID)
		}
		return nil, errors.Wrapf(err, "failed to find payment %d", paymentID)
	}
	return toDomainPayment(&model), nil
}

func (r *GormPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	model := toPaymentModel(payment)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return errors.Wrap(err, "failed to save payment")
	}
	payment.PaymentID = model.PaymentID
	return nil
}
