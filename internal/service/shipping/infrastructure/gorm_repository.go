// internal/service/shipping/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/shipping/domain"
)

func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// GormOrderItemRepository 是 OrderItemRepository 的 GORM 实现。
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository 创建发货条目仓储。
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

func (r *GormOrderItemRepository) FindAllActive(ctx context.Context) ([]*domain.OrderItem, error) {
	var models []*OrderItemModel
	if err := r.db.WithContext(ctx).Scopes(activeOnly).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}
	items := make([]*domain.OrderItem, 0, len(models))
	for _, m := range models {
		items = append(items, toDomainOrderItem(m))
	}
	return items, nil
}

func (r *GormOrderItemRepository) FindActiveByOrderID(ctx context.Context, orderID int) (*domain.OrderItem, error) {
	var model OrderItemModel
	err := r.db.WithContext(ctx).Scopes(activeOnly).
		First(&model, "order_id = ?", orderID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order item for order %d not found", orderID)
		}
		return nil, errors.Wrapf(err, "failed to find order item for order %d", orderID)
	}
	return toDomainOrderItem(&model), nil
}

func (r *GormOrderItemRepository) Save(ctx context.Context, item *domain.OrderItem) error {
	if err := r.db.WithContext(ctx).Save(toOrderItemModel(item)).Error; err != nil {
		return errors.Wrap(err, "failed to save order item")
	}
	return nil
}

func toDomainOrderItem(m *OrderItemModel) *domain.OrderItem {
	return &domain.OrderItem{
		OrderID:         m.OrderID,
		ProductID:       m.ProductID,
		OrderedQuantity: m.OrderedQuantity,
		IsActive:        m.IsActive,
	}
}

func toOrderItemModel(i *domain.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		OrderID:         i.OrderID,
		ProductID:       i.ProductID,
		OrderedQuantity: i.OrderedQuantity,
		IsActive:        i.IsActive,
	}
}
