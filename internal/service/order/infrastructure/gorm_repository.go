// internal/service/order/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/order/domain"
)

// activeOnly 是软删除的可见性谓词，统一作用于每条读路径，
// 不在各查询里各写一遍过滤条件。
func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// GormOrderRepository 是 OrderRepository 的 GORM 实现。
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository 创建订单仓储实例。
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) FindAllActive(ctx context.Context) ([]*domain.Order, error) {
	var models []OrderModel
	if err := r.db.WithContext(ctx).Scopes(activeOnly).Find(&models).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "query active orders")
	}
	orders := make([]*domain.Order, 0, len(models))
	for i := range models {
		orders = append(orders, ToDomainOrder(&models[i]))
	}
	return orders, nil
}

func (r *GormOrderRepository) FindActiveByID(ctx context.Context, orderID int) (*domain.Order, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).Scopes(activeOnly).Where("order_id = ?", orderID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("active order with id %d not found", orderID)
		}
		return nil, pkgerrors.Wrapf(err, "query order %d", orderID)
	}
	return ToDomainOrder(&model), nil
}

func (r *GormOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	model := ToOrderModel(order)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return pkgerrors.Wrap(err, "save order")
	}
	// 新插入的记录把自增 id 回填给领域对象
	order.OrderID = model.OrderID
	return nil
}

// GormCartRepository 是 CartRepository 的 GORM 实现。
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository 创建购物车仓储实例。
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) FindAllActive(ctx context.Context) ([]*domain.Cart, error) {
	var models []CartModel
	if err := r.db.WithContext(ctx).Scopes(activeOnly).Find(&models).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "query active carts")
	}
	carts := make([]*domain.Cart, 0, len(models))
	for i := range models {
		carts = append(carts, ToDomainCart(&models[i]))
	}
	return carts, nil
}

func (r *GormCartRepository) FindActiveByID(ctx context.Context, cartID int) (*domain.Cart, error) {
	var model CartModel
	err := r.db.WithContext(ctx).Scopes(activeOnly).Where("cart_id = ?", cartID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("active cart with id %d not found", cartID)
		}
		return nil, pkgerrors.Wrapf(err, "query cart %d", cartID)
	}
	return ToDomainCart(&model), nil
}

func (r *GormCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	model := ToCartModel(cart)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return pkgerrors.Wrap(err, "save cart")
	}
	cart.CartID = model.CartID
	return nil
}
