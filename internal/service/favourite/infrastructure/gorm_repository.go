// internal/service/favourite/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/favourite/domain"
)

// GormFavouriteRepository 是 FavouriteRepository 的 GORM 实现。
type GormFavouriteRepository struct {
	db *gorm.DB
}

// NewGormFavouriteRepository 创建收藏仓储。
func NewGormFavouriteRepository(db *gorm.DB) *GormFavouriteRepository {
	return &GormFavouriteRepository{db: db}
}

func (r *GormFavouriteRepository) FindAll(ctx context.Context) ([]*domain.Favourite, error) {
	var models []*FavouriteModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favourites")
	}
	favourites := make([]*domain.Favourite, 0, len(models))
	for _, m := range models {
		favourites = append(favourites, &domain.Favourite{
			UserID:    m.UserID,
			ProductID: m.ProductID,
			LikeDate:  m.LikeDate,
		})
	}
	return favourites, nil
}

func (r *GormFavouriteRepository) FindByKey(ctx context.Context, userID, productID int) (*domain.Favourite, error) {
	var model FavouriteModel
	err := r.db.WithContext(ctx).
		First(&model, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("favourite for user %d and product %d not found", userID, productID)
		}
		return nil, errors.Wrapf(err, "failed to find favourite %d/%d", userID, productID)
	}
	return &domain.Favourite{
		UserID:    model.UserID,
		ProductID: model.ProductID,
		LikeDate:  model.LikeDate,
	}, nil
}

func (r *GormFavouriteRepository) Save(ctx context.Context, favourite *domain.Favourite) error {
	model := &FavouriteModel{
		UserID:    favourite.UserID,
		ProductID: favourite.ProductID,
		LikeDate:  favourite.LikeDate,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.Wrap(err, "failed to save favourite")
	}
	return nil
}

func (r *GormFavouriteRepository) Delete(ctx context.Context, userID, productID int) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&FavouriteModel{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete favourite %d/%d", userID, productID)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("favourite for user %d and product %d not found", userID, productID)
	}
	return nil
}
