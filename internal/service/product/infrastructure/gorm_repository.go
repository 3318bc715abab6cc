// internal/service/product/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/product/domain"
)

// visibleOnly 过滤挂在保留分类下的商品。
func visibleOnly(db *gorm.DB) *gorm.DB {
	return db.Where(
		"category_id NOT IN (?)",
		db.Session(&gorm.Session{NewDB: true}).
			Model(&CategoryModel{}).
			Select("category_id").
			Where("category_title = ?", domain.CategoryDeleted),
	)
}

// GormProductRepository 是 ProductRepository 的 GORM 实现。
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository 创建商品仓储。
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindAllVisible(ctx context.Context) ([]*domain.Product, error) {
	var models []*ProductModel
	if err := r.db.WithContext(ctx).Scopes(visibleOnly).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	products := make([]*domain.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toDomainProduct(m))
	}
	return products, nil
}

func (r *GormProductRepository) FindVisibleByID(ctx context.Context, productID int) (*domain.Product, error) {
	var model ProductModel
	err := r.db.WithContext(ctx).Scopes(visibleOnly).
		First(&model, "product_id = ?", productID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product with id %d not found", productID)
		}
		return nil, errors.Wrapf(err, "failed to find product %d", productID)
	}
	return toDomainProduct(&model), nil
}

func (r *GormProductRepository) Save(ctx context.Context, product *domain.Product) error {
	model := toProductModel(product)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return errors.Wrap(err, "failed to save product")
	}
	product.ProductID = model.ProductID
	return nil
}

// GormCategoryRepository 是 CategoryRepository 的 GORM 实现。
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository 创建分类仓储。
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	var models []*CategoryModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	categories := make([]*domain.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, toDomainCategory(m))
	}
	return categories, nil
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, categoryID int) (*domain.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, "category_id = ?", categoryID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category with id %d not found", categoryID)
		}
		return nil, errors.Wrapf(err, "failed to find category %d", categoryID)
	}
	return toDomainCategory(&model), nil
}

func (r *GormCategoryRepository) FindByTitle(ctx context.Context, title string) (*domain.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, "category_title = ?", title).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category %q not found", title)
		}
		return nil, errors.Wrapf(err, "failed to find category %q", title)
	}
	return toDomainCategory(&model), nil
}

func (r *GormCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	model := toCategoryModel(category)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return errors.Wrap(err, "failed to save category")
	}
	category.CategoryID = model.CategoryID
	return nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, categoryID int) error {
	result := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&CategoryModel{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete category %d", categoryID)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("category with id %d not found", categoryID)
	}
	return nil
}
