// internal/service/product/domain/repository.go
package domain

import "context"

// ProductRepository 是商品的持久化端口。
// Visible 方法排除挂在保留分类 CategoryDeleted 下的商品。
type ProductRepository interface {
	FindAllVisible(ctx context.Context) ([]*Product, error)
	FindVisibleByID(ctx context.Context, productID int) (*Product, error)
	Save(ctx context.Context, product *Product) error
}

// CategoryRepository 是分类的持久化端口。
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*Category, error)
	FindByID(ctx context.Context, categoryID int) (*Category, error)
	FindByTitle(ctx context.Context, title string) (*Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID int) error
}
