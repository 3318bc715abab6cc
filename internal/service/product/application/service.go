// internal/service/product/application/service.go
package application

import (
	"context"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/product/domain"
)

// ProductService 管理商品。删除不是软删标记，而是把商品改挂到
// 保留分类 "Deleted"，读路径据此过滤。
type ProductService struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewProductService 创建商品应用服务。
func NewProductService(products domain.ProductRepository, categories domain.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// FindAll 列出所有可见商品。
func (s *ProductService) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.products.FindAllVisible(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]ProductDto, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDto(p))
	}
	return dtos, nil
}

// FindByID 返回单个可见商品。
func (s *ProductService) FindByID(ctx context.Context, productID int) (ProductDto, error) {
	product, err := s.products.FindVisibleByID(ctx, productID)
	if err != nil {
		return ProductDto{}, err
	}
	return toProductDto(product), nil
}

// Create 校验必填字段和分类存在性后落库。
func (s *ProductService) Create(ctx context.Context, dto ProductDto) (ProductDto, error) {
	product := &domain.Product{
		ProductTitle: dto.ProductTitle,
		ImageURL:     dto.ImageURL,
		SKU:          dto.SKU,
		PriceUnit:    dto.PriceUnit,
		Quantity:     dto.Quantity,
		CategoryID:   dto.CategoryID,
	}
	if err := product.Validate(); err != nil {
		return ProductDto{}, err
	}
	if _, err := s.categories.FindByID(ctx, dto.CategoryID); err != nil {
		return ProductDto{}, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return ProductDto{}, err
	}
	logger.Ctx(ctx).Info().Int("product_id", product.ProductID).Msg("product created")
	return toProductDto(product), nil
}

// Update 修改商品字段；换分类时同样校验目标分类存在。
func (s *ProductService) Update(ctx context.Context, productID int, dto ProductDto) (ProductDto, error) {
	product, err := s.products.FindVisibleByID(ctx, productID)
	if err != nil {
		return ProductDto{}, err
	}
	product.ProductTitle = dto.ProductTitle
	product.ImageURL = dto.ImageURL
	product.SKU = dto.SKU
	product.PriceUnit = dto.PriceUnit
	product.Quantity = dto.Quantity
	if dto.CategoryID != 0 && dto.CategoryID != product.CategoryID {
		if _, err := s.categories.FindByID(ctx, dto.CategoryID); err != nil {
			return ProductDto{}, err
		}
		product.CategoryID = dto.CategoryID
	}
	if err := product.Validate(); err != nil {
		return ProductDto{}, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return ProductDto{}, err
	}
	return toProductDto(product), nil
}

// Delete 把商品改挂到保留分类。保留分类不存在时即时创建。
func (s *ProductService) Delete(ctx context.Context, productID int) error {
	product, err := s.products.FindVisibleByID(ctx, productID)
	if err != nil {
		return err
	}

	deleted, err := s.categories.FindByTitle(ctx, domain.CategoryDeleted)
	if apperr.IsKind(err, apperr.KindNotFound) {
		deleted = &domain.Category{CategoryTitle: domain.CategoryDeleted}
		if err := s.categories.Save(ctx, deleted); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	product.CategoryID = deleted.CategoryID
	if err := s.products.Save(ctx, product); err != nil {
		return err
	}
	logger.Ctx(ctx).Info().Int("product_id", productID).Msg("product moved to deleted category")
	return nil
}

// CategoryService 是分类的 CRUD 应用服务。
type CategoryService struct {
	categories domain.CategoryRepository
}

// NewCategoryService 创建分类应用服务。
func NewCategoryService(categories domain.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) FindAll(ctx context.Context) ([]CategoryDto, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CategoryDto, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDto(c))
	}
	return dtos, nil
}

func (s *CategoryService) FindByID(ctx context.Context, categoryID int) (CategoryDto, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return CategoryDto{}, err
	}
	return toCategoryDto(category), nil
}

func (s *CategoryService) Create(ctx context.Context, dto CategoryDto) (CategoryDto, error) {
	if dto.CategoryTitle == "" {
		return CategoryDto{}, apperr.InvalidInput("categoryTitle is required")
	}
	category := &domain.Category{
		CategoryTitle: dto.CategoryTitle,
		ImageURL:      dto.ImageURL,
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return CategoryDto{}, err
	}
	return toCategoryDto(category), nil
}

func (s *CategoryService) Update(ctx context.Context, categoryID int, dto CategoryDto) (CategoryDto, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return CategoryDto{}, err
	}
	category.CategoryTitle = dto.CategoryTitle
	category.ImageURL = dto.ImageURL
	if err := s.categories.Save(ctx, category); err != nil {
		return CategoryDto{}, err
	}
	return toCategoryDto(category), nil
}

func (s *CategoryService) Delete(ctx context.Context, categoryID int) error {
	return s.categories.Delete(ctx, categoryID)
}
