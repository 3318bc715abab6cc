// internal/service/product/infrastructure/mapper.go
package infrastructure

import "emporium/internal/service/product/domain"

func toDomainProduct(m *ProductModel) *domain.Product {
	return &domain.Product{
		ProductID:    m.ProductID,
		ProductTitle: m.ProductTitle,
		ImageURL:     m.ImageURL,
		SKU:          m.SKU,
		PriceUnit:    m.PriceUnit,
		Quantity:     m.Quantity,
		CategoryID:   m.CategoryID,
	}
}

func toProductModel(p *domain.Product) *ProductModel {
	return &ProductModel{
		ProductID:    p.ProductID,
		ProductTitle: p.ProductTitle,
		ImageURL:     p.ImageURL,
		SKU:          p.SKU,
		PriceUnit:    p.PriceUnit,
		Quantity:     p.Quantity,
		CategoryID:   p.CategoryID,
	}
}

func toDomainCategory(m *CategoryModel) *domain.Category {
	return &domain.Category{
		CategoryID:    m.CategoryID,
		CategoryTitle: m.CategoryTitle,
		ImageURL:      m.ImageURL,
	}
}

func toCategoryModel(c *domain.Category) *CategoryModel {
	return &CategoryModel{
		CategoryID:    c.CategoryID,
		CategoryTitle: c.CategoryTitle,
		ImageURL:      c.ImageURL,
	}
}
