// internal/service/product/application/dto.go
package application

import (
	"github.com/shopspring/decimal"

	"emporium/internal/service/product/domain"
)

// ProductDto 是商品的传输对象。
type ProductDto struct {
	ProductID    int             `json:"productId,omitempty"`
	ProductTitle string          `json:"productTitle"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	SKU          string          `json:"sku"`
	PriceUnit    decimal.Decimal `json:"priceUnit"`
	Quantity     int             `json:"quantity"`
	CategoryID   int             `json:"categoryId"`
}

// CategoryDto 是分类的传输对象。
type CategoryDto struct {
	CategoryID    int    `json:"categoryId,omitempty"`
	CategoryTitle string `json:"categoryTitle"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

func toProductDto(p *domain.Product) ProductDto {
	return ProductDto{
		ProductID:    p.ProductID,
		ProductTitle: p.ProductTitle,
		ImageURL:     p.ImageURL,
		SKU:          p.SKU,
		PriceUnit:    p.PriceUnit,
		Quantity:     p.Quantity,
		CategoryID:   p.CategoryID,
	}
}

func toCategoryDto(c *domain.Category) CategoryDto {
	return CategoryDto{
		CategoryID:    c.CategoryID,
		CategoryTitle: c.CategoryTitle,
		ImageURL:      c.ImageURL,
	}
}
