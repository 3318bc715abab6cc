// internal/service/product/domain/product.go
package domain

import (
	"github.com/shopspring/decimal"

	"emporium/internal/pkg/apperr"
)

// CategoryDeleted 是保留分类名。商品删除通过改挂到这个分类实现，
// 行保留在表里，读路径把它过滤掉。
const CategoryDeleted = "Deleted"

// Product 是商品实体。
type Product struct {
	ProductID    int
	ProductTitle string
	ImageURL     string
	SKU          string
	PriceUnit    decimal.Decimal
	Quantity     int
	CategoryID   int
}

// Validate 检查必填字段。
func (p *Product) Validate() error {
	if p.ProductTitle == "" {
		return apperr.InvalidInput("productTitle is required")
	}
	if p.SKU == "" {
		return apperr.InvalidInput("sku is required")
	}
	if p.PriceUnit.IsNegative() {
		return apperr.InvalidInput("priceUnit must not be negative")
	}
	if p.Quantity < 0 {
		return apperr.InvalidInput("quantity must not be negative")
	}
	if p.CategoryID == 0 {
		return apperr.InvalidInput("product must reference a category")
	}
	return nil
}

// Category 是商品分类。
type Category struct {
	CategoryID    int
	CategoryTitle string
	ImageURL      string
}
