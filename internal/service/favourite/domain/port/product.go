// internal/service/favourite/domain/port/product.go
package port

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product 是商品服务返回的远程商品视图。
type Product struct {
	ProductID    int             `json:"productId"`
	ProductTitle string          `json:"productTitle"`
	ImageURL     string          `json:"imageUrl"`
	SKU          string          `json:"sku"`
	PriceUnit    decimal.Decimal `json:"priceUnit"`
	Quantity     int             `json:"quantity"`
}

// ProductService 抽象对商品服务的同步调用。
type ProductService interface {
	Fetch(ctx context.Context, productID int) (*Product, error)
}
