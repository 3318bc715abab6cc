// internal/service/product/infrastructure/gorm_model.go
package infrastructure

import "github.com/shopspring/decimal"

// ProductModel 是商品的 GORM 持久化模型。
type ProductModel struct {
	ProductID    int             `gorm:"column:product_id;primaryKey;autoIncrement"`
	ProductTitle string          `gorm:"column:product_title"`
	ImageURL     string          `gorm:"column:image_url"`
	SKU          string          `gorm:"column:sku;type:varchar(64)"`
	PriceUnit    decimal.Decimal `gorm:"column:price_unit;type:decimal(10,2)"`
	Quantity     int             `gorm:"column:quantity"`
	CategoryID   int             `gorm:"column:category_id;index"`
}

// TableName 指定表名。
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel 是分类的 GORM 持久化模型。
type CategoryModel struct {
	CategoryID    int    `gorm:"column:category_id;primaryKey;autoIncrement"`
	CategoryTitle string `gorm:"column:category_title;type:varchar(128)"`
	ImageURL      string `gorm:"column:image_url"`
}

// TableName 指定表名。
func (CategoryModel) TableName() string {
	return "categories"
}
