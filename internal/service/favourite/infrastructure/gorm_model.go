// internal/service/favourite/infrastructure/gorm_model.go
package infrastructure

import "time"

// FavouriteModel 是收藏的 GORM 持久化模型，复合主键。
type FavouriteModel struct {
	UserID    int       `gorm:"column:user_id;primaryKey"`
	ProductID int       `gorm:"column:product_id;primaryKey"`
	LikeDate  time.Time `gorm:"column:like_date;primaryKey"`
}

// TableName 指定表名。
func (FavouriteModel) TableName() string {
	return "favourites"
}
