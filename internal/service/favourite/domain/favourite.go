// internal/service/favourite/domain/favourite.go
package domain

import "time"

// Favourite 是用户对商品的收藏，复合主键 (UserID, ProductID, LikeDate)。
// 实体本身没有自增 id，身份完全由键组成。
type Favourite struct {
	UserID    int
	ProductID int
	LikeDate  time.Time
}

// NewFavourite 创建一条收藏，LikeDate 取当前时间。
func NewFavourite(userID, productID int) *Favourite {
	return &Favourite{
		UserID:    userID,
		ProductID: productID,
		LikeDate:  time.Now(),
	}
}
