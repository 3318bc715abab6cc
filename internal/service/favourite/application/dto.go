// internal/service/favourite/application/dto.go
package application

import (
	"time"

	"emporium/internal/service/favourite/domain"
	"emporium/internal/service/favourite/domain/port"
)

// FavouriteDto 是收藏的传输对象，出参时携带富化后的用户与商品视图。
type FavouriteDto struct {
	UserID    int           `json:"userId"`
	ProductID int           `json:"productId"`
	LikeDate  time.Time     `json:"likeDate"`
	User      *port.User    `json:"user,omitempty"`
	Product   *port.Product `json:"product,omitempty"`
}

func toFavouriteDto(f *domain.Favourite) FavouriteDto {
	return FavouriteDto{
		UserID:    f.UserID,
		ProductID: f.ProductID,
		LikeDate:  f.LikeDate,
	}
}
