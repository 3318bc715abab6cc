// internal/service/favourite/domain/repository.go
package domain

import "context"

// FavouriteRepository 是收藏的持久化端口。
// 查找与删除按 (userID, productID) 定位，忽略 LikeDate。
type FavouriteRepository interface {
	FindAll(ctx context.Context) ([]*Favourite, error)
	FindByKey(ctx context.Context, userID, productID int) (*Favourite, error)
	Save(ctx context.Context, favourite *Favourite) error
	Delete(ctx context.Context, userID, productID int) error
}
