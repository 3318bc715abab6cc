// internal/service/favourite/application/service.go
package application

import (
	"context"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/enrich"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/favourite/domain"
	"emporium/internal/service/favourite/domain/port"
)

// FavouriteService 管理收藏，并在读路径上聚合用户与商品视图。
type FavouriteService struct {
	favourites domain.FavouriteRepository
	users      port.UserService
	products   port.ProductService
}

// NewFavouriteService 创建收藏应用服务。
func NewFavouriteService(
	favourites domain.FavouriteRepository,
	users port.UserService,
	products port.ProductService,
) *FavouriteService {
	return &FavouriteService{favourites: favourites, users: users, products: products}
}

// attach 拉取用户和商品视图。两个远程调用任一失败即失败，
// 由调用方决定丢弃还是整体报错。
func (s *FavouriteService) attach(ctx context.Context, dto *FavouriteDto) error {
	user, err := s.users.Fetch(ctx, dto.UserID)
	if err != nil {
		return err
	}
	product, err := s.products.Fetch(ctx, dto.ProductID)
	if err != nil {
		return err
	}
	dto.User = user
	dto.Product = product
	return nil
}

// FindAll 列出所有收藏。尽力而为：富化失败的条目被丢弃。
func (s *FavouriteService) FindAll(ctx context.Context) ([]FavouriteDto, error) {
	favourites, err := s.favourites.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]FavouriteDto, 0, len(favourites))
	for _, f := range favourites {
		dtos = append(dtos, toFavouriteDto(f))
	}
	dtos = enrich.List(ctx, dtos, 0, func(ctx context.Context, dto *FavouriteDto) error {
		if err := s.attach(ctx, dto); err != nil {
			logger.Ctx(ctx).Warn().Err(err).
				Int("user_id", dto.UserID).
				Int("product_id", dto.ProductID).
				Msg("dropping favourite from list: enrichment failed")
			return err
		}
		return nil
	})
	return dtos, nil
}

// FindByKey 返回单条收藏，严格富化。
func (s *FavouriteService) FindByKey(ctx context.Context, userID, productID int) (FavouriteDto, error) {
	favourite, err := s.favourites.FindByKey(ctx, userID, productID)
	if err != nil {
		return FavouriteDto{}, err
	}
	dto := toFavouriteDto(favourite)
	if err := enrich.One(ctx, &dto, s.attach); err != nil {
		return FavouriteDto{}, err
	}
	return dto, nil
}

// Create 先远程确认用户和商品都存在，再落库。
// 远程 404 原样透传；本地键冲突报 Conflict。
func (s *FavouriteService) Create(ctx context.Context, dto FavouriteDto) (FavouriteDto, error) {
	if dto.UserID == 0 || dto.ProductID == 0 {
		return FavouriteDto{}, apperr.InvalidInput("favourite must reference a user and a product")
	}
	if _, err := s.users.Fetch(ctx, dto.UserID); err != nil {
		return FavouriteDto{}, err
	}
	if _, err := s.products.Fetch(ctx, dto.ProductID); err != nil {
		return FavouriteDto{}, err
	}
	if _, err := s.favourites.FindByKey(ctx, dto.UserID, dto.ProductID); err == nil {
		return FavouriteDto{}, apperr.Conflict(
			"user %d already has product %d in favourites", dto.UserID, dto.ProductID)
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return FavouriteDto{}, err
	}

	favourite := domain.NewFavourite(dto.UserID, dto.ProductID)
	if err := s.favourites.Save(ctx, favourite); err != nil {
		return FavouriteDto{}, err
	}
	logger.Ctx(ctx).Info().
		Int("user_id", favourite.UserID).
		Int("product_id", favourite.ProductID).
		Msg("favourite created")
	return toFavouriteDto(favourite), nil
}

// Delete 按键硬删除一条收藏。
func (s *FavouriteService) Delete(ctx context.Context, userID, productID int) error {
	if err := s.favourites.Delete(ctx, userID, productID); err != nil {
		return err
	}
	logger.Ctx(ctx).Info().
		Int("user_id", userID).
		Int("product_id", productID).
		Msg("favourite deleted")
	return nil
}
