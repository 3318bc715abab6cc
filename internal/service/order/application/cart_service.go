// internal/service/order/application/cart_service.go
package application

import (
	"context"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/enrich"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/order/domain"
	"emporium/internal/service/order/domain/port"
)

// CartService 管理购物车，并在读路径上补全归属用户。
type CartService struct {
	carts domain.CartRepository
	users port.UserService
}

// NewCartService 创建购物车应用服务。
func NewCartService(carts domain.CartRepository, users port.UserService) *CartService {
	return &CartService{carts: carts, users: users}
}

// FindAll 返回所有活跃购物车，逐个补全用户。
// 用户不存在时保留未补全的购物车；其余远程失败把该条从结果集剔除。
func (s *CartService) FindAll(ctx context.Context) ([]CartDto, error) {
	logger.Ctx(ctx).Info().Msg("fetching all active carts")

	carts, err := s.carts.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CartDto, 0, len(carts))
	for _, c := range carts {
		dtos = append(dtos, toCartDto(c))
	}

	return enrich.List(ctx, dtos, 0, s.attachUser), nil
}

// FindByID 返回单个活跃购物车并补全用户；补全失败对单读是致命的。
func (s *CartService) FindByID(ctx context.Context, cartID int) (CartDto, error) {
	logger.Ctx(ctx).Info().Int("cart_id", cartID).Msg("fetching active cart")

	cart, err := s.carts.FindActiveByID(ctx, cartID)
	if err != nil {
		return CartDto{}, err
	}
	dto := toCartDto(cart)
	if err := enrich.One(ctx, &dto, s.attachUser); err != nil {
		return CartDto{}, err
	}
	return dto, nil
}

// Create 创建购物车；归属用户必须在用户服务中存在。
func (s *CartService) Create(ctx context.Context, dto CartDto) (CartDto, error) {
	logger.Ctx(ctx).Info().Int("user_id", dto.UserID).Msg("saving new cart")

	if dto.UserID == 0 {
		return CartDto{}, apperr.InvalidInput("cart must reference a user")
	}
	if _, err := s.users.Fetch(ctx, dto.UserID); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return CartDto{}, apperr.NotFound("user with id %d not found", dto.UserID)
		}
		return CartDto{}, err
	}

	cart := &domain.Cart{UserID: dto.UserID, IsActive: true}
	if err := s.carts.Save(ctx, cart); err != nil {
		return CartDto{}, err
	}
	return toCartDto(cart), nil
}

// Delete 软删除购物车。
func (s *CartService) Delete(ctx context.Context, cartID int) error {
	logger.Ctx(ctx).Info().Int("cart_id", cartID).Msg("soft deleting cart")

	cart, err := s.carts.FindActiveByID(ctx, cartID)
	if err != nil {
		return err
	}
	cart.IsActive = false
	return s.carts.Save(ctx, cart)
}

// attachUser 把远程用户贴到 CartDto 上。
// 用户不存在不算失败（购物车保持未补全返回），传输类失败上抛。
func (s *CartService) attachUser(ctx context.Context, dto *CartDto) error {
	user, err := s.users.Fetch(ctx, dto.UserID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			logger.Ctx(ctx).Warn().Int("user_id", dto.UserID).Msg("cart owner not found, returning cart unenriched")
			return nil
		}
		return err
	}
	dto.User = user
	return nil
}
