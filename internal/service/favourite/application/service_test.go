// internal/service/favourite/application/service_test.go
package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/favourite/domain"
	"emporium/internal/service/favourite/domain/port"
)

type favouriteKey struct{ userID, productID int }

type fakeFavouriteRepo struct {
	favourites map[favouriteKey]*domain.Favourite
}

func newFakeFavouriteRepo() *fakeFavouriteRepo {
	return &fakeFavouriteRepo{favourites: map[favouriteKey]*domain.Favourite{}}
}

func (r *fakeFavouriteRepo) FindAll(ctx context.Context) ([]*domain.Favourite, error) {
	out := make([]*domain.Favourite, 0, len(r.favourites))
	for _, f := range r.favourites {
		copied := *f
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeFavouriteRepo) FindByKey(ctx context.Context, userID, productID int) (*domain.Favourite, error) {
	f, ok := r.favourites[favouriteKey{userID, productID}]
	if !ok {
		return nil, apperr.NotFound("favourite for user %d and product %d not found", userID, productID)
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFavouriteRepo) Save(ctx context.Context, favourite *domain.Favourite) error {
	copied := *favourite
	r.favourites[favouriteKey{favourite.UserID, favourite.ProductID}] = &copied
	return nil
}

func (r *fakeFavouriteRepo) Delete(ctx context.Context, userID, productID int) error {
	key := favouriteKey{userID, productID}
	if _, ok := r.favourites[key]; !ok {
		return apperr.NotFound("favourite for user %d and product %d not found", userID, productID)
	}
	delete(r.favourites, key)
	return nil
}

type fakeUserPort struct {
	known map[int]bool
	err   error
}

func (s *fakeUserPort) Fetch(ctx context.Context, userID int) (*port.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !s.known[userID] {
		return nil, apperr.NotFound("remote user %d not found", userID)
	}
	return &port.User{UserID: userID, FirstName: "Ada"}, nil
}

type fakeProductPort struct {
	known map[int]bool
	err   error
}

func (s *fakeProductPort) Fetch(ctx context.Context, productID int) (*port.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !s.known[productID] {
		return nil, apperr.NotFound("remote product %d not found", productID)
	}
	return &port.Product{ProductID: productID, ProductTitle: "widget"}, nil
}

func TestFavouriteCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists after both remote checks pass", func(t *testing.T) {
		repo := newFakeFavouriteRepo()
		svc := NewFavouriteService(repo,
			&fakeUserPort{known: map[int]bool{1: true}},
			&fakeProductPort{known: map[int]bool{2: true}})

		dto, err := svc.Create(ctx, FavouriteDto{UserID: 1, ProductID: 2})
		require.NoError(t, err)
		assert.Equal(t, 1, dto.UserID)
		assert.Equal(t, 2, dto.ProductID)
		assert.False(t, dto.LikeDate.IsZero())
		assert.Len(t, repo.favourites, 1)
	})

	t.Run("unknown user passes 404 through", func(t *testing.T) {
		svc := NewFavouriteService(newFakeFavouriteRepo(),
			&fakeUserPort{known: map[int]bool{}},
			&fakeProductPort{known: map[int]bool{2: true}})

		_, err := svc.Create(ctx, FavouriteDto{UserID: 1, ProductID: 2})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("unknown product passes 404 through", func(t *testing.T) {
		svc := NewFavouriteService(newFakeFavouriteRepo(),
			&fakeUserPort{known: map[int]bool{1: true}},
			&fakeProductPort{known: map[int]bool{}})

		_, err := svc.Create(ctx, FavouriteDto{UserID: 1, ProductID: 2})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("duplicate key rejected with conflict", func(t *testing.T) {
		repo := newFakeFavouriteRepo()
		svc := NewFavouriteService(repo,
			&fakeUserPort{known: map[int]bool{1: true}},
			&fakeProductPort{known: map[int]bool{2: true}})

		_, err := svc.Create(ctx, FavouriteDto{UserID: 1, ProductID: 2})
		require.NoError(t, err)
		_, err = svc.Create(ctx, FavouriteDto{UserID: 1, ProductID: 2})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	})
}

func TestFavouriteFindAll(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFavouriteRepo()
	require.NoError(t, repo.Save(ctx, domain.NewFavourite(1, 2)))
	require.NoError(t, repo.Save(ctx, domain.NewFavourite(3, 4)))

	// 用户 3 不存在，该条目被剔除
	svc := NewFavouriteService(repo,
		&fakeUserPort{known: map[int]bool{1: true}},
		&fakeProductPort{known: map[int]bool{2: true, 4: true}})

	dtos, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, 1, dtos[0].UserID)
	assert.NotNil(t, dtos[0].User)
	assert.NotNil(t, dtos[0].Product)
}

func TestFavouriteFindByKey(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFavouriteRepo()
	require.NoError(t, repo.Save(ctx, domain.NewFavourite(1, 2)))

	t.Run("strict enrichment fails on remote failure", func(t *testing.T) {
		svc := NewFavouriteService(repo,
			&fakeUserPort{err: apperr.Upstream("user service unreachable")},
			&fakeProductPort{known: map[int]bool{2: true}})

		_, err := svc.FindByKey(ctx, 1, 2)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindUpstreamUnavailable))
	})

	t.Run("unknown key returns 404", func(t *testing.T) {
		svc := NewFavouriteService(repo, &fakeUserPort{}, &fakeProductPort{})
		_, err := svc.FindByKey(ctx, 9, 9)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestFavouriteDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFavouriteRepo()
	require.NoError(t, repo.Save(ctx, domain.NewFavourite(1, 2)))
	svc := NewFavouriteService(repo, &fakeUserPort{}, &fakeProductPort{})

	require.NoError(t, svc.Delete(ctx, 1, 2))
	assert.Empty(t, repo.favourites)

	err := svc.Delete(ctx, 1, 2)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
