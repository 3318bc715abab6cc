// internal/pkg/enrich/enrich_test.go
package enrich

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id       int
	enriched bool
}

func TestListDropsFailedItems(t *testing.T) {
	items := []item{{id: 1}, {id: 2}, {id: 3}, {id: 4}}

	out := List(context.Background(), items, 2, func(ctx context.Context, it *item) error {
		if it.id%2 == 0 {
			return errors.New("remote lookup failed")
		}
		it.enriched = true
		return nil
	})

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].id)
	assert.Equal(t, 3, out[1].id)
	assert.True(t, out[0].enriched)
	assert.True(t, out[1].enriched)
}

func TestListPreservesOrder(t *testing.T) {
	items := make([]item, 50)
	for i := range items {
		items[i].id = i
	}

	out := List(context.Background(), items, 8, func(ctx context.Context, it *item) error {
		return nil
	})

	require.Len(t, out, 50)
	for i, it := range out {
		assert.Equal(t, i, it.id)
	}
}

func TestListEmptyInput(t *testing.T) {
	out := List(context.Background(), []item{}, 0, func(ctx context.Context, it *item) error {
		t.Fatal("fn must not be called for empty input")
		return nil
	})
	assert.Empty(t, out)
}

func TestOnePropagatesError(t *testing.T) {
	it := item{id: 1}
	err := One(context.Background(), &it, func(ctx context.Context, it *item) error {
		return errors.New("remote lookup failed")
	})
	require.Error(t, err)
	assert.False(t, it.enriched)
}

func TestOneMutatesInPlace(t *testing.T) {
	it := item{id: 1}
	require.NoError(t, One(context.Background(), &it, func(ctx context.Context, it *item) error {
		it.enriched = true
		return nil
	}))
	assert.True(t, it.enriched)
}
