// internal/service/product/infrastructure/cached_repository.go
package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"emporium/internal/pkg/logger"
	"emporium/internal/service/product/domain"
)

const productCacheTTL = 30 * time.Second

// CachedProductRepository 在 GORM 仓储外面包一层 Redis 读穿缓存。
// 只缓存单条查询；缓存故障一律静默降级到数据库，不影响请求结果。
type CachedProductRepository struct {
	inner domain.ProductRepository
	rdb   *redis.Client
}

// NewCachedProductRepository 创建带缓存的商品仓储。
func NewCachedProductRepository(inner domain.ProductRepository, rdb *redis.Client) *CachedProductRepository {
	return &CachedProductRepository{inner: inner, rdb: rdb}
}

func productCacheKey(productID int) string {
	return fmt.Sprintf("product:%d", productID)
}

func (r *CachedProductRepository) FindAllVisible(ctx context.Context) ([]*domain.Product, error) {
	return r.inner.FindAllVisible(ctx)
}

func (r *CachedProductRepository) FindVisibleByID(ctx context.Context, productID int) (*domain.Product, error) {
	key := productCacheKey(productID)

	if raw, err := r.rdb.Get(ctx, key).Bytes(); err == nil {
		var product domain.Product
		if err := json.Unmarshal(raw, &product); err == nil {
			return &product, nil
		}
		logger.Ctx(ctx).Debug().Str("key", key).Msg("dropping unreadable cache entry")
		r.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		logger.Ctx(ctx).Debug().Err(err).Str("key", key).Msg("cache read failed, falling back to db")
	}

	product, err := r.inner.FindVisibleByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(product); err == nil {
		if err := r.rdb.Set(ctx, key, raw, productCacheTTL).Err(); err != nil {
			logger.Ctx(ctx).Debug().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return product, nil
}

// Save 写库后让对应缓存失效。
func (r *CachedProductRepository) Save(ctx context.Context, product *domain.Product) error {
	if err := r.inner.Save(ctx, product); err != nil {
		return err
	}
	if err := r.rdb.Del(ctx, productCacheKey(product.ProductID)).Err(); err != nil {
		logger.Ctx(ctx).Debug().Err(err).Int("product_id", product.ProductID).Msg("cache invalidation failed")
	}
	return nil
}
