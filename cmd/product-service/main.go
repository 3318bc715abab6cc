// cmd/product-service/main.go
package main

import (
	"context"

	"github.com/redis/go-redis/v9"

	"emporium/internal/pkg/bootstrap"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/product/application"
	"emporium/internal/service/product/infrastructure"
	"emporium/internal/service/product/interfaces"
)

func main() {
	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: "product-service",
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			if err := appCtx.DB.AutoMigrate(
				&infrastructure.ProductModel{},
				&infrastructure.CategoryModel{},
			); err != nil {
				logger.Ctx(context.Background()).Fatal().Err(err).Msg("failed to migrate product schema")
			}

			rdb := redis.NewClient(&redis.Options{Addr: appCtx.Config.Redis.Addr})

			productRepo := infrastructure.NewCachedProductRepository(
				infrastructure.NewGormProductRepository(appCtx.DB), rdb)
			categoryRepo := infrastructure.NewGormCategoryRepository(appCtx.DB)

			productService := application.NewProductService(productRepo, categoryRepo)
			categoryService := application.NewCategoryService(categoryRepo)

			interfaces.NewProductHandler(productService).RegisterRoutes(appCtx.Router)
			interfaces.NewCategoryHandler(categoryService).RegisterRoutes(appCtx.Router)
		},
	})
}
