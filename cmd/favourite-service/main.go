// cmd/favourite-service/main.go
package main

import (
	"context"

	"emporium/internal/pkg/bootstrap"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/favourite/application"
	"emporium/internal/service/favourite/infrastructure"
	"emporium/internal/service/favourite/infrastructure/adapter"
	"emporium/internal/service/favourite/interfaces"
)

func main() {
	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: "favourite-service",
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			if err := appCtx.DB.AutoMigrate(&infrastructure.FavouriteModel{}); err != nil {
				logger.Ctx(context.Background()).Fatal().Err(err).Msg("failed to migrate favourite schema")
			}

			favouriteRepo := infrastructure.NewGormFavouriteRepository(appCtx.DB)
			userAdapter := adapter.NewUserHTTPAdapter(appCtx.HTTPClient, appCtx.Config.Services.UserBaseURL)
			productAdapter := adapter.NewProductHTTPAdapter(appCtx.HTTPClient, appCtx.Config.Services.ProductBaseURL)

			favouriteService := application.NewFavouriteService(favouriteRepo, userAdapter, productAdapter)

			interfaces.NewFavouriteHandler(favouriteService).RegisterRoutes(appCtx.Router)
		},
	})
}
