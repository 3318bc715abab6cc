// cmd/shipping-service/main.go
package main

import (
	"context"

	"emporium/internal/pkg/bootstrap"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/shipping/application"
	"emporium/internal/service/shipping/infrastructure"
	"emporium/internal/service/shipping/infrastructure/adapter"
	"emporium/internal/service/shipping/interfaces"
)

func main() {
	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: "shipping-service",
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			if err := appCtx.DB.AutoMigrate(&infrastructure.OrderItemModel{}); err != nil {
				logger.Ctx(context.Background()).Fatal().Err(err).Msg("failed to migrate shipping schema")
			}

			itemRepo := infrastructure.NewGormOrderItemRepository(appCtx.DB)
			productAdapter := adapter.NewProductHTTPAdapter(appCtx.HTTPClient, appCtx.Config.Services.ProductBaseURL)
			orderAdapter := adapter.NewOrderHTTPAdapter(appCtx.HTTPClient, appCtx.Config.Services.OrderBaseURL)

			shippingService := application.NewShippingService(itemRepo, productAdapter, orderAdapter)

			interfaces.NewShippingHandler(shippingService).RegisterRoutes(appCtx.Router)
		},
	})
}
