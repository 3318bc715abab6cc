// cmd/order-service/main.go
package main

import (
	"context"

	"emporium/internal/pkg/bootstrap"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/order/application"
	"emporium/internal/service/order/infrastructure"
	"emporium/internal/service/order/infrastructure/adapter"
	"emporium/internal/service/order/interfaces"
)

func main() {
	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: "order-service",
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			if err := appCtx.DB.AutoMigrate(
				&infrastructure.OrderModel{},
				&infrastructure.CartModel{},
			); err != nil {
				logger.Ctx(context.Background()).Fatal().Err(err).Msg("failed to migrate order schema")
			}

			orderRepo := infrastructure.NewGormOrderRepository(appCtx.DB)
			cartRepo := infrastructure.NewGormCartRepository(appCtx.DB)
			userAdapter := adapter.NewUserHTTPAdapter(appCtx.HTTPClient, appCtx.Config.Services.UserBaseURL)

			orderService := application.NewOrderService(orderRepo, cartRepo)
			cartService := application.NewCartService(cartRepo, userAdapter)

			interfaces.NewOrderHandler(orderService).RegisterRoutes(appCtx.Router)
			interfaces.NewCartHandler(cartService).RegisterRoutes(appCtx.Router)
		},
	})
}
