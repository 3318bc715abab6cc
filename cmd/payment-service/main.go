// cmd/payment-service/main.go
package main

import (
	"context"

	"emporium/internal/pkg/bootstrap"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/payment/application"
	"emporium/internal/service/payment/infrastructure"
	"emporium/internal/service/payment/infrastructure/adapter"
	"emporium/internal/service/payment/interfaces"
)

func main() {
	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: "payment-service",
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			if err := appCtx.DB.AutoMigrate(&infrastructure.PaymentModel{}); err != nil {
				logger.Ctx(context.Background()).Fatal().Err(err).Msg("failed to migrate payment schema")
			}

			paymentRepo := infrastructure.NewGormPaymentRepository(appCtx.DB)
			orderAdapter := adapter.NewOrderHTTPAdapter(appCtx.HTTPClient, appCtx.Config.Services.OrderBaseURL)

			paymentService := application.NewPaymentService(paymentRepo, orderAdapter)

			interfaces.NewPaymentHandler(paymentService).RegisterRoutes(appCtx.Router)
		},
	})
}
