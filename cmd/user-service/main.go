// cmd/user-service/main.go
package main

import (
	"context"

	"emporium/internal/pkg/bootstrap"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/user/application"
	"emporium/internal/service/user/infrastructure"
	"emporium/internal/service/user/interfaces"
)

func main() {
	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: "user-service",
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			if err := appCtx.DB.AutoMigrate(
				&infrastructure.UserModel{},
				&infrastructure.CredentialModel{},
				&infrastructure.AddressModel{},
			); err != nil {
				logger.Ctx(context.Background()).Fatal().Err(err).Msg("failed to migrate user schema")
			}

			userRepo := infrastructure.NewGormUserRepository(appCtx.DB)
			credentialRepo := infrastructure.NewGormCredentialRepository(appCtx.DB)
			addressRepo := infrastructure.NewGormAddressRepository(appCtx.DB)

			userService := application.NewUserService(userRepo)
			credentialService := application.NewCredentialService(credentialRepo)
			addressService := application.NewAddressService(addressRepo)

			interfaces.NewUserHandler(userService).RegisterRoutes(appCtx.Router)
			interfaces.NewCredentialHandler(credentialService).RegisterRoutes(appCtx.Router)
			interfaces.NewAddressHandler(addressService).RegisterRoutes(appCtx.Router)
		},
	})
}
