package router

import (
	userapp "betpix-backend/internal/application"
	"betpix-backend/internal/container"
	pginfra "betpix-backend/internal/infrastructure/postgres"
	handlers "betpix-backend/internal/interface/http"
	"betpix-backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	paymentRepo := pginfra.NewPaymentRepository(pool)

	authSvc := userapp.NewAuthService(userRepo, container.GetTokens(), logger)
	depositSvc := userapp.NewDepositService(
		container.GetGateway(),
		paymentRepo,
		logger,
		cfg.PixMinAmount,
		cfg.PixDescription,
		cfg.PixDefaultPayerEmail,
		cfg.GatewayTimeout,
	)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler()))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, logger), container.GetTokens(), logger))
	r.Add(modules.NewDepositModule(handlers.NewDepositHandler(depositSvc, logger)))
}
