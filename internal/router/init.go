package router

import (
	"github.com/rizkypratama/havenly/internal/application"
	"github.com/rizkypratama/havenly/internal/container"
	pginfra "github.com/rizkypratama/havenly/internal/infrastructure/postgres"
	handlers "github.com/rizkypratama/havenly/internal/interface/http"
	"github.com/rizkypratama/havenly/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(container.GetPGPool())
	listings := pginfra.NewListingRepository(container.GetPGPool())

	userSvc := application.NewUserService(
		users,
		listings,
		container.GetJWT(),
		logger,
		container.GetRabbitPub(),
		cfg.AppName,
		cfg.DefaultAvatarURL,
		cfg.MailSendEnabled,
	)
	listingSvc := application.NewListingService(
		listings,
		container.GetES(),
		cfg.ESListingsIndex,
		logger,
	)

	authHandler := handlers.NewAuthHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	listingHandler := handlers.NewListingHandler(listingSvc, logger)
	uploadHandler := handlers.NewUploadHandler(container.GetGCS(), cfg.GCSBucket, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewListingModule(listingHandler, container.GetJWT()))
	r.Add(modules.NewUploadModule(uploadHandler, container.GetJWT()))
	if cfg.MetricsEnabled {
		r.Add(modules.NewMetricsModule())
	}
}
