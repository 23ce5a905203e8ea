package profile_fx

import (
	"go.uber.org/fx"

	"tripweave/internal/config"
	"tripweave/internal/repositories"
	"tripweave/internal/services"
)

var Module = fx.Provide(provideProfileService)

func provideProfileService(accountRepo repositories.AccountRepository, searchLogRepo repositories.SearchLogRepository, cfg *config.Config) services.ProfileServiceInterface {
	return services.NewProfileService(accountRepo, searchLogRepo, cfg)
}
