package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripweave/internal/config"
	"tripweave/internal/repositories"
	"tripweave/internal/services"
	mem "tripweave/pkg/memcache"
)

var Module = fx.Provide(
	provideItineraryRepo, provideSearchLogRepo, provideChallengeCache, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideSearchLogRepo(db *gorm.DB) repositories.SearchLogRepository {
	return repositories.NewSearchLogRepository(db)
}

func provideChallengeCache() mem.ChallengeCache {
	return mem.NewChallenges()
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	accountRepo repositories.AccountRepository,
	searchLogRepo repositories.SearchLogRepository,
	challenges mem.ChallengeCache,
	cfg *config.Config,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, accountRepo, searchLogRepo, challenges, cfg, logger)
}
