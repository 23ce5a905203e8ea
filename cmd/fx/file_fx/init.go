package file_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripweave/internal/repositories"
	"tripweave/internal/services"
)

var Module = fx.Provide(
	provideAttachmentRepo, provideFileService)

func provideAttachmentRepo(db *gorm.DB) repositories.AttachmentRepository {
	return repositories.NewAttachmentRepository(db)
}

func provideFileService(attachmentRepo repositories.AttachmentRepository, itineraryRepo repositories.ItineraryRepository, logger *zap.Logger) services.FileServiceInterface {
	return services.NewFileService(attachmentRepo, itineraryRepo, logger)
}
