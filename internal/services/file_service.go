package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripweave/internal/models/db_models"
	"tripweave/internal/models/request_models"
	"tripweave/internal/repositories"
	"tripweave/pkg/utils"
)

type FileServiceInterface interface {
	CreateFile(ctx context.Context, accountID string, req *request_models.FileCreateRequest) error
	DeleteFiles(ctx context.Context, accountID string, fileUUIDs []string) error
}

type FileService struct {
	attachmentRepo repositories.AttachmentRepository
	itineraryRepo  repositories.ItineraryRepository
	logger         *zap.Logger
}

func NewFileService(attachmentRepo repositories.AttachmentRepository, itineraryRepo repositories.ItineraryRepository, logger *zap.Logger) FileServiceInterface {
	return &FileService{
		attachmentRepo: attachmentRepo,
		itineraryRepo:  itineraryRepo,
		logger:         logger,
	}
}

func (f *FileService) CreateFile(ctx context.Context, accountID string, req *request_models.FileCreateRequest) error {
	itinerary, err := f.itineraryRepo.FindByAgendaItemID(ctx, req.AgendaID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil {
		return utils.ErrAgendaItemNotFound
	}

	allowed, err := f.mayEdit(ctx, itinerary, accountID)
	if err != nil {
		return err
	}
	if !allowed {
		return utils.ErrPermissionDenied
	}

	attachment := &db_models.Attachment{
		AgendaItemID: req.AgendaID,
		UUID:         req.UUID,
		Name:         req.Name,
		MimeType:     req.MimeType,
		SizeInBytes:  req.SizeInBytes,
		Blob:         req.Blob,
	}

	if err := f.attachmentRepo.InsertTx(ctx, attachment); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (f *FileService) DeleteFiles(ctx context.Context, accountID string, fileUUIDs []string) error {
	if len(fileUUIDs) == 0 {
		return utils.ErrInvalidInput
	}

	// Every uuid is resolved back to its itinerary before anything is
	// removed; the caller must hold edit rights on all of them.
	attachments, err := f.attachmentRepo.FindByUUIDs(ctx, fileUUIDs)
	if err != nil {
		return utils.ErrDatabaseError
	}

	checked := make(map[int64]bool)
	for _, attachment := range attachments {
		if checked[attachment.AgendaItemID] {
			continue
		}

		itinerary, err := f.itineraryRepo.FindByAgendaItemID(ctx, attachment.AgendaItemID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if itinerary == nil {
			return utils.ErrAgendaItemNotFound
		}

		allowed, err := f.mayEdit(ctx, itinerary, accountID)
		if err != nil {
			return err
		}
		if !allowed {
			return utils.ErrPermissionDenied
		}
		checked[attachment.AgendaItemID] = true
	}

	if err := f.attachmentRepo.DeleteByUUIDs(ctx, fileUUIDs); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (f *FileService) mayEdit(ctx context.Context, itinerary *db_models.Itinerary, accountID string) (bool, error) {
	if itinerary.OwnerID.String() == accountID {
		return true, nil
	}

	account, err := uuid.Parse(accountID)
	if err != nil {
		return false, nil
	}

	isCollaborator, err := f.itineraryRepo.IsCollaborator(ctx, itinerary.ID, account)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return isCollaborator, nil
}
