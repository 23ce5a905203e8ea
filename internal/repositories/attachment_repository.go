package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripweave/internal/models/db_models"
)

type AttachmentRepository interface {
	InsertTx(ctx context.Context, attachment *db_models.Attachment) error
	DeleteByUUIDs(ctx context.Context, uuids []string) error
	FindByUUIDs(ctx context.Context, uuids []string) ([]db_models.Attachment, error)
	FindByAgendaItemID(ctx context.Context, agendaItemID int64) ([]db_models.Attachment, error)
}

type attachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{
		db: db,
	}
}

func (r *attachmentRepository) InsertTx(ctx context.Context, attachment *db_models.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *attachmentRepository) DeleteByUUIDs(ctx context.Context, uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("uuid IN ?", uuids).
		Delete(&db_models.Attachment{}).Error
}

func (r *attachmentRepository) FindByUUIDs(ctx context.Context, uuids []string) ([]db_models.Attachment, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var attachments []db_models.Attachment
	err := r.db.WithContext(ctx).
		Where("uuid IN ?", uuids).
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

func (r *attachmentRepository) FindByAgendaItemID(ctx context.Context, agendaItemID int64) ([]db_models.Attachment, error) {
	var attachments []db_models.Attachment
	err := r.db.WithContext(ctx).
		Where("agenda_item_id = ?", agendaItemID).
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}
