package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripweave/internal/models/db_models"
)

type ItineraryRepository interface {
	InsertTx(ctx context.Context, itinerary *db_models.Itinerary) error
	FindBySessionID(ctx context.Context, sessionID string) (*db_models.Itinerary, error)
	FindByShortCode(ctx context.Context, shortCode string) (*db_models.Itinerary, error)
	FindByAgendaItemID(ctx context.Context, agendaItemID int64) (*db_models.Itinerary, error)

	// ApplyUpdate runs the whole edit cycle in one transaction: agenda
	// deletions first, then field updates, then inserts of new items.
	ApplyUpdate(ctx context.Context, itinerary *db_models.Itinerary, deleteAgendaIDs []int64, updated []*db_models.AgendaItem, inserted []*db_models.AgendaItem) error

	IsCollaborator(ctx context.Context, itineraryID, accountID uuid.UUID) (bool, error)
	AddCollaborator(ctx context.Context, collaborator *db_models.Collaborator) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{
		db: db,
	}
}

func (r *itineraryRepository) InsertTx(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) FindBySessionID(ctx context.Context, sessionID string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("AgendaItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("agenda_items.day, agenda_items.start_time")
		}).
		Preload("AgendaItems.Attachments").
		First(&itinerary, "session_id = ?", sessionID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) FindByShortCode(ctx context.Context, shortCode string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("AgendaItems").
		Preload("AgendaItems.Attachments").
		First(&itinerary, "short_code = ?", shortCode).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) FindByAgendaItemID(ctx context.Context, agendaItemID int64) (*db_models.Itinerary, error) {
	var item db_models.AgendaItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", agendaItemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var itinerary db_models.Itinerary
	err = r.db.WithContext(ctx).First(&itinerary, "id = ?", item.ItineraryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) ApplyUpdate(ctx context.Context, itinerary *db_models.Itinerary, deleteAgendaIDs []int64, updated []*db_models.AgendaItem, inserted []*db_models.AgendaItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(deleteAgendaIDs) > 0 {
			if err := tx.
				Where("itinerary_id = ? AND id IN ?", itinerary.ID, deleteAgendaIDs).
				Delete(&db_models.AgendaItem{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Omit("AgendaItems", "Collaborators").Save(itinerary).Error; err != nil {
			return err
		}

		for _, item := range updated {
			item.ItineraryID = itinerary.ID
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		for _, item := range inserted {
			item.ItineraryID = itinerary.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *itineraryRepository) IsCollaborator(ctx context.Context, itineraryID, accountID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Collaborator{}).
		Where("itinerary_id = ? AND account_id = ?", itineraryID, accountID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *itineraryRepository) AddCollaborator(ctx context.Context, collaborator *db_models.Collaborator) error {
	return r.db.WithContext(ctx).Create(collaborator).Error
}
