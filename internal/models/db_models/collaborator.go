package db_models

import "github.com/google/uuid"

type Collaborator struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ItineraryID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_collab_itinerary_account"`
	AccountID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_collab_itinerary_account"`
	CreatedAt   int64     `gorm:"autoCreateTime"`
}
