package db_models

import "github.com/google/uuid"

// SearchLog records an authenticated itinerary lookup, powering the
// recent-searches panel on the dashboard.
type SearchLog struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Username    string
	CreatedAt   int64 `gorm:"autoCreateTime"`
}
