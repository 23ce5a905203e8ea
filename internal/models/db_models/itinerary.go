package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Itinerary struct {
	BaseModel
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	SessionID    string    `gorm:"uniqueIndex"`
	ShortCode    string    `gorm:"uniqueIndex"`
	SessionTitle string
	// Canonical destination string; raw entries kept as JSON for round-trips
	// back into the edit wizard.
	Destination    *string
	DestinationRaw datatypes.JSON `gorm:"type:jsonb"`
	DateRaw        datatypes.JSON `gorm:"type:jsonb"`
	StartDate      *int64
	EndDate        *int64
	UnknownDate    bool
	DurationInDays int `gorm:"default:1"`
	NumberOfPax    int `gorm:"default:1"`

	AgendaItems   []AgendaItem   `gorm:"constraint:OnDelete:CASCADE"`
	Collaborators []Collaborator `gorm:"constraint:OnDelete:CASCADE"`
}
