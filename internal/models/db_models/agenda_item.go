package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AgendaItem keys on an int64 so the id can travel the wire as the numeric
// agendaId clients correlate file uploads against.
type AgendaItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Desc        *string
	Location    *string
	TimingRaw   datatypes.JSON `gorm:"type:jsonb"`
	StartTime   *int64
	EndTime     *int64
	DurationInHours *float64
	UnknownTime bool
	Budget      *float64
	Day         int
	CreatedAt   int64
	UpdatedAt   int64

	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE"`
}

func (a *AgendaItem) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

func (a *AgendaItem) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now().Unix()
	return nil
}
