package model

import (
	"time"

	"github.com/google/uuid"
)

// EventAttendance is a point contribution per application. Points are
// summed across events, never averaged.
type EventAttendance struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;index" json:"application_id"`
	EventName     string    `gorm:"type:varchar(255)" json:"event_name"`
	Points        float64   `gorm:"type:float" json:"points"`
	CreatedAt     time.Time `json:"created_at"`
}
