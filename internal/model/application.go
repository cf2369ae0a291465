package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusSubmitted   ApplicationStatus = "SUBMITTED"
	StatusUnderReview ApplicationStatus = "UNDER_REVIEW"
	StatusAccepted    ApplicationStatus = "ACCEPTED"
	StatusRejected    ApplicationStatus = "REJECTED"
	StatusWaitlisted  ApplicationStatus = "WAITLISTED"
)

// IsTerminal reports whether the application has left the pipeline.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusWaitlisted:
		return true
	default:
		return false
	}
}

type Application struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CandidateID  uuid.UUID         `gorm:"type:uuid;index" json:"candidate_id"`
	CycleID      uuid.UUID         `gorm:"type:uuid;index" json:"cycle_id"`
	CurrentRound int               `gorm:"type:int;default:1" json:"current_round"`
	Status       ApplicationStatus `gorm:"type:varchar(50);default:'SUBMITTED'" json:"status"`
	EventPoints  float64           `gorm:"type:float;default:0" json:"event_points"`
	// Referral is kept for historical rows; it no longer contributes to ranking.
	Referral  bool      `gorm:"default:false" json:"referral"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Candidate *Candidate `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
}

// InRound reports whether the application is still live and currently
// sitting in the given round.
func (a *Application) InRound(round int) bool {
	return !a.Status.IsTerminal() && a.CurrentRound == round
}
