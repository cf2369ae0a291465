package model

import (
	"time"

	"github.com/google/uuid"
)

// DecisionValue is the single current decision for an application within a
// phase. The empty string means pending: a row that was never written reads
// the same as one explicitly reset.
type DecisionValue string

const (
	DecisionYes      DecisionValue = "yes"
	DecisionMaybeYes DecisionValue = "maybe_yes"
	DecisionMaybeNo  DecisionValue = "maybe_no"
	DecisionNo       DecisionValue = "no"
	DecisionPending  DecisionValue = ""
)

func (d DecisionValue) IsValid() bool {
	switch d {
	case DecisionYes, DecisionMaybeYes, DecisionMaybeNo, DecisionNo, DecisionPending:
		return true
	default:
		return false
	}
}

// IsResolved reports whether the decision allows the application to be
// carried through a bulk round advancement.
func (d DecisionValue) IsResolved() bool {
	return d == DecisionYes || d == DecisionNo
}

// Decision is overwritten in place, one row per (application, phase).
// No history is retained.
type Decision struct {
	ID            uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID uuid.UUID     `gorm:"type:uuid;uniqueIndex:idx_decisions_app_phase" json:"application_id"`
	Phase         Phase         `gorm:"type:varchar(20);uniqueIndex:idx_decisions_app_phase" json:"phase"`
	Value         DecisionValue `gorm:"type:varchar(20)" json:"value"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
