package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewType string

const (
	InterviewCoffeeChat InterviewType = "COFFEE_CHAT"
	InterviewRoundOne   InterviewType = "ROUND_ONE"
	InterviewFinalRound InterviewType = "FINAL_ROUND"
)

func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewCoffeeChat, InterviewRoundOne, InterviewFinalRound:
		return true
	default:
		return false
	}
}

// EvaluationDecision is an individual evaluator's verdict on one interview.
// UNSURE only appears on legacy rows; new evaluations offer the other four.
type EvaluationDecision string

const (
	EvalYes      EvaluationDecision = "YES"
	EvalMaybeYes EvaluationDecision = "MAYBE_YES"
	EvalUnsure   EvaluationDecision = "UNSURE"
	EvalMaybeNo  EvaluationDecision = "MAYBE_NO"
	EvalNo       EvaluationDecision = "NO"
)

// InterviewEvaluation is one evaluator's structured assessment of one
// application within one interview. Behavioral and market-sizing totals are
// present for first-round interviews; Breakdown holds the per-criterion
// sub-scores as a jsonb blob whose shape depends on the interview type.
type InterviewEvaluation struct {
	ID                uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID     uuid.UUID          `gorm:"type:uuid;index" json:"application_id"`
	InterviewType     InterviewType      `gorm:"type:varchar(20);index" json:"interview_type"`
	EvaluatorID       uuid.UUID          `gorm:"type:uuid" json:"evaluator_id"`
	Decision          EvaluationDecision `gorm:"type:varchar(20)" json:"decision"`
	BehavioralTotal   *float64           `gorm:"type:float" json:"behavioral_total"`
	MarketSizingTotal *float64           `gorm:"type:float" json:"market_sizing_total"`
	Breakdown         string             `gorm:"type:jsonb;default:'{}'" json:"breakdown"`
	Notes             string             `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
