package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocumentResume      DocumentType = "resume"
	DocumentCoverLetter DocumentType = "cover_letter"
	DocumentVideo       DocumentType = "video"
)

func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentResume, DocumentCoverLetter, DocumentVideo:
		return true
	default:
		return false
	}
}

// DocumentScore is one evaluator's grade of one application document.
// An admin may layer an override on top without touching the original:
// AdminScore, when set, is the effective score.
type DocumentScore struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID uuid.UUID    `gorm:"type:uuid;index" json:"application_id"`
	DocumentType  DocumentType `gorm:"type:varchar(20);index" json:"document_type"`
	EvaluatorID   uuid.UUID    `gorm:"type:uuid" json:"evaluator_id"`
	OverallScore  *float64     `gorm:"type:float" json:"overall_score"`
	ScoreOne      *float64     `gorm:"type:float" json:"score_one"`
	ScoreTwo      *float64     `gorm:"type:float" json:"score_two"`
	ScoreThree    *float64     `gorm:"type:float" json:"score_three"`
	AdminScore    *float64     `gorm:"type:float" json:"admin_score"`
	Notes         string       `gorm:"type:text" json:"notes"`
	AdminNotes    string       `gorm:"type:text" json:"admin_notes"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
