package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/model"
)

type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db}
}

// ListByType returns every score of one document type for one candidate,
// optionally narrowed to a cycle. Scores hang off applications, so the
// candidate filter goes through the applications table.
func (r *ScoreRepository) ListByType(documentType model.DocumentType, candidateID uuid.UUID, cycleID *uuid.UUID) ([]model.DocumentScore, error) {
	var scores []model.DocumentScore
	q := r.db.Joins("JOIN applications ON applications.id = document_scores.application_id").
		Where("document_scores.document_type = ? AND applications.candidate_id = ?", documentType, candidateID)
	if cycleID != nil {
		q = q.Where("applications.cycle_id = ?", *cycleID)
	}
	err := q.Find(&scores).Error
	return scores, err
}

// ListByApplicationIDs is the batched fetch behind the staging view: one
// query for the whole cohort, never per-application.
func (r *ScoreRepository) ListByApplicationIDs(ids []uuid.UUID) ([]model.DocumentScore, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var scores []model.DocumentScore
	err := r.db.Where("application_id IN ?", ids).Find(&scores).Error
	return scores, err
}

func (r *ScoreRepository) FindByID(id uuid.UUID) (*model.DocumentScore, error) {
	var s model.DocumentScore
	err := r.db.First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFoundError("score", id.String())
	}
	return &s, err
}

// UpdateFields patches only the supplied columns; the evaluator's original
// score survives an admin override because the override lives in its own
// column.
func (r *ScoreRepository) UpdateFields(id uuid.UUID, fields map[string]any) error {
	res := r.db.Model(&model.DocumentScore{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("score", id.String())
	}
	return nil
}
