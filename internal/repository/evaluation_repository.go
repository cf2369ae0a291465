package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusrecruit/backend/internal/model"
)

type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db}
}

// ListByApplicationIDs fetches every evaluation of one interview type for a
// set of applications in a single query.
func (r *EvaluationRepository) ListByApplicationIDs(ids []uuid.UUID, interviewType model.InterviewType) ([]model.InterviewEvaluation, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var evals []model.InterviewEvaluation
	err := r.db.Where("application_id IN ? AND interview_type = ?", ids, interviewType).
		Order("created_at").
		Find(&evals).Error
	return evals, err
}

func (r *EvaluationRepository) UpdateNotes(id uuid.UUID, notes string) error {
	return r.db.Model(&model.InterviewEvaluation{}).Where("id = ?", id).Update("notes", notes).Error
}
