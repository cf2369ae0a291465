package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusrecruit/backend/internal/model"
)

type DecisionRepository struct {
	db *gorm.DB
}

func NewDecisionRepository(db *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db}
}

// Find returns the persisted decision for (application, phase), or nil when
// none has been written yet. An absent row reads as pending upstream.
func (r *DecisionRepository) Find(applicationID uuid.UUID, phase model.Phase) (*model.Decision, error) {
	var d model.Decision
	err := r.db.First(&d, "application_id = ? AND phase = ?", applicationID, phase).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DecisionRepository) ListByPhase(phase model.Phase) ([]model.Decision, error) {
	var decisions []model.Decision
	err := r.db.Where("phase = ?", phase).Find(&decisions).Error
	return decisions, err
}

// Upsert overwrites the single decision row in place. Last write wins; no
// optimistic-lock token is exchanged.
func (r *DecisionRepository) Upsert(applicationID uuid.UUID, phase model.Phase, value model.DecisionValue) error {
	d := model.Decision{
		ApplicationID: applicationID,
		Phase:         phase,
		Value:         value,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}, {Name: "phase"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&d).Error
}
