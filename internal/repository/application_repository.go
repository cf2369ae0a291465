package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusrecruit/backend/internal/model"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// ListInRound returns every live application currently sitting in the given
// round, with candidates preloaded for notification dispatch.
func (r *ApplicationRepository) ListInRound(round int) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Preload("Candidate").
		Where("current_round = ? AND status NOT IN ?", round,
			[]model.ApplicationStatus{model.StatusAccepted, model.StatusRejected, model.StatusWaitlisted}).
		Order("created_at").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) FindByIDs(ids []uuid.UUID) ([]model.Application, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var apps []model.Application
	err := r.db.Preload("Candidate").Where("id IN ?", ids).Find(&apps).Error
	return apps, err
}

// UpdateRoundState moves one application to a new (status, round) pair.
// Each application's state is independent, so no cross-row lock is taken.
func (r *ApplicationRepository) UpdateRoundState(id uuid.UUID, status model.ApplicationStatus, round int) error {
	return r.db.Model(&model.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "current_round": round}).Error
}
