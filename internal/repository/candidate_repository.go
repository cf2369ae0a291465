package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/model"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) FindByID(id uuid.UUID) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.Preload("Applications").First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFoundError("candidate", id.String())
	}
	return &c, err
}

func (r *CandidateRepository) Create(c *model.Candidate) error {
	return r.db.Create(c).Error
}
