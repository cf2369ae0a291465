package usecase

import (
	"github.com/google/uuid"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/cache"
	"github.com/campusrecruit/backend/internal/model"
)

type DecisionRepo interface {
	Find(applicationID uuid.UUID, phase model.Phase) (*model.Decision, error)
	ListByPhase(phase model.Phase) ([]model.Decision, error)
	Upsert(applicationID uuid.UUID, phase model.Phase, value model.DecisionValue) error
}

// DecisionUsecase is the single source of truth for the current decision of
// an application within a phase. Reads are cache-first with a short TTL so
// the advancement engine never acts on a value another admin changed more
// than a couple of minutes ago; writes persist immediately, then refresh
// the cache. Concurrent edits are last-write-wins.
type DecisionUsecase struct {
	repo  DecisionRepo
	cache *cache.DecisionCache
}

func NewDecisionUsecase(repo DecisionRepo, c *cache.DecisionCache) *DecisionUsecase {
	return &DecisionUsecase{repo: repo, cache: c}
}

// Get returns the current decision, defaulting to pending when nothing has
// been persisted yet.
func (uc *DecisionUsecase) Get(applicationID uuid.UUID, phase model.Phase) (model.DecisionValue, error) {
	if v, ok := uc.cache.Get(applicationID.String(), phase); ok {
		return v, nil
	}
	d, err := uc.repo.Find(applicationID, phase)
	if err != nil {
		return model.DecisionPending, err
	}
	value := model.DecisionPending
	if d != nil {
		value = d.Value
	}
	uc.cache.Set(applicationID.String(), phase, value)
	return value, nil
}

// Existing returns every persisted decision for a phase and primes the
// cache with the fresh values.
func (uc *DecisionUsecase) Existing(phase model.Phase) (map[uuid.UUID]model.DecisionValue, error) {
	if !phase.IsValid() {
		return nil, apperror.NewValidationError("phase", "unknown phase "+phase.String())
	}
	rows, err := uc.repo.ListByPhase(phase)
	if err != nil {
		return nil, err
	}
	decisions := make(map[uuid.UUID]model.DecisionValue, len(rows))
	for _, d := range rows {
		decisions[d.ApplicationID] = d.Value
		uc.cache.Set(d.ApplicationID.String(), phase, d.Value)
	}
	return decisions, nil
}

// Set validates and persists a decision. Decisions are low-frequency,
// high-stakes edits, so there is no batching or debounce: the write goes
// straight through and only then touches the cache.
func (uc *DecisionUsecase) Set(applicationID uuid.UUID, phase model.Phase, value model.DecisionValue) error {
	if !phase.IsValid() {
		return apperror.NewValidationError("phase", "unknown phase "+phase.String())
	}
	if !value.IsValid() {
		return apperror.NewValidationError("decision", "unknown decision value "+string(value))
	}
	if err := uc.repo.Upsert(applicationID, phase, value); err != nil {
		return err
	}
	uc.cache.Set(applicationID.String(), phase, value)
	return nil
}

// Invalidate drops the cached entry after an advancement moves the
// application past the phase.
func (uc *DecisionUsecase) Invalidate(applicationID uuid.UUID, phase model.Phase) {
	uc.cache.Invalidate(applicationID.String(), phase)
}
