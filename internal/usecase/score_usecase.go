package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/model"
)

type ScoreRepo interface {
	ListByType(documentType model.DocumentType, candidateID uuid.UUID, cycleID *uuid.UUID) ([]model.DocumentScore, error)
	ListByApplicationIDs(ids []uuid.UUID) ([]model.DocumentScore, error)
	FindByID(id uuid.UUID) (*model.DocumentScore, error)
	UpdateFields(id uuid.UUID, fields map[string]any) error
}

// ScorePatch carries the fields an evaluator or admin may change on a
// document score. Nil fields are left untouched.
type ScorePatch struct {
	OverallScore *float64 `json:"overallScore"`
	ScoreOne     *float64 `json:"scoreOne"`
	ScoreTwo     *float64 `json:"scoreTwo"`
	ScoreThree   *float64 `json:"scoreThree"`
	AdminScore   *float64 `json:"adminScore"`
	AdminNotes   *string  `json:"adminNotes"`
	Notes        *string  `json:"notes"`
}

// overallMax is each document rubric's ceiling for the overall score and
// the admin override. Sub-scores share a 0-5 rubric across types.
var overallMax = map[model.DocumentType]float64{
	model.DocumentResume:      13,
	model.DocumentVideo:       2,
	model.DocumentCoverLetter: 3,
}

const subScoreMax = 5

const scoreKeyPrefix = "score:"

// ScoreUsecase reads and patches document scores. Direct patches persist
// immediately; the autosave path debounces through the coordinator so a
// burst of edits to one score produces a single write.
type ScoreUsecase struct {
	repo     ScoreRepo
	autosave *AutoSaveCoordinator
}

func NewScoreUsecase(repo ScoreRepo, autosaveDelay time.Duration) *ScoreUsecase {
	uc := &ScoreUsecase{repo: repo}
	uc.autosave = NewAutoSaveCoordinator(autosaveDelay, func(key string, payload any) error {
		id, err := uuid.Parse(strings.TrimPrefix(key, scoreKeyPrefix))
		if err != nil {
			return err
		}
		patch, ok := payload.(ScorePatch)
		if !ok {
			return fmt.Errorf("unexpected autosave payload %T", payload)
		}
		return uc.Patch(id, patch)
	})
	return uc
}

func (uc *ScoreUsecase) List(documentType model.DocumentType, candidateID uuid.UUID, cycleID *uuid.UUID) ([]model.DocumentScore, error) {
	if !documentType.IsValid() {
		return nil, apperror.NewValidationError("documentType", "unknown document type "+string(documentType))
	}
	return uc.repo.ListByType(documentType, candidateID, cycleID)
}

// Patch validates the supplied fields against the document's rubric and
// writes only those columns. Out-of-range values are rejected before any
// database call.
func (uc *ScoreUsecase) Patch(id uuid.UUID, patch ScorePatch) error {
	score, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := validatePatch(score.DocumentType, patch); err != nil {
		return err
	}

	fields := map[string]any{}
	if patch.OverallScore != nil {
		fields["overall_score"] = *patch.OverallScore
	}
	if patch.ScoreOne != nil {
		fields["score_one"] = *patch.ScoreOne
	}
	if patch.ScoreTwo != nil {
		fields["score_two"] = *patch.ScoreTwo
	}
	if patch.ScoreThree != nil {
		fields["score_three"] = *patch.ScoreThree
	}
	if patch.AdminScore != nil {
		fields["admin_score"] = *patch.AdminScore
	}
	if patch.AdminNotes != nil {
		fields["admin_notes"] = *patch.AdminNotes
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}
	if len(fields) == 0 {
		return nil
	}
	return uc.repo.UpdateFields(id, fields)
}

// SchedulePatch queues the patch behind the per-score debounce timer. The
// latest scheduled patch for a score is the one that gets written.
func (uc *ScoreUsecase) SchedulePatch(id uuid.UUID, patch ScorePatch) {
	uc.autosave.Schedule(scoreKeyPrefix+id.String(), patch)
}

// SaveStatus reports the autosave badge for a score.
func (uc *ScoreUsecase) SaveStatus(id uuid.UUID) (SaveStatus, bool) {
	return uc.autosave.Status(scoreKeyPrefix + id.String())
}

func validatePatch(documentType model.DocumentType, patch ScorePatch) error {
	max := overallMax[documentType]
	for field, v := range map[string]*float64{
		"overallScore": patch.OverallScore,
		"adminScore":   patch.AdminScore,
	} {
		if v != nil && (*v < 0 || *v > max) {
			return apperror.NewValidationError(field, fmt.Sprintf("must be between 0 and %g", max))
		}
	}
	for field, v := range map[string]*float64{
		"scoreOne":   patch.ScoreOne,
		"scoreTwo":   patch.ScoreTwo,
		"scoreThree": patch.ScoreThree,
	} {
		if v != nil && (*v < 0 || *v > subScoreMax) {
			return apperror.NewValidationError(field, fmt.Sprintf("must be between 0 and %d", subScoreMax))
		}
	}
	return nil
}
