package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/model"
)

type EvaluationRepo interface {
	ListByApplicationIDs(ids []uuid.UUID, interviewType model.InterviewType) ([]model.InterviewEvaluation, error)
	UpdateNotes(id uuid.UUID, notes string) error
}

const evalNotesKeyPrefix = "eval-notes:"

// SummaryUsecase batches interview evaluations for a set of applications in
// one fetch and groups them per application, filtered to the interview type
// the caller's tab is showing. Free-text note edits go through the same
// per-key debounce as score edits.
type SummaryUsecase struct {
	repo     EvaluationRepo
	autosave *AutoSaveCoordinator
}

func NewSummaryUsecase(repo EvaluationRepo, autosaveDelay time.Duration) *SummaryUsecase {
	uc := &SummaryUsecase{repo: repo}
	uc.autosave = NewAutoSaveCoordinator(autosaveDelay, func(key string, payload any) error {
		id, err := uuid.Parse(strings.TrimPrefix(key, evalNotesKeyPrefix))
		if err != nil {
			return err
		}
		notes, ok := payload.(string)
		if !ok {
			return fmt.Errorf("unexpected autosave payload %T", payload)
		}
		return uc.repo.UpdateNotes(id, notes)
	})
	return uc
}

// ScheduleNotes debounces a note edit for one evaluation; the latest text
// scheduled before the timer fires is the one that gets written.
func (uc *SummaryUsecase) ScheduleNotes(evaluationID uuid.UUID, notes string) {
	uc.autosave.Schedule(evalNotesKeyPrefix+evaluationID.String(), notes)
}

// NotesStatus reports the autosave badge for an evaluation's notes.
func (uc *SummaryUsecase) NotesStatus(evaluationID uuid.UUID) (SaveStatus, bool) {
	return uc.autosave.Status(evalNotesKeyPrefix + evaluationID.String())
}

// Summaries always returns an entry for every requested application; one
// with no interview activity yet maps to an empty list, not an error.
func (uc *SummaryUsecase) Summaries(applicationIDs []uuid.UUID, interviewType model.InterviewType) (map[uuid.UUID][]model.InterviewEvaluation, error) {
	if !interviewType.IsValid() {
		return nil, apperror.NewValidationError("interviewType", "unknown interview type "+string(interviewType))
	}
	evals, err := uc.repo.ListByApplicationIDs(applicationIDs, interviewType)
	if err != nil {
		return nil, err
	}
	grouped := make(map[uuid.UUID][]model.InterviewEvaluation, len(applicationIDs))
	for _, id := range applicationIDs {
		grouped[id] = []model.InterviewEvaluation{}
	}
	for _, e := range evals {
		grouped[e.ApplicationID] = append(grouped[e.ApplicationID], e)
	}
	return grouped, nil
}
