package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/model"
)

func TestSummaries(t *testing.T) {
	a, b, quiet := uuid.New(), uuid.New(), uuid.New()
	repo := &fakeEvaluationRepo{evals: []model.InterviewEvaluation{
		{ID: uuid.New(), ApplicationID: a, InterviewType: model.InterviewCoffeeChat, Decision: model.EvalYes},
		{ID: uuid.New(), ApplicationID: a, InterviewType: model.InterviewCoffeeChat, Decision: model.EvalMaybeNo},
		{ID: uuid.New(), ApplicationID: a, InterviewType: model.InterviewRoundOne, Decision: model.EvalYes},
		{ID: uuid.New(), ApplicationID: b, InterviewType: model.InterviewCoffeeChat, Decision: model.EvalNo},
	}}
	uc := NewSummaryUsecase(repo, time.Minute)

	grouped, err := uc.Summaries([]uuid.UUID{a, b, quiet}, model.InterviewCoffeeChat)
	require.NoError(t, err)

	assert.Len(t, grouped[a], 2, "only the requested interview type is retained")
	assert.Len(t, grouped[b], 1)
	assert.NotNil(t, grouped[quiet])
	assert.Empty(t, grouped[quiet], "no interview activity maps to an empty list, not an error")
	assert.Equal(t, 1, repo.calls, "one batched fetch for the whole set")
}

func TestSummaries_UnknownInterviewType(t *testing.T) {
	uc := NewSummaryUsecase(&fakeEvaluationRepo{}, time.Minute)
	_, err := uc.Summaries([]uuid.UUID{uuid.New()}, "HALLWAY_CHAT")
	assert.True(t, apperror.IsValidation(err))
}

func TestScheduleNotes_DebouncesToLatestText(t *testing.T) {
	repo := &fakeEvaluationRepo{}
	uc := NewSummaryUsecase(repo, 10*time.Millisecond)
	evalID := uuid.New()

	uc.ScheduleNotes(evalID, "strong communicator")
	uc.ScheduleNotes(evalID, "strong communicator, weak on sizing")

	waitForStatus(t, uc.autosave, evalNotesKeyPrefix+evalID.String(), SaveStatusSaved)
	notes, ok := repo.savedNotes(evalID)
	require.True(t, ok)
	assert.Equal(t, "strong communicator, weak on sizing", notes, "only the latest scheduled text is written")

	status, ok := uc.NotesStatus(evalID)
	require.True(t, ok)
	assert.Equal(t, SaveStatusSaved, status.Type)
}
