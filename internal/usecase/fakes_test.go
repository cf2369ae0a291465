package usecase

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/campusrecruit/backend/internal/model"
)

var assertErr = errors.New("backend unavailable")

// fakeApplicationRepo keeps applications in memory in insertion order and
// records every round-state write, so tests can assert on exactly what the
// advancement engine persisted.
type fakeApplicationRepo struct {
	mu      sync.Mutex
	order   []uuid.UUID
	apps    map[uuid.UUID]*model.Application
	updates int
	failIDs map[uuid.UUID]error
}

func newFakeApplicationRepo(apps ...*model.Application) *fakeApplicationRepo {
	r := &fakeApplicationRepo{
		apps:    make(map[uuid.UUID]*model.Application),
		failIDs: make(map[uuid.UUID]error),
	}
	for _, a := range apps {
		r.order = append(r.order, a.ID)
		r.apps[a.ID] = a
	}
	return r
}

func (r *fakeApplicationRepo) ListInRound(round int) ([]model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Application
	for _, id := range r.order {
		if r.apps[id].InRound(round) {
			out = append(out, *r.apps[id])
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByIDs(ids []uuid.UUID) ([]model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Application
	for _, id := range ids {
		if a, ok := r.apps[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateRoundState(id uuid.UUID, status model.ApplicationStatus, round int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failIDs[id]; ok {
		return err
	}
	r.updates++
	a := r.apps[id]
	a.Status = status
	a.CurrentRound = round
	return nil
}

func (r *fakeApplicationRepo) updateCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates
}

func (r *fakeApplicationRepo) get(id uuid.UUID) model.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.apps[id]
}

type fakeDecisionRepo struct {
	mu      sync.Mutex
	rows    map[string]model.DecisionValue
	finds   int
	upserts int
}

func newFakeDecisionRepo() *fakeDecisionRepo {
	return &fakeDecisionRepo{rows: make(map[string]model.DecisionValue)}
}

func decisionKey(id uuid.UUID, phase model.Phase) string {
	return id.String() + "|" + string(phase)
}

func (r *fakeDecisionRepo) Find(applicationID uuid.UUID, phase model.Phase) (*model.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	v, ok := r.rows[decisionKey(applicationID, phase)]
	if !ok {
		return nil, nil
	}
	return &model.Decision{ApplicationID: applicationID, Phase: phase, Value: v}, nil
}

func (r *fakeDecisionRepo) ListByPhase(phase model.Phase) ([]model.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Decision
	for key, v := range r.rows {
		id := uuid.MustParse(key[:36])
		if key[37:] == string(phase) {
			out = append(out, model.Decision{ApplicationID: id, Phase: phase, Value: v})
		}
	}
	return out, nil
}

func (r *fakeDecisionRepo) Upsert(applicationID uuid.UUID, phase model.Phase, value model.DecisionValue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	r.rows[decisionKey(applicationID, phase)] = value
	return nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (m *fakeMailer) SendOutcome(candidate *model.Candidate, accepted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return assertErr
	}
	m.sent = append(m.sent, candidate.Email)
	return nil
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type fakeEvaluationRepo struct {
	mu    sync.Mutex
	evals []model.InterviewEvaluation
	calls int
	notes map[uuid.UUID]string
}

func (r *fakeEvaluationRepo) ListByApplicationIDs(ids []uuid.UUID, interviewType model.InterviewType) ([]model.InterviewEvaluation, error) {
	r.calls++
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []model.InterviewEvaluation
	for _, e := range r.evals {
		if wanted[e.ApplicationID] && e.InterviewType == interviewType {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEvaluationRepo) UpdateNotes(id uuid.UUID, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.notes == nil {
		r.notes = make(map[uuid.UUID]string)
	}
	r.notes[id] = notes
	return nil
}

func (r *fakeEvaluationRepo) savedNotes(id uuid.UUID) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notes, ok := r.notes[id]
	return notes, ok
}

type fakeScoreRepo struct {
	mu     sync.Mutex
	scores map[uuid.UUID]*model.DocumentScore
	writes []map[string]any
}

func newFakeScoreRepo(scores ...*model.DocumentScore) *fakeScoreRepo {
	r := &fakeScoreRepo{scores: make(map[uuid.UUID]*model.DocumentScore)}
	for _, s := range scores {
		r.scores[s.ID] = s
	}
	return r
}

func (r *fakeScoreRepo) ListByType(documentType model.DocumentType, candidateID uuid.UUID, cycleID *uuid.UUID) ([]model.DocumentScore, error) {
	return nil, nil
}

func (r *fakeScoreRepo) ListByApplicationIDs(ids []uuid.UUID) ([]model.DocumentScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []model.DocumentScore
	for _, s := range r.scores {
		if wanted[s.ApplicationID] {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeScoreRepo) FindByID(id uuid.UUID) (*model.DocumentScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scores[id]
	if !ok {
		return nil, assertErr
	}
	copied := *s
	return &copied, nil
}

func (r *fakeScoreRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, fields)
	return nil
}

func (r *fakeScoreRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

func (r *fakeScoreRepo) lastWrite() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return nil
	}
	return r.writes[len(r.writes)-1]
}

type fakeAttendance struct {
	sums map[uuid.UUID]float64
}

func (a *fakeAttendance) SumByApplicationIDs(ids []uuid.UUID) (map[uuid.UUID]float64, error) {
	if a.sums == nil {
		return map[uuid.UUID]float64{}, nil
	}
	return a.sums, nil
}
