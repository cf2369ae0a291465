package usecase

import (
	"sort"

	"github.com/google/uuid"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/model"
	"github.com/campusrecruit/backend/internal/response"
	"github.com/campusrecruit/backend/internal/scoring"
)

type CandidateRepo interface {
	FindByID(id uuid.UUID) (*model.Candidate, error)
}

type AttendanceSummer interface {
	SumByApplicationIDs(ids []uuid.UUID) (map[uuid.UUID]float64, error)
}

// RankedApplication is one row of the staging view: the application, its
// sort key for the requested phase, and the current inline decision.
type RankedApplication struct {
	Application model.Application   `json:"application"`
	Score       float64             `json:"score"`
	Decision    model.DecisionValue `json:"decision"`
}

// StagingUsecase assembles the ranked staging view admins sort and filter
// before a round is advanced. Everything is fetched in cohort-sized
// batches; nothing here issues a per-application query.
type StagingUsecase struct {
	apps       ApplicationRepo
	candidates CandidateRepo
	scores     ScoreRepo
	evals      EvaluationRepo
	attendance AttendanceSummer
	decisions  DecisionReader
}

func NewStagingUsecase(apps ApplicationRepo, candidates CandidateRepo, scores ScoreRepo, evals EvaluationRepo, attendance AttendanceSummer, decisions DecisionReader) *StagingUsecase {
	return &StagingUsecase{
		apps:       apps,
		candidates: candidates,
		scores:     scores,
		evals:      evals,
		attendance: attendance,
		decisions:  decisions,
	}
}

// List returns the phase's cohort ranked descending by the phase's score.
// The sort is stable: tied applications keep their prior relative order.
func (uc *StagingUsecase) List(phase model.Phase, page, pageSize int) ([]RankedApplication, *response.Pagination, error) {
	t, ok := model.TransitionFor(phase)
	if !ok {
		return nil, nil, apperror.NewValidationError("phase", "unknown phase "+phase.String())
	}

	apps, err := uc.apps.ListInRound(t.Round)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]uuid.UUID, len(apps))
	for i, app := range apps {
		ids[i] = app.ID
	}

	decisions, err := uc.decisions.Existing(phase)
	if err != nil {
		return nil, nil, err
	}
	rankings, err := uc.rankings(phase, ids)
	if err != nil {
		return nil, nil, err
	}

	ranked := make([]RankedApplication, len(apps))
	for i, app := range apps {
		ranked[i] = RankedApplication{
			Application: app,
			Score:       rankings[app.ID],
			Decision:    decisions[app.ID],
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	items, pagination := paginate(ranked, page, pageSize)
	return items, pagination, nil
}

func (uc *StagingUsecase) GetCandidate(id uuid.UUID) (*model.Candidate, error) {
	return uc.candidates.FindByID(id)
}

// rankings computes the per-application sort key for the phase: the
// additive composite total for the resume round, interview-based scores
// for the rest.
func (uc *StagingUsecase) rankings(phase model.Phase, ids []uuid.UUID) (map[uuid.UUID]float64, error) {
	switch phase {
	case model.PhaseResume:
		return uc.compositeTotals(ids)
	case model.PhaseCoffee:
		return uc.evaluationScores(ids, model.InterviewCoffeeChat, scoring.DecisionRankingScore)
	case model.PhaseFirstRound:
		return uc.evaluationScores(ids, model.InterviewRoundOne, scoring.FirstRoundRankingScore)
	default:
		return uc.evaluationScores(ids, model.InterviewFinalRound, scoring.DecisionRankingScore)
	}
}

func (uc *StagingUsecase) compositeTotals(ids []uuid.UUID) (map[uuid.UUID]float64, error) {
	scores, err := uc.scores.ListByApplicationIDs(ids)
	if err != nil {
		return nil, err
	}
	points, err := uc.attendance.SumByApplicationIDs(ids)
	if err != nil {
		return nil, err
	}

	byType := make(map[uuid.UUID]map[model.DocumentType][]model.DocumentScore)
	for _, s := range scores {
		if byType[s.ApplicationID] == nil {
			byType[s.ApplicationID] = make(map[model.DocumentType][]model.DocumentScore)
		}
		byType[s.ApplicationID][s.DocumentType] = append(byType[s.ApplicationID][s.DocumentType], s)
	}

	totals := make(map[uuid.UUID]float64, len(ids))
	for _, id := range ids {
		docs := byType[id]
		totals[id] = scoring.CompositeTotal(
			scoring.Average(docs[model.DocumentResume]),
			scoring.Average(docs[model.DocumentVideo]),
			scoring.Average(docs[model.DocumentCoverLetter]),
			points[id],
		)
	}
	return totals, nil
}

func (uc *StagingUsecase) evaluationScores(ids []uuid.UUID, interviewType model.InterviewType, score func([]model.InterviewEvaluation) float64) (map[uuid.UUID]float64, error) {
	evals, err := uc.evals.ListByApplicationIDs(ids, interviewType)
	if err != nil {
		return nil, err
	}
	grouped := make(map[uuid.UUID][]model.InterviewEvaluation)
	for _, e := range evals {
		grouped[e.ApplicationID] = append(grouped[e.ApplicationID], e)
	}
	result := make(map[uuid.UUID]float64, len(ids))
	for _, id := range ids {
		result[id] = score(grouped[id])
	}
	return result, nil
}

func paginate(items []RankedApplication, page, pageSize int) ([]RankedApplication, *response.Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}
	total := len(items)
	from := (page - 1) * pageSize
	if from > total {
		from = total
	}
	to := from + pageSize
	if to > total {
		to = total
	}
	totalPages := int64((total + pageSize - 1) / pageSize)
	return items[from:to], &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: int64(total),
		HasMore:    int64(page) < totalPages,
		From:       from + 1,
		To:         to,
	}
}
