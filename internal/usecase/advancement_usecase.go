package usecase

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/model"
)

type ApplicationRepo interface {
	ListInRound(round int) ([]model.Application, error)
	FindByIDs(ids []uuid.UUID) ([]model.Application, error)
	UpdateRoundState(id uuid.UUID, status model.ApplicationStatus, round int) error
}

type DecisionReader interface {
	Existing(phase model.Phase) (map[uuid.UUID]model.DecisionValue, error)
	Invalidate(applicationID uuid.UUID, phase model.Phase)
}

type OutcomeMailer interface {
	SendOutcome(candidate *model.Candidate, accepted bool) error
}

// maxAdvanceWorkers bounds the per-application persistence fan-out during a
// bulk advancement.
const maxAdvanceWorkers = 8

// AdvanceSummary reports what a bulk advancement actually did. A
// TotalApplications lower than the requested cohort size means some
// per-application writes failed; the caller must not assume all-or-nothing.
type AdvanceSummary struct {
	TotalApplications int `json:"totalApplications"`
	Accepted          int `json:"accepted"`
	Rejected          int `json:"rejected"`
	EmailsSent        int `json:"emailsSent"`
}

// CohortCheck is the result of validating a round's cohort before a bulk
// advancement. Invalid carries the exact offending applications so the UI
// can offer inline yes/no fixes.
type CohortCheck struct {
	OK      bool
	Invalid []model.Application
}

// AdvancementUsecase executes the irreversible bulk round transition. The
// contract is validate-then-commit: no per-application write is issued
// until every live application in the round is resolved to yes or no.
type AdvancementUsecase struct {
	apps      ApplicationRepo
	decisions DecisionReader
	mailer    OutcomeMailer
}

func NewAdvancementUsecase(apps ApplicationRepo, decisions DecisionReader, mailer OutcomeMailer) *AdvancementUsecase {
	return &AdvancementUsecase{apps: apps, decisions: decisions, mailer: mailer}
}

// loadCohort takes one snapshot of the live applications in the phase's
// round alongside a fresh read of the phase's decisions, so validation and
// commit run against the same view.
func (uc *AdvancementUsecase) loadCohort(phase model.Phase) ([]model.Application, map[uuid.UUID]model.DecisionValue, error) {
	t, ok := model.TransitionFor(phase)
	if !ok {
		return nil, nil, apperror.NewValidationError("phase", "unknown phase "+phase.String())
	}
	inRound, err := uc.apps.ListInRound(t.Round)
	if err != nil {
		return nil, nil, err
	}
	decisions, err := uc.decisions.Existing(phase)
	if err != nil {
		return nil, nil, err
	}
	return inRound, decisions, nil
}

func checkCohort(inRound []model.Application, decisions map[uuid.UUID]model.DecisionValue) *CohortCheck {
	var invalid []model.Application
	for _, app := range inRound {
		if !decisions[app.ID].IsResolved() {
			invalid = append(invalid, app)
		}
	}
	return &CohortCheck{OK: len(invalid) == 0, Invalid: invalid}
}

// ValidateCohort checks that every live application in the phase's round is
// resolved to yes or no. Anything else, pending and the two maybe values
// included, lands in Invalid and blocks the whole advancement.
func (uc *AdvancementUsecase) ValidateCohort(phase model.Phase) (*CohortCheck, error) {
	inRound, decisions, err := uc.loadCohort(phase)
	if err != nil {
		return nil, err
	}
	return checkCohort(inRound, decisions), nil
}

// AdvanceAll moves every application in the phase's round to its next
// state: yes to the next round (ACCEPTED on the final round), no to
// REJECTED. Applications already moved by an earlier invocation of the same
// phase are skipped but still counted, so a retry after a partial backend
// failure is safe and a clean re-run reports the full cohort. Emails go out
// only on the final round, and only when requested.
func (uc *AdvancementUsecase) AdvanceAll(phase model.Phase, sendEmails bool) (*AdvanceSummary, error) {
	t, _ := model.TransitionFor(phase)
	inRound, decisions, err := uc.loadCohort(phase)
	if err != nil {
		return nil, err
	}
	if check := checkCohort(inRound, decisions); !check.OK {
		return nil, &apperror.PreconditionFailure{Phase: phase, Invalid: check.Invalid}
	}

	summary := &AdvanceSummary{}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(maxAdvanceWorkers)
	for _, app := range inRound {
		g.Go(func() error {
			accepted := decisions[app.ID] == model.DecisionYes
			status := model.StatusRejected
			round := app.CurrentRound
			if accepted {
				status = t.NextStatus
				round = t.NextRound
			}
			if err := uc.apps.UpdateRoundState(app.ID, status, round); err != nil {
				// Surfaced as a count mismatch, not an abort: the other
				// applications still get their independent writes.
				log.Printf("advance %s: failed to move application %s: %v", phase, app.ID, err)
				return nil
			}
			uc.decisions.Invalidate(app.ID, phase)

			sent := 0
			if t.EmailsAllow && sendEmails {
				if err := uc.mailer.SendOutcome(app.Candidate, accepted); err != nil {
					log.Printf("advance %s: notification for %s failed: %v", phase, app.ID, err)
				} else {
					sent = 1
				}
			}

			mu.Lock()
			summary.TotalApplications++
			if accepted {
				summary.Accepted++
			} else {
				summary.Rejected++
			}
			summary.EmailsSent += sent
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	// Applications a previous invocation of this phase already moved are
	// no longer in the round; count them from their historical decisions
	// so a retried call reports the whole cohort.
	if err := uc.countAlreadyAdvanced(t, decisions, inRound, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

func (uc *AdvancementUsecase) countAlreadyAdvanced(t model.RoundTransition, decisions map[uuid.UUID]model.DecisionValue, inRound []model.Application, summary *AdvanceSummary) error {
	processed := make(map[uuid.UUID]bool, len(inRound))
	for _, app := range inRound {
		processed[app.ID] = true
	}
	var leftoverIDs []uuid.UUID
	for id, value := range decisions {
		if !processed[id] && value.IsResolved() {
			leftoverIDs = append(leftoverIDs, id)
		}
	}
	leftovers, err := uc.apps.FindByIDs(leftoverIDs)
	if err != nil {
		return err
	}
	for _, app := range leftovers {
		// Only count applications that actually sit past this phase's
		// transition; ones that progressed to later rounds and resolved
		// there are a different phase's story.
		if !uc.advancedByPhase(app, t, decisions[app.ID]) {
			continue
		}
		summary.TotalApplications++
		if decisions[app.ID] == model.DecisionYes {
			summary.Accepted++
		} else {
			summary.Rejected++
		}
	}
	return nil
}

// advancedByPhase reports whether the application's current state is the
// one this phase's transition would have produced for its decision.
func (uc *AdvancementUsecase) advancedByPhase(app model.Application, t model.RoundTransition, value model.DecisionValue) bool {
	if value == model.DecisionNo {
		return app.Status == model.StatusRejected && app.CurrentRound == t.Round
	}
	return app.Status == t.NextStatus && app.CurrentRound == t.NextRound
}
