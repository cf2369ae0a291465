package model

// Phase is the decision-store key for one of the four sequential rounds.
type Phase string

const (
	PhaseResume     Phase = "resume"
	PhaseCoffee     Phase = "coffee"
	PhaseFirstRound Phase = "first_round"
	PhaseFinalRound Phase = "final_round"
)

func (p Phase) IsValid() bool {
	switch p {
	case PhaseResume, PhaseCoffee, PhaseFirstRound, PhaseFinalRound:
		return true
	default:
		return false
	}
}

func (p Phase) String() string {
	return string(p)
}

// RoundTransition describes what happens to an application when a round is
// advanced: which round the phase operates on, where a "yes" lands, and
// whether the phase is allowed to dispatch notification emails.
type RoundTransition struct {
	Round       int
	NextRound   int
	NextStatus  ApplicationStatus
	Final       bool
	EmailsAllow bool
}

// transitions is the single source of truth for the round pipeline:
// SUBMITTED(1) -> UNDER_REVIEW(2) -> UNDER_REVIEW(3) -> UNDER_REVIEW(4) -> ACCEPTED.
// A "no" at any phase moves the application to REJECTED. Only the final
// round may send emails.
var transitions = map[Phase]RoundTransition{
	PhaseResume:     {Round: 1, NextRound: 2, NextStatus: StatusUnderReview},
	PhaseCoffee:     {Round: 2, NextRound: 3, NextStatus: StatusUnderReview},
	PhaseFirstRound: {Round: 3, NextRound: 4, NextStatus: StatusUnderReview},
	PhaseFinalRound: {Round: 4, NextRound: 4, NextStatus: StatusAccepted, Final: true, EmailsAllow: true},
}

// TransitionFor returns the transition table entry for the phase.
// The second return is false for an unknown phase.
func TransitionFor(phase Phase) (RoundTransition, bool) {
	t, ok := transitions[phase]
	return t, ok
}

// RoundName returns the display name for a round number.
func RoundName(round int) string {
	switch round {
	case 1:
		return "Resume Review"
	case 2:
		return "Coffee Chat"
	case 3:
		return "First Round"
	case 4:
		return "Final Round"
	default:
		return "Unknown"
	}
}
