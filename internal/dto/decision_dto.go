package dto

// SaveDecisionRequest writes the single inline decision for an application
// within a phase. An empty decision resets it to pending.
type SaveDecisionRequest struct {
	ApplicationID string `json:"applicationId" validate:"required,uuid"`
	Decision      string `json:"decision" validate:"omitempty,oneof=yes maybe_yes maybe_no no"`
	Phase         string `json:"phase" validate:"required,oneof=resume coffee first_round final_round"`
}

// ProcessRequest triggers a bulk round advancement. SendEmails is honored
// only by the final round.
type ProcessRequest struct {
	SendEmails bool `json:"sendEmails"`
}

type AdvanceSummaryResponse struct {
	Summary any `json:"summary"`
}
