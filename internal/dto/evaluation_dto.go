package dto

// SummariesRequest batches evaluation lookups for the staging view. The
// interview type narrows the result to the tab being shown.
type SummariesRequest struct {
	ApplicationIDs []string `json:"applicationIds" validate:"required,min=1,dive,uuid"`
	InterviewType  string   `json:"interviewType" validate:"required,oneof=COFFEE_CHAT ROUND_ONE FINAL_ROUND"`
}

// UpdateNotesRequest carries a free-text note edit for one evaluation. An
// empty string is a valid edit, it clears the notes.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}
