// Package apperror defines the error taxonomy shared by the usecases and
// the HTTP layer. Validation and precondition failures block the triggering
// action outright; network failures degrade to an unsaved state; not-found
// falls back to an empty view.
package apperror

import (
	"errors"
	"fmt"

	"github.com/campusrecruit/backend/internal/model"
)

// ValidationError rejects malformed input (bad decision value, out-of-range
// score) before any network or database call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PreconditionFailure rejects a bulk advancement over an incomplete cohort.
// Invalid carries the exact offending applications so the caller can offer a
// one-click fix instead of a generic error.
type PreconditionFailure struct {
	Phase   model.Phase
	Invalid []model.Application
}

func (e *PreconditionFailure) Error() string {
	return fmt.Sprintf("%d application(s) in the %s round are not resolved to yes/no", len(e.Invalid), e.Phase)
}

// NetworkError wraps a transient failure talking to an external
// collaborator. It is never retried automatically.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NotFoundError marks a record that no longer exists, e.g. deleted by
// another admin while a drill-down was open.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
