package domain

import (
	"errors"
	"fmt"
)

// FallbackMessage is surfaced when a failure body carries no message field.
const FallbackMessage = "something went wrong"

var (
	// ErrAuthRejected marks a credential the server refused (401). Handled
	// once globally: the session is cleared and the caller is routed to
	// login. Never re-surfaced as a local workflow failure.
	ErrAuthRejected = errors.New("credential rejected")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTransitionInFlight = errors.New("transition already in flight")
	ErrApplicationNotFound = errors.New("application not found")

	ErrNoJobSelected  = errors.New("no job selected")
	ErrResumeRequired = errors.New("resume file is required")
	ErrResumeTooLarge = errors.New("resume exceeds the 10 MiB limit")
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// RequestError is any non-2xx or transport failure other than a rejected
// credential. The message comes from the conventional {"message"} failure
// body when present, else FallbackMessage.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// ValidationError is a pre-network failure: a missing required field or an
// oversized file, surfaced inline to the relevant form and never sent over
// the wire.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + " " + e.Reason
}

// SubmitError distinguishes which phase of the two-phase submission failed.
// Phase is "upload" or "apply"; an apply failure after a successful upload
// leaves the uploaded file orphaned.
type SubmitError struct {
	Phase string
	Err   error
}

func (e *SubmitError) Error() string {
	return e.Phase + " failed: " + e.Err.Error()
}

func (e *SubmitError) Unwrap() error { return e.Err }
