package workflowerrors

import "errors"

// Typed failure kinds of the workflow engine. Callers distinguish them with
// errors.Is; the API layer maps each to its own HTTP status so "you can't do
// this" and "this isn't a valid move" stay distinguishable.
var (
	// ErrValidation is returned for a malformed domain payload.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when the request id is unknown.
	ErrNotFound = errors.New("request not found")

	// ErrForbidden is returned when the actor is neither the current
	// assignee nor a member of the edge's required role class.
	ErrForbidden = errors.New("actor is not allowed to act on this request")

	// ErrIllegalTransition is returned when the edge is not present in the
	// transition rule table.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrConflict is returned when a concurrent modification is detected;
	// the caller should re-read and retry.
	ErrConflict = errors.New("request was modified concurrently")

	// ErrAssigneeResolution is returned when no eligible approver can be
	// resolved (e.g. the requester has no manager on file).
	ErrAssigneeResolution = errors.New("no eligible assignee found")
)
