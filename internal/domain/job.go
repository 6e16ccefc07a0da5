package domain

import (
	"fmt"
	"time"
)

// JobStatus enumerates job lifecycle states.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// statusRank orders the lifecycle so transitions only move forward.
// completed and failed are both terminal.
var statusRank = map[JobStatus]int{
	JobStatusPending:    0,
	JobStatusProcessing: 1,
	JobStatusCompleted:  2,
	JobStatusFailed:     2,
}

// CanTransition reports whether moving from s to next respects the
// forward-only lifecycle pending -> processing -> {completed, failed}.
func (s JobStatus) CanTransition(next JobStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Transition validates the move from s to next, returning ErrBadTransition
// when the lifecycle does not allow it.
func (s JobStatus) Transition(next JobStatus) error {
	if !s.CanTransition(next) {
		return fmt.Errorf("%w: %s to %s", ErrBadTransition, s, next)
	}
	return nil
}

// Job is one upload-to-completion unit of work tied to a single source image.
// The source image travels base64-encoded, matching the storage convention.
type Job struct {
	ID           string
	ImageData    string
	Status       JobStatus
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
