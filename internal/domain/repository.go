package domain

import "context"

// JobRepository defines persistence for job documents.
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, jobID string) (*Job, error)
	// UpdateStatus writes the new status and refreshes updated_at. An empty
	// errMsg leaves the stored error message untouched.
	UpdateStatus(ctx context.Context, jobID string, status JobStatus, errMsg string) error
}

// AssetRepository handles persistence for generated assets.
type AssetRepository interface {
	Create(ctx context.Context, asset *Asset) error
	ListByJobID(ctx context.Context, jobID string, limit int) ([]Asset, error)
}
