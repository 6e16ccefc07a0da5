package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"assetgen/internal/domain"
)

// timeLayout is the ISO-8601 representation used for all persisted timestamps.
// The nanosecond field is zero-padded to a fixed width so the stored text
// sorts lexicographically in chronological order; RFC3339Nano trims trailing
// zeros and breaks that property for sub-second neighbors.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// JobRepositoryPG implements domain.JobRepository using PostgreSQL.
type JobRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a new job repository backed by PostgreSQL.
func NewJobRepository(pool *pgxpool.Pool) *JobRepositoryPG {
	return &JobRepositoryPG{pool: pool}
}

// Create inserts a new job document.
func (r *JobRepositoryPG) Create(ctx context.Context, job *domain.Job) error {
	query := `
INSERT INTO jobs (id, image_data, status, error_message, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6);
`
	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.ImageData,
		job.Status,
		job.ErrorMessage,
		formatTime(job.CreatedAt),
		formatTime(job.UpdatedAt),
	)
	return err
}

// GetByID fetches a job by its identifier.
func (r *JobRepositoryPG) GetByID(ctx context.Context, jobID string) (*domain.Job, error) {
	query := `
SELECT id, image_data, status, error_message, created_at, updated_at
FROM jobs
WHERE id = $1;
`
	row := r.pool.QueryRow(ctx, query, jobID)
	var job domain.Job
	var createdAt, updatedAt string
	if err := row.Scan(
		&job.ID,
		&job.ImageData,
		&job.Status,
		&job.ErrorMessage,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.CreatedAt = parseTime(createdAt)
	job.UpdatedAt = parseTime(updatedAt)
	return &job, nil
}

// UpdateStatus writes the new status, refreshes updated_at, and records the
// error message when one is supplied. Last writer wins on the status field.
func (r *JobRepositoryPG) UpdateStatus(ctx context.Context, jobID string, status domain.JobStatus, errMsg string) error {
	query := `
UPDATE jobs
SET status = $2,
    error_message = CASE WHEN $3 = '' THEN error_message ELSE $3 END,
    updated_at = $4
WHERE id = $1;
`
	tag, err := r.pool.Exec(ctx, query, jobID, status, errMsg, formatTime(time.Now()))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
