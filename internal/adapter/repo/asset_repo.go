package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"assetgen/internal/domain"
)

// AssetRepositoryPG implements domain.AssetRepository using PostgreSQL.
type AssetRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewAssetRepository constructs a new asset repository instance.
func NewAssetRepository(pool *pgxpool.Pool) *AssetRepositoryPG {
	return &AssetRepositoryPG{pool: pool}
}

// Create persists a single generated asset. Assets are immutable after
// creation; there is no update path.
func (r *AssetRepositoryPG) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
INSERT INTO assets (id, job_id, output_type, language, width, height, format, data, alt_text, contrast_score, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`
	_, err := r.pool.Exec(ctx, query,
		asset.ID,
		asset.JobID,
		asset.OutputType,
		asset.Language,
		asset.Width,
		asset.Height,
		asset.Format,
		asset.Data,
		asset.AltText,
		asset.ContrastScore,
		formatTime(asset.CreatedAt),
	)
	return err
}

// ListByJobID returns assets belonging to the job, oldest first, capped at limit.
func (r *AssetRepositoryPG) ListByJobID(ctx context.Context, jobID string, limit int) ([]domain.Asset, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, job_id, output_type, language, width, height, format, data, alt_text, contrast_score, created_at
FROM assets
WHERE job_id = $1
ORDER BY created_at ASC
LIMIT $2;
`, jobID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var asset domain.Asset
		var createdAt string
		if err := rows.Scan(
			&asset.ID,
			&asset.JobID,
			&asset.OutputType,
			&asset.Language,
			&asset.Width,
			&asset.Height,
			&asset.Format,
			&asset.Data,
			&asset.AltText,
			&asset.ContrastScore,
			&createdAt,
		); err != nil {
			return nil, err
		}
		asset.CreatedAt = parseTime(createdAt)
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assets, nil
}
