package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"chartdeck/domain/core"
	"chartdeck/ports"
)

// ArtifactRepositoryImpl implements ports.ArtifactStore on PostgreSQL so
// generated documents survive process restarts.
type ArtifactRepositoryImpl struct {
	db *sqlx.DB
}

// NewArtifactRepository creates a new PostgreSQL artifact store.
func NewArtifactRepository(db *sqlx.DB) ports.ArtifactStore {
	return &ArtifactRepositoryImpl{db: db}
}

// Migrate creates the artifacts table if it does not exist yet.
func (r *ArtifactRepositoryImpl) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS artifacts (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			content_type TEXT NOT NULL,
			data BYTEA NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

// Put stores an artifact, overwriting any entry with the same identifier.
func (r *ArtifactRepositoryImpl) Put(ctx context.Context, artifact ports.Artifact) error {
	if artifact.CreatedAt.IsZero() {
		artifact.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO artifacts (id, filename, content_type, data, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET filename = EXCLUDED.filename,
		    content_type = EXCLUDED.content_type,
		    data = EXCLUDED.data,
		    created_at = EXCLUDED.created_at
	`, artifact.ID, artifact.Filename, artifact.ContentType, artifact.Data, artifact.CreatedAt)
	return err
}

// Get retrieves an artifact by identifier.
func (r *ArtifactRepositoryImpl) Get(ctx context.Context, id string) (*ports.Artifact, error) {
	var artifact ports.Artifact
	err := r.db.QueryRowContext(ctx, `
		SELECT id, filename, content_type, data, created_at
		FROM artifacts
		WHERE id = $1
	`, id).Scan(&artifact.ID, &artifact.Filename, &artifact.ContentType, &artifact.Data, &artifact.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewArtifactNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return &artifact, nil
}

// Sweep deletes artifacts older than maxAge and counts the survivors.
func (r *ArtifactRepositoryImpl) Sweep(ctx context.Context, maxAge time.Duration) (int, int, error) {
	cutoff := time.Now().Add(-maxAge)

	res, err := r.db.ExecContext(ctx, `DELETE FROM artifacts WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}

	var remaining int
	if err := r.db.GetContext(ctx, &remaining, `SELECT COUNT(*) FROM artifacts`); err != nil {
		return int(affected), 0, err
	}
	return int(affected), remaining, nil
}
