package ports

import (
	"context"
	"time"
)

// Artifact is a generated output document held for later download.
type Artifact struct {
	ID          string
	Filename    string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// ArtifactStore defines the interface for the short-lived registry of
// generated documents. Identifiers are timestamp_kind strings; a second
// Put with the same identifier overwrites the first (last-write-wins).
type ArtifactStore interface {
	Put(ctx context.Context, artifact Artifact) error
	Get(ctx context.Context, id string) (*Artifact, error)

	// Sweep removes every artifact older than maxAge and reports how many
	// were removed and how many remain.
	Sweep(ctx context.Context, maxAge time.Duration) (removed int, remaining int, err error)
}
