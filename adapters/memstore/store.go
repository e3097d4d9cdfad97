package memstore

import (
	"context"
	"log"
	"sync"
	"time"

	"chartdeck/domain/core"
	"chartdeck/ports"
)

// Store is an in-process artifact registry. Entries live until swept or the
// process restarts; there is no durability guarantee. A Put with an
// existing identifier overwrites the previous entry.
type Store struct {
	mu        sync.RWMutex
	artifacts map[string]ports.Artifact
	clock     func() time.Time
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{
		artifacts: make(map[string]ports.Artifact),
		clock:     time.Now,
	}
}

// NewStoreWithClock creates a registry with an injectable clock for tests.
func NewStoreWithClock(clock func() time.Time) *Store {
	s := NewStore()
	s.clock = clock
	return s
}

// Put stores an artifact, stamping CreatedAt when unset.
func (s *Store) Put(_ context.Context, artifact ports.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if artifact.CreatedAt.IsZero() {
		artifact.CreatedAt = s.clock()
	}
	s.artifacts[artifact.ID] = artifact
	return nil
}

// Get returns the artifact for id, or core.ErrArtifactNotFound.
func (s *Store) Get(_ context.Context, id string) (*ports.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artifact, ok := s.artifacts[id]
	if !ok {
		return nil, core.NewArtifactNotFoundError(id)
	}
	return &artifact, nil
}

// Sweep removes every artifact older than maxAge.
func (s *Store) Sweep(_ context.Context, maxAge time.Duration) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	removed := 0
	for id, artifact := range s.artifacts {
		if now.Sub(artifact.CreatedAt) > maxAge {
			delete(s.artifacts, id)
			removed++
		}
	}

	remaining := len(s.artifacts)
	if removed > 0 {
		log.Printf("[Store] Sweep removed %d artifacts, %d remaining", removed, remaining)
	}
	return removed, remaining, nil
}

// Len returns the current number of stored artifacts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.artifacts)
}
