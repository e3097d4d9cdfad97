package app

import (
	"context"
	"testing"
	"time"

	"chartdeck/adapters/memstore"
	"chartdeck/domain/core"
	"chartdeck/ports"
)

func TestSweepRunner_EvictsExpired(t *testing.T) {
	store := memstore.NewStore()
	_ = store.Put(context.Background(), ports.Artifact{
		ID:        "old_bar",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	})

	runner := NewSweepRunner(store, time.Hour, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := runner.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if _, err := store.Get(context.Background(), "old_bar"); !core.IsNotFoundError(err) {
		t.Errorf("Expired artifact should be swept, got %v", err)
	}
}

func TestSweepRunner_DisabledBlocksUntilCancel(t *testing.T) {
	runner := NewSweepRunner(memstore.NewStore(), time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
