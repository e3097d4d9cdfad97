package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"chartdeck/adapters/deck"
	"chartdeck/adapters/memstore"
	"chartdeck/adapters/postgres"
	"chartdeck/adapters/tabular"
	"chartdeck/app"
	"chartdeck/internal/config"
	"chartdeck/internal/errors"
	"chartdeck/ports"
	"chartdeck/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] No .env file loaded: %v", err)
	}

	cfg := config.Load()
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatalf("[Main] Store setup failed: %v", err)
	}

	generator := app.NewGenerateService(tabular.NewDataReader(), deck.NewComposer(), store)
	server := ui.NewServer(generator, store, cfg)
	httpServer := server.HTTPServer(":" + cfg.Server.Port)

	sweeper := app.NewSweepRunner(store, cfg.Sweep.MaxAge, cfg.Sweep.Interval)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("[Main] Chart generation service on port %s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return sweeper.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("[Main] Service stopped: %v", err)
	}
	log.Printf("[Main] Shutdown complete")
}

// buildStore picks the artifact store: in-memory by default, PostgreSQL
// when DATABASE_URL is set.
func buildStore(ctx context.Context, cfg *config.Config) (ports.ArtifactStore, error) {
	if cfg.Database.URL == "" {
		log.Printf("[Main] Using in-memory artifact store")
		return memstore.NewStore(), nil
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	repo := postgres.NewArtifactRepository(db)
	if err := repo.(*postgres.ArtifactRepositoryImpl).Migrate(ctx); err != nil {
		return nil, errors.Wrap(err, "artifact table migration failed")
	}

	log.Printf("[Main] Using PostgreSQL artifact store")
	return repo, nil
}
