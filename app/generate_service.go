package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/montanaflynn/stats"

	"chartdeck/domain/chart"
	"chartdeck/ports"
)

// ContentTypePPTX is the media type of every generated artifact.
const ContentTypePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// GenerateService turns an uploaded data file (plus optional template) into
// a stored presentation artifact.
type GenerateService struct {
	reader   ports.TableReader
	composer ports.DeckComposer
	store    ports.ArtifactStore
	clock    func() time.Time
}

// GenerateRequest carries one chart-generation job.
type GenerateRequest struct {
	DataFileName     string
	DataFile         io.Reader
	TemplateFileName string
	TemplateFile     io.Reader // nil when no template was uploaded
	Kind             chart.Kind
	SlidePosition    int
}

// SeriesSummary describes the extracted values for the caller's benefit.
type SeriesSummary struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Sum   float64 `json:"sum"`
}

// GenerateResult identifies the stored artifact.
type GenerateResult struct {
	ArtifactID string
	Filename   string
	Kind       chart.Kind
	Summary    SeriesSummary
}

// NewGenerateService creates a generate service.
func NewGenerateService(reader ports.TableReader, composer ports.DeckComposer, store ports.ArtifactStore) *GenerateService {
	return &GenerateService{
		reader:   reader,
		composer: composer,
		store:    store,
		clock:    time.Now,
	}
}

// Generate runs the full pipeline: spill uploads to a per-request temp dir,
// parse the table, extract the series, compose the deck and register the
// artifact. The temp dir is removed on every exit path.
func (s *GenerateService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	tempDir, err := os.MkdirTemp("", "chartdeck-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dataPath, err := spill(tempDir, req.DataFileName, req.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to save data file: %w", err)
	}

	table, err := s.reader.ReadTable(dataPath)
	if err != nil {
		return nil, err
	}

	series, err := chart.ExtractSeries(*table)
	if err != nil {
		return nil, err
	}

	var template []byte
	if req.TemplateFile != nil {
		templatePath, err := spill(tempDir, req.TemplateFileName, req.TemplateFile)
		if err != nil {
			return nil, fmt.Errorf("failed to save template file: %w", err)
		}
		template, err = os.ReadFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read template file: %w", err)
		}
	}

	buf, err := s.composer.Compose(template, req.SlidePosition, req.Kind, series)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	id := fmt.Sprintf("%s_%s", now.Format("20060102150405"), req.Kind)
	filename := fmt.Sprintf("chart_%s.pptx", id)

	artifact := ports.Artifact{
		ID:          id,
		Filename:    filename,
		ContentType: ContentTypePPTX,
		Data:        buf,
		CreatedAt:   now,
	}
	if err := s.store.Put(ctx, artifact); err != nil {
		return nil, fmt.Errorf("failed to store artifact: %w", err)
	}

	log.Printf("[GenerateService] Stored artifact %s (%d points, %d bytes)", id, len(series), len(buf))

	return &GenerateResult{
		ArtifactID: id,
		Filename:   filename,
		Kind:       req.Kind,
		Summary:    summarize(series),
	}, nil
}

// spill writes an upload into dir under its base filename so the parser can
// dispatch on the extension.
func spill(dir, name string, r io.Reader) (string, error) {
	path := filepath.Join(dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return path, nil
}

// summarize computes descriptive statistics over the series values. An
// empty series yields a zero summary.
func summarize(series chart.Series) SeriesSummary {
	summary := SeriesSummary{Count: len(series)}
	if len(series) == 0 {
		return summary
	}

	values := stats.Float64Data(series.Values())
	summary.Min, _ = values.Min()
	summary.Max, _ = values.Max()
	summary.Mean, _ = values.Mean()
	summary.Sum, _ = values.Sum()
	return summary
}
