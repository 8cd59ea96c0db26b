package usecase

import (
	"context"
	"log"

	"github-tracker/internal/domain"
	"github-tracker/internal/gateway"
)

// Renderer draws the per-day contribution chart.
type Renderer interface {
	RenderToFile(contributions []domain.Contribution, path string) error
}

// Persister writes the raw table and the summary to the output directory.
type Persister interface {
	Save(contributions []domain.Contribution, summary *domain.Summary) error
}

// Tracker is the use case that runs the full tracking pipeline:
// fetch, analyze, render, persist. All stages run sequentially and the
// first error aborts the run.
type Tracker struct {
	fetcher   gateway.Fetcher
	renderer  Renderer
	persister Persister
	logger    *log.Logger
}

// NewTracker creates a new Tracker instance.
func NewTracker(fetcher gateway.Fetcher, renderer Renderer, persister Persister, logger *log.Logger) *Tracker {
	return &Tracker{
		fetcher:   fetcher,
		renderer:  renderer,
		persister: persister,
		logger:    logger,
	}
}

// Run executes the pipeline for the given user over a window of the last
// `days` days and returns the computed summary.
func (t *Tracker) Run(ctx context.Context, user string, days int, chartPath string) (*domain.Summary, error) {
	t.logger.Println("Usecase: fetching contributions...")
	contributions, err := t.fetcher.FetchContributions(ctx, user, days)
	if err != nil {
		return nil, err
	}

	t.logger.Println("Usecase: analyzing contribution data...")
	summary := Analyze(contributions)

	t.logger.Println("Usecase: creating visualization...")
	if err := t.renderer.RenderToFile(contributions, chartPath); err != nil {
		return nil, err
	}

	t.logger.Println("Usecase: saving results...")
	if err := t.persister.Save(contributions, summary); err != nil {
		return nil, err
	}

	t.logger.Println("Usecase: tracking run complete.")
	return summary, nil
}
