package analysis

import (
	"context"
	"fmt"

	"github.com/jengzang/vessel-intervals-go/internal/analysis/behavior"
	"github.com/jengzang/vessel-intervals-go/internal/analysis/classify"
	"github.com/jengzang/vessel-intervals-go/internal/analysis/segment"
	"github.com/jengzang/vessel-intervals-go/internal/analysis/stats"
	"github.com/jengzang/vessel-intervals-go/internal/ingest"
	"github.com/jengzang/vessel-intervals-go/internal/models"
	"github.com/jengzang/vessel-intervals-go/internal/ports"
)

// ErrNoValidRows is the batch-level failure message
const ErrNoValidRows = "no valid rows could be read"

// Options gathers every threshold of the pipeline
type Options struct {
	Ingest            ingest.Options
	Segment           segment.Options
	Thresholds        classify.Thresholds
	DepartureRadiusKm float64
}

// DefaultOptions returns the thresholds the recorder logs were tuned for
func DefaultOptions() Options {
	return Options{
		Ingest:            ingest.DefaultOptions(),
		Segment:           segment.DefaultOptions(),
		Thresholds:        classify.DefaultThresholds(),
		DepartureRadiusKm: behavior.DefaultDepartureRadiusKm,
	}
}

// Engine runs the interval pipeline over one batch of files at a time.
// It holds no per-batch state and is safe for concurrent use.
type Engine struct {
	catalog *ports.Catalog
	opts    Options
}

// NewEngine creates an engine; a nil catalog falls back to the built-in ports
func NewEngine(catalog *ports.Catalog, opts Options) *Engine {
	if catalog == nil {
		catalog = ports.Default()
	}
	return &Engine{catalog: catalog, opts: opts}
}

// Catalog returns the reference ports used by the engine
func (e *Engine) Catalog() *ports.Catalog {
	return e.catalog
}

// Options returns the engine thresholds
func (e *Engine) Options() Options {
	return e.opts
}

// WithOptions returns a copy of the engine using opts
func (e *Engine) WithOptions(opts Options) *Engine {
	return &Engine{catalog: e.catalog, opts: opts}
}

// Process parses, merges and segments the files, then classifies the
// intervals and assembles journeys, routes and activity totals. Malformed
// input is reported inside the result; the only error is a cancelled context.
func (e *Engine) Process(ctx context.Context, files []models.FileContent) (*models.AnalysisResult, error) {
	batch, err := ingest.Load(ctx, files, e.opts.Ingest)
	if err != nil {
		return nil, err
	}

	meta := batch.Meta
	if len(batch.Rows) == 0 {
		return &models.AnalysisResult{Success: false, Error: ErrNoValidRows, Meta: &meta}, nil
	}

	intervals := segment.Segment(batch.Rows, e.catalog, e.opts.Segment)
	for i := range intervals {
		c := classify.Interval(intervals[i], e.catalog, e.opts.Thresholds)
		intervals[i].Classification = &c
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	journeys := behavior.AssignJourneys(intervals, e.opts.DepartureRadiusKm)

	routes := behavior.BuildRoutes(intervals)
	for i := range routes {
		routes[i].Activities = stats.Activities(routes[i].Intervals, e.catalog, e.opts.Thresholds)
	}

	data := &models.AnalysisData{
		Intervals:  intervals,
		Summary:    stats.Summarize(intervals, batch.TotalRows, len(batch.Rows), len(meta.ProcessedFiles)),
		Journeys:   journeys,
		Routes:     routes,
		Activities: stats.Activities(intervals, e.catalog, e.opts.Thresholds),
	}

	return &models.AnalysisResult{Success: true, Data: data, Meta: &meta}, nil
}

// RawRows returns the normalized rows of the batch, each tagged with its
// nearest port regardless of distance
func (e *Engine) RawRows(ctx context.Context, files []models.FileContent) (*models.RawDataResult, error) {
	batch, err := ingest.Load(ctx, files, e.opts.Ingest)
	if err != nil {
		return nil, err
	}

	meta := batch.Meta
	if len(batch.Rows) == 0 {
		return &models.RawDataResult{Success: false, Error: ErrNoValidRows, Meta: &meta}, nil
	}

	for i := range batch.Rows {
		row := &batch.Rows[i]
		if p, ok := e.catalog.Nearest(row.Latitude, row.Longitude); ok {
			row.ClosestPort = &p
		}
	}

	return &models.RawDataResult{Success: true, Data: batch.Rows, Meta: &meta}, nil
}

// Classify applies the classification rules to explicit endpoint ports
func (e *Engine) Classify(nav models.NavStatus, startPort, endPort *models.PortAnalysis) models.Classification {
	return classify.Classify(nav, startPort, endPort, e.opts.Thresholds)
}
