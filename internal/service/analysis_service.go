package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/vessel-intervals-go/internal/analysis"
	"github.com/jengzang/vessel-intervals-go/internal/ingest"
	"github.com/jengzang/vessel-intervals-go/internal/logging"
	"github.com/jengzang/vessel-intervals-go/internal/models"
)

// BatchRequest is one uploaded batch with its per-request overrides
type BatchRequest struct {
	Files        []models.FileContent
	Delimiter    string         // "" keeps the configured delimiter
	GapThreshold *time.Duration // nil keeps the configured threshold
	ReadErrors   []string       // files that could not be read, reported ahead of parse errors
}

// AnalysisService runs batches through the engine and logs one record per batch
type AnalysisService struct {
	engine *analysis.Engine
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(engine *analysis.Engine) *AnalysisService {
	return &AnalysisService{engine: engine}
}

// Analyze segments and classifies the batch
func (s *AnalysisService) Analyze(ctx context.Context, req BatchRequest) (*models.AnalysisResult, error) {
	start := time.Now()
	logger := batchLogger(ctx, "analyze", len(req.Files))

	result, err := s.engineFor(req).Process(ctx, req.Files)
	if err != nil {
		logging.LogError(logger, "batch failed", err)
		return nil, err
	}
	result.Meta.Errors = prependErrors(req.ReadErrors, result.Meta.Errors)

	attrs := []slog.Attr{
		slog.Bool("success", result.Success),
		slog.Int("file_errors", len(result.Meta.Errors)),
		slog.Duration("duration", time.Since(start)),
	}
	if result.Data != nil {
		attrs = append(attrs,
			slog.Int("rows", result.Data.Summary.ValidRows),
			slog.Int("intervals", result.Data.Summary.TotalIntervals),
			slog.Int("routes", len(result.Data.Routes)))
	}
	logging.LogOperation(logger, "batch_processed", attrs...)

	return result, nil
}

// RawRows returns the normalized rows of the batch
func (s *AnalysisService) RawRows(ctx context.Context, req BatchRequest) (*models.RawDataResult, error) {
	start := time.Now()
	logger := batchLogger(ctx, "raw_rows", len(req.Files))

	result, err := s.engineFor(req).RawRows(ctx, req.Files)
	if err != nil {
		logging.LogError(logger, "batch failed", err)
		return nil, err
	}
	result.Meta.Errors = prependErrors(req.ReadErrors, result.Meta.Errors)

	logging.LogOperation(logger, "batch_processed",
		slog.Bool("success", result.Success),
		slog.Int("rows", len(result.Data)),
		slog.Int("file_errors", len(result.Meta.Errors)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// Classify applies the classification rules to explicit ports
func (s *AnalysisService) Classify(nav models.NavStatus, startPort, endPort *models.PortAnalysis) models.Classification {
	return s.engine.Classify(nav, startPort, endPort)
}

// Ports lists the reference ports
func (s *AnalysisService) Ports() []models.Port {
	return s.engine.Catalog().Ports()
}

// engineFor applies the request overrides
func (s *AnalysisService) engineFor(req BatchRequest) *analysis.Engine {
	if req.Delimiter == "" && req.GapThreshold == nil {
		return s.engine
	}

	opts := s.engine.Options()
	if req.Delimiter != "" {
		opts.Ingest.Delimiter = ingest.ResolveDelimiter(req.Delimiter)
	}
	if req.GapThreshold != nil {
		opts.Segment.GapThreshold = *req.GapThreshold
	}
	return s.engine.WithOptions(opts)
}

func prependErrors(readErrs, errs []string) []string {
	if len(readErrs) == 0 {
		return errs
	}
	out := make([]string, 0, len(readErrs)+len(errs))
	out = append(out, readErrs...)
	return append(out, errs...)
}

func batchLogger(ctx context.Context, op string, files int) *slog.Logger {
	return logging.FromContext(ctx).With(
		slog.String("batch_id", uuid.New().String()),
		slog.String("operation", op),
		slog.Int("files", files),
	)
}
