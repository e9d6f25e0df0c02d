package reconciliation

import (
	"bytes"
	"context"
	"fmt"

	"dispute-reconciler/core/reconcile"
	"dispute-reconciler/feature/fileio"

	"go.uber.org/zap"
)

// DisputeSource supplies the internal side of a run.
type DisputeSource interface {
	GetAll(ctx context.Context) ([]reconcile.Dispute, error)
}

// ReportPublisher stores a finished report remotely.
type ReportPublisher interface {
	Publish(ctx context.Context, name string, data []byte, contentType string) (string, error)
	List(ctx context.Context) ([]string, error)
}

// Service runs reconciliations between an external file and the internal store.
type Service struct {
	engine    *reconcile.Engine
	source    DisputeSource
	files     *fileio.Files
	publisher ReportPublisher
	logger    *zap.Logger
}

// NewService creates a reconciliation service. publisher may be nil.
func NewService(engine *reconcile.Engine, source DisputeSource, files *fileio.Files, publisher ReportPublisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if files == nil {
		files = fileio.NewFiles(logger)
	}
	return &Service{
		engine:    engine,
		source:    source,
		files:     files,
		publisher: publisher,
		logger:    logger,
	}
}

// Run reads external disputes from inputPath, reconciles them against the
// store, and writes the result to outputPath. Both formats are checked before
// any work starts; on failure no report is written.
func (s *Service) Run(ctx context.Context, inputPath, outputPath string) (*reconcile.Result, error) {
	if _, err := fileio.DetectFormat(inputPath); err != nil {
		return nil, err
	}
	outFormat, err := fileio.DetectOutputFormat(outputPath)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Starting dispute reconcile",
		zap.String("input", inputPath),
		zap.String("output", outputPath))

	external, err := s.files.ReadDisputes(inputPath)
	if err != nil {
		return nil, err
	}

	result, err := s.ReconcileRecords(ctx, external)
	if err != nil {
		return nil, err
	}

	data, err := s.files.WriteResult(result, outputPath)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, result, outFormat, data)
	return result, nil
}

// ReconcileRecords reconciles external disputes against the store.
func (s *Service) ReconcileRecords(ctx context.Context, external []reconcile.Dispute) (*reconcile.Result, error) {
	internal, err := s.source.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load internal disputes: %w", err)
	}

	s.logger.Info("Loaded dispute sets",
		zap.Int("external", len(external)),
		zap.Int("internal", len(internal)))

	return s.engine.Reconcile(ctx, external, internal)
}

// Render encodes result in format f.
func (s *Service) Render(result *reconcile.Result, f fileio.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileio.Encode(f, &buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Reports lists published report keys. It returns nil when publishing is off.
func (s *Service) Reports(ctx context.Context) ([]string, error) {
	if s.publisher == nil {
		return nil, nil
	}
	return s.publisher.List(ctx)
}

// publish uploads the written report. The local file is authoritative, so an
// upload failure is logged and does not fail the run.
func (s *Service) publish(ctx context.Context, result *reconcile.Result, f fileio.Format, data []byte) {
	if s.publisher == nil {
		return
	}

	name := result.RunID + f.Extension()
	key, err := s.publisher.Publish(ctx, name, data, f.ContentType())
	if err != nil {
		s.logger.Warn("Failed to publish report", zap.String("run_id", result.RunID), zap.Error(err))
		return
	}
	s.logger.Info("Published report", zap.String("run_id", result.RunID), zap.String("key", key))
}
