package alerts

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"dispute-reconciler/core/reconcile"

	"go.uber.org/zap"
)

// maxCriticalListed caps the CRITICAL lines printed per high-severity alert.
const maxCriticalListed = 3

// Alert is one dispatched alert.
type Alert struct {
	Message  string             `json:"message"`
	Severity reconcile.Severity `json:"severity"`
	SentAt   time.Time          `json:"sent_at"`
}

// Service writes alerts to a console writer and the structured log.
// It implements reconcile.AlertSink.
type Service struct {
	out     io.Writer
	logger  *zap.Logger
	history int

	mu     sync.Mutex
	recent []Alert
}

// NewService creates an alert service. A nil writer discards console output.
func NewService(out io.Writer, logger *zap.Logger, history int) *Service {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{out: out, logger: logger, history: history}
}

// SendAlert writes "[SEVERITY] message" and logs it at warn level.
func (s *Service) SendAlert(ctx context.Context, message string, severity reconcile.Severity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := fmt.Sprintf("[%s] %s", strings.ToUpper(severity.String()), message)
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		return fmt.Errorf("failed to write alert: %w", err)
	}
	s.logger.Warn("Alert sent", zap.String("alert", line))
	s.remember(Alert{Message: message, Severity: severity, SentAt: time.Now().UTC()})
	return nil
}

// NotifyHighSeverity summarizes the high-severity discrepancies of a run and
// lists the first few critical ones.
func (s *Service) NotifyHighSeverity(ctx context.Context, discrepancies []reconcile.Discrepancy) error {
	var critical []reconcile.Discrepancy
	high := 0
	for _, d := range discrepancies {
		switch d.Severity {
		case reconcile.SeverityCritical:
			critical = append(critical, d)
		case reconcile.SeverityHigh:
			high++
		}
	}

	message := fmt.Sprintf("High severity discrepancies detected: %d Critical, %d High priority issues found during reconcile process",
		len(critical), high)

	if err := s.SendAlert(ctx, message, reconcile.SeverityHigh); err != nil {
		return err
	}

	for i, d := range critical {
		if i == maxCriticalListed {
			break
		}
		if _, err := fmt.Fprintf(s.out, "CRITICAL: %s - %s\n", d.DisputeID, d.Description); err != nil {
			return fmt.Errorf("failed to write alert: %w", err)
		}
	}

	s.logger.Error("High severity discrepancies alert",
		zap.String("message", message),
		zap.Int("critical", len(critical)),
		zap.Int("high", high))
	return nil
}

// Recent returns the retained alerts, newest last.
func (s *Service) Recent() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Alert, len(s.recent))
	copy(out, s.recent)
	return out
}

func (s *Service) remember(a Alert) {
	if s.history <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append(s.recent, a)
	if over := len(s.recent) - s.history; over > 0 {
		s.recent = s.recent[over:]
	}
}
