package reconcile

import (
	"context"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options tunes an Engine.
type Options struct {
	// Workers bounds the number of concurrent pair comparisons.
	// Zero or negative resolves to DefaultWorkers().
	Workers int

	// Tolerance is the largest amount difference ignored as rounding noise.
	// Zero uses DefaultTolerance.
	Tolerance decimal.Decimal

	// Clock stamps ProcessedAt. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultWorkers leaves one hardware thread free, with a floor of one worker.
func DefaultWorkers() int {
	return max(runtime.NumCPU()-1, 1)
}

// Engine reconciles an external dispute collection against the internal one.
// It holds no state between runs and is safe for concurrent use.
type Engine struct {
	comparator *Comparator
	alerts     AlertSink
	logger     *zap.Logger
	workers    int
	clock      func() time.Time
}

// NewEngine wires the collaborators used by every run. rates and alerts may be nil.
func NewEngine(rates RateProvider, alerts AlertSink, logger *zap.Logger, opts Options) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Engine{
		comparator: NewComparator(NewNormalizer(rates), opts.Tolerance, logger),
		alerts:     alerts,
		logger:     logger,
		workers:    workers,
		clock:      clock,
	}
}

// Workers returns the resolved worker budget.
func (e *Engine) Workers() int {
	return e.workers
}

// Reconcile compares both collections and returns the complete, sorted
// discrepancy set with its summary. If ctx is cancelled mid-run the error is
// returned and no partial result is produced.
func (e *Engine) Reconcile(ctx context.Context, external, internal []Dispute) (*Result, error) {
	runID := uuid.NewString()
	log := e.logger.With(zap.String("run_id", runID))
	log.Info("Starting dispute reconcile process",
		zap.Int("external", len(external)),
		zap.Int("internal", len(internal)),
		zap.Int("workers", e.workers))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Clone so pair pointers never alias caller-owned slices.
	externalIndex, externalDupes := Index(slices.Clone(external))
	internalIndex, internalDupes := Index(slices.Clone(internal))
	if externalDupes > 0 || internalDupes > 0 {
		log.Warn("Duplicate dispute IDs ignored, first occurrence kept",
			zap.Int("external_duplicates", externalDupes),
			zap.Int("internal_duplicates", internalDupes))
	}

	var missingInternal, missingExternal []Discrepancy
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		missingInternal = FindMissing(externalIndex, internalIndex, MissingInInternal)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		missingExternal = FindMissing(internalIndex, externalIndex, MissingInExternal)
		return nil
	})

	pairs := MatchPairs(externalIndex, internalIndex)
	compared, compareErr := e.comparePairs(ctx, pairs)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if compareErr != nil {
		return nil, compareErr
	}

	discrepancies := make([]Discrepancy, 0, len(missingInternal)+len(missingExternal)+len(compared))
	discrepancies = append(discrepancies, missingInternal...)
	discrepancies = append(discrepancies, missingExternal...)
	discrepancies = append(discrepancies, compared...)
	SortDiscrepancies(discrepancies)

	result := &Result{
		RunID:         runID,
		Discrepancies: discrepancies,
		Summary:       Summarize(len(external), len(internal), discrepancies),
		ProcessedAt:   e.clock().UTC(),
	}

	high := result.HighSeverity()
	if len(high) > 0 && e.alerts != nil {
		if err := e.alerts.NotifyHighSeverity(ctx, high); err != nil {
			log.Warn("Alert dispatch failed", zap.Error(err))
		}
	}

	log.Info("Reconciliation completed",
		zap.Int("matched_pairs", len(pairs)),
		zap.Int("discrepancies", len(discrepancies)),
		zap.Int("high_severity", len(high)))

	return result, nil
}

// comparePairs fans pairs out to a bounded pool of workers. Each worker keeps
// its own slice; slices are merged only after every worker has exited.
func (e *Engine) comparePairs(ctx context.Context, pairs []Pair) ([]Discrepancy, error) {
	if len(pairs) == 0 {
		return nil, ctx.Err()
	}

	numWorkers := min(e.workers, len(pairs))

	pairsCh := make(chan Pair, len(pairs))
	for _, p := range pairs {
		pairsCh <- p
	}
	close(pairsCh)

	perWorker := make([][]Discrepancy, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(slot int) {
			defer wg.Done()
			for pair := range pairsCh {
				if ctx.Err() != nil {
					return
				}
				perWorker[slot] = append(perWorker[slot], e.comparator.Compare(pair)...)
			}
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Discrepancy
	for _, local := range perWorker {
		out = append(out, local...)
	}
	return out, nil
}
