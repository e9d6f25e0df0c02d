// Package reconcile implements the dispute reconciliation engine.
//
// It compares an external dispute collection (a partner report) against the
// internal system of record and classifies every difference by severity.
//
// # Architecture
//
// The engine is built from four parts, leaves first:
//
// 1. Severity rules: pure functions mapping discrepancy context onto
// Low, Medium, High or Critical.
//
// 2. Normalizer: converts amounts between currencies through an injected
// RateProvider. Same-currency conversion is the identity.
//
// 3. Comparator: checks status, amount, currency and reason of one matched
// pair independently. An amount check whose currency conversion fails is
// skipped for that pair and logged; it never aborts the run.
//
// 4. Matcher: builds ID-keyed indices (first occurrence wins), finds records
// present on one side only, and pairs the shared IDs.
//
// # Concurrency
//
// Engine.Reconcile runs both presence scans concurrently (errgroup) and fans
// matched pairs out to a bounded worker pool. Workers accumulate into local
// slices that are merged after the pool drains, and the merged set is sorted
// by DisputeID then type so output is reproducible. The summary is always
// recomputed from that set.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(rateProvider, alertSink, logger, reconcile.Options{
//	    Workers: 4,
//	})
//
//	result, err := engine.Reconcile(ctx, external, internal)
//	if err != nil {
//	    return err // only context cancellation
//	}
//	fmt.Println(result.Summary.TotalDiscrepancies)
package reconcile
