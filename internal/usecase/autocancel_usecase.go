package usecase

import "context"

// AutoCancelSummary reports the outcome of one auto-cancellation sweep.
type AutoCancelSummary struct {
	Candidates int // appointments matched by the window predicate
	Cancelled  int // state transitions actually applied
	Skipped    int // lost the conditional update (state changed under us)
	Failed     int // per-item errors, logged and left for the next cycle
}

// AutoCancelUsecase cancels appointments whose confirmation deadline has passed.
type AutoCancelUsecase interface {
	// Run executes one sweep. Per-item failures never abort the batch; a fatal
	// error (candidate query failed) aborts the cycle and is returned.
	Run(ctx context.Context) (*AutoCancelSummary, error)

	// CountPending counts appointments the next sweep would target, without
	// mutating anything.
	CountPending(ctx context.Context) (int, error)
}
