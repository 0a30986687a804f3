package storage

import (
	"context"
	"lending/pkg/domain"

	"github.com/shopspring/decimal"
)

// ReviewerStorage defines persistence operations for the reviewer directory.
// Workload counters are the one genuinely shared mutable resource in the
// system; implementations must make the increment a single conditional update
// so the 0 <= current_workload <= max_workload invariant holds under
// concurrent assignment.
type ReviewerStorage interface {
	// StoreReviewers inserts one or more reviewer records and returns the
	// stored rows.
	StoreReviewers(ctx context.Context, reviewers ...domain.Reviewer) ([]domain.Reviewer, error)

	// ReviewerByID returns the reviewer or nil when not found.
	ReviewerByID(ctx context.Context, id domain.ReviewerID) (*domain.Reviewer, error)

	// EligibleReviewers returns active reviewers with authority_limit >=
	// amount and current_workload < max_workload, ranked by spare capacity
	// descending, then current workload ascending, ties broken by insertion
	// order.
	EligibleReviewers(ctx context.Context, amount decimal.Decimal) ([]domain.Reviewer, error)

	// IncrementWorkload atomically increments the reviewer's workload
	// counter if and only if it is still below max_workload. Returns false
	// when the reviewer was already at capacity (or inactive).
	IncrementWorkload(ctx context.Context, id domain.ReviewerID) (bool, error)

	// DecrementWorkload atomically decrements the workload counter, clamped
	// at zero.
	DecrementWorkload(ctx context.Context, id domain.ReviewerID) error
}
