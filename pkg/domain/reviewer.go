package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReviewerID uniquely identifies a human reviewer.
type ReviewerID uuid.UUID

// String returns the canonical textual form of the id.
func (id ReviewerID) String() string { return uuid.UUID(id).String() }

// Reviewer is a directory record for a human reviewer. The workload counter
// is the one genuinely shared mutable resource in the system; increments and
// decrements must be atomic at the storage layer so that
// 0 <= CurrentWorkload <= MaxWorkload always holds.
type Reviewer struct {
	ID   ReviewerID `json:"id"`
	Name string     `json:"name"`
	// Role is the reviewer role required by escalation rules, e.g.
	// "underwriter" or "senior_underwriter".
	Role string `json:"role"`

	// AuthorityLimit is the maximum loan amount this reviewer may decide.
	AuthorityLimit decimal.Decimal `json:"authorityLimit"`
	// MaxWorkload bounds the number of concurrently open review tasks.
	MaxWorkload int `json:"maxWorkload"`
	// CurrentWorkload counts open tasks assigned to the reviewer.
	CurrentWorkload int `json:"currentWorkload"`

	Active bool `json:"active"`

	// Seq is the insertion order of the directory record, used as the final
	// tie-break during assignment ranking.
	Seq int64 `json:"-"`
}

// SpareCapacity returns how many more tasks the reviewer can take.
func (r Reviewer) SpareCapacity() int {
	return r.MaxWorkload - r.CurrentWorkload
}

// CanDecide reports whether the reviewer has the authority and the capacity
// to take on a task for the given loan amount.
func (r Reviewer) CanDecide(amount decimal.Decimal) bool {
	return r.Active &&
		r.AuthorityLimit.GreaterThanOrEqual(amount) &&
		r.CurrentWorkload < r.MaxWorkload
}
