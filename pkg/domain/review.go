package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewTaskID uniquely identifies a review task.
type ReviewTaskID uuid.UUID

// String returns the canonical textual form of the id.
func (id ReviewTaskID) String() string { return uuid.UUID(id).String() }

// ReviewPriority orders manual review work and determines the due date.
type ReviewPriority string

const (
	ReviewPriorityLow    ReviewPriority = "low"
	ReviewPriorityNormal ReviewPriority = "normal"
	ReviewPriorityHigh   ReviewPriority = "high"
	ReviewPriorityUrgent ReviewPriority = "urgent"
)

// priorityHours maps a priority to the number of hours until the task is due.
var priorityHours = map[ReviewPriority]int{ //nolint: gochecknoglobals
	ReviewPriorityUrgent: 4,
	ReviewPriorityHigh:   12,
	ReviewPriorityNormal: 24,
	ReviewPriorityLow:    48,
}

// DueAfter returns the time allowed for completing a task of this priority.
// Unknown priorities fall back to the normal window.
func (p ReviewPriority) DueAfter() time.Duration {
	hours, ok := priorityHours[p]
	if !ok {
		hours = priorityHours[ReviewPriorityNormal]
	}

	return time.Duration(hours) * time.Hour
}

// ReviewStatus is the lifecycle state of a review task. Completed is terminal.
type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusAssigned  ReviewStatus = "assigned"
	ReviewStatusInReview  ReviewStatus = "in_review"
	ReviewStatusCompleted ReviewStatus = "completed"
)

// IsOpen reports whether the task still needs reviewer work. At most one open
// task exists per (application, stage) pair.
func (s ReviewStatus) IsOpen() bool {
	return s == ReviewStatusPending || s == ReviewStatusAssigned || s == ReviewStatusInReview
}

// ReviewTask represents manual handling of one (application, stage) pair. It
// references an Application and optionally a Reviewer but owns neither.
type ReviewTask struct {
	ID            ReviewTaskID  `json:"id"`
	ApplicationID ApplicationID `json:"applicationId"`
	Stage         Stage         `json:"stage"`

	// ReviewType names why the task exists, e.g. "conditional_score" or
	// "high_amount".
	ReviewType string         `json:"reviewType"`
	Priority   ReviewPriority `json:"priority"`
	Status     ReviewStatus   `json:"status"`

	// AssignedTo is nil while the task waits for a qualifying reviewer.
	AssignedTo *ReviewerID `json:"assignedTo,omitempty"`
	// DueAt is derived from the priority at enqueue time.
	DueAt time.Time `json:"dueAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewDecision is the verdict a reviewer records on a task.
type ReviewDecision string

const (
	ReviewDecisionApproved            ReviewDecision = "approved"
	ReviewDecisionRejected            ReviewDecision = "rejected"
	ReviewDecisionConditionalApproval ReviewDecision = "conditional_approval"
	ReviewDecisionReferBack           ReviewDecision = "refer_back"
	ReviewDecisionEscalate            ReviewDecision = "escalate"
)

// Valid reports whether d is one of the recognized review decisions.
func (d ReviewDecision) Valid() bool {
	switch d {
	case ReviewDecisionApproved, ReviewDecisionRejected,
		ReviewDecisionConditionalApproval, ReviewDecisionReferBack, ReviewDecisionEscalate:
		return true
	}

	return false
}

// ApplicationStatus returns the application status that recording this
// decision deterministically maps to.
func (d ReviewDecision) ApplicationStatus() Status {
	switch d {
	case ReviewDecisionApproved, ReviewDecisionConditionalApproval:
		return StatusApproved
	case ReviewDecisionRejected:
		return StatusRejected
	case ReviewDecisionReferBack, ReviewDecisionEscalate:
		return StatusUnderReview
	default:
		return StatusUnderReview
	}
}
