package storage

import (
	"context"
	"lending/pkg/domain"
)

// ReviewStorage defines persistence operations for review tasks. The backend
// enforces at most one open task per (application, stage) pair.
type ReviewStorage interface {
	// UpsertReviewTask creates a review task. When an open task already
	// exists for the same (application, stage), it updates its priority,
	// review type, due date and assignment in place instead of duplicating
	// it. Returns the stored task.
	UpsertReviewTask(ctx context.Context, task domain.ReviewTask) (*domain.ReviewTask, error)

	// OpenReviewTask returns the open task for (application, stage), or nil.
	OpenReviewTask(ctx context.Context, id domain.ApplicationID, stage domain.Stage) (*domain.ReviewTask, error)

	// AssignReviewTask sets the assignee and moves the task to assigned.
	// Returns nil when the task does not exist or is already completed.
	AssignReviewTask(ctx context.Context, taskID domain.ReviewTaskID, reviewerID domain.ReviewerID) (*domain.ReviewTask, error)

	// CompleteReviewTask marks the task completed and returns it (with its
	// last assignee), or nil when no such open task exists. Completion is
	// terminal.
	CompleteReviewTask(ctx context.Context, taskID domain.ReviewTaskID) (*domain.ReviewTask, error)

	// ReviewTasksByStatus lists tasks in the given status ordered by due
	// date ascending, bounded by limit.
	ReviewTasksByStatus(ctx context.Context, status domain.ReviewStatus, limit uint) ([]domain.ReviewTask, error)
}
