package postgres

import (
	"context"
	"fmt"
	"lending/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const reviewTasksTable = "review_tasks"

// openStatuses are the review task states that count as "open"; the schema
// enforces at most one open task per (application, stage) via a partial
// unique index over these states.
var openStatuses = []string{ //nolint: gochecknoglobals
	string(domain.ReviewStatusPending),
	string(domain.ReviewStatusAssigned),
	string(domain.ReviewStatusInReview),
}

// UpsertReviewTask creates the task, or updates the open task for the same
// (application, stage) in place: priority, review type, due date and
// assignment change, the task identity does not.
func (p *PgSQL) UpsertReviewTask(ctx context.Context, task domain.ReviewTask) (*domain.ReviewTask, error) {
	existing, err := p.OpenReviewTask(ctx, task.ApplicationID, task.Stage)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		rec := goqu.Record{
			"review_type": task.ReviewType,
			"priority":    string(task.Priority),
			"due_at":      task.DueAt,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}
		if task.AssignedTo != nil {
			rec["assigned_to"] = uuid.UUID(*task.AssignedTo)
			rec["status"] = string(domain.ReviewStatusAssigned)
		}

		var row PgReviewTask
		found, err := p.Builder.Update(reviewTasksTable).
			Set(rec).
			Where(goqu.I("id").Eq(uuid.UUID(existing.ID))).
			Returning(&PgReviewTask{}).
			Executor().ScanStructContext(ctx, &row)
		if err != nil {
			return nil, fmt.Errorf("could not update review task in pg: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("could not update review task in pg: no row returned")
		}

		return row.ToDomain(), nil
	}

	var pgTask PgReviewTask
	pgTask.FromDomain(task)

	var row PgReviewTask
	found, err := p.Builder.Insert(reviewTasksTable).
		Rows(pgTask).
		Returning(&PgReviewTask{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store review task into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store review task into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) OpenReviewTask(ctx context.Context,
	id domain.ApplicationID,
	stage domain.Stage) (*domain.ReviewTask, error) {
	var row PgReviewTask
	found, err := p.Builder.From(reviewTasksTable).
		Where(
			goqu.I("application_id").Eq(uuid.UUID(id)),
			goqu.I("stage").Eq(string(stage)),
			goqu.I("status").In(openStatuses),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch open review task: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AssignReviewTask(ctx context.Context,
	taskID domain.ReviewTaskID,
	reviewerID domain.ReviewerID) (*domain.ReviewTask, error) {
	var row PgReviewTask
	found, err := p.Builder.Update(reviewTasksTable).
		Set(goqu.Record{
			"assigned_to": uuid.UUID(reviewerID),
			"status":      string(domain.ReviewStatusAssigned),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(taskID)),
			goqu.I("status").In(openStatuses),
		).
		Returning(&PgReviewTask{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not assign review task in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CompleteReviewTask(ctx context.Context, taskID domain.ReviewTaskID) (*domain.ReviewTask, error) {
	var row PgReviewTask
	found, err := p.Builder.Update(reviewTasksTable).
		Set(goqu.Record{
			"status":     string(domain.ReviewStatusCompleted),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(taskID)),
			goqu.I("status").In(openStatuses),
		).
		Returning(&PgReviewTask{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not complete review task in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ReviewTasksByStatus(ctx context.Context,
	status domain.ReviewStatus,
	limit uint) ([]domain.ReviewTask, error) {
	ds := p.Builder.From(reviewTasksTable).
		Where(goqu.I("status").Eq(string(status))).
		Order(goqu.I("due_at").Asc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgReviewTask
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch review tasks by status: %w", err)
	}

	tasks := make([]domain.ReviewTask, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, *rows[i].ToDomain())
	}

	return tasks, nil
}
