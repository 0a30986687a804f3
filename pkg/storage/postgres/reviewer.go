package postgres

import (
	"context"
	"fmt"
	"lending/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const reviewersTable = "reviewers"

func (p *PgSQL) StoreReviewers(ctx context.Context, reviewers ...domain.Reviewer) ([]domain.Reviewer, error) {
	if len(reviewers) == 0 {
		return nil, nil
	}

	pgReviewers := make([]PgReviewer, len(reviewers))
	for i := range reviewers {
		pgReviewers[i].FromDomain(reviewers[i])
	}

	var rows []PgReviewer
	if err := p.Builder.Insert(reviewersTable).
		Rows(pgReviewers).
		Returning(&PgReviewer{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not store reviewers into pg: %w", err)
	}

	out := make([]domain.Reviewer, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) ReviewerByID(ctx context.Context, id domain.ReviewerID) (*domain.Reviewer, error) {
	var row PgReviewer
	found, err := p.Builder.From(reviewersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch reviewer by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// EligibleReviewers applies the assignment filter and ranking in SQL:
// authority covers the amount, capacity remains, ordered by spare capacity
// descending, then current workload ascending, then insertion order.
func (p *PgSQL) EligibleReviewers(ctx context.Context, amount decimal.Decimal) ([]domain.Reviewer, error) {
	var rows []PgReviewer
	if err := p.Builder.From(reviewersTable).
		Where(
			goqu.I("active").IsTrue(),
			goqu.I("authority_limit").Gte(amount),
			goqu.I("current_workload").Lt(goqu.I("max_workload")),
		).
		Order(
			goqu.L("max_workload - current_workload").Desc(),
			goqu.I("current_workload").Asc(),
			goqu.I("seq").Asc(),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch eligible reviewers: %w", err)
	}

	out := make([]domain.Reviewer, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// IncrementWorkload is a single conditional update so concurrent assignments
// can never push a reviewer beyond max_workload.
func (p *PgSQL) IncrementWorkload(ctx context.Context, id domain.ReviewerID) (bool, error) {
	res, err := p.Builder.Update(reviewersTable).
		Set(goqu.Record{
			"current_workload": goqu.L("current_workload + 1"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("active").IsTrue(),
			goqu.I("current_workload").Lt(goqu.I("max_workload")),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not increment reviewer workload: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected == 1, nil
}

// DecrementWorkload clamps at zero so double completions cannot drive the
// counter negative.
func (p *PgSQL) DecrementWorkload(ctx context.Context, id domain.ReviewerID) error {
	if _, err := p.Builder.Update(reviewersTable).
		Set(goqu.Record{
			"current_workload": goqu.L("GREATEST(current_workload - 1, 0)"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not decrement reviewer workload: %w", err)
	}

	return nil
}
