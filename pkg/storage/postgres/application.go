package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"lending/pkg/domain"
	"lending/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	applicationsTable = "applications"
	decisionsTable    = "application_decisions"
)

func (p *PgSQL) StoreApplication(ctx context.Context, app domain.Application) (*domain.Application, error) {
	var pgApp PgApplication
	if err := pgApp.FromDomain(app); err != nil {
		return nil, err
	}

	var row PgApplication
	found, err := p.Builder.Insert(applicationsTable).
		Rows(pgApp).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store application into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store application into pg: no row returned")
	}

	return row.ToDomain()
}

// ApplicationByNumber loads the application row together with its decision
// history in one transaction-free read path; decisions are fetched after the
// aggregate row and ordered by insertion, so callers always observe a
// consistent snapshot of the append-only history.
func (p *PgSQL) ApplicationByNumber(ctx context.Context, number string) (*domain.Application, error) {
	var row PgApplication
	found, err := p.Builder.From(applicationsTable).
		Where(goqu.I("application_number").Eq(number)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application by number: %w", err)
	}
	if !found {
		return nil, nil
	}

	app, err := row.ToDomain()
	if err != nil {
		return nil, err
	}

	var decisionRows []PgDecision
	if err := p.Builder.From(decisionsTable).
		Where(goqu.I("application_id").Eq(row.ID)).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &decisionRows); err != nil {
		return nil, fmt.Errorf("could not fetch application decisions: %w", err)
	}

	app.Decisions = make([]domain.DecisionRecord, 0, len(decisionRows))
	for i := range decisionRows {
		record, err := decisionRows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		app.Decisions = append(app.Decisions, *record)
	}

	return app, nil
}

// AdvanceStage moves the application forward in the fixed stage order and
// appends one audit entry for this call. Re-applying the current
// (stage, status) pair leaves the aggregate unchanged; moving backward fails
// with storage.ErrStageRegression. The orchestrator serializes calls per
// application, so the read-then-update pair here does not race.
func (p *PgSQL) AdvanceStage(ctx context.Context,
	id domain.ApplicationID,
	stage domain.Stage,
	status domain.Status,
	note string) error {
	var row PgApplication
	found, err := p.Builder.From(applicationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return fmt.Errorf("could not fetch application for advance: %w", err)
	}
	if !found {
		return fmt.Errorf("could not advance stage: application %s not found", uuid.UUID(id))
	}

	current := domain.Stage(row.CurrentStage)
	currentStatus := domain.Status(row.CurrentStatus)
	if currentStatus.IsTerminal() && !(current == stage && currentStatus == status) {
		return storage.ErrTerminalApplication
	}
	if domain.StageIndex(stage) < domain.StageIndex(current) {
		return storage.ErrStageRegression
	}

	sameState := current == stage && currentStatus == status
	if !sameState {
		if _, err := p.Builder.Update(applicationsTable).
			Set(goqu.Record{
				"current_stage":  string(stage),
				"current_status": string(status),
				"updated_at":     goqu.L("CURRENT_TIMESTAMP"),
			}).
			Where(goqu.I("id").Eq(uuid.UUID(id))).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not update application stage: %w", err)
		}
	}

	// Exactly one audit entry per call, including idempotent re-applies.
	detail := map[string]any{"status": string(status)}
	if note != "" {
		detail["note"] = note
	}
	if sameState {
		detail["noop"] = true
	}
	if err := p.InsertAuditLog(ctx, domain.AuditEntry{
		ApplicationID: id,
		Event:         domain.AuditStageAdvanced,
		Stage:         stage,
		StageIndex:    domain.StageIndex(stage),
		Detail:        detail,
	}); err != nil {
		return fmt.Errorf("could not append audit entry for advance: %w", err)
	}

	return nil
}

func (p *PgSQL) AppendDecision(ctx context.Context, id domain.ApplicationID, record domain.DecisionRecord) error {
	var pgDecision PgDecision
	if err := pgDecision.FromDomain(id, record); err != nil {
		return err
	}
	if _, err := p.Builder.Insert(decisionsTable).
		Rows(decisionRecordForInsert(pgDecision)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not append decision into pg: %w", err)
	}

	return nil
}

// decisionRecordForInsert maps a PgDecision to a goqu record, letting the
// database default created_at when the caller did not set it.
func decisionRecordForInsert(d PgDecision) goqu.Record {
	rec := goqu.Record{
		"application_id":   d.ApplicationID,
		"stage":            d.Stage,
		"decision":         d.Decision,
		"score":            d.Score,
		"positive_factors": []byte(d.PositiveFactors),
		"negative_factors": []byte(d.NegativeFactors),
		"risk_factors":     []byte(d.RiskFactors),
		"decided_by":       d.DecidedBy,
	}
	if !d.CreatedAt.IsZero() {
		rec["created_at"] = d.CreatedAt
	}

	return rec
}

func (p *PgSQL) UpdateVerification(ctx context.Context, id domain.ApplicationID, v domain.Verification) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal verification: %w", err)
	}

	if _, err := p.Builder.Update(applicationsTable).
		Set(goqu.Record{
			"verification": b,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update verification in pg: %w", err)
	}

	return nil
}
