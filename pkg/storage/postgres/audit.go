package postgres

import (
	"context"
	"fmt"
	"lending/pkg/domain"
	"lending/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const auditLogsTable = "audit_logs"

func (p *PgSQL) InsertAuditLog(ctx context.Context, entry domain.AuditEntry) error {
	var pgEntry PgAuditLog
	if err := pgEntry.FromDomain(entry); err != nil {
		return err
	}

	rec := goqu.Record{
		"application_id": pgEntry.ApplicationID,
		"event":          pgEntry.Event,
		"stage":          pgEntry.Stage,
		"stage_index":    pgEntry.StageIndex,
		"detail":         []byte(pgEntry.Detail),
		"elapsed_ms":     pgEntry.ElapsedMs,
	}

	if _, err := p.Builder.Insert(auditLogsTable).
		Rows(rec).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert audit log into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) AuditLogs(ctx context.Context,
	id domain.ApplicationID,
	filter storage.AuditFilter) ([]domain.AuditEntry, error) {
	w := []goqu.Expression{
		goqu.I("application_id").Eq(uuid.UUID(id)),
	}
	if filter.Event != "" {
		w = append(w, goqu.I("event").Eq(string(filter.Event)))
	}
	if filter.Stage != "" {
		w = append(w, goqu.I("stage").Eq(string(filter.Stage)))
	}

	ds := p.Builder.From(auditLogsTable).
		Where(w...).
		Order(goqu.I("id").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgAuditLog
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch audit logs from pg: %w", err)
	}

	out := make([]domain.AuditEntry, 0, len(rows))
	for i := range rows {
		entry, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *entry)
	}

	return out, nil
}
