package storage

import (
	"context"
	"lending/pkg/domain"
)

// AuditFilter narrows an audit trail query. Zero values mean "no filter".
type AuditFilter struct {
	// Event restricts results to one event type.
	Event domain.AuditEvent
	// Stage restricts results to events referring to one stage.
	Stage domain.Stage
	// Limit bounds the number of returned entries; zero means no limit.
	Limit uint
}

// AuditStorage defines append and query operations for the audit trail.
// Entries are append-only and ordered by insertion.
type AuditStorage interface {
	// InsertAuditLog appends one audit entry.
	InsertAuditLog(ctx context.Context, entry domain.AuditEntry) error
	// AuditLogs returns the audit entries of an application, oldest first,
	// narrowed by the filter.
	AuditLogs(ctx context.Context, id domain.ApplicationID, filter AuditFilter) ([]domain.AuditEntry, error)
}
