package storage

import (
	"context"
	"lending/pkg/domain"
)

// ApplicationStorage defines persistence operations for the loan application
// aggregate. AdvanceStage is the single authorized way to change
// current_stage/current_status; every call appends one audit-trail entry.
type ApplicationStorage interface {
	// StoreApplication inserts a new application and returns the stored row
	// as it exists in the database (including generated fields).
	StoreApplication(ctx context.Context, app domain.Application) (*domain.Application, error)

	// ApplicationByNumber returns a fully materialized snapshot of the
	// application (including its decision history) or nil when not found.
	// Callers never observe partial reads.
	ApplicationByNumber(ctx context.Context, number string) (*domain.Application, error)

	// AdvanceStage moves the application to the given stage/status.
	// Guarantees:
	//   - forward-only: a target stage earlier in the fixed order fails with
	//     ErrStageRegression;
	//   - idempotent-safe: re-applying the current (stage, status) pair is a
	//     no-op on the aggregate but still appends this call's audit entry;
	//   - terminal protection: mutating a rejected or completed application
	//     fails with ErrTerminalApplication.
	AdvanceStage(ctx context.Context, id domain.ApplicationID, stage domain.Stage, status domain.Status, note string) error

	// AppendDecision appends one record to the application's decision
	// history. History is append-only; records are never updated or removed.
	AppendDecision(ctx context.Context, id domain.ApplicationID, record domain.DecisionRecord) error

	// UpdateVerification replaces the stored third-party verification data
	// for the application.
	UpdateVerification(ctx context.Context, id domain.ApplicationID, v domain.Verification) error
}
