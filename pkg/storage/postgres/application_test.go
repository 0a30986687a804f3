package postgres_test

import (
	"context"
	"testing"
	"time"

	"lending/pkg/domain"
	"lending/pkg/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreAndFetchApplication(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored := storeTestApplication(t, pg, "LN-2026-TEST000001")

	fetched, err := pg.ApplicationByNumber(ctx, "LN-2026-TEST000001")
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.Equal(t, stored.ID, fetched.ID)
	assert.Equal(t, domain.StagePreQualification, fetched.CurrentStage)
	assert.Equal(t, domain.StatusInitiated, fetched.CurrentStatus)
	assert.True(t, fetched.RequestedAmount.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, "Jordan", fetched.Applicant.Personal.FirstName)
	assert.Equal(t, 780, fetched.Applicant.CreditScore)
	assert.Empty(t, fetched.Decisions)

	// Unknown numbers return nil without an error.
	missing, err := pg.ApplicationByNumber(ctx, "LN-2026-NOSUCH")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPgSQL_AdvanceStageForward(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	app := storeTestApplication(t, pg, "LN-2026-ADV0000001")

	err := pg.AdvanceStage(ctx, app.ID, domain.StagePreQualification, domain.StatusApproved, "cleared")
	require.NoError(t, err)
	err = pg.AdvanceStage(ctx, app.ID, domain.StageLoanApplication, domain.StatusApproved, "cleared")
	require.NoError(t, err)

	fetched, err := pg.ApplicationByNumber(ctx, app.Number)
	require.NoError(t, err)
	assert.Equal(t, domain.StageLoanApplication, fetched.CurrentStage)
	assert.Equal(t, domain.StatusApproved, fetched.CurrentStatus)
	assert.False(t, fetched.UpdatedAt.IsZero())

	// One audit entry per call.
	logs, err := pg.AuditLogs(ctx, app.ID, storage.AuditFilter{Event: domain.AuditStageAdvanced})
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, domain.StagePreQualification, logs[0].Stage)
	assert.Equal(t, 0, logs[0].StageIndex)
	assert.Equal(t, domain.StageLoanApplication, logs[1].Stage)
	assert.Equal(t, 1, logs[1].StageIndex)
}

func TestPgSQL_AdvanceStageIdempotentReapply(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	app := storeTestApplication(t, pg, "LN-2026-IDEM000001")

	require.NoError(t, pg.AdvanceStage(ctx, app.ID,
		domain.StageLoanApplication, domain.StatusApproved, "cleared"))
	require.NoError(t, pg.AdvanceStage(ctx, app.ID,
		domain.StageLoanApplication, domain.StatusApproved, "cleared"))

	fetched, err := pg.ApplicationByNumber(ctx, app.Number)
	require.NoError(t, err)
	assert.Equal(t, domain.StageLoanApplication, fetched.CurrentStage)

	// The re-apply is a no-op on the aggregate but still audited.
	logs, err := pg.AuditLogs(ctx, app.ID, storage.AuditFilter{Event: domain.AuditStageAdvanced})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.NotContains(t, logs[0].Detail, "noop")
	assert.Equal(t, true, logs[1].Detail["noop"])
}

func TestPgSQL_AdvanceStageRejectsRegression(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	app := storeTestApplication(t, pg, "LN-2026-REGR000001")

	require.NoError(t, pg.AdvanceStage(ctx, app.ID,
		domain.StageUnderwriting, domain.StatusInProgress, ""))

	err := pg.AdvanceStage(ctx, app.ID, domain.StageLoanApplication, domain.StatusApproved, "")
	require.ErrorIs(t, err, storage.ErrStageRegression)
}

func TestPgSQL_AdvanceStageRejectsTerminal(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	app := storeTestApplication(t, pg, "LN-2026-TERM000001")

	require.NoError(t, pg.AdvanceStage(ctx, app.ID,
		domain.StageUnderwriting, domain.StatusRejected, "weak credit"))

	err := pg.AdvanceStage(ctx, app.ID, domain.StageCreditDecision, domain.StatusInProgress, "")
	require.ErrorIs(t, err, storage.ErrTerminalApplication)
}

func TestPgSQL_AppendDecisionKeepsOrder(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	app := storeTestApplication(t, pg, "LN-2026-DEC0000001")

	require.NoError(t, pg.AppendDecision(ctx, app.ID, domain.DecisionRecord{
		Stage:           domain.StageUnderwriting,
		Decision:        domain.DecisionConditional,
		Score:           78,
		NegativeFactors: []string{"debt_to_income"},
		DecidedBy:       "system",
	}))
	require.NoError(t, pg.AppendDecision(ctx, app.ID, domain.DecisionRecord{
		Stage:           domain.StageUnderwriting,
		Decision:        domain.DecisionApproved,
		Score:           78,
		PositiveFactors: []string{"collateral"},
		DecidedBy:       "11111111-1111-1111-1111-111111111111",
	}))

	fetched, err := pg.ApplicationByNumber(ctx, app.Number)
	require.NoError(t, err)
	require.Len(t, fetched.Decisions, 2)

	assert.Equal(t, domain.DecisionConditional, fetched.Decisions[0].Decision)
	assert.Equal(t, []string{"debt_to_income"}, fetched.Decisions[0].NegativeFactors)
	assert.False(t, fetched.Decisions[0].CreatedAt.IsZero())

	// The later manual record governs.
	latest := fetched.DecisionFor(domain.StageUnderwriting)
	require.NotNil(t, latest)
	assert.Equal(t, domain.DecisionApproved, latest.Decision)
}

func TestPgSQL_UpdateVerification(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	app := storeTestApplication(t, pg, "LN-2026-VERI000001")

	v := domain.Verification{
		CreditScore:        785,
		CreditScoreSource:  "simulated_bureau",
		IdentityVerified:   true,
		EmploymentVerified: true,
		Gaps:               []string{"bank: timeout"},
		RefreshedAt:        time.Now().UTC(),
	}
	require.NoError(t, pg.UpdateVerification(ctx, app.ID, v))

	fetched, err := pg.ApplicationByNumber(ctx, app.Number)
	require.NoError(t, err)
	assert.Equal(t, 785, fetched.Verification.CreditScore)
	assert.True(t, fetched.Verification.IdentityVerified)
	assert.False(t, fetched.Verification.BankVerified)
	assert.Equal(t, []string{"bank: timeout"}, fetched.Verification.Gaps)
}
