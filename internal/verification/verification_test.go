package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"lending/pkg/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBureau struct {
	score int
	err   error
	delay time.Duration
}

func (s stubBureau) Name() string { return "stub_bureau" }

func (s stubBureau) CreditScore(ctx context.Context, _ domain.Applicant) (int, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	return s.score, s.err
}

type stubCheck struct {
	ok  bool
	err error
}

func (s stubCheck) VerifyIdentity(context.Context, domain.Applicant) (bool, error) {
	return s.ok, s.err
}

func (s stubCheck) VerifyEmployment(context.Context, domain.Applicant) (bool, error) {
	return s.ok, s.err
}

func (s stubCheck) VerifyBank(context.Context, domain.Applicant) (bool, error) {
	return s.ok, s.err
}

func testApplicant() domain.Applicant {
	return domain.Applicant{
		Personal: domain.Personal{
			FirstName:   "Jordan",
			LastName:    "Reyes",
			NationalID:  "AB1234567",
			DateOfBirth: time.Date(1992, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		Employment: domain.Employment{
			Employer:      "Acme Logistics",
			MonthlySalary: decimal.NewFromInt(8000),
		},
		Banking: domain.Banking{
			BankName:      "First National",
			AccountNumber: "0012345",
		},
		CreditScore: 780,
	}
}

func TestRefreshAllSourcesSucceed(t *testing.T) {
	svc := NewService(
		stubBureau{score: 785},
		stubCheck{ok: true},
		stubCheck{ok: true},
		stubCheck{ok: true},
		time.Second,
	)

	v := svc.Refresh(context.Background(), testApplicant())

	assert.Equal(t, 785, v.CreditScore)
	assert.Equal(t, "stub_bureau", v.CreditScoreSource)
	assert.True(t, v.IdentityVerified)
	assert.True(t, v.EmploymentVerified)
	assert.True(t, v.BankVerified)
	assert.Empty(t, v.Gaps)
	assert.False(t, v.RefreshedAt.IsZero())
}

func TestRefreshBureauTimeoutRecordsGapOnly(t *testing.T) {
	svc := NewService(
		stubBureau{score: 785, delay: time.Second},
		stubCheck{ok: true},
		stubCheck{ok: true},
		stubCheck{ok: true},
		10*time.Millisecond,
	)

	v := svc.Refresh(context.Background(), testApplicant())

	// The timed-out bureau leaves the score unset; the other sources still
	// verify.
	assert.Zero(t, v.CreditScore)
	assert.True(t, v.IdentityVerified)
	assert.True(t, v.EmploymentVerified)
	assert.True(t, v.BankVerified)
	require.Len(t, v.Gaps, 1)
	assert.Contains(t, v.Gaps[0], "credit_score")
}

func TestRefreshFailedSourceRecordsGap(t *testing.T) {
	svc := NewService(
		stubBureau{score: 785},
		stubCheck{err: errors.New("registry offline")},
		stubCheck{ok: true},
		stubCheck{ok: true},
		time.Second,
	)

	v := svc.Refresh(context.Background(), testApplicant())

	assert.Equal(t, 785, v.CreditScore)
	assert.False(t, v.IdentityVerified)
	require.Len(t, v.Gaps, 1)
	assert.Contains(t, v.Gaps[0], "identity")
}

func TestEffectiveScoreFallsBackToDeclared(t *testing.T) {
	v := domain.Verification{}
	assert.Equal(t, 780, v.EffectiveCreditScore(780))

	v.CreditScore = 700
	assert.Equal(t, 700, v.EffectiveCreditScore(780))
}

func TestSimulatedSourcesAreDeterministic(t *testing.T) {
	applicant := testApplicant()
	ctx := context.Background()

	first, err := SimulatedBureau{}.CreditScore(ctx, applicant)
	require.NoError(t, err)
	second, err := SimulatedBureau{}.CreditScore(ctx, applicant)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.InDelta(t, applicant.CreditScore, first, 5)

	ok, err := SimulatedIdentity{}.VerifyIdentity(ctx, applicant)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = SimulatedEmployment{}.VerifyEmployment(ctx, applicant)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = SimulatedBank{}.VerifyBank(ctx, applicant)
	require.NoError(t, err)
	assert.True(t, ok)
}
