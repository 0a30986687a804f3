package intake

import (
	"context"
	"testing"
	"time"

	"lending/internal/jobs"
	"lending/internal/review"
	"lending/internal/rules"
	"lending/pkg/domain"
	"lending/pkg/serrors"
	"lending/pkg/storage"
	mockstorage "lending/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intakeRules() *rules.Registry {
	return rules.NewRegistry(&rules.Document{
		Version: 1,
		Stages: map[string]rules.StageRules{
			"pre_qualification": {
				Rules: []rules.Rule{
					{Name: "min_credit_score", Params: map[string]float64{"min": 600}},
					{Name: "min_income", Params: map[string]float64{"min": 30000}},
					{Name: "max_loan_amount", Params: map[string]float64{"max": 5000000}},
					{Name: "age_bounds", Params: map[string]float64{"min": 21, "max": 65}},
				},
				Criteria: rules.Criteria{
					AutoApprove: []rules.Condition{{Field: "score", Op: rules.OpGte, Value: 60}},
					AutoReject:  []rules.Condition{{Field: "credit_score", Op: rules.OpLt, Value: 500}},
				},
			},
			"loan_application": {
				Rules: []rules.Rule{
					{Name: "min_credit_score", Params: map[string]float64{"min": 600}},
					{Name: "min_income", Params: map[string]float64{"min": 30000}},
					{Name: "max_loan_amount", Params: map[string]float64{"max": 5000000}},
				},
				Criteria: rules.Criteria{
					AutoApprove: []rules.Condition{{Field: "score", Op: rules.OpGte, Value: 70}},
					AutoReject:  []rules.Condition{{Field: "score", Op: rules.OpLt, Value: 40}},
				},
			},
		},
	})
}

func newMocks(t *testing.T) (*mockstorage.MockStorage, *mockstorage.MockAllStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)

	st := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		}).AnyTimes()

	return st, tx
}

func goodSubmission() Submission {
	return Submission{
		Amount: decimal.NewFromInt(500000),
		Applicant: domain.Applicant{
			Personal: domain.Personal{
				FirstName:   "Jordan",
				LastName:    "Reyes",
				NationalID:  "AB1234567",
				DateOfBirth: time.Date(1992, 3, 14, 0, 0, 0, 0, time.UTC),
			},
			Income:      domain.Income{AnnualIncome: decimal.NewFromInt(96000)},
			CreditScore: 780,
		},
	}
}

func expectStore(tx *mockstorage.MockAllStorage) {
	tx.EXPECT().StoreApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, app domain.Application) (*domain.Application, error) {
			stored := app
			stored.ID = domain.ApplicationID(uuid.New())

			return &stored, nil
		})
}

func TestSubmitCleanApplicantQueuesPipeline(t *testing.T) {
	st, tx := newMocks(t)
	st.EXPECT().ApplicationByNumber(gomock.Any(), gomock.Any()).Return(nil, nil)
	expectStore(tx)

	tx.EXPECT().AppendDecision(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	tx.EXPECT().AdvanceStage(gomock.Any(), gomock.Any(),
		domain.StagePreQualification, domain.StatusApproved, gomock.Any()).Return(nil)
	tx.EXPECT().AdvanceStage(gomock.Any(), gomock.Any(),
		domain.StageLoanApplication, domain.StatusApproved, gomock.Any()).Return(nil)
	tx.EXPECT().AddJob(gomock.Any(), gomock.AssignableToTypeOf(jobs.ProcessApplicationArgs{}), gomock.Nil()).
		Return(true, nil)

	svc := NewService(st, intakeRules(), review.NewService(st, review.Options{}))
	app, err := svc.Submit(context.Background(), goodSubmission())
	require.NoError(t, err)

	assert.Equal(t, domain.StageLoanApplication, app.CurrentStage)
	assert.Equal(t, domain.StatusApproved, app.CurrentStatus)
	assert.NotEmpty(t, app.Number)
}

func TestSubmitVeryLowCreditRejectsAtPreQualification(t *testing.T) {
	st, tx := newMocks(t)
	st.EXPECT().ApplicationByNumber(gomock.Any(), gomock.Any()).Return(nil, nil)
	expectStore(tx)

	tx.EXPECT().AppendDecision(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.ApplicationID, rec domain.DecisionRecord) error {
			assert.Equal(t, domain.StagePreQualification, rec.Stage)
			assert.Equal(t, domain.DecisionRejected, rec.Decision)

			return nil
		})
	tx.EXPECT().AdvanceStage(gomock.Any(), gomock.Any(),
		domain.StagePreQualification, domain.StatusRejected, gomock.Any()).Return(nil)
	// No pipeline job for a rejected application.

	sub := goodSubmission()
	sub.Applicant.CreditScore = 450

	svc := NewService(st, intakeRules(), review.NewService(st, review.Options{}))
	app, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, domain.StagePreQualification, app.CurrentStage)
	assert.Equal(t, domain.StatusRejected, app.CurrentStatus)
}

// A borderline profile the rules cannot decide goes to the review backlog.
func TestSubmitUndecidableGoesUnderReview(t *testing.T) {
	st, tx := newMocks(t)
	st.EXPECT().ApplicationByNumber(gomock.Any(), gomock.Any()).Return(nil, nil)
	expectStore(tx)

	// Poor but not auto-reject credit, thin income and a near-limit amount:
	// aggregate below the approve bar at pre-qualification, above the reject
	// bar.
	sub := goodSubmission()
	sub.Amount = decimal.NewFromInt(4500000)
	sub.Applicant.CreditScore = 560
	sub.Applicant.Income.AnnualIncome = decimal.NewFromInt(20000)

	tx.EXPECT().AppendDecision(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdvanceStage(gomock.Any(), gomock.Any(),
		domain.StagePreQualification, domain.StatusUnderReview, gomock.Any()).Return(nil)

	st.EXPECT().UpsertReviewTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task domain.ReviewTask) (*domain.ReviewTask, error) {
			assert.Equal(t, review.TypeConditionalScore, task.ReviewType)
			assert.Equal(t, domain.ReviewPriorityNormal, task.Priority)

			return &task, nil
		})
	st.EXPECT().InsertAuditLog(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewService(st, intakeRules(), review.NewService(st, review.Options{}))
	app, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusUnderReview, app.CurrentStatus)
}

func TestSubmitRejectsNonPositiveAmount(t *testing.T) {
	st, _ := newMocks(t)

	sub := goodSubmission()
	sub.Amount = decimal.Zero

	svc := NewService(st, intakeRules(), review.NewService(st, review.Options{}))
	_, err := svc.Submit(context.Background(), sub)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestSubmitDuplicateNumber(t *testing.T) {
	st, _ := newMocks(t)
	st.EXPECT().ApplicationByNumber(gomock.Any(), "LN-2026-DUP").
		Return(&domain.Application{Number: "LN-2026-DUP"}, nil)

	sub := goodSubmission()
	sub.Number = "LN-2026-DUP"

	svc := NewService(st, intakeRules(), review.NewService(st, review.Options{}))
	_, err := svc.Submit(context.Background(), sub)
	require.ErrorIs(t, err, serrors.ErrConflict)
}
