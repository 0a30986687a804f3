package stages

import (
	"context"

	"lending/internal/rules"
	"lending/pkg/domain"
)

// LoanFunding is the final stage: it confirms the agreement is ready, the
// disbursement route works and nothing changed since the credit decision.
type LoanFunding struct {
	rules *rules.Registry
}

// NewLoanFunding returns the loan-funding stage processor.
func NewLoanFunding(reg *rules.Registry) *LoanFunding { return &LoanFunding{rules: reg} }

func (*LoanFunding) Stage() domain.Stage { return domain.StageLoanFunding }

const (
	fundingApproveAt     = 85
	fundingConditionalAt = 70
)

func (f *LoanFunding) Process(_ context.Context, app *domain.Application) (Result, error) {
	if err := requireStage(app, f.Stage()); err != nil {
		return Result{}, err
	}

	quality, err := requireDecision(app, domain.StageQualityCheck)
	if err != nil {
		return Result{}, err
	}

	checks := []subCheck{
		agreementReadinessCheck(app, quality, 40),
		disbursementCheck(app, 35),
		finalReviewCheck(app, 25),
	}

	score, res := compose(checks)
	approveAt, conditionalAt := bandsFor(f.rules, f.Stage(),
		fundingApproveAt, fundingConditionalAt)
	res.Decision = decideBands(score, approveAt, conditionalAt)

	return res, nil
}

// agreementReadinessCheck confirms the file passed quality review cleanly.
func agreementReadinessCheck(app *domain.Application, quality *domain.DecisionRecord, weight float64) subCheck {
	c := subCheck{Name: "agreement readiness", Weight: weight}

	switch quality.Decision {
	case domain.DecisionApproved:
		c.Score = 100
	case domain.DecisionConditional:
		c.Score = 70
		c.Risk = "funding a conditionally approved file"
	default:
		c.Score = 0
	}

	if app.Applicant.Personal.NationalID == "" {
		c.Score = 0
		c.Risk = "cannot execute agreement without identity document"
	}

	return c
}

// disbursementCheck confirms the payout route.
func disbursementCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "disbursement setup", Weight: weight}

	switch {
	case app.Applicant.Banking.AccountNumber == "":
		c.Score = 0
		c.Risk = "no disbursement account on file"
	case app.Verification.BankVerified:
		c.Score = 100
	default:
		c.Score = 60
		c.Risk = "disbursement account not verified"
	}

	return c
}

// finalReviewCheck is the last look before money moves.
func finalReviewCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "final review", Weight: weight, Score: 100}

	if len(app.Verification.Gaps) > 0 {
		c.Score = 70
		c.Risk = "funding with verification gaps on file"
	}
	if !app.RequestedAmount.IsPositive() {
		c.Score = 0
		c.Risk = "non-positive funding amount"
	}

	return c
}
