package stages

import (
	"context"

	"lending/internal/rules"
	"lending/pkg/domain"

	"github.com/shopspring/decimal"
)

// CreditDecision is the committee stage: it weighs the underwriting outcome
// against the applicant's credit standing and loan affordability to produce
// the final credit verdict.
type CreditDecision struct {
	rules *rules.Registry
}

// NewCreditDecision returns the credit-decision stage processor.
func NewCreditDecision(reg *rules.Registry) *CreditDecision { return &CreditDecision{rules: reg} }

func (*CreditDecision) Stage() domain.Stage { return domain.StageCreditDecision }

const (
	creditDecisionApproveAt     = 85
	creditDecisionConditionalAt = 70

	// assumedTermMonths is the repayment horizon used for the affordability
	// estimate when no term has been negotiated yet.
	assumedTermMonths = 240
)

func (c *CreditDecision) Process(_ context.Context, app *domain.Application) (Result, error) {
	if err := requireStage(app, c.Stage()); err != nil {
		return Result{}, err
	}

	underwriting, err := requireDecision(app, domain.StageUnderwriting)
	if err != nil {
		return Result{}, err
	}

	creditScore := app.Verification.EffectiveCreditScore(app.Applicant.CreditScore)

	checks := []subCheck{
		underwritingOutcomeCheck(underwriting, 40),
		creditStandingCheck(creditScore, 35),
		affordabilityCheck(app, 25),
	}

	score, res := compose(checks)
	approveAt, conditionalAt := bandsFor(c.rules, c.Stage(),
		creditDecisionApproveAt, creditDecisionConditionalAt)
	res.Decision = decideBands(score, approveAt, conditionalAt)

	return res, nil
}

// underwritingOutcomeCheck carries the underwriting score forward, with a
// penalty when underwriting itself only granted a conditional approval.
func underwritingOutcomeCheck(rec *domain.DecisionRecord, weight float64) subCheck {
	c := subCheck{Name: "underwriting outcome", Weight: weight, Score: rec.Score}

	if rec.Decision == domain.DecisionConditional {
		c.Score -= 10
		c.Risk = "conditional underwriting approval"
	}
	if c.Score < 0 {
		c.Score = 0
	}

	return c
}

// affordabilityCheck estimates the installment burden on monthly income.
func affordabilityCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "loan affordability", Weight: weight}

	monthlyIncome := app.Applicant.Income.AnnualIncome.
		Add(app.Applicant.Income.OtherIncome).
		Div(decimal.NewFromInt(12))
	if !monthlyIncome.IsPositive() {
		c.Score = 0
		c.Risk = "no verifiable income"

		return c
	}

	installment := app.RequestedAmount.Div(decimal.NewFromInt(assumedTermMonths))
	ratio := installment.Div(monthlyIncome)

	switch {
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.3)):
		c.Score = 100
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.4)):
		c.Score = 80
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.5)):
		c.Score = 60
	default:
		c.Score = 30
		c.Risk = "installment exceeds affordable share of income"
	}

	return c
}
