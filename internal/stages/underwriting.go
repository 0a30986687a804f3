package stages

import (
	"context"

	"lending/internal/rules"
	"lending/pkg/domain"

	"github.com/shopspring/decimal"
)

// Underwriting assesses the credit risk of the application: overall risk
// profile, debt-to-income, collateral coverage and credit standing.
type Underwriting struct {
	rules *rules.Registry
}

// NewUnderwriting returns the underwriting stage processor.
func NewUnderwriting(reg *rules.Registry) *Underwriting { return &Underwriting{rules: reg} }

func (*Underwriting) Stage() domain.Stage { return domain.StageUnderwriting }

const (
	underwritingApproveAt     = 85
	underwritingConditionalAt = 70
)

func (u *Underwriting) Process(_ context.Context, app *domain.Application) (Result, error) {
	if err := requireStage(app, u.Stage()); err != nil {
		return Result{}, err
	}

	creditScore := app.Verification.EffectiveCreditScore(app.Applicant.CreditScore)

	checks := []subCheck{
		riskAssessmentCheck(app, creditScore, 35),
		debtToIncomeCheck(app, 25),
		collateralCheck(app, 20),
		creditStandingCheck(creditScore, 20),
	}

	score, res := compose(checks)
	approveAt, conditionalAt := bandsFor(u.rules, u.Stage(),
		underwritingApproveAt, underwritingConditionalAt)
	res.Decision = decideBands(score, approveAt, conditionalAt)

	return res, nil
}

// riskAssessmentCheck scores the overall risk profile from the credit
// standing, employment stability and verification gaps.
func riskAssessmentCheck(app *domain.Application, creditScore int, weight float64) subCheck {
	c := subCheck{Name: "risk assessment", Weight: weight}

	switch {
	case creditScore >= 750:
		c.Score = 100
	case creditScore >= 700:
		c.Score = 85
	case creditScore >= 650:
		c.Score = 70
	case creditScore >= 600:
		c.Score = 55
	default:
		c.Score = 30
		c.Risk = "high-risk credit profile"
	}

	if app.Applicant.Employment.YearsEmployed < 2 {
		c.Score -= 10
		c.Risk = "short employment history"
	}
	// Each unverifiable source adds uncertainty.
	c.Score -= float64(len(app.Verification.Gaps)) * 10
	if c.Score < 0 {
		c.Score = 0
	}

	return c
}

// debtToIncomeCheck scores existing monthly obligations against gross monthly
// income.
func debtToIncomeCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "debt-to-income ratio", Weight: weight}

	monthlyIncome := app.Applicant.Income.AnnualIncome.
		Add(app.Applicant.Income.OtherIncome).
		Div(decimal.NewFromInt(12))
	if !monthlyIncome.IsPositive() {
		c.Score = 0
		c.Risk = "no verifiable income"

		return c
	}

	dti := app.Applicant.Income.MonthlyDebt.Div(monthlyIncome)

	switch {
	case dti.LessThanOrEqual(decimal.NewFromFloat(0.2)):
		c.Score = 100
	case dti.LessThanOrEqual(decimal.NewFromFloat(0.35)):
		c.Score = 80
	case dti.LessThanOrEqual(decimal.NewFromFloat(0.45)):
		c.Score = 60
	default:
		c.Score = 30
		c.Risk = "debt-to-income above policy limit"
	}

	return c
}

// collateralCheck scores the loan-to-value ratio. Unsecured requests score a
// flat 60: acceptable, never a strength.
func collateralCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "collateral coverage", Weight: weight}

	if !app.Applicant.CollateralValue.IsPositive() {
		c.Score = 60

		return c
	}

	ltv := app.RequestedAmount.Div(app.Applicant.CollateralValue)

	switch {
	case ltv.LessThanOrEqual(decimal.NewFromFloat(0.6)):
		c.Score = 100
	case ltv.LessThanOrEqual(decimal.NewFromFloat(0.8)):
		c.Score = 80
	case ltv.LessThanOrEqual(decimal.NewFromFloat(0.9)):
		c.Score = 60
	default:
		c.Score = 30
		c.Risk = "loan exceeds collateral coverage"
	}

	return c
}

// creditStandingCheck applies the standard credit bands.
func creditStandingCheck(creditScore int, weight float64) subCheck {
	c := subCheck{Name: "credit standing", Weight: weight}

	switch {
	case creditScore >= 800:
		c.Score = 100
	case creditScore >= 700:
		c.Score = 80
	case creditScore >= 600:
		c.Score = 60
	default:
		c.Score = 20
		c.Risk = "credit score below lending floor"
	}

	return c
}
