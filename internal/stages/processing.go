package stages

import (
	"context"

	"lending/internal/rules"
	"lending/pkg/domain"
)

// ApplicationProcessing validates documentation completeness and the outcome
// of the third-party verifications. It is the only stage with a softened
// conditional band: incomplete files go to manual review instead of being
// rejected outright.
type ApplicationProcessing struct {
	rules *rules.Registry
}

// NewApplicationProcessing returns the application-processing stage processor.
func NewApplicationProcessing(reg *rules.Registry) *ApplicationProcessing {
	return &ApplicationProcessing{rules: reg}
}

func (*ApplicationProcessing) Stage() domain.Stage { return domain.StageApplicationProcessing }

// Fallback bands for rule documents without a thresholds entry.
const (
	processingApproveAt     = 85
	processingConditionalAt = 60
)

func (p *ApplicationProcessing) Process(_ context.Context, app *domain.Application) (Result, error) {
	if err := requireStage(app, p.Stage()); err != nil {
		return Result{}, err
	}

	checks := []subCheck{
		documentCheck(app, 30),
		identityCheck(app, 25),
		employmentCheck(app, 25),
		bankingCheck(app, 20),
	}

	score, res := compose(checks)
	approveAt, conditionalAt := bandsFor(p.rules, p.Stage(),
		processingApproveAt, processingConditionalAt)
	res.Decision = decideBands(score, approveAt, conditionalAt)

	return res, nil
}

// documentCheck scores the completeness of the applicant file.
func documentCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "document completeness", Weight: weight}

	missing := 0
	if app.Applicant.Personal.FirstName == "" || app.Applicant.Personal.LastName == "" {
		missing++
	}
	if app.Applicant.Personal.NationalID == "" {
		missing++
	}
	if app.Applicant.Personal.DateOfBirth.IsZero() {
		missing++
	}
	if app.Applicant.Address.Line1 == "" || app.Applicant.Address.City == "" {
		missing++
	}
	if len(app.Applicant.References) < 2 {
		missing++
	}

	switch missing {
	case 0:
		c.Score = 100
	case 1:
		c.Score = 70
		c.Risk = "incomplete applicant file"
	default:
		c.Score = 30
		c.Risk = "incomplete applicant file"
	}

	return c
}

// identityCheck scores the identity verification outcome. An unverified
// identity with a recorded data gap is softer than an explicit failure: the
// source was unreachable, not contradicting.
func identityCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "identity verification", Weight: weight}

	switch {
	case app.Verification.IdentityVerified:
		c.Score = 100
	case hasGap(app.Verification.Gaps, "identity"):
		c.Score = 60
		c.Risk = "identity source unavailable"
	default:
		c.Score = 20
		c.Risk = "identity not verified"
	}

	return c
}

func employmentCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "employment verification", Weight: weight}

	switch {
	case app.Verification.EmploymentVerified:
		c.Score = 100
	case hasGap(app.Verification.Gaps, "employment"):
		c.Score = 60
		c.Risk = "employment source unavailable"
	default:
		c.Score = 20
		c.Risk = "employment not verified"
	}

	return c
}

func bankingCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "banking verification", Weight: weight}

	switch {
	case app.Verification.BankVerified:
		c.Score = 100
	case hasGap(app.Verification.Gaps, "bank"):
		c.Score = 60
		c.Risk = "bank source unavailable"
	default:
		c.Score = 20
		c.Risk = "bank relationship not verified"
	}

	return c
}
