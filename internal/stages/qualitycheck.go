package stages

import (
	"context"

	"lending/internal/rules"
	"lending/pkg/domain"
)

// QualityCheck audits the file before funding: the recorded decisions must be
// consistent, the documentation complete and the compliance posture clean.
type QualityCheck struct {
	rules *rules.Registry
}

// NewQualityCheck returns the quality-check stage processor.
func NewQualityCheck(reg *rules.Registry) *QualityCheck { return &QualityCheck{rules: reg} }

func (*QualityCheck) Stage() domain.Stage { return domain.StageQualityCheck }

const (
	qualityApproveAt     = 85
	qualityConditionalAt = 70
)

func (q *QualityCheck) Process(_ context.Context, app *domain.Application) (Result, error) {
	if err := requireStage(app, q.Stage()); err != nil {
		return Result{}, err
	}

	// The audit only makes sense once the deciding stages are on record.
	if _, err := requireDecision(app, domain.StageUnderwriting); err != nil {
		return Result{}, err
	}
	if _, err := requireDecision(app, domain.StageCreditDecision); err != nil {
		return Result{}, err
	}

	checks := []subCheck{
		decisionConsistencyCheck(app, 40),
		documentCheck(app, 35),
		complianceCheck(app, 25),
	}

	score, res := compose(checks)
	approveAt, conditionalAt := bandsFor(q.rules, q.Stage(),
		qualityApproveAt, qualityConditionalAt)
	res.Decision = decideBands(score, approveAt, conditionalAt)

	return res, nil
}

// decisionConsistencyCheck verifies the decision trail: every decided stage
// approved cleanly, or at worst conditionally.
func decisionConsistencyCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "decision consistency", Weight: weight, Score: 100}

	for _, rec := range app.Decisions {
		switch rec.Decision {
		case domain.DecisionConditional:
			if c.Score > 70 {
				c.Score = 70
				c.Risk = "conditional approval in decision trail"
			}
		case domain.DecisionRejected:
			// A rejection on file for an application that reached this stage
			// means the trail is inconsistent.
			c.Score = 0
			c.Risk = "rejected decision in trail of an active application"
		case domain.DecisionApproved:
		}
	}

	return c
}

// complianceCheck penalizes unverifiable data sources.
func complianceCheck(app *domain.Application, weight float64) subCheck {
	c := subCheck{Name: "compliance posture", Weight: weight, Score: 100}

	deduction := float64(len(app.Verification.Gaps)) * 25
	c.Score -= deduction
	if c.Score < 0 {
		c.Score = 0
	}
	if deduction > 0 {
		c.Risk = "verification gaps on file"
	}

	return c
}
