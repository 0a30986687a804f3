// Package stages implements the automated stage processors of the loan
// pipeline. Each processor scores an application through weighted sub-checks
// and maps the composite score onto a decision through configured thresholds.
package stages

import (
	"context"
	"fmt"

	"lending/internal/rules"
	"lending/pkg/domain"
	"lending/pkg/serrors"
)

// Result is the outcome of processing one stage.
type Result struct {
	Decision domain.Decision
	// Score is the weighted composite in [0, 100].
	Score float64

	PositiveFactors []string
	NegativeFactors []string
	RiskFactors     []string
}

// Processor evaluates an application at a single stage. Implementations are
// stateless and safe for concurrent use; they read the application snapshot
// and never mutate it.
type Processor interface {
	// Stage names the stage this processor handles.
	Stage() domain.Stage
	// Process scores the application. The returned error is reserved for
	// faults (wrong stage, missing prerequisite decision); business rejection
	// is a Result, not an error.
	Process(ctx context.Context, app *domain.Application) (Result, error)
}

// subCheck is one weighted component of a stage score.
type subCheck struct {
	Name   string
	Weight float64
	Score  float64
	// Risk optionally names a risk factor surfaced by this check.
	Risk string
}

// compose builds the weighted score and the factor lists from the sub-checks.
// Checks scoring 80 or better count as positive factors, below 60 as negative.
func compose(checks []subCheck) (float64, Result) {
	var (
		score       float64
		totalWeight float64
		res         Result
	)

	for _, c := range checks {
		score += c.Weight * c.Score
		totalWeight += c.Weight

		switch {
		case c.Score >= 80:
			res.PositiveFactors = append(res.PositiveFactors, c.Name)
		case c.Score < 60:
			res.NegativeFactors = append(res.NegativeFactors, c.Name)
		}
		if c.Risk != "" {
			res.RiskFactors = append(res.RiskFactors, c.Risk)
		}
	}

	if totalWeight > 0 {
		score /= totalWeight
	}
	res.Score = score

	return score, res
}

// decideBands maps a composite score onto a decision: approve at or above
// approveAt, conditional at or above conditionalAt, rejected below.
func decideBands(score, approveAt, conditionalAt float64) domain.Decision {
	switch {
	case score >= approveAt:
		return domain.DecisionApproved
	case score >= conditionalAt:
		return domain.DecisionConditional
	default:
		return domain.DecisionRejected
	}
}

// bandsFor reads the stage's decision thresholds from the active rule
// document. The built-in defaults only apply when no registry is wired or the
// document has no bands for the stage.
func bandsFor(reg *rules.Registry,
	stage domain.Stage,
	defApprove, defConditional float64) (float64, float64) {
	if reg != nil {
		if sr, ok := reg.Current().StageRules(string(stage)); ok && sr.Thresholds.Set() {
			return sr.Thresholds.Approve, sr.Thresholds.Conditional
		}
	}

	return defApprove, defConditional
}

// requireStage guards a processor against out-of-order invocation.
func requireStage(app *domain.Application, want domain.Stage) error {
	if app.CurrentStage != want {
		return serrors.With(serrors.ErrPrecondition,
			"application %s is at stage %s, expected %s", app.Number, app.CurrentStage, want)
	}

	return nil
}

// requireDecision fetches the recorded decision of an earlier stage.
func requireDecision(app *domain.Application, stage domain.Stage) (*domain.DecisionRecord, error) {
	rec := app.DecisionFor(stage)
	if rec == nil {
		return nil, serrors.With(serrors.ErrPrecondition,
			"application %s has no %s decision on record", app.Number, stage)
	}

	return rec, nil
}

// hasGap reports whether the verification gap list mentions the given source.
func hasGap(gaps []string, source string) bool {
	for _, g := range gaps {
		if len(g) >= len(source) && g[:len(source)] == source {
			return true
		}
	}

	return false
}

// All returns the automated stage processors in pipeline order, reading their
// decision thresholds from the given rule registry.
func All(reg *rules.Registry) []Processor {
	return []Processor{
		NewApplicationProcessing(reg),
		NewUnderwriting(reg),
		NewCreditDecision(reg),
		NewQualityCheck(reg),
		NewLoanFunding(reg),
	}
}

// ByStage indexes the automated processors by their stage, preserving nothing
// about order; use All for ordered traversal.
func ByStage(reg *rules.Registry) (map[domain.Stage]Processor, error) {
	out := make(map[domain.Stage]Processor)
	for _, p := range All(reg) {
		if _, dup := out[p.Stage()]; dup {
			return nil, fmt.Errorf("duplicate processor for stage %s", p.Stage())
		}
		out[p.Stage()] = p
	}

	return out, nil
}
