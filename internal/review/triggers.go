// Package review routes applications that the automated pipeline cannot
// decide on its own to human reviewers: trigger evaluation, task queueing,
// capacity-aware assignment and decision recording.
package review

import (
	"lending/internal/stages"
	"lending/pkg/domain"

	"github.com/shopspring/decimal"
)

// Review type names recorded on tasks.
const (
	TypeConditionalScore = "conditional_score"
	TypeHighAmount       = "high_amount"
	TypeRiskFlag         = "risk_flag"
	TypeEscalation       = "escalation"
	TypeReferBack        = "refer_back"
)

// Reviewer roles known to the assignment rules. Senior underwriters qualify
// for everything; plain underwriters only for routine reviews.
const (
	RoleUnderwriter       = "underwriter"
	RoleSeniorUnderwriter = "senior_underwriter"
)

// Trigger describes why an application needs manual review, how urgently and
// which reviewer role it takes.
type Trigger struct {
	Type     string
	Priority domain.ReviewPriority
	Reason   string
	// Role is the minimum reviewer role allowed to decide the task.
	Role string
}

// RequiredRole maps a review type onto the minimum reviewer role: escalations,
// high amounts and risk flags need a senior underwriter, routine reviews any
// underwriter.
func RequiredRole(reviewType string) string {
	switch reviewType {
	case TypeHighAmount, TypeRiskFlag, TypeEscalation:
		return RoleSeniorUnderwriter
	default:
		return RoleUnderwriter
	}
}

// roleRank orders the reviewer roles; higher ranks qualify for lower ones.
var roleRank = map[string]int{ //nolint: gochecknoglobals
	RoleUnderwriter:       1,
	RoleSeniorUnderwriter: 2,
}

// roleQualifies reports whether a reviewer with the given role may take a task
// requiring the other. Unknown reviewer roles never qualify.
func roleQualifies(role, required string) bool {
	return roleRank[role] >= roleRank[required]
}

// riskMarkers are the stage risk factors severe enough to demand urgent
// review on their own.
var riskMarkers = map[string]struct{}{ //nolint: gochecknoglobals
	"high-risk credit profile":          {},
	"debt-to-income above policy limit": {},
	"loan exceeds collateral coverage":  {},
}

// EvaluateTriggers checks a stage result against the manual-review trigger
// families and returns the strongest applicable trigger, or nil when the
// result needs no human attention. The families, weakest first:
//
//   - a conditional decision (score in the soft band) -> normal priority;
//   - a requested amount above the review threshold -> high priority;
//   - a severe risk factor -> urgent priority.
//
// The amount family always fires at the credit-decision stage, where large
// loans need human sign-off even when the automation approves. At every other
// stage it only upgrades a review that another family already triggered, so a
// large but otherwise clean loan passes through review exactly once.
func EvaluateTriggers(app *domain.Application,
	stage domain.Stage,
	res stages.Result,
	amountThreshold decimal.Decimal) *Trigger {
	var trig *Trigger

	if res.Decision == domain.DecisionConditional {
		trig = &Trigger{
			Type:     TypeConditionalScore,
			Priority: domain.ReviewPriorityNormal,
			Reason:   "score in conditional band",
			Role:     RequiredRole(TypeConditionalScore),
		}
	}

	if res.Decision != domain.DecisionRejected &&
		(trig != nil || stage == domain.StageCreditDecision) &&
		amountThreshold.IsPositive() &&
		app.RequestedAmount.GreaterThan(amountThreshold) {
		trig = &Trigger{
			Type:     TypeHighAmount,
			Priority: domain.ReviewPriorityHigh,
			Reason:   "requested amount above review threshold",
			Role:     RequiredRole(TypeHighAmount),
		}
	}

	if res.Decision != domain.DecisionRejected {
		for _, risk := range res.RiskFactors {
			if _, severe := riskMarkers[risk]; severe {
				trig = &Trigger{
					Type:     TypeRiskFlag,
					Priority: domain.ReviewPriorityUrgent,
					Reason:   risk,
					Role:     RequiredRole(TypeRiskFlag),
				}

				break
			}
		}
	}

	return trig
}
