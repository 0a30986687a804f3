package rules

// Outcome is the verdict of applying decision criteria to an evaluated rule
// set.
type Outcome string

const (
	OutcomeAutoApprove  Outcome = "auto_approve"
	OutcomeAutoReject   Outcome = "auto_reject"
	OutcomeManualReview Outcome = "manual_review"
)

// Decide applies the stage criteria to the evaluated input. Both condition
// lists are always checked; when the approve and reject lists fire at the same
// time the rejection wins. When neither fires the application goes to manual
// review.
func Decide(set StageRules, in Input, results []RuleResult) Outcome {
	facts := in.facts(AggregateScore(results))

	approve := conditionsHold(set.Criteria.AutoApprove, facts)
	reject := conditionsHold(set.Criteria.AutoReject, facts)

	switch {
	case reject:
		return OutcomeAutoReject
	case approve:
		return OutcomeAutoApprove
	default:
		return OutcomeManualReview
	}
}

// conditionsHold reports whether every condition in the list holds. An empty
// list never fires.
func conditionsHold(conds []Condition, facts map[string]float64) bool {
	if len(conds) == 0 {
		return false
	}

	for _, c := range conds {
		value, ok := facts[c.Field]
		if !ok {
			return false
		}
		if !compare(value, c.Op, c.Value) {
			return false
		}
	}

	return true
}

func compare(value float64, op Op, target float64) bool {
	switch op {
	case OpGte:
		return value >= target
	case OpGt:
		return value > target
	case OpLte:
		return value <= target
	case OpLt:
		return value < target
	case OpEq:
		return value == target
	default:
		return false
	}
}
