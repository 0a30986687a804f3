package rules

import (
	"context"
	"time"

	"lending/pkg/domain"
	"lending/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Input is the application data a rule set is evaluated against.
type Input struct {
	// CreditScore is the effective score, bureau-reported when available.
	CreditScore int
	// AnnualIncome is the applicant's total yearly income.
	AnnualIncome decimal.Decimal
	// LoanAmount is the requested loan amount.
	LoanAmount decimal.Decimal
	// Age is the applicant age in whole years at evaluation time.
	Age int
}

// InputFromApplication builds the evaluator input from an application.
func InputFromApplication(app *domain.Application, now time.Time) Input {
	return Input{
		CreditScore:  app.Verification.EffectiveCreditScore(app.Applicant.CreditScore),
		AnnualIncome: app.Applicant.Income.AnnualIncome.Add(app.Applicant.Income.OtherIncome),
		LoanAmount:   app.RequestedAmount,
		Age:          app.Applicant.Personal.Age(now),
	}
}

// facts exposes the input as named values for criteria conditions. The score
// fact is filled in after rule evaluation.
func (in Input) facts(score float64) map[string]float64 {
	return map[string]float64{
		"credit_score":  float64(in.CreditScore),
		"annual_income": in.AnnualIncome.InexactFloat64(),
		"loan_amount":   in.LoanAmount.InexactFloat64(),
		"age":           float64(in.Age),
		"score":         score,
	}
}

// RuleResult is the outcome of evaluating a single rule.
type RuleResult struct {
	Name   string
	Passed bool
	// Score is in [0, 100]. Higher is better.
	Score float64
	// Note carries extra context, e.g. why an unrecognized rule was skipped.
	Note string
}

const (
	scoreExcellent = 100
	scoreGood      = 80
	scoreFair      = 60
	scorePoor      = 20
	// scoreNeutral is assigned to rules this binary does not recognize. They
	// pass so a newer rule document never blocks processing.
	scoreNeutral = 50
)

// Evaluate runs every rule of the set against the input. Unknown rule names
// produce a neutral passing result and a log line instead of an error.
func Evaluate(ctx context.Context, set StageRules, in Input) []RuleResult {
	results := make([]RuleResult, 0, len(set.Rules))
	for _, rule := range set.Rules {
		res, ok := evaluateRule(rule, in)
		if !ok {
			logger.Warn(ctx, "skipping unrecognized rule",
				zap.String("rule", rule.Name))
			res = RuleResult{
				Name:   rule.Name,
				Passed: true,
				Score:  scoreNeutral,
				Note:   "unrecognized rule, treated as neutral pass",
			}
		}
		results = append(results, res)
	}

	return results
}

// AggregateScore averages the rule scores. An empty result set scores zero.
func AggregateScore(results []RuleResult) float64 {
	if len(results) == 0 {
		return 0
	}

	var sum float64
	for _, r := range results {
		sum += r.Score
	}

	return sum / float64(len(results))
}

func evaluateRule(rule Rule, in Input) (RuleResult, bool) {
	switch rule.Name {
	case "min_credit_score":
		return creditScoreRule(rule, in), true
	case "min_income":
		return minIncomeRule(rule, in), true
	case "max_loan_amount":
		return maxLoanAmountRule(rule, in), true
	case "age_bounds":
		return ageBoundsRule(rule, in), true
	default:
		return RuleResult{}, false
	}
}

// creditScoreRule scores the applicant's credit standing. The bands are fixed
// policy: 800+ is excellent, 700+ good, anything at or above the configured
// minimum fair, everything below poor and failing.
func creditScoreRule(rule Rule, in Input) RuleResult {
	minScore := int(rule.Params["min"])
	res := RuleResult{Name: rule.Name, Passed: in.CreditScore >= minScore}

	switch {
	case in.CreditScore >= 800:
		res.Score = scoreExcellent
	case in.CreditScore >= 700:
		res.Score = scoreGood
	case in.CreditScore >= minScore:
		res.Score = scoreFair
	default:
		res.Score = scorePoor
	}

	return res
}

func minIncomeRule(rule Rule, in Input) RuleResult {
	minIncome := decimal.NewFromFloat(rule.Params["min"])
	res := RuleResult{Name: rule.Name, Passed: in.AnnualIncome.GreaterThanOrEqual(minIncome)}

	switch {
	case in.AnnualIncome.GreaterThanOrEqual(minIncome.Mul(decimal.NewFromInt(2))):
		res.Score = scoreExcellent
	case in.AnnualIncome.GreaterThanOrEqual(minIncome.Mul(decimal.NewFromFloat(1.5))):
		res.Score = scoreGood
	case res.Passed:
		res.Score = scoreFair
	default:
		res.Score = scorePoor
	}

	return res
}

func maxLoanAmountRule(rule Rule, in Input) RuleResult {
	maxAmount := decimal.NewFromFloat(rule.Params["max"])
	res := RuleResult{Name: rule.Name, Passed: in.LoanAmount.LessThanOrEqual(maxAmount)}

	switch {
	case in.LoanAmount.LessThanOrEqual(maxAmount.Mul(decimal.NewFromFloat(0.5))):
		res.Score = scoreExcellent
	case in.LoanAmount.LessThanOrEqual(maxAmount.Mul(decimal.NewFromFloat(0.8))):
		res.Score = scoreGood
	case res.Passed:
		res.Score = scoreFair
	default:
		res.Score = scorePoor
	}

	return res
}

// ageBoundsRule passes inside [min, max]. Ages within two years of either
// bound pass with a reduced score; the margin surfaces borderline applicants
// without rejecting them.
func ageBoundsRule(rule Rule, in Input) RuleResult {
	minAge := int(rule.Params["min"])
	maxAge := int(rule.Params["max"])
	res := RuleResult{Name: rule.Name, Passed: in.Age >= minAge && in.Age <= maxAge}

	switch {
	case !res.Passed:
		res.Score = scorePoor
	case in.Age < minAge+2 || in.Age > maxAge-2:
		res.Score = 70
	default:
		res.Score = scoreExcellent
	}

	return res
}
