package rules

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() StageRules {
	return StageRules{
		Rules: []Rule{
			{Name: "min_credit_score", Params: map[string]float64{"min": 600}},
			{Name: "min_income", Params: map[string]float64{"min": 30000}},
			{Name: "max_loan_amount", Params: map[string]float64{"max": 5000000}},
			{Name: "age_bounds", Params: map[string]float64{"min": 21, "max": 65}},
		},
	}
}

func TestEvaluateCreditScoreBands(t *testing.T) {
	set := StageRules{Rules: []Rule{
		{Name: "min_credit_score", Params: map[string]float64{"min": 600}},
	}}

	cases := []struct {
		name   string
		score  int
		want   float64
		passed bool
	}{
		{"excellent", 810, 100, true},
		{"excellent boundary", 800, 100, true},
		{"good", 780, 80, true},
		{"good boundary", 700, 80, true},
		{"fair", 640, 60, true},
		{"fair boundary", 600, 60, true},
		{"poor", 560, 20, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results := Evaluate(context.Background(), set, Input{CreditScore: tc.score})
			require.Len(t, results, 1)
			assert.Equal(t, tc.want, results[0].Score)
			assert.Equal(t, tc.passed, results[0].Passed)
		})
	}
}

func TestEvaluateIncomeBands(t *testing.T) {
	set := StageRules{Rules: []Rule{
		{Name: "min_income", Params: map[string]float64{"min": 30000}},
	}}

	cases := []struct {
		name   string
		income int64
		want   float64
		passed bool
	}{
		{"double minimum", 60000, 100, true},
		{"one and a half", 45000, 80, true},
		{"at minimum", 30000, 60, true},
		{"below minimum", 25000, 20, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := Input{AnnualIncome: decimal.NewFromInt(tc.income)}
			results := Evaluate(context.Background(), set, in)
			require.Len(t, results, 1)
			assert.Equal(t, tc.want, results[0].Score)
			assert.Equal(t, tc.passed, results[0].Passed)
		})
	}
}

func TestEvaluateAgeBounds(t *testing.T) {
	set := StageRules{Rules: []Rule{
		{Name: "age_bounds", Params: map[string]float64{"min": 21, "max": 65}},
	}}

	cases := []struct {
		name   string
		age    int
		want   float64
		passed bool
	}{
		{"comfortably inside", 34, 100, true},
		{"near lower bound", 21, 70, true},
		{"near upper bound", 65, 70, true},
		{"below", 19, 20, false},
		{"above", 70, 20, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results := Evaluate(context.Background(), set, Input{Age: tc.age})
			require.Len(t, results, 1)
			assert.Equal(t, tc.want, results[0].Score)
			assert.Equal(t, tc.passed, results[0].Passed)
		})
	}
}

func TestEvaluateUnknownRuleIsNeutralPass(t *testing.T) {
	set := StageRules{Rules: []Rule{
		{Name: "phase_of_the_moon", Params: map[string]float64{"full": 1}},
	}}

	results := Evaluate(context.Background(), set, Input{})
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
	assert.Equal(t, float64(scoreNeutral), results[0].Score)
	assert.NotEmpty(t, results[0].Note)
}

func TestAggregateScore(t *testing.T) {
	assert.Zero(t, AggregateScore(nil))

	results := []RuleResult{{Score: 100}, {Score: 60}, {Score: 80}}
	assert.InDelta(t, 80, AggregateScore(results), 0.001)
}

func TestEvaluateCleanApplicant(t *testing.T) {
	in := Input{
		CreditScore:  780,
		AnnualIncome: decimal.NewFromInt(96000),
		LoanAmount:   decimal.NewFromInt(500000),
		Age:          34,
	}

	results := Evaluate(context.Background(), testSet(), in)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.True(t, r.Passed, r.Name)
	}
	assert.GreaterOrEqual(t, AggregateScore(results), float64(75))
}
