package review

import (
	"testing"
	"time"

	"lending/internal/stages"
	"lending/pkg/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTriggersApprovedSmallAmount(t *testing.T) {
	app := &domain.Application{RequestedAmount: decimal.NewFromInt(100000)}
	res := stages.Result{Decision: domain.DecisionApproved, Score: 92}

	assert.Nil(t, EvaluateTriggers(app, domain.StageUnderwriting, res, decimal.NewFromInt(1000000)))
}

func TestEvaluateTriggersConditionalScore(t *testing.T) {
	app := &domain.Application{RequestedAmount: decimal.NewFromInt(100000)}
	res := stages.Result{Decision: domain.DecisionConditional, Score: 72}

	trig := EvaluateTriggers(app, domain.StageUnderwriting, res, decimal.NewFromInt(1000000))
	require.NotNil(t, trig)
	assert.Equal(t, TypeConditionalScore, trig.Type)
	assert.Equal(t, domain.ReviewPriorityNormal, trig.Priority)
	assert.Equal(t, RoleUnderwriter, trig.Role)
	assert.Equal(t, 24*time.Hour, trig.Priority.DueAfter())
}

// A conditional score on a large loan: the amount family outranks the score
// band and the task becomes high priority with a 12 hour window.
func TestEvaluateTriggersConditionalPlusHighAmount(t *testing.T) {
	app := &domain.Application{RequestedAmount: decimal.NewFromInt(1500000)}
	res := stages.Result{Decision: domain.DecisionConditional, Score: 72}

	trig := EvaluateTriggers(app, domain.StageUnderwriting, res, decimal.NewFromInt(1000000))
	require.NotNil(t, trig)
	assert.Equal(t, TypeHighAmount, trig.Type)
	assert.Equal(t, domain.ReviewPriorityHigh, trig.Priority)
	assert.Equal(t, 12*time.Hour, trig.Priority.DueAfter())
}

// Large loans need human sign-off at the committee stage even when the
// automation approves them.
func TestEvaluateTriggersHighAmountFiresAtCreditDecision(t *testing.T) {
	app := &domain.Application{RequestedAmount: decimal.NewFromInt(1500000)}
	res := stages.Result{Decision: domain.DecisionApproved, Score: 90}

	trig := EvaluateTriggers(app, domain.StageCreditDecision, res, decimal.NewFromInt(1000000))
	require.NotNil(t, trig)
	assert.Equal(t, TypeHighAmount, trig.Type)
	assert.Equal(t, domain.ReviewPriorityHigh, trig.Priority)
	assert.Equal(t, RoleSeniorUnderwriter, trig.Role)
}

// At other stages a clean approval of a large loan does not re-trigger
// review; the amount family only upgrades an existing trigger there.
func TestEvaluateTriggersHighAmountAloneSilentElsewhere(t *testing.T) {
	app := &domain.Application{RequestedAmount: decimal.NewFromInt(1500000)}
	res := stages.Result{Decision: domain.DecisionApproved, Score: 90}

	assert.Nil(t, EvaluateTriggers(app, domain.StageQualityCheck, res, decimal.NewFromInt(1000000)))
}

func TestEvaluateTriggersSevereRiskIsUrgent(t *testing.T) {
	app := &domain.Application{RequestedAmount: decimal.NewFromInt(100000)}
	res := stages.Result{
		Decision:    domain.DecisionConditional,
		Score:       71,
		RiskFactors: []string{"debt-to-income above policy limit"},
	}

	trig := EvaluateTriggers(app, domain.StageUnderwriting, res, decimal.NewFromInt(1000000))
	require.NotNil(t, trig)
	assert.Equal(t, TypeRiskFlag, trig.Type)
	assert.Equal(t, domain.ReviewPriorityUrgent, trig.Priority)
	assert.Equal(t, RoleSeniorUnderwriter, trig.Role)
	assert.Equal(t, 4*time.Hour, trig.Priority.DueAfter())
}

func TestEvaluateTriggersRejectionNeverReviews(t *testing.T) {
	app := &domain.Application{RequestedAmount: decimal.NewFromInt(2000000)}
	res := stages.Result{
		Decision:    domain.DecisionRejected,
		Score:       40,
		RiskFactors: []string{"high-risk credit profile"},
	}

	assert.Nil(t, EvaluateTriggers(app, domain.StageCreditDecision, res, decimal.NewFromInt(1000000)))
}

// Escalations, high amounts and risk flags need a senior underwriter; routine
// reviews accept any underwriter. Seniors qualify downward, never the reverse.
func TestRequiredRoleAndHierarchy(t *testing.T) {
	assert.Equal(t, RoleUnderwriter, RequiredRole(TypeConditionalScore))
	assert.Equal(t, RoleUnderwriter, RequiredRole(TypeReferBack))
	assert.Equal(t, RoleSeniorUnderwriter, RequiredRole(TypeHighAmount))
	assert.Equal(t, RoleSeniorUnderwriter, RequiredRole(TypeRiskFlag))
	assert.Equal(t, RoleSeniorUnderwriter, RequiredRole(TypeEscalation))

	assert.True(t, roleQualifies(RoleSeniorUnderwriter, RoleUnderwriter))
	assert.False(t, roleQualifies(RoleUnderwriter, RoleSeniorUnderwriter))
	assert.False(t, roleQualifies("", RoleUnderwriter))
}

func TestEvaluateTriggersZeroThresholdDisablesAmountFamily(t *testing.T) {
	app := &domain.Application{RequestedAmount: decimal.NewFromInt(9000000)}
	res := stages.Result{Decision: domain.DecisionApproved, Score: 90}

	assert.Nil(t, EvaluateTriggers(app, domain.StageCreditDecision, res, decimal.Zero))
}
