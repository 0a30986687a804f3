// Package pipeline drives a loan application through the automated stages.
// The orchestrator walks the fixed stage order, persists every decision
// atomically, halts on anything but a clean approval and records the full
// lifecycle in the audit trail. It never retries and never skips a stage.
package pipeline

import (
	"context"
	"time"

	"lending/internal/review"
	"lending/internal/rules"
	"lending/internal/stages"
	"lending/internal/verification"
	"lending/pkg/domain"
	"lending/pkg/logger"
	"lending/pkg/metrics"
	"lending/pkg/serrors"
	"lending/pkg/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options configures the orchestrator.
type Options struct {
	// ReviewAmountThreshold routes loans above this amount to manual review
	// regardless of the automated decision. Zero disables the family.
	ReviewAmountThreshold decimal.Decimal
}

// Orchestrator runs the automated part of the loan workflow.
type Orchestrator struct {
	storage    storage.Storage
	verifier   *verification.Service
	reviews    *review.Service
	processors []stages.Processor
	locks      *keyedMutex
	opts       Options
}

// New creates an orchestrator over the standard stage processors, with their
// decision thresholds served by the given rule registry.
func New(st storage.Storage,
	verifier *verification.Service,
	reviews *review.Service,
	reg *rules.Registry,
	opts Options) *Orchestrator {
	return &Orchestrator{
		storage:    st,
		verifier:   verifier,
		reviews:    reviews,
		processors: stages.All(reg),
		locks:      newKeyedMutex(),
		opts:       opts,
	}
}

// Run processes the application through every remaining automated stage.
// Runs for the same application are serialized; runs for different
// applications proceed in parallel.
//
// The walk halts the moment a stage does not approve cleanly: rejection
// finalizes the application, a review trigger parks it under review, a stage
// fault records the error status. A halted run returns nil; the error return
// is reserved for faults.
func (o *Orchestrator) Run(ctx context.Context, number string) (err error) {
	unlock := o.locks.Lock(number)
	defer unlock()

	ctx = logger.WithFields(ctx, zap.String("applicationNumber", number))

	app, err := o.storage.ApplicationByNumber(ctx, number)
	if err != nil {
		return err
	}
	if app == nil {
		return serrors.With(serrors.ErrNotFound, "application %s not found", number)
	}

	if app.CurrentStatus.IsTerminal() {
		logger.Info(ctx, "application already finalized, nothing to do",
			zap.String("status", string(app.CurrentStatus)))

		return nil
	}
	if app.CurrentStatus != domain.StatusApproved {
		return serrors.With(serrors.ErrPrecondition,
			"application %s is %s at stage %s, automated processing requires an approved stage",
			number, app.CurrentStatus, app.CurrentStage)
	}

	started := time.Now()
	run := &runState{app: app, started: started}

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "stage processor panicked", zap.Any("panic", r))
			err = serrors.With(serrors.ErrInternal, "stage processor panicked: %v", r)
			o.recordFault(ctx, run, err)
		}
	}()

	o.audit(ctx, run, domain.AuditWorkflowStarted, map[string]any{
		"fromStage": string(app.CurrentStage),
	})

	o.refreshVerification(ctx, app)

	outcome, err := o.walkStages(ctx, run)
	if err != nil {
		o.recordFault(ctx, run, err)

		return err
	}

	metrics.PipelineRuns.WithLabelValues(outcome).Inc()
	logger.Info(ctx, "workflow run finished",
		zap.String("outcome", outcome),
		zap.Duration("elapsed", time.Since(started)))

	return nil
}

// runState carries the mutable state of one workflow run.
type runState struct {
	app     *domain.Application
	started time.Time
}

// Run outcomes reported through the pipeline metric.
const (
	outcomeApproved    = "approved"
	outcomeRejected    = "rejected"
	outcomeUnderReview = "under_review"
	outcomeError       = "error"
)

// refreshVerification performs the best-effort third-party refresh. A failure
// to persist the refresh is logged and ignored: the stage processors fall
// back to the data declared at intake.
func (o *Orchestrator) refreshVerification(ctx context.Context, app *domain.Application) {
	v := o.verifier.Refresh(ctx, app.Applicant)
	if err := o.storage.UpdateVerification(ctx, app.ID, v); err != nil {
		logger.Error(ctx, "could not persist verification refresh", zap.Error(err))

		return
	}
	app.Verification = v

	logger.Info(ctx, "third-party data refreshed",
		zap.Int("creditScore", v.CreditScore),
		zap.Strings("gaps", v.Gaps))
}

// walkStages processes every automated stage after the application's current
// one, in order.
func (o *Orchestrator) walkStages(ctx context.Context, run *runState) (string, error) {
	app := run.app

	for _, proc := range o.processors {
		stage := proc.Stage()
		if domain.StageIndex(stage) <= domain.StageIndex(app.CurrentStage) {
			// Already decided in a previous run (for example before a manual
			// review approval resumed the workflow).
			continue
		}

		res, trig, err := o.processStage(ctx, run, proc)
		if err != nil {
			return outcomeError, err
		}

		switch {
		case res.Decision == domain.DecisionRejected:
			o.audit(ctx, run, domain.AuditWorkflowStopped, map[string]any{
				"reason": "rejected",
				"score":  res.Score,
			})

			return outcomeRejected, nil

		case trig != nil:
			if _, err := o.reviews.Enqueue(ctx, app, stage, *trig); err != nil {
				return outcomeError, err
			}
			o.audit(ctx, run, domain.AuditWorkflowStopped, map[string]any{
				"reason":     "manual_review",
				"reviewType": trig.Type,
				"priority":   string(trig.Priority),
			})

			return outcomeUnderReview, nil
		}
	}

	// Every stage approved: the loan is funded and the application completes.
	if err := o.storage.AdvanceStage(ctx, app.ID, domain.StageLoanFunding,
		domain.StatusCompleted, "loan funded"); err != nil {
		return outcomeError, err
	}
	app.CurrentStatus = domain.StatusCompleted
	o.audit(ctx, run, domain.AuditWorkflowCompleted, nil)

	return outcomeApproved, nil
}

// processStage moves the application into the stage, evaluates it, appends
// the decision record and settles the stage status. The stage transitions and
// the decision append share one transaction so a crash never leaves a decided
// stage still marked in progress.
func (o *Orchestrator) processStage(ctx context.Context,
	run *runState,
	proc stages.Processor) (stages.Result, *review.Trigger, error) {
	app := run.app
	stage := proc.Stage()

	stageStarted := time.Now()

	// Move into the stage before evaluating; the processors assert it.
	app.CurrentStage = stage
	app.CurrentStatus = domain.StatusInProgress

	res, err := proc.Process(ctx, app)
	if err != nil {
		return stages.Result{}, nil, err
	}

	trig := review.EvaluateTriggers(app, stage, res, o.opts.ReviewAmountThreshold)

	status := domain.StatusApproved
	reason := "stage approved by automated processing"
	switch {
	case res.Decision == domain.DecisionRejected:
		status = domain.StatusRejected
		reason = "stage rejected by automated processing"
	case trig != nil:
		status = domain.StatusUnderReview
		reason = trig.Reason
	}

	record := domain.DecisionRecord{
		Stage:           stage,
		Decision:        res.Decision,
		Score:           res.Score,
		PositiveFactors: res.PositiveFactors,
		NegativeFactors: res.NegativeFactors,
		RiskFactors:     res.RiskFactors,
		DecidedBy:       "system",
	}

	err = o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.AdvanceStage(ctx, app.ID, stage, domain.StatusInProgress,
			"automated processing"); err != nil {
			return err
		}

		if err := tx.AppendDecision(ctx, app.ID, record); err != nil {
			return err
		}

		return tx.AdvanceStage(ctx, app.ID, stage, status, reason)
	})
	if err != nil {
		return stages.Result{}, nil, err
	}
	app.Decisions = append(app.Decisions, record)
	app.CurrentStatus = status

	metrics.StageDuration.WithLabelValues(string(stage)).Observe(time.Since(stageStarted).Seconds())
	metrics.StageDecisions.WithLabelValues(string(stage), string(res.Decision)).Inc()

	logger.Info(ctx, "stage evaluated",
		zap.String("stage", string(stage)),
		zap.String("decision", string(res.Decision)),
		zap.Float64("score", res.Score))

	return res, trig, nil
}

// recordFault parks the application in the error status and records the
// workflow_error event. Recovery is an operator action, never an automatic
// retry.
func (o *Orchestrator) recordFault(ctx context.Context, run *runState, cause error) {
	metrics.PipelineRuns.WithLabelValues(outcomeError).Inc()

	if err := o.storage.AdvanceStage(ctx, run.app.ID, run.app.CurrentStage,
		domain.StatusError, cause.Error()); err != nil {
		logger.Error(ctx, "could not record error status", zap.Error(err))
	}
	o.audit(ctx, run, domain.AuditWorkflowError, map[string]any{
		"error": cause.Error(),
	})
}

// audit appends a workflow lifecycle event carrying the stage index reached
// and the elapsed run time.
func (o *Orchestrator) audit(ctx context.Context,
	run *runState,
	event domain.AuditEvent,
	detail map[string]any) {
	entry := domain.AuditEntry{
		ApplicationID: run.app.ID,
		Event:         event,
		Stage:         run.app.CurrentStage,
		StageIndex:    domain.StageIndex(run.app.CurrentStage),
		Detail:        detail,
		Elapsed:       time.Since(run.started),
	}
	if err := o.storage.InsertAuditLog(ctx, entry); err != nil {
		logger.Error(ctx, "could not append audit entry",
			zap.String("event", string(event)),
			zap.Error(err))
	}
}
