package review

import (
	"context"
	"errors"
	"time"

	"lending/internal/jobs"
	"lending/pkg/domain"
	"lending/pkg/logger"
	"lending/pkg/metrics"
	"lending/pkg/serrors"
	"lending/pkg/storage"

	"go.uber.org/zap"
)

// Options configures the review service.
type Options struct {
	// AutoAssign picks a reviewer at enqueue time. When disabled tasks stay
	// pending until swept by Assign.
	AutoAssign bool
}

// Service owns the manual-review lifecycle.
type Service struct {
	storage storage.Storage
	opts    Options
}

// NewService creates a review service on top of the given storage.
func NewService(st storage.Storage, opts Options) *Service {
	return &Service{storage: st, opts: opts}
}

// Enqueue creates (or refreshes) the review task for an application at a
// stage. The due date derives from the trigger priority. With auto-assignment
// enabled a qualifying reviewer is attached immediately; when nobody
// qualifies the task simply stays in the pending backlog.
func (s *Service) Enqueue(ctx context.Context,
	app *domain.Application,
	stage domain.Stage,
	trig Trigger) (*domain.ReviewTask, error) {
	now := time.Now()
	task := domain.ReviewTask{
		ApplicationID: app.ID,
		Stage:         stage,
		ReviewType:    trig.Type,
		Priority:      trig.Priority,
		Status:        domain.ReviewStatusPending,
		DueAt:         now.Add(trig.Priority.DueAfter()),
	}

	stored, err := s.storage.UpsertReviewTask(ctx, task)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not enqueue review task")
	}

	metrics.ReviewTasksEnqueued.WithLabelValues(string(trig.Priority)).Inc()

	if err := s.storage.InsertAuditLog(ctx, domain.AuditEntry{
		ApplicationID: app.ID,
		Event:         domain.AuditReviewEnqueued,
		Stage:         stage,
		StageIndex:    domain.StageIndex(stage),
		Detail: map[string]any{
			"reviewType": trig.Type,
			"priority":   string(trig.Priority),
			"reason":     trig.Reason,
			"role":       trig.Role,
			"dueAt":      stored.DueAt,
		},
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not record review enqueue")
	}

	logger.Info(ctx, "review task enqueued",
		zap.String("applicationNumber", app.Number),
		zap.String("stage", string(stage)),
		zap.String("reviewType", trig.Type),
		zap.String("priority", string(trig.Priority)),
		zap.Time("dueAt", stored.DueAt))

	if s.opts.AutoAssign {
		assigned, err := s.Assign(ctx, app, stored)
		if err != nil {
			return nil, err
		}
		if assigned != nil {
			return assigned, nil
		}
	}

	return stored, nil
}

// errTaskClosed aborts an assignment transaction when the task closed under
// it, rolling back the workload increment.
var errTaskClosed = errors.New("review task closed during assignment")

// Assign attaches the best available reviewer to the task. Candidates must be
// active, hold the role the review type requires, have the authority for the
// amount and spare capacity; they are ranked by spare capacity descending,
// then current workload ascending, ties broken by directory insertion order.
// An empty candidate list leaves the task pending; that is a backlog
// condition, not an error.
func (s *Service) Assign(ctx context.Context,
	app *domain.Application,
	task *domain.ReviewTask) (*domain.ReviewTask, error) {
	var assigned *domain.ReviewTask

	requiredRole := RequiredRole(task.ReviewType)

	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		candidates, err := tx.EligibleReviewers(ctx, app.RequestedAmount)
		if err != nil {
			return err
		}

		for _, candidate := range candidates {
			if !roleQualifies(candidate.Role, requiredRole) {
				continue
			}

			// The conditional increment may lose against a concurrent
			// assignment; move on to the next candidate when it does.
			ok, err := tx.IncrementWorkload(ctx, candidate.ID)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}

			assigned, err = tx.AssignReviewTask(ctx, task.ID, candidate.ID)
			if err != nil {
				return err
			}
			if assigned == nil {
				// The task closed while we were assigning it.
				return errTaskClosed
			}

			return tx.InsertAuditLog(ctx, domain.AuditEntry{
				ApplicationID: app.ID,
				Event:         domain.AuditReviewAssigned,
				Stage:         task.Stage,
				StageIndex:    domain.StageIndex(task.Stage),
				Detail: map[string]any{
					"reviewer": candidate.Name,
					"priority": string(task.Priority),
				},
			})
		}

		return nil
	})
	if errors.Is(err, errTaskClosed) {
		logger.Info(ctx, "review task closed before assignment, nothing to do",
			zap.String("applicationNumber", app.Number),
			zap.String("stage", string(task.Stage)))

		return nil, nil
	}
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not assign review task")
	}

	if assigned == nil {
		logger.Info(ctx, "no qualifying reviewer, task stays pending",
			zap.String("applicationNumber", app.Number),
			zap.String("stage", string(task.Stage)))

		return nil, nil
	}

	return assigned, nil
}

// RecordDecision completes a review task with the reviewer's verdict and
// applies the deterministic status mapping: approvals (plain or conditional)
// resume the automated pipeline, rejections finalize the application, and
// refer-backs or escalations keep it under review with a fresh task.
func (s *Service) RecordDecision(ctx context.Context,
	number string,
	reviewerID domain.ReviewerID,
	decision domain.ReviewDecision,
	comment string) error {
	if !decision.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown review decision %q", decision)
	}

	app, err := s.storage.ApplicationByNumber(ctx, number)
	if err != nil {
		return err
	}
	if app == nil {
		return serrors.With(serrors.ErrNotFound, "application %s not found", number)
	}

	task, err := s.storage.OpenReviewTask(ctx, app.ID, app.CurrentStage)
	if err != nil {
		return err
	}
	if task == nil {
		return serrors.With(serrors.ErrNotFound,
			"no open review task for application %s at stage %s", number, app.CurrentStage)
	}

	status := decision.ApplicationStatus()

	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		completed, err := tx.CompleteReviewTask(ctx, task.ID)
		if err != nil {
			return err
		}
		if completed != nil && completed.AssignedTo != nil {
			if err := tx.DecrementWorkload(ctx, *completed.AssignedTo); err != nil {
				return err
			}
		}

		// The manual verdict carries the automated score forward so later
		// stages keep a meaningful number to weigh.
		var score float64
		if prev := app.DecisionFor(app.CurrentStage); prev != nil {
			score = prev.Score
		}

		if err := tx.AppendDecision(ctx, app.ID, domain.DecisionRecord{
			Stage:     app.CurrentStage,
			Decision:  reviewOutcome(decision),
			Score:     score,
			DecidedBy: reviewerID.String(),
		}); err != nil {
			return err
		}

		if err := tx.AdvanceStage(ctx, app.ID, app.CurrentStage, status, comment); err != nil {
			return err
		}

		if err := tx.InsertAuditLog(ctx, domain.AuditEntry{
			ApplicationID: app.ID,
			Event:         domain.AuditReviewDecided,
			Stage:         app.CurrentStage,
			StageIndex:    domain.StageIndex(app.CurrentStage),
			Detail: map[string]any{
				"decision": string(decision),
				"status":   string(status),
				"comment":  comment,
			},
		}); err != nil {
			return err
		}

		if status == domain.StatusApproved {
			// Resume automated processing from the approved stage.
			_, err := tx.AddJob(ctx, jobs.ProcessApplicationArgs{Number: app.Number}, nil)

			return err
		}

		return nil
	})
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not record review decision")
	}

	if status == domain.StatusUnderReview {
		followUp := Trigger{
			Type:     TypeReferBack,
			Priority: domain.ReviewPriorityNormal,
			Reason:   "referred back by reviewer",
			Role:     RequiredRole(TypeReferBack),
		}
		if decision == domain.ReviewDecisionEscalate {
			followUp = Trigger{
				Type:     TypeEscalation,
				Priority: domain.ReviewPriorityUrgent,
				Reason:   "escalated by reviewer",
				Role:     RequiredRole(TypeEscalation),
			}
		}

		if _, err := s.Enqueue(ctx, app, app.CurrentStage, followUp); err != nil {
			return err
		}
	}

	logger.Info(ctx, "review decision recorded",
		zap.String("applicationNumber", number),
		zap.String("decision", string(decision)),
		zap.String("status", string(status)))

	return nil
}

// reviewOutcome maps a reviewer verdict onto the decision vocabulary used in
// the application history.
func reviewOutcome(d domain.ReviewDecision) domain.Decision {
	switch d {
	case domain.ReviewDecisionApproved:
		return domain.DecisionApproved
	case domain.ReviewDecisionConditionalApproval:
		return domain.DecisionConditional
	case domain.ReviewDecisionRejected:
		return domain.DecisionRejected
	case domain.ReviewDecisionReferBack, domain.ReviewDecisionEscalate:
		return domain.DecisionConditional
	default:
		return domain.DecisionConditional
	}
}
