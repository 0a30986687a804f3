// Package intake handles the originating stages of a loan application:
// pre-qualification and the application proper. Both are decided by the
// declarative business rules; an application that clears them is handed to
// the automated pipeline through the job queue.
package intake

import (
	"context"
	"strings"
	"time"

	"lending/internal/jobs"
	"lending/internal/review"
	"lending/internal/rules"
	"lending/pkg/domain"
	"lending/pkg/logger"
	"lending/pkg/serrors"
	"lending/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Submission is a new loan application as received from the applicant.
type Submission struct {
	// Number optionally fixes the application number; one is generated when
	// empty.
	Number string

	Amount    decimal.Decimal
	Applicant domain.Applicant
}

// Service runs the intake stages.
type Service struct {
	storage  storage.Storage
	registry *rules.Registry
	reviews  *review.Service
}

// NewService creates an intake service.
func NewService(st storage.Storage, registry *rules.Registry, reviews *review.Service) *Service {
	return &Service{storage: st, registry: registry, reviews: reviews}
}

// Submit registers a new application and decides the intake stages. The
// returned application reflects the outcome: approved at loan_application
// (with a pipeline job queued), rejected at the failing stage, or parked
// under review. Business rejection is a state, not an error.
func (s *Service) Submit(ctx context.Context, sub Submission) (*domain.Application, error) {
	if !sub.Amount.IsPositive() {
		return nil, serrors.With(serrors.ErrBadRequest, "requested amount must be positive")
	}
	if sub.Applicant.Personal.FirstName == "" || sub.Applicant.Personal.LastName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "applicant name is required")
	}

	number := sub.Number
	if number == "" {
		number = newApplicationNumber()
	}

	existing, err := s.storage.ApplicationByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "application %s already exists", number)
	}

	app := domain.Application{
		Number:          number,
		CurrentStage:    domain.StagePreQualification,
		CurrentStatus:   domain.StatusInitiated,
		RequestedAmount: sub.Amount,
		Applicant:       sub.Applicant,
	}

	var out *domain.Application
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreApplication(ctx, app)
		if err != nil {
			return err
		}
		out = stored

		for _, stage := range []domain.Stage{domain.StagePreQualification, domain.StageLoanApplication} {
			outcome, score, err := s.decideStage(ctx, tx, stored, stage)
			if err != nil {
				return err
			}

			switch outcome {
			case rules.OutcomeAutoReject:
				out.CurrentStage = stage
				out.CurrentStatus = domain.StatusRejected

				return tx.AdvanceStage(ctx, stored.ID, stage, domain.StatusRejected,
					"rejected by intake rules")

			case rules.OutcomeManualReview:
				out.CurrentStage = stage
				out.CurrentStatus = domain.StatusUnderReview

				return tx.AdvanceStage(ctx, stored.ID, stage, domain.StatusUnderReview,
					"intake rules require manual review")

			case rules.OutcomeAutoApprove:
				if err := tx.AdvanceStage(ctx, stored.ID, stage, domain.StatusApproved,
					"approved by intake rules"); err != nil {
					return err
				}
				out.CurrentStage = stage
				out.CurrentStatus = domain.StatusApproved

				logger.Info(ctx, "intake stage approved",
					zap.String("applicationNumber", number),
					zap.String("stage", string(stage)),
					zap.Float64("score", score))
			}
		}

		// Both intake stages cleared; queue the automated pipeline.
		_, err = tx.AddJob(ctx, jobs.ProcessApplicationArgs{Number: number}, nil)

		return err
	})
	if err != nil {
		return nil, err
	}

	if out.CurrentStatus == domain.StatusUnderReview {
		if _, err := s.reviews.Enqueue(ctx, out, out.CurrentStage, review.Trigger{
			Type:     review.TypeConditionalScore,
			Priority: domain.ReviewPriorityNormal,
			Reason:   "intake rules could not decide automatically",
			Role:     review.RequiredRole(review.TypeConditionalScore),
		}); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// decideStage evaluates the rule set of one intake stage and appends the
// decision record. A stage without configured rules approves with a neutral
// score.
func (s *Service) decideStage(ctx context.Context,
	tx storage.AllStorage,
	app *domain.Application,
	stage domain.Stage) (rules.Outcome, float64, error) {
	set, ok := s.registry.Current().StageRules(string(stage))
	if !ok {
		logger.Warn(ctx, "no rules configured for intake stage",
			zap.String("stage", string(stage)))

		return rules.OutcomeAutoApprove, 0, nil
	}

	in := rules.InputFromApplication(app, time.Now())
	results := rules.Evaluate(ctx, set, in)
	outcome := rules.Decide(set, in, results)
	score := rules.AggregateScore(results)

	record := domain.DecisionRecord{
		Stage:     stage,
		Decision:  intakeDecision(outcome),
		Score:     score,
		DecidedBy: "system",
	}
	for _, res := range results {
		if res.Passed {
			record.PositiveFactors = append(record.PositiveFactors, res.Name)
		} else {
			record.NegativeFactors = append(record.NegativeFactors, res.Name)
		}
	}

	if err := tx.AppendDecision(ctx, app.ID, record); err != nil {
		return "", 0, err
	}
	app.Decisions = append(app.Decisions, record)

	return outcome, score, nil
}

func intakeDecision(o rules.Outcome) domain.Decision {
	switch o {
	case rules.OutcomeAutoApprove:
		return domain.DecisionApproved
	case rules.OutcomeAutoReject:
		return domain.DecisionRejected
	default:
		return domain.DecisionConditional
	}
}

// newApplicationNumber generates a human-facing application number.
func newApplicationNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:10]

	return "LN-" + time.Now().Format("2006") + "-" + suffix
}
