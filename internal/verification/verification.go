// Package verification refreshes applicant data from third-party sources
// before automated processing. Every lookup is best effort: sources run
// concurrently with their own deadline, and a failed or timed-out source is
// recorded as a data gap instead of failing the refresh.
package verification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lending/pkg/domain"
	"lending/pkg/logger"
	"lending/pkg/metrics"

	"go.uber.org/zap"
)

//go:generate mockgen -package mockverification -source=verification.go -destination=mock/mockverification.go *

// CreditBureau reports the applicant's current credit score.
type CreditBureau interface {
	// Name identifies the bureau in the verification record.
	Name() string
	CreditScore(ctx context.Context, applicant domain.Applicant) (int, error)
}

// IdentityVerifier confirms the applicant's identity documents.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, applicant domain.Applicant) (bool, error)
}

// EmploymentVerifier confirms the declared employment.
type EmploymentVerifier interface {
	VerifyEmployment(ctx context.Context, applicant domain.Applicant) (bool, error)
}

// BankAnalyzer confirms the declared banking relationship.
type BankAnalyzer interface {
	VerifyBank(ctx context.Context, applicant domain.Applicant) (bool, error)
}

// Service fans a refresh out to all configured sources.
type Service struct {
	bureau     CreditBureau
	identity   IdentityVerifier
	employment EmploymentVerifier
	bank       BankAnalyzer

	// timeout bounds each individual lookup.
	timeout time.Duration
}

// NewService wires the verification sources together.
func NewService(bureau CreditBureau,
	identity IdentityVerifier,
	employment EmploymentVerifier,
	bank BankAnalyzer,
	timeout time.Duration) *Service {
	return &Service{
		bureau:     bureau,
		identity:   identity,
		employment: employment,
		bank:       bank,
		timeout:    timeout,
	}
}

const (
	sourceCreditScore = "credit_score"
	sourceIdentity    = "identity"
	sourceEmployment  = "employment"
	sourceBank        = "bank"
)

// Refresh queries every source concurrently and assembles the verification
// record. It never returns an error: sources that fail or miss their deadline
// appear in the Gaps list and downstream checks treat them as unverified.
func (s *Service) Refresh(ctx context.Context, applicant domain.Applicant) domain.Verification {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = domain.Verification{RefreshedAt: time.Now()}
	)

	recordGap := func(source string, err error) {
		metrics.VerificationFailures.WithLabelValues(source).Inc()
		logger.Warn(ctx, "verification source unavailable",
			zap.String("source", source),
			zap.Error(err))

		mu.Lock()
		defer mu.Unlock()
		result.Gaps = append(result.Gaps, fmt.Sprintf("%s: %v", source, err))
	}

	lookup := func(source string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			lctx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			if err := fn(lctx); err != nil {
				recordGap(source, err)
			}
		}()
	}

	lookup(sourceCreditScore, func(lctx context.Context) error {
		score, err := s.bureau.CreditScore(lctx, applicant)
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		result.CreditScore = score
		result.CreditScoreSource = s.bureau.Name()

		return nil
	})

	lookup(sourceIdentity, func(lctx context.Context) error {
		ok, err := s.identity.VerifyIdentity(lctx, applicant)
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		result.IdentityVerified = ok

		return nil
	})

	lookup(sourceEmployment, func(lctx context.Context) error {
		ok, err := s.employment.VerifyEmployment(lctx, applicant)
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		result.EmploymentVerified = ok

		return nil
	})

	lookup(sourceBank, func(lctx context.Context) error {
		ok, err := s.bank.VerifyBank(lctx, applicant)
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		result.BankVerified = ok

		return nil
	})

	wg.Wait()

	return result
}
