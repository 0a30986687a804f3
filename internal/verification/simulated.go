package verification

import (
	"context"
	"hash/fnv"

	"lending/pkg/domain"
)

// The simulated sources stand in for real bureau and registry integrations.
// They derive deterministic answers from the applicant snapshot so that the
// same application always verifies the same way.

// SimulatedBureau answers credit score lookups from the declared score with a
// small deterministic adjustment.
type SimulatedBureau struct{}

func (SimulatedBureau) Name() string { return "simulated_bureau" }

func (SimulatedBureau) CreditScore(ctx context.Context, applicant domain.Applicant) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if applicant.CreditScore <= 0 {
		return 0, nil
	}

	// Jitter of -5..+4 points keyed on the national id.
	adjusted := applicant.CreditScore + int(hashOf(applicant.Personal.NationalID)%10) - 5
	if adjusted < 300 {
		adjusted = 300
	}
	if adjusted > 850 {
		adjusted = 850
	}

	return adjusted, nil
}

// SimulatedIdentity verifies identity when the snapshot carries a national id
// and a date of birth.
type SimulatedIdentity struct{}

func (SimulatedIdentity) VerifyIdentity(ctx context.Context, applicant domain.Applicant) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return applicant.Personal.NationalID != "" && !applicant.Personal.DateOfBirth.IsZero(), nil
}

// SimulatedEmployment verifies employment when an employer is declared.
type SimulatedEmployment struct{}

func (SimulatedEmployment) VerifyEmployment(ctx context.Context, applicant domain.Applicant) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return applicant.Employment.Employer != "" && applicant.Employment.MonthlySalary.IsPositive(), nil
}

// SimulatedBank verifies the banking relationship when an account is declared.
type SimulatedBank struct{}

func (SimulatedBank) VerifyBank(ctx context.Context, applicant domain.Applicant) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return applicant.Banking.BankName != "" && applicant.Banking.AccountNumber != "", nil
}

func hashOf(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))

	return h.Sum32()
}
