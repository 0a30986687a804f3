package domain

import "time"

// Verification is the outcome of the best-effort third-party data refresh
// that runs before automated processing. Each source is independent: a failed
// or timed-out lookup leaves its field unset and records a gap instead of
// failing the refresh.
type Verification struct {
	// CreditScore is the bureau-reported score, zero when the lookup failed.
	CreditScore int `json:"creditScore"`
	// CreditScoreSource names the bureau that produced the score.
	CreditScoreSource string `json:"creditScoreSource,omitempty"`

	IdentityVerified   bool `json:"identityVerified"`
	EmploymentVerified bool `json:"employmentVerified"`
	BankVerified       bool `json:"bankVerified"`

	// Gaps lists the sources that could not be refreshed, e.g.
	// "credit_score: timeout". Downstream checks treat a gap as a failed
	// verification for that source only.
	Gaps []string `json:"gaps,omitempty"`

	RefreshedAt time.Time `json:"refreshedAt"`
}

// EffectiveCreditScore returns the bureau score when available, falling back
// to the score declared at intake.
func (v Verification) EffectiveCreditScore(declared int) int {
	if v.CreditScore > 0 {
		return v.CreditScore
	}

	return declared
}
