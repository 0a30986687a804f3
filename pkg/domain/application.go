package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApplicationID uniquely identifies a loan application.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ApplicationID uuid.UUID

// String returns the canonical textual form of the id.
func (id ApplicationID) String() string { return uuid.UUID(id).String() }

// Stage is one of the seven ordered processing phases of a loan application.
type Stage string

const (
	StagePreQualification       Stage = "pre_qualification"
	StageLoanApplication        Stage = "loan_application"
	StageApplicationProcessing  Stage = "application_processing"
	StageUnderwriting           Stage = "underwriting"
	StageCreditDecision         Stage = "credit_decision"
	StageQualityCheck           Stage = "quality_check"
	StageLoanFunding            Stage = "loan_funding"
)

// StageOrder is the fixed forward-only ordering of all stages. An application
// only ever moves to a stage with a higher index; rejection is possible from
// any stage but re-entering an earlier stage is not.
var StageOrder = []Stage{ //nolint: gochecknoglobals
	StagePreQualification,
	StageLoanApplication,
	StageApplicationProcessing,
	StageUnderwriting,
	StageCreditDecision,
	StageQualityCheck,
	StageLoanFunding,
}

// AutomatedStages are the stages driven by the workflow orchestrator,
// in processing order. The two preceding stages are intake.
var AutomatedStages = StageOrder[2:] //nolint: gochecknoglobals

// StageIndex returns the position of the stage in StageOrder, or -1 when the
// stage is unknown.
func StageIndex(s Stage) int {
	for i, stage := range StageOrder {
		if stage == s {
			return i
		}
	}

	return -1
}

// PreviousStage returns the stage immediately preceding s in StageOrder.
// The first stage has no predecessor and returns an empty Stage.
func PreviousStage(s Stage) Stage {
	idx := StageIndex(s)
	if idx <= 0 {
		return ""
	}

	return StageOrder[idx-1]
}

// Status represents the lifecycle state of an application within its current
// stage. Rejected and Completed are terminal.
type Status string

const (
	StatusInitiated   Status = "initiated"
	StatusInProgress  Status = "in_progress"
	StatusUnderReview Status = "under_review"
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusCompleted   Status = "completed"
	StatusError       Status = "error"
)

// IsTerminal reports whether the status ends the application lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// Personal is the identity section of the applicant snapshot.
type Personal struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	NationalID  string    `json:"nationalId"`
}

// Age returns the applicant age in whole years at the given time.
func (p Personal) Age(at time.Time) int {
	if p.DateOfBirth.IsZero() {
		return 0
	}
	years := at.Year() - p.DateOfBirth.Year()
	anniversary := p.DateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}

	return years
}

// Employment is the employment section of the applicant snapshot.
type Employment struct {
	// Type is the employment category, e.g. "salaried" or "self_employed".
	Type          string          `json:"type"`
	Employer      string          `json:"employer"`
	YearsEmployed float64         `json:"yearsEmployed"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
}

// Income is the income section of the applicant snapshot.
type Income struct {
	AnnualIncome decimal.Decimal `json:"annualIncome"`
	OtherIncome  decimal.Decimal `json:"otherIncome"`
	// MonthlyDebt is the applicant's existing monthly debt obligations,
	// used for the debt-to-income check during underwriting.
	MonthlyDebt decimal.Decimal `json:"monthlyDebt"`
}

// Banking is the banking section of the applicant snapshot.
type Banking struct {
	BankName       string          `json:"bankName"`
	AccountNumber  string          `json:"accountNumber"`
	AverageBalance decimal.Decimal `json:"averageBalance"`
}

// Address is the residence section of the applicant snapshot.
type Address struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Reference is one personal reference supplied by the applicant.
type Reference struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// Applicant is the snapshot of applicant data captured at intake. It is
// written once by the originating stages and read-only to downstream stage
// processors.
type Applicant struct {
	Personal   Personal    `json:"personal"`
	Employment Employment  `json:"employment"`
	Income     Income      `json:"income"`
	Banking    Banking     `json:"banking"`
	Address    Address     `json:"address"`
	References []Reference `json:"references"`

	// CreditScore is the score declared at intake. The verification refresh
	// replaces it with the bureau value when the lookup succeeds.
	CreditScore int `json:"creditScore"`
	// CollateralValue is the declared value of pledged collateral, zero for
	// unsecured loans.
	CollateralValue decimal.Decimal `json:"collateralValue"`
}

// Decision is the business outcome of evaluating one stage.
type Decision string

const (
	DecisionApproved    Decision = "approved"
	DecisionConditional Decision = "conditional"
	DecisionRejected    Decision = "rejected"
)

// DecisionRecord is one entry of the append-only decision history.
type DecisionRecord struct {
	Stage           Stage     `json:"stage"`
	Decision        Decision  `json:"decision"`
	Score           float64   `json:"score"`
	PositiveFactors []string  `json:"positiveFactors"`
	NegativeFactors []string  `json:"negativeFactors"`
	RiskFactors     []string  `json:"riskFactors"`
	// DecidedBy is "system" for automated decisions or the reviewer id for
	// manual ones.
	DecidedBy string    `json:"decidedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Application is the aggregate root of the loan origination process.
type Application struct {
	// ID is the internal unique identifier.
	ID ApplicationID `json:"id"`
	// Number is the unique, immutable human-facing application number.
	Number string `json:"number"`

	CurrentStage  Stage  `json:"currentStage"`
	CurrentStatus Status `json:"currentStatus"`

	// RequestedAmount is the loan amount applied for.
	RequestedAmount decimal.Decimal `json:"requestedAmount"`
	// Applicant is the intake snapshot.
	Applicant Applicant `json:"applicant"`
	// Verification holds the latest best-effort third-party data refresh.
	Verification Verification `json:"verification"`
	// Decisions is the ordered, append-only decision history.
	Decisions []DecisionRecord `json:"decisions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DecisionFor returns the latest recorded decision for the given stage, or
// nil when the stage has not been decided yet. The history is append-only, so
// the last record governs (a manual review verdict supersedes the automated
// one).
func (a *Application) DecisionFor(stage Stage) *DecisionRecord {
	for i := len(a.Decisions) - 1; i >= 0; i-- {
		if a.Decisions[i].Stage == stage {
			return &a.Decisions[i]
		}
	}

	return nil
}
