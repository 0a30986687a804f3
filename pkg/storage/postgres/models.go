package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"lending/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PgApplication struct {
	ID     uuid.UUID `db:"id"     goqu:"skipinsert"`
	Number string    `db:"application_number"`

	CurrentStage  string `db:"current_stage"`
	CurrentStatus string `db:"current_status"`

	RequestedAmount decimal.Decimal `db:"requested_amount"`
	Applicant       json.RawMessage `db:"applicant"`
	Verification    json.RawMessage `db:"verification" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() (*domain.Application, error) {
	var applicant domain.Applicant
	if err := json.Unmarshal(p.Applicant, &applicant); err != nil {
		return nil, fmt.Errorf("could not unmarshal applicant: %w", err)
	}

	var verification domain.Verification
	if len(p.Verification) > 0 {
		if err := json.Unmarshal(p.Verification, &verification); err != nil {
			return nil, fmt.Errorf("could not unmarshal verification: %w", err)
		}
	}

	return &domain.Application{
		ID:              domain.ApplicationID(p.ID),
		Number:          p.Number,
		CurrentStage:    domain.Stage(p.CurrentStage),
		CurrentStatus:   domain.Status(p.CurrentStatus),
		RequestedAmount: p.RequestedAmount,
		Applicant:       applicant,
		Verification:    verification,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}, nil
}

func (p *PgApplication) FromDomain(app domain.Application) error {
	applicant, err := json.Marshal(app.Applicant)
	if err != nil {
		return fmt.Errorf("could not marshal applicant: %w", err)
	}

	*p = PgApplication{
		ID:              uuid.UUID(app.ID),
		Number:          app.Number,
		CurrentStage:    string(app.CurrentStage),
		CurrentStatus:   string(app.CurrentStatus),
		RequestedAmount: app.RequestedAmount,
		Applicant:       applicant,
		CreatedAt:       app.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  app.UpdatedAt,
			Valid: !app.UpdatedAt.IsZero(),
		},
	}

	return nil
}

type PgDecision struct {
	ID            int64     `db:"id" goqu:"skipinsert"`
	ApplicationID uuid.UUID `db:"application_id"`

	Stage    string  `db:"stage"`
	Decision string  `db:"decision"`
	Score    float64 `db:"score"`

	PositiveFactors json.RawMessage `db:"positive_factors"`
	NegativeFactors json.RawMessage `db:"negative_factors"`
	RiskFactors     json.RawMessage `db:"risk_factors"`

	DecidedBy string    `db:"decided_by"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgDecision) ToDomain() (*domain.DecisionRecord, error) {
	record := domain.DecisionRecord{
		Stage:     domain.Stage(p.Stage),
		Decision:  domain.Decision(p.Decision),
		Score:     p.Score,
		DecidedBy: p.DecidedBy,
		CreatedAt: p.CreatedAt,
	}
	for _, f := range []struct {
		raw json.RawMessage
		dst *[]string
	}{
		{p.PositiveFactors, &record.PositiveFactors},
		{p.NegativeFactors, &record.NegativeFactors},
		{p.RiskFactors, &record.RiskFactors},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("could not unmarshal decision factors: %w", err)
		}
	}

	return &record, nil
}

func (p *PgDecision) FromDomain(id domain.ApplicationID, record domain.DecisionRecord) error {
	positive, err := json.Marshal(record.PositiveFactors)
	if err != nil {
		return fmt.Errorf("could not marshal positive factors: %w", err)
	}
	negative, err := json.Marshal(record.NegativeFactors)
	if err != nil {
		return fmt.Errorf("could not marshal negative factors: %w", err)
	}
	risk, err := json.Marshal(record.RiskFactors)
	if err != nil {
		return fmt.Errorf("could not marshal risk factors: %w", err)
	}

	*p = PgDecision{
		ApplicationID:   uuid.UUID(id),
		Stage:           string(record.Stage),
		Decision:        string(record.Decision),
		Score:           record.Score,
		PositiveFactors: positive,
		NegativeFactors: negative,
		RiskFactors:     risk,
		DecidedBy:       record.DecidedBy,
		CreatedAt:       record.CreatedAt,
	}

	return nil
}

type PgReviewTask struct {
	ID            uuid.UUID `db:"id" goqu:"skipinsert"`
	ApplicationID uuid.UUID `db:"application_id"`

	Stage      string `db:"stage"`
	ReviewType string `db:"review_type"`
	Priority   string `db:"priority"`
	Status     string `db:"status"`

	AssignedTo uuid.NullUUID `db:"assigned_to"`
	DueAt      time.Time     `db:"due_at"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgReviewTask) ToDomain() *domain.ReviewTask {
	task := &domain.ReviewTask{
		ID:            domain.ReviewTaskID(p.ID),
		ApplicationID: domain.ApplicationID(p.ApplicationID),
		Stage:         domain.Stage(p.Stage),
		ReviewType:    p.ReviewType,
		Priority:      domain.ReviewPriority(p.Priority),
		Status:        domain.ReviewStatus(p.Status),
		DueAt:         p.DueAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
	if p.AssignedTo.Valid {
		id := domain.ReviewerID(p.AssignedTo.UUID)
		task.AssignedTo = &id
	}

	return task
}

func (p *PgReviewTask) FromDomain(task domain.ReviewTask) {
	*p = PgReviewTask{
		ID:            uuid.UUID(task.ID),
		ApplicationID: uuid.UUID(task.ApplicationID),
		Stage:         string(task.Stage),
		ReviewType:    task.ReviewType,
		Priority:      string(task.Priority),
		Status:        string(task.Status),
		DueAt:         task.DueAt,
		CreatedAt:     task.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  task.UpdatedAt,
			Valid: !task.UpdatedAt.IsZero(),
		},
	}
	if task.AssignedTo != nil {
		p.AssignedTo = uuid.NullUUID{UUID: uuid.UUID(*task.AssignedTo), Valid: true}
	}
}

type PgReviewer struct {
	ID   uuid.UUID `db:"id" goqu:"skipinsert"`
	Name string    `db:"name"`
	Role string    `db:"role"`

	AuthorityLimit  decimal.Decimal `db:"authority_limit"`
	MaxWorkload     int             `db:"max_workload"`
	CurrentWorkload int             `db:"current_workload" goqu:"skipinsert"`

	Active bool  `db:"active"`
	Seq    int64 `db:"seq" goqu:"skipinsert"`
}

func (p *PgReviewer) ToDomain() *domain.Reviewer {
	return &domain.Reviewer{
		ID:              domain.ReviewerID(p.ID),
		Name:            p.Name,
		Role:            p.Role,
		AuthorityLimit:  p.AuthorityLimit,
		MaxWorkload:     p.MaxWorkload,
		CurrentWorkload: p.CurrentWorkload,
		Active:          p.Active,
		Seq:             p.Seq,
	}
}

func (p *PgReviewer) FromDomain(reviewer domain.Reviewer) {
	*p = PgReviewer{
		ID:              uuid.UUID(reviewer.ID),
		Name:            reviewer.Name,
		Role:            reviewer.Role,
		AuthorityLimit:  reviewer.AuthorityLimit,
		MaxWorkload:     reviewer.MaxWorkload,
		CurrentWorkload: reviewer.CurrentWorkload,
		Active:          reviewer.Active,
		Seq:             reviewer.Seq,
	}
}

type PgAuditLog struct {
	ID            int64     `db:"id" goqu:"skipinsert"`
	ApplicationID uuid.UUID `db:"application_id"`

	Event      string         `db:"event"`
	Stage      sql.NullString `db:"stage"`
	StageIndex int            `db:"stage_index"`

	Detail    json.RawMessage `db:"detail"`
	ElapsedMs int64           `db:"elapsed_ms"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAuditLog) ToDomain() (*domain.AuditEntry, error) {
	var detail map[string]any
	if len(p.Detail) > 0 {
		if err := json.Unmarshal(p.Detail, &detail); err != nil {
			return nil, fmt.Errorf("could not unmarshal audit detail: %w", err)
		}
	}

	return &domain.AuditEntry{
		ID:            p.ID,
		ApplicationID: domain.ApplicationID(p.ApplicationID),
		Event:         domain.AuditEvent(p.Event),
		Stage:         domain.Stage(p.Stage.String),
		StageIndex:    p.StageIndex,
		Detail:        detail,
		Elapsed:       time.Duration(p.ElapsedMs) * time.Millisecond,
		CreatedAt:     p.CreatedAt,
	}, nil
}

func (p *PgAuditLog) FromDomain(entry domain.AuditEntry) error {
	detail, err := json.Marshal(entry.Detail)
	if err != nil {
		return fmt.Errorf("could not marshal audit detail: %w", err)
	}

	*p = PgAuditLog{
		ID:            entry.ID,
		ApplicationID: uuid.UUID(entry.ApplicationID),
		Event:         string(entry.Event),
		Stage: sql.NullString{
			String: string(entry.Stage),
			Valid:  entry.Stage != "",
		},
		StageIndex: entry.StageIndex,
		Detail:     detail,
		ElapsedMs:  entry.Elapsed.Milliseconds(),
		CreatedAt:  entry.CreatedAt,
	}

	return nil
}
