package pipeline

import (
	"context"
	"sort"
	"sync"

	"lending/pkg/domain"
	"lending/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory storage.Storage used to exercise the orchestrator
// end to end. It mirrors the backend contracts that matter here: forward-only
// stage transitions, terminal protection, one audit entry per advance, one
// open review task per (application, stage) and bounded workload counters.
type memStore struct {
	mu        sync.Mutex
	apps      map[string]*domain.Application
	audits    []domain.AuditEntry
	tasks     []domain.ReviewTask
	reviewers []domain.Reviewer
	jobs      []river.JobArgs
}

func newMemStore() *memStore {
	return &memStore{apps: make(map[string]*domain.Application)}
}

func (m *memStore) Close() error { return nil }

func (m *memStore) Begin(context.Context) (storage.TxStorage, error) {
	return memTx{m}, nil
}

func (m *memStore) WithTx(_ context.Context, cb func(storage.AllStorage) error) error {
	return cb(m)
}

type memTx struct{ *memStore }

func (memTx) Commit() error   { return nil }
func (memTx) Rollback() error { return nil }

func (m *memStore) StoreApplication(_ context.Context, app domain.Application) (*domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if app.ID == (domain.ApplicationID{}) {
		app.ID = domain.ApplicationID(uuid.New())
	}
	stored := app
	m.apps[app.Number] = &stored
	out := stored

	return &out, nil
}

func (m *memStore) ApplicationByNumber(_ context.Context, number string) (*domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	app, ok := m.apps[number]
	if !ok {
		return nil, nil
	}
	out := *app
	out.Decisions = append([]domain.DecisionRecord(nil), app.Decisions...)

	return &out, nil
}

func (m *memStore) byID(id domain.ApplicationID) *domain.Application {
	for _, app := range m.apps {
		if app.ID == id {
			return app
		}
	}

	return nil
}

func (m *memStore) AdvanceStage(_ context.Context,
	id domain.ApplicationID,
	stage domain.Stage,
	status domain.Status,
	note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	app := m.byID(id)
	if app == nil {
		return storage.ErrStageRegression
	}
	if app.CurrentStatus.IsTerminal() {
		return storage.ErrTerminalApplication
	}
	if domain.StageIndex(stage) < domain.StageIndex(app.CurrentStage) {
		return storage.ErrStageRegression
	}

	app.CurrentStage = stage
	app.CurrentStatus = status
	m.audits = append(m.audits, domain.AuditEntry{
		ApplicationID: id,
		Event:         domain.AuditStageAdvanced,
		Stage:         stage,
		StageIndex:    domain.StageIndex(stage),
		Detail:        map[string]any{"status": string(status), "note": note},
	})

	return nil
}

func (m *memStore) AppendDecision(_ context.Context, id domain.ApplicationID, record domain.DecisionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	app := m.byID(id)
	app.Decisions = append(app.Decisions, record)

	return nil
}

func (m *memStore) UpdateVerification(_ context.Context, id domain.ApplicationID, v domain.Verification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byID(id).Verification = v

	return nil
}

func (m *memStore) InsertAuditLog(_ context.Context, entry domain.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.audits = append(m.audits, entry)

	return nil
}

func (m *memStore) AuditLogs(_ context.Context,
	id domain.ApplicationID,
	filter storage.AuditFilter) ([]domain.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.AuditEntry
	for _, entry := range m.audits {
		if entry.ApplicationID != id {
			continue
		}
		if filter.Event != "" && entry.Event != filter.Event {
			continue
		}
		if filter.Stage != "" && entry.Stage != filter.Stage {
			continue
		}
		out = append(out, entry)
		if filter.Limit > 0 && uint(len(out)) == filter.Limit {
			break
		}
	}

	return out, nil
}

func (m *memStore) UpsertReviewTask(_ context.Context, task domain.ReviewTask) (*domain.ReviewTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		t := &m.tasks[i]
		if t.ApplicationID == task.ApplicationID && t.Stage == task.Stage && t.Status.IsOpen() {
			t.ReviewType = task.ReviewType
			t.Priority = task.Priority
			t.DueAt = task.DueAt
			out := *t

			return &out, nil
		}
	}

	task.ID = domain.ReviewTaskID(uuid.New())
	m.tasks = append(m.tasks, task)
	out := task

	return &out, nil
}

func (m *memStore) OpenReviewTask(_ context.Context,
	id domain.ApplicationID,
	stage domain.Stage) (*domain.ReviewTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		t := m.tasks[i]
		if t.ApplicationID == id && t.Stage == stage && t.Status.IsOpen() {
			return &t, nil
		}
	}

	return nil, nil
}

func (m *memStore) AssignReviewTask(_ context.Context,
	taskID domain.ReviewTaskID,
	reviewerID domain.ReviewerID) (*domain.ReviewTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		t := &m.tasks[i]
		if t.ID == taskID && t.Status.IsOpen() {
			t.Status = domain.ReviewStatusAssigned
			t.AssignedTo = &reviewerID
			out := *t

			return &out, nil
		}
	}

	return nil, nil
}

func (m *memStore) CompleteReviewTask(_ context.Context, taskID domain.ReviewTaskID) (*domain.ReviewTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		t := &m.tasks[i]
		if t.ID == taskID && t.Status.IsOpen() {
			t.Status = domain.ReviewStatusCompleted
			out := *t

			return &out, nil
		}
	}

	return nil, nil
}

func (m *memStore) ReviewTasksByStatus(_ context.Context,
	status domain.ReviewStatus,
	limit uint) ([]domain.ReviewTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.ReviewTask
	for _, t := range m.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	if limit > 0 && uint(len(out)) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (m *memStore) StoreReviewers(_ context.Context, reviewers ...domain.Reviewer) ([]domain.Reviewer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Reviewer, 0, len(reviewers))
	for _, r := range reviewers {
		if r.ID == (domain.ReviewerID{}) {
			r.ID = domain.ReviewerID(uuid.New())
		}
		r.Seq = int64(len(m.reviewers) + 1)
		m.reviewers = append(m.reviewers, r)
		out = append(out, r)
	}

	return out, nil
}

func (m *memStore) ReviewerByID(_ context.Context, id domain.ReviewerID) (*domain.Reviewer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.reviewers {
		if r.ID == id {
			out := r

			return &out, nil
		}
	}

	return nil, nil
}

func (m *memStore) EligibleReviewers(_ context.Context, amount decimal.Decimal) ([]domain.Reviewer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Reviewer
	for _, r := range m.reviewers {
		if r.CanDecide(amount) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SpareCapacity() != out[j].SpareCapacity() {
			return out[i].SpareCapacity() > out[j].SpareCapacity()
		}
		if out[i].CurrentWorkload != out[j].CurrentWorkload {
			return out[i].CurrentWorkload < out[j].CurrentWorkload
		}

		return out[i].Seq < out[j].Seq
	})

	return out, nil
}

func (m *memStore) IncrementWorkload(_ context.Context, id domain.ReviewerID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.reviewers {
		r := &m.reviewers[i]
		if r.ID == id {
			if !r.Active || r.CurrentWorkload >= r.MaxWorkload {
				return false, nil
			}
			r.CurrentWorkload++

			return true, nil
		}
	}

	return false, nil
}

func (m *memStore) DecrementWorkload(_ context.Context, id domain.ReviewerID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.reviewers {
		r := &m.reviewers[i]
		if r.ID == id && r.CurrentWorkload > 0 {
			r.CurrentWorkload--
		}
	}

	return nil
}

func (m *memStore) AddJob(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobs = append(m.jobs, args)

	return true, nil
}
