package domain

import "time"

// AuditEvent names a lifecycle transition recorded in the audit trail.
type AuditEvent string

const (
	AuditWorkflowStarted   AuditEvent = "workflow_started"
	AuditWorkflowStopped   AuditEvent = "workflow_stopped"
	AuditWorkflowCompleted AuditEvent = "workflow_completed"
	AuditWorkflowError     AuditEvent = "workflow_error"
	AuditStageAdvanced     AuditEvent = "stage_advanced"
	AuditReviewEnqueued    AuditEvent = "review_enqueued"
	AuditReviewAssigned    AuditEvent = "review_assigned"
	AuditReviewDecided     AuditEvent = "review_decided"
)

// AuditEntry is one append-only record of the application audit trail. Every
// stage/status transition and workflow lifecycle event produces exactly one
// entry.
type AuditEntry struct {
	ID            int64         `json:"id"`
	ApplicationID ApplicationID `json:"applicationId"`

	Event AuditEvent `json:"event"`
	// Stage is the stage the event refers to; for workflow events it is the
	// stage reached when the event fired.
	Stage Stage `json:"stage,omitempty"`
	// StageIndex is the position of Stage in the fixed stage order, -1 when
	// not applicable.
	StageIndex int `json:"stageIndex"`

	// Detail carries event-specific fields such as the stopping reason or
	// the recorded status.
	Detail map[string]any `json:"detail,omitempty"`
	// Elapsed is the workflow run time when the event fired, zero for
	// non-workflow events.
	Elapsed time.Duration `json:"elapsed,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
