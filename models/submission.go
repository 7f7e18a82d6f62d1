package models

import "time"

// Submission log statuses.
const (
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
	StatusError     = "error"
	StatusDryRun    = "dry_run"
)

// DryRunConfirmationID is the confirmation sentinel recorded for dry runs.
const DryRunConfirmationID = "DRY_RUN"

// SubmissionResult is the outcome of one submission attempt.
//
// Invariant: Success implies DryRun or both SubmittedAt and ConfirmationID
// are set; !Success implies Error is set.
type SubmissionResult struct {
	Success        bool       `json:"success"`
	JobID          string     `json:"job_id"`
	Company        string     `json:"company"`
	ATSType        string     `json:"ats_type"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	ConfirmationID string     `json:"confirmation_id,omitempty"`
	Error          string     `json:"error,omitempty"`
	DryRun         bool       `json:"dry_run"`
}

// SubmissionLogEntry is the persisted record of one attempt. The log is
// append-only and capped; see services.SubmissionLog.
type SubmissionLogEntry struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Company   string    `json:"company"`
	Title     string    `json:"title"`
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	DryRun    bool      `json:"dry_run"`
}
