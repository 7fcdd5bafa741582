package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - Transitions are monotonic except rejected estimates become re-editable.
//   - approved is terminal for measurement edits: the approval flow locks every
//     measurement under the estimate's job.

type EstimateStatus string

const (
	EstimateStatusDraft           EstimateStatus = "draft"
	EstimateStatusPendingApproval EstimateStatus = "pending_approval"
	EstimateStatusApproved        EstimateStatus = "approved"
	EstimateStatusRejected        EstimateStatus = "rejected"
)

// Estimate is a priced proposal for one job, built from that job's current
// measurements.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Monetary representation:
//   - Subtotal is the sum of measurement line costs, rounded to cents.
//   - TotalAmount is subtotal plus markup. MarkupPercent defaults to 0 and is
//     updatable on its own, so both values are stored.
//
// LocksMeasurements records whether this estimate currently holds the lock on
// the job's measurement set. At most one estimate per job may hold it.
type Estimate struct {
	ID             string         `json:"id"`
	JobID          string         `json:"job_id"`
	EstimateNumber string         `json:"estimate_number"`
	Subtotal       float64        `json:"subtotal"`
	TotalAmount    float64        `json:"total_amount"`
	MarkupPercent  float64        `json:"markup_percent"`
	Status         EstimateStatus `json:"status"`

	CreatedBy  string     `json:"created_by"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	LocksMeasurements bool `json:"locks_measurements"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
