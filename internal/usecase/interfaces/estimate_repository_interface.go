package interfaces

import (
	"context"
	"time"

	"foamtrack/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The service must be able to:
//   - create a draft when a job is priced
//   - persist recomputed totals in a single write (all-or-nothing)
//   - approve with a conditional write so two racing approvals cannot both win
//   - record a reject decision and release the lock flag

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Estimate, error)

	// UpdateTotals persists subtotal and total in one write. Returns the zero
	// Estimate when the record does not exist.
	UpdateTotals(ctx context.Context, id string, subtotal, total float64) (entities.Estimate, error)

	UpdateMarkup(ctx context.Context, id string, markupPercent float64) (entities.Estimate, error)

	// UpdateStatus is the unconditional transition used by submit.
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)

	// ApproveIfNotApproved transitions to approved only when the current status
	// is not already approved, recording the approver, timestamp and lock flag
	// in the same conditional write. Returns the zero Estimate when the
	// condition fails (already approved or missing).
	ApproveIfNotApproved(ctx context.Context, id, approvedBy string, at time.Time) (entities.Estimate, error)

	// RecordRejection transitions to rejected, recording the approver identity
	// and timestamp and clearing the lock flag.
	RecordRejection(ctx context.Context, id, approvedBy string, at time.Time) (entities.Estimate, error)
}
