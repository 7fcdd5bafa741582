package interfaces

import (
	"context"
	"time"

	"foamtrack/internal/domain/entities"
)

// IMeasurementRepository abstracts DynamoDB persistence for Measurement.
//
// Lock operations are bulk by design: the approval flow must flip the lock on
// every measurement of a job in one repository call (single read, single
// batched write), not per-row round trips from the use case.

type IMeasurementRepository interface {
	Create(ctx context.Context, m entities.Measurement) (entities.Measurement, error)
	GetByID(ctx context.Context, id string) (entities.Measurement, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Measurement, error)
	Update(ctx context.Context, m entities.Measurement) (entities.Measurement, error)
	Delete(ctx context.Context, id string) error

	// LockByJobID marks every measurement of the job as locked by the estimate.
	LockByJobID(ctx context.Context, jobID, estimateID string, at time.Time) error
	// UnlockByEstimateID clears the lock only on measurements the given
	// estimate locked; measurements locked by a different estimate are
	// left untouched.
	UnlockByEstimateID(ctx context.Context, jobID, estimateID string) error
}
