package interfaces

import (
	"context"

	"foamtrack/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
}
