package interfaces

import (
	"context"

	"foamtrack/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositRepository interface {
	Create(ctx context.Context, d entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error)
}
