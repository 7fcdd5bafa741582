package interfaces

import (
	"context"

	"foamtrack/internal/domain/entities"
)

// IRateTableRepository provides read-only access to the pricing catalog.
// The pricing engine receives the snapshot by value and must never mutate it.

type IRateTableRepository interface {
	Snapshot(ctx context.Context) (entities.RateTable, error)
}
