package interfaces

import (
	"context"

	"foamtrack/internal/domain/entities"
)

// IUserRepository resolves actor identities to role records. Only the literal
// role "manager" is treated as privileged by the lock guard.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
