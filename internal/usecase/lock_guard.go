package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foamtrack/internal/usecase/interfaces"
)

var ErrManagerRequired = errors.New("manager role required")

// MeasurementsLockedError is returned when a non-manager tries to mutate a
// measurement under a job whose measurement set is locked. It carries the
// locking estimate's id so the caller can explain the block to the user.
type MeasurementsLockedError struct {
	EstimateID string
}

func (e *MeasurementsLockedError) Error() string {
	return fmt.Sprintf("measurements are locked by estimate %s", e.EstimateID)
}

// LockGuard is the single choke point for "may this actor mutate measurements
// of this job right now?". Every mutating operation consults it instead of
// re-implementing the role/lock check per endpoint.
//
// Rule: mutation is permitted if the actor is a manager, or if no measurement
// under the job is currently locked.

type LockGuard struct {
	measurements interfaces.IMeasurementRepository
	users        interfaces.IUserRepository
}

func NewLockGuard(measurements interfaces.IMeasurementRepository, users interfaces.IUserRepository) *LockGuard {
	return &LockGuard{measurements: measurements, users: users}
}

// IsManager resolves the actor's role. Unknown actors are not managers.
func (g *LockGuard) IsManager(ctx context.Context, actorID string) (bool, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return false, nil
	}
	u, err := g.users.GetByID(ctx, actorID)
	if err != nil {
		return false, err
	}
	return u.IsManager(), nil
}

// RequireManager rejects the call unless the actor holds the manager role.
func (g *LockGuard) RequireManager(ctx context.Context, actorID string) error {
	manager, err := g.IsManager(ctx, actorID)
	if err != nil {
		return err
	}
	if !manager {
		return ErrManagerRequired
	}
	return nil
}

// CheckMutable returns nil when the actor may mutate measurements under the
// job, or a *MeasurementsLockedError naming the locking estimate when not.
func (g *LockGuard) CheckMutable(ctx context.Context, actorID, jobID string) error {
	manager, err := g.IsManager(ctx, actorID)
	if err != nil {
		return err
	}
	if manager {
		return nil
	}

	ms, err := g.measurements.ListByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	for _, m := range ms {
		if m.IsLocked {
			return &MeasurementsLockedError{EstimateID: m.LockedByEstimateID}
		}
	}
	return nil
}
