package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"foamtrack/internal/domain/entities"
	"foamtrack/internal/domain/pricing"
	"foamtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrEstimateAlreadyApproved = errors.New("estimate already approved")
	ErrEstimateNotEditable     = errors.New("estimate is not editable in its current status")
	ErrInvalidMarkup           = errors.New("invalid markup percent")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrJobUnresolvable         = errors.New("could not locate job for estimate")
)

// LockHeldError is returned when an approval would steal the measurement lock
// from another estimate of the same job.
type LockHeldError struct {
	EstimateID string
}

func (e *LockHeldError) Error() string {
	return fmt.Sprintf("job measurements already locked by estimate %s", e.EstimateID)
}

// ITotalsRecalculator is the narrow port the measurement use case needs to
// trigger re-aggregation after a price-affecting mutation.
type ITotalsRecalculator interface {
	RecalculateForJob(ctx context.Context, jobID string) error
}

// IEstimateUseCase exposes estimate operations:
//   - draft creation and totals aggregation over the job's measurements
//   - the approval state machine (draft → pending_approval → approved/rejected)
//     and the measurement locking it drives

type IEstimateUseCase interface {
	CreateDraft(ctx context.Context, actorID, jobID string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Estimate, error)
	RecalculateTotals(ctx context.Context, actorID, estimateID string) (entities.Estimate, error)
	UpdateMarkup(ctx context.Context, actorID, estimateID string, markupPercent float64) (entities.Estimate, error)
	Submit(ctx context.Context, actorID, estimateID string) (entities.Estimate, error)
	Approve(ctx context.Context, actorID, estimateID string) (entities.Estimate, error)
	Reject(ctx context.Context, actorID, estimateID string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	measurements interfaces.IMeasurementRepository
	jobs         interfaces.IJobRepository
	rates        interfaces.IRateTableRepository
	guard        *LockGuard
}

var (
	_ IEstimateUseCase    = (*EstimateUseCase)(nil)
	_ ITotalsRecalculator = (*EstimateUseCase)(nil)
)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	measurements interfaces.IMeasurementRepository,
	jobs interfaces.IJobRepository,
	rates interfaces.IRateTableRepository,
	guard *LockGuard,
) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, measurements: measurements, jobs: jobs, rates: rates, guard: guard}
}

func (u *EstimateUseCase) CreateDraft(ctx context.Context, actorID, jobID string) (entities.Estimate, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Estimate{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if job.ID == "" {
		return entities.Estimate{}, ErrJobNotFound
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	e := entities.Estimate{
		ID:             id,
		JobID:          jobID,
		EstimateNumber: "EST-" + strings.ToUpper(id[:8]),
		Status:         entities.EstimateStatusDraft,
		CreatedBy:      strings.TrimSpace(actorID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}

	// Price the draft immediately from the job's current measurements.
	return u.recalculate(ctx, created)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Estimate, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

// RecalculateTotals re-aggregates one estimate on demand.
func (u *EstimateUseCase) RecalculateTotals(ctx context.Context, actorID, estimateID string) (entities.Estimate, error) {
	est, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := u.guardEstimateEdit(ctx, actorID, est); err != nil {
		return entities.Estimate{}, err
	}
	return u.recalculate(ctx, est)
}

// RecalculateForJob re-aggregates every non-approved estimate of the job. It
// is invoked by the measurement use case after each price-affecting mutation.
// Approved estimates are skipped: their totals are frozen with the lock.
func (u *EstimateUseCase) RecalculateForJob(ctx context.Context, jobID string) error {
	ests, err := u.repo.ListByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	for _, est := range ests {
		if est.Status == entities.EstimateStatusApproved {
			continue
		}
		if _, err := u.recalculate(ctx, est); err != nil {
			return err
		}
	}
	return nil
}

// recalculate reads the job's measurements once, aggregates line costs in
// memory and persists subtotal/total in a single write. Any failure before
// the write leaves the prior totals untouched.
func (u *EstimateUseCase) recalculate(ctx context.Context, est entities.Estimate) (entities.Estimate, error) {
	job, err := u.jobs.GetByID(ctx, est.JobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if job.ID == "" {
		log.Printf("[estimate][usecase] aggregation failed estimate_id=%s job_id=%s: job missing", est.ID, est.JobID)
		return entities.Estimate{}, ErrJobUnresolvable
	}

	rt, err := u.rates.Snapshot(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	ms, err := u.measurements.ListByJobID(ctx, est.JobID)
	if err != nil {
		return entities.Estimate{}, err
	}

	subtotal := 0.0
	for _, m := range ms {
		if m.AreaSqFt <= 0 {
			continue
		}
		q := pricing.Compute(pricing.Input{
			AreaSqFt:             m.AreaSqFt,
			System:               m.System,
			ThicknessIn:          m.ThicknessIn,
			ClosedCellIn:         m.ClosedCellIn,
			OpenCellIn:           m.OpenCellIn,
			OverridePricePerSqFt: m.OverridePricePerSqFt,
		}, rt)
		subtotal += q.LineCost
	}
	subtotal = pricing.RoundCents(subtotal)
	total := pricing.RoundCents(subtotal * (1 + est.MarkupPercent/100))

	updated, err := u.repo.UpdateTotals(ctx, est.ID, subtotal, total)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	log.Printf("[estimate][usecase] totals recalculated estimate_id=%s subtotal=%.2f total=%.2f", est.ID, subtotal, total)
	return updated, nil
}

func (u *EstimateUseCase) UpdateMarkup(ctx context.Context, actorID, estimateID string, markupPercent float64) (entities.Estimate, error) {
	if markupPercent < 0 {
		return entities.Estimate{}, ErrInvalidMarkup
	}

	est, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := u.guardEstimateEdit(ctx, actorID, est); err != nil {
		return entities.Estimate{}, err
	}

	updated, err := u.repo.UpdateMarkup(ctx, est.ID, markupPercent)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return u.recalculate(ctx, updated)
}

// Submit sends a draft (or a re-edited rejected estimate) for review. The
// transition is not actor-gated.
func (u *EstimateUseCase) Submit(ctx context.Context, actorID, estimateID string) (entities.Estimate, error) {
	est, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	switch est.Status {
	case entities.EstimateStatusDraft, entities.EstimateStatusRejected:
	case entities.EstimateStatusApproved:
		return entities.Estimate{}, ErrEstimateAlreadyApproved
	default:
		return entities.Estimate{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, est.ID, entities.EstimateStatusPendingApproval)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// Approve moves the estimate to approved and locks every measurement of its
// job. Manager only. The status write is conditional so two racing approvals
// cannot both succeed; the loser gets the same "already approved" error.
func (u *EstimateUseCase) Approve(ctx context.Context, actorID, estimateID string) (entities.Estimate, error) {
	if err := u.guard.RequireManager(ctx, actorID); err != nil {
		return entities.Estimate{}, err
	}

	est, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if est.Status == entities.EstimateStatusApproved {
		return entities.Estimate{}, ErrEstimateAlreadyApproved
	}

	// At most one estimate may hold the measurement lock for a job.
	ms, err := u.measurements.ListByJobID(ctx, est.JobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	for _, m := range ms {
		if m.IsLocked && m.LockedByEstimateID != est.ID {
			return entities.Estimate{}, &LockHeldError{EstimateID: m.LockedByEstimateID}
		}
	}

	now := time.Now().UTC()
	updated, err := u.repo.ApproveIfNotApproved(ctx, est.ID, strings.TrimSpace(actorID), now)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		// Lost a race with a concurrent approval.
		return entities.Estimate{}, ErrEstimateAlreadyApproved
	}

	if err := u.measurements.LockByJobID(ctx, est.JobID, est.ID, now); err != nil {
		// The status write already landed: the estimate is approved while some
		// measurements may still be unlocked. Reject and re-approve converges.
		log.Printf("[estimate][usecase] approved but measurement lock failed estimate_id=%s job_id=%s error=%v", est.ID, est.JobID, err)
		return entities.Estimate{}, err
	}
	log.Printf("[estimate][usecase] approved estimate_id=%s job_id=%s approved_by=%s", est.ID, est.JobID, actorID)
	return updated, nil
}

// Reject moves the estimate to rejected (allowed from any state) and releases
// the measurement lock, but only on measurements this estimate locked.
// Manager only.
func (u *EstimateUseCase) Reject(ctx context.Context, actorID, estimateID string) (entities.Estimate, error) {
	if err := u.guard.RequireManager(ctx, actorID); err != nil {
		return entities.Estimate{}, err
	}

	est, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	updated, err := u.repo.RecordRejection(ctx, est.ID, strings.TrimSpace(actorID), now)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	if err := u.measurements.UnlockByEstimateID(ctx, est.JobID, est.ID); err != nil {
		return entities.Estimate{}, err
	}
	log.Printf("[estimate][usecase] rejected estimate_id=%s job_id=%s rejected_by=%s", est.ID, est.JobID, actorID)
	return updated, nil
}

// guardEstimateEdit: a draft or rejected estimate is freely editable;
// anything further along requires the manager role.
func (u *EstimateUseCase) guardEstimateEdit(ctx context.Context, actorID string, est entities.Estimate) error {
	if est.Status == entities.EstimateStatusDraft || est.Status == entities.EstimateStatusRejected {
		return nil
	}
	manager, err := u.guard.IsManager(ctx, actorID)
	if err != nil {
		return err
	}
	if !manager {
		return ErrEstimateNotEditable
	}
	return nil
}
