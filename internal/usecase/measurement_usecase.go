package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"foamtrack/internal/domain/entities"
	"foamtrack/internal/domain/pricing"
	"foamtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidJobID          = errors.New("invalid job_id")
	ErrInvalidMeasurementID  = errors.New("invalid measurement id")
	ErrMeasurementNotFound   = errors.New("measurement not found")
	ErrJobNotFound           = errors.New("job not found")
	ErrInvalidSurfaceType    = errors.New("invalid surface type")
	ErrInvalidInsulationType = errors.New("invalid insulation type")
	ErrInvalidDimensions     = errors.New("height and width must be greater than 0 and at most 100 feet")
	ErrAreaOutOfRange        = errors.New("area must be between 1 and 10000 square feet")
	ErrInvalidThickness      = errors.New("thickness must be greater than 0 inches")
	ErrClosedCellTooThick    = errors.New("closed-cell thickness exceeds the 7 inch ceiling")
	ErrOpenCellTooThick      = errors.New("open-cell thickness exceeds the 13 inch ceiling")
	ErrExceedsCavityDepth    = errors.New("combined hybrid thickness exceeds the framing cavity depth")
	ErrNegativeOverride      = errors.New("override price cannot be negative")
)

const (
	maxSpanFt       = 100.0
	minAreaSqFt     = 1.0
	maxAreaSqFt     = 10000.0
	maxClosedCellIn = 7.0
	maxOpenCellIn   = 13.0
)

// MeasurementInput carries the caller-editable fields of a measurement.
type MeasurementInput struct {
	RoomName     string
	Surface      entities.SurfaceType
	HeightFt     float64
	WidthFt      float64
	System       entities.InsulationType
	ThicknessIn  float64
	ClosedCellIn float64
	OpenCellIn   float64
}

// IMeasurementUseCase exposes field-survey measurement operations.
//
// Every mutation consults the lock guard before touching the store and
// triggers a totals recalculation of the job's estimates afterwards, so UI
// layers never recompute pricing on their own.

type IMeasurementUseCase interface {
	Create(ctx context.Context, actorID, jobID string, in MeasurementInput) (entities.Measurement, error)
	Update(ctx context.Context, actorID, id string, in MeasurementInput) (entities.Measurement, error)
	Delete(ctx context.Context, actorID, id string) error
	SetOverride(ctx context.Context, actorID, id string, pricePerSqFt float64) (entities.Measurement, error)
	ClearOverride(ctx context.Context, actorID, id string) (entities.Measurement, error)
	GetByID(ctx context.Context, id string) (entities.Measurement, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Measurement, error)
}

type MeasurementUseCase struct {
	repo   interfaces.IMeasurementRepository
	jobs   interfaces.IJobRepository
	rates  interfaces.IRateTableRepository
	guard  *LockGuard
	totals ITotalsRecalculator
}

var _ IMeasurementUseCase = (*MeasurementUseCase)(nil)

func NewMeasurementUseCase(
	repo interfaces.IMeasurementRepository,
	jobs interfaces.IJobRepository,
	rates interfaces.IRateTableRepository,
	guard *LockGuard,
	totals ITotalsRecalculator,
) *MeasurementUseCase {
	return &MeasurementUseCase{repo: repo, jobs: jobs, rates: rates, guard: guard, totals: totals}
}

func (u *MeasurementUseCase) Create(ctx context.Context, actorID, jobID string, in MeasurementInput) (entities.Measurement, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Measurement{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Measurement{}, err
	}
	if job.ID == "" {
		return entities.Measurement{}, ErrJobNotFound
	}

	if err := u.guard.CheckMutable(ctx, actorID, jobID); err != nil {
		return entities.Measurement{}, err
	}
	if err := validateMeasurementInput(in, job.Framing); err != nil {
		return entities.Measurement{}, err
	}

	rt, err := u.rates.Snapshot(ctx)
	if err != nil {
		return entities.Measurement{}, err
	}

	now := time.Now().UTC()
	m := entities.Measurement{
		ID:           uuid.NewString(),
		JobID:        jobID,
		RoomName:     strings.TrimSpace(in.RoomName),
		Surface:      in.Surface,
		HeightFt:     in.HeightFt,
		WidthFt:      in.WidthFt,
		AreaSqFt:     in.HeightFt * in.WidthFt,
		System:       in.System,
		ThicknessIn:  in.ThicknessIn,
		ClosedCellIn: in.ClosedCellIn,
		OpenCellIn:   in.OpenCellIn,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyQuote(&m, rt)

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.Measurement{}, err
	}

	if err := u.recalcTotals(ctx, jobID); err != nil {
		return entities.Measurement{}, err
	}
	return created, nil
}

func (u *MeasurementUseCase) Update(ctx context.Context, actorID, id string, in MeasurementInput) (entities.Measurement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Measurement{}, ErrInvalidMeasurementID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Measurement{}, err
	}
	if m.ID == "" {
		return entities.Measurement{}, ErrMeasurementNotFound
	}

	job, err := u.jobs.GetByID(ctx, m.JobID)
	if err != nil {
		return entities.Measurement{}, err
	}
	if job.ID == "" {
		return entities.Measurement{}, ErrJobNotFound
	}

	if err := u.guard.CheckMutable(ctx, actorID, m.JobID); err != nil {
		return entities.Measurement{}, err
	}
	if err := validateMeasurementInput(in, job.Framing); err != nil {
		return entities.Measurement{}, err
	}

	rt, err := u.rates.Snapshot(ctx)
	if err != nil {
		return entities.Measurement{}, err
	}

	m.RoomName = strings.TrimSpace(in.RoomName)
	m.Surface = in.Surface
	m.HeightFt = in.HeightFt
	m.WidthFt = in.WidthFt
	m.AreaSqFt = in.HeightFt * in.WidthFt
	m.System = in.System
	m.ThicknessIn = in.ThicknessIn
	m.ClosedCellIn = in.ClosedCellIn
	m.OpenCellIn = in.OpenCellIn
	m.UpdatedAt = time.Now().UTC()
	applyQuote(&m, rt)

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Measurement{}, err
	}

	if err := u.recalcTotals(ctx, m.JobID); err != nil {
		return entities.Measurement{}, err
	}
	return updated, nil
}

func (u *MeasurementUseCase) Delete(ctx context.Context, actorID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMeasurementID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m.ID == "" {
		return ErrMeasurementNotFound
	}

	if err := u.guard.CheckMutable(ctx, actorID, m.JobID); err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	return u.recalcTotals(ctx, m.JobID)
}

// SetOverride applies a manual unit price. Manager only: the override bypasses
// the rate table entirely and is the only way a non-standard price is applied.
func (u *MeasurementUseCase) SetOverride(ctx context.Context, actorID, id string, pricePerSqFt float64) (entities.Measurement, error) {
	if pricePerSqFt < 0 {
		return entities.Measurement{}, ErrNegativeOverride
	}
	now := time.Now().UTC()
	return u.updateOverride(ctx, actorID, id, &pricePerSqFt, &now)
}

func (u *MeasurementUseCase) ClearOverride(ctx context.Context, actorID, id string) (entities.Measurement, error) {
	return u.updateOverride(ctx, actorID, id, nil, nil)
}

func (u *MeasurementUseCase) updateOverride(ctx context.Context, actorID, id string, price *float64, setAt *time.Time) (entities.Measurement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Measurement{}, ErrInvalidMeasurementID
	}

	if err := u.guard.RequireManager(ctx, actorID); err != nil {
		return entities.Measurement{}, err
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Measurement{}, err
	}
	if m.ID == "" {
		return entities.Measurement{}, ErrMeasurementNotFound
	}

	rt, err := u.rates.Snapshot(ctx)
	if err != nil {
		return entities.Measurement{}, err
	}

	m.OverridePricePerSqFt = price
	m.OverrideSetAt = setAt
	m.UpdatedAt = time.Now().UTC()
	applyQuote(&m, rt)

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Measurement{}, err
	}

	if err := u.recalcTotals(ctx, m.JobID); err != nil {
		return entities.Measurement{}, err
	}
	return updated, nil
}

func (u *MeasurementUseCase) GetByID(ctx context.Context, id string) (entities.Measurement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Measurement{}, ErrInvalidMeasurementID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Measurement{}, err
	}
	if m.ID == "" {
		return entities.Measurement{}, ErrMeasurementNotFound
	}
	return m, nil
}

func (u *MeasurementUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Measurement, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func (u *MeasurementUseCase) recalcTotals(ctx context.Context, jobID string) error {
	if u.totals == nil {
		return nil
	}
	if err := u.totals.RecalculateForJob(ctx, jobID); err != nil {
		log.Printf("[measurement][usecase] totals recalculation failed job_id=%s err=%v", jobID, err)
		return err
	}
	return nil
}

// applyQuote recomputes and stores the derived pricing fields on m.
func applyQuote(m *entities.Measurement, rt entities.RateTable) {
	q := pricing.Compute(pricing.Input{
		AreaSqFt:             m.AreaSqFt,
		System:               m.System,
		ThicknessIn:          m.ThicknessIn,
		ClosedCellIn:         m.ClosedCellIn,
		OpenCellIn:           m.OpenCellIn,
		OverridePricePerSqFt: m.OverridePricePerSqFt,
	}, rt)
	m.UnitPrice = q.UnitPrice
	m.LineCost = q.LineCost
	m.RValue = q.RValueLabel
}

func validateMeasurementInput(in MeasurementInput, framing entities.FramingSize) error {
	if !in.Surface.Valid() {
		return ErrInvalidSurfaceType
	}
	if !in.System.Valid() {
		return ErrInvalidInsulationType
	}
	if in.HeightFt <= 0 || in.HeightFt > maxSpanFt || in.WidthFt <= 0 || in.WidthFt > maxSpanFt {
		return ErrInvalidDimensions
	}
	area := in.HeightFt * in.WidthFt
	if area < minAreaSqFt || area > maxAreaSqFt {
		return ErrAreaOutOfRange
	}

	switch in.System {
	case entities.InsulationHybrid:
		if in.ClosedCellIn < 0 || in.OpenCellIn < 0 || in.ClosedCellIn+in.OpenCellIn <= 0 {
			return ErrInvalidThickness
		}
		if in.ClosedCellIn > maxClosedCellIn {
			return ErrClosedCellTooThick
		}
		if in.OpenCellIn > maxOpenCellIn {
			return ErrOpenCellTooThick
		}
		if in.ClosedCellIn+in.OpenCellIn > framing.CavityDepthIn() {
			return ErrExceedsCavityDepth
		}
	case entities.InsulationClosedCell:
		if in.ThicknessIn <= 0 {
			return ErrInvalidThickness
		}
		if in.ThicknessIn > maxClosedCellIn {
			return ErrClosedCellTooThick
		}
	case entities.InsulationOpenCell:
		if in.ThicknessIn <= 0 {
			return ErrInvalidThickness
		}
		if in.ThicknessIn > maxOpenCellIn {
			return ErrOpenCellTooThick
		}
	default:
		if in.ThicknessIn <= 0 {
			return ErrInvalidThickness
		}
	}
	return nil
}
