package entities

import "time"

// InsulationType is the fixed catalog of installable systems.

type InsulationType string

const (
	InsulationClosedCell InsulationType = "closed_cell"
	InsulationOpenCell   InsulationType = "open_cell"
	InsulationBatt       InsulationType = "batt"
	InsulationBlownIn    InsulationType = "blown_in"
	InsulationHybrid     InsulationType = "hybrid"
)

func (t InsulationType) Valid() bool {
	switch t {
	case InsulationClosedCell, InsulationOpenCell, InsulationBatt, InsulationBlownIn, InsulationHybrid:
		return true
	}
	return false
}

type SurfaceType string

const (
	SurfaceWall    SurfaceType = "wall"
	SurfaceCeiling SurfaceType = "ceiling"
)

func (s SurfaceType) Valid() bool {
	return s == SurfaceWall || s == SurfaceCeiling
}

// Measurement is one surveyed surface of a job.
//
// Domain notes:
//   - AreaSqFt is derived (height × width) and persisted alongside the inputs.
//   - ThicknessIn is used by closed_cell/open_cell/batt/blown_in; hybrid uses
//     ClosedCellIn + OpenCellIn instead (both bounded by the job's cavity depth).
//   - RValue is a display label ("R-21") derived from the numeric inches; the
//     numeric value is always re-derived for calculation, never parsed back.
//   - OverridePricePerSqFt, when set by a manager, bypasses the rate table.
//   - Lock fields are written by the approval flow: once an estimate built from
//     this measurement is approved, IsLocked is set and LockedByEstimateID
//     records which estimate holds the lock.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
type Measurement struct {
	ID       string         `json:"id"`
	JobID    string         `json:"job_id"`
	RoomName string         `json:"room_name"`
	Surface  SurfaceType    `json:"surface_type"`
	HeightFt float64        `json:"height_ft"`
	WidthFt  float64        `json:"width_ft"`
	AreaSqFt float64        `json:"area_sq_ft"`
	System   InsulationType `json:"insulation_type"`

	ThicknessIn  float64 `json:"thickness_in,omitempty"`
	ClosedCellIn float64 `json:"closed_cell_in,omitempty"`
	OpenCellIn   float64 `json:"open_cell_in,omitempty"`

	RValue string `json:"r_value"`

	OverridePricePerSqFt *float64   `json:"override_price_per_sq_ft,omitempty"`
	OverrideSetAt        *time.Time `json:"override_set_at,omitempty"`

	UnitPrice float64 `json:"unit_price"`
	LineCost  float64 `json:"line_cost"`

	IsLocked           bool       `json:"is_locked"`
	LockedByEstimateID string     `json:"locked_by_estimate_id,omitempty"`
	LockedAt           *time.Time `json:"locked_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
