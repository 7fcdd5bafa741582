package response

import (
	"time"

	"foamtrack/internal/domain/entities"
)

type MeasurementResponse struct {
	ID             string  `json:"id"`
	JobID          string  `json:"job_id"`
	RoomName       string  `json:"room_name,omitempty"`
	SurfaceType    string  `json:"surface_type"`
	HeightFt       float64 `json:"height_ft"`
	WidthFt        float64 `json:"width_ft"`
	AreaSqFt       float64 `json:"area_sq_ft"`
	InsulationType string  `json:"insulation_type"`

	ThicknessIn  float64 `json:"thickness_in,omitempty"`
	ClosedCellIn float64 `json:"closed_cell_in,omitempty"`
	OpenCellIn   float64 `json:"open_cell_in,omitempty"`

	RValue string `json:"r_value,omitempty"`

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

func FromMeasurement(m entities.Measurement) MeasurementResponse {
	return MeasurementResponse{
		ID:                   m.ID,
		JobID:                m.JobID,
		RoomName:             m.RoomName,
		SurfaceType:          string(m.Surface),
		HeightFt:             m.HeightFt,
		WidthFt:              m.WidthFt,
		AreaSqFt:             m.AreaSqFt,
		InsulationType:       string(m.System),
		ThicknessIn:          m.ThicknessIn,
		ClosedCellIn:         m.ClosedCellIn,
		OpenCellIn:           m.OpenCellIn,
		RValue:               m.RValue,
		OverridePricePerSqFt: m.OverridePricePerSqFt,
		OverrideSetAt:        m.OverrideSetAt,
		UnitPrice:            m.UnitPrice,
		LineCost:             m.LineCost,
		IsLocked:             m.IsLocked,
		LockedByEstimateID:   m.LockedByEstimateID,
		LockedAt:             m.LockedAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func FromMeasurements(ms []entities.Measurement) []MeasurementResponse {
	out := make([]MeasurementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMeasurement(m))
	}
	return out
}
