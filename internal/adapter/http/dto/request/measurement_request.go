package request

// MeasurementRequest carries the editable fields of a surveyed surface.
//
// thickness_in applies to single-system measurements; hybrid ignores it and
// reads closed_cell_in + open_cell_in instead. The use case owns all range
// validation, the DTO only shapes the payload.
type MeasurementRequest struct {
	RoomName       string  `json:"room_name"`
	SurfaceType    string  `json:"surface_type" binding:"required"`
	HeightFt       float64 `json:"height_ft" binding:"required"`
	WidthFt        float64 `json:"width_ft" binding:"required"`
	InsulationType string  `json:"insulation_type" binding:"required"`
	ThicknessIn    float64 `json:"thickness_in"`
	ClosedCellIn   float64 `json:"closed_cell_in"`
	OpenCellIn     float64 `json:"open_cell_in"`
}

// OverrideRequest sets a manual unit price on a measurement. Clearing an
// override is a DELETE on the same path, so the price here is mandatory.
type OverrideRequest struct {
	PricePerSqFt *float64 `json:"price_per_sq_ft" binding:"required"`
}
