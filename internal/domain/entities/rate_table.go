package entities

// RateBracket maps an R-value range of one insulation system to an installed
// price per square foot. Ranges are inclusive on both ends.
type RateBracket struct {
	System         InsulationType `json:"insulation_type"`
	MinRValue      float64        `json:"min_r_value"`
	MaxRValue      float64        `json:"max_r_value"`
	PricePerSqFt   float64        `json:"price_per_sq_ft"`
	ThicknessLabel string         `json:"thickness_label,omitempty"`
}

// RateTable is the pricing catalog snapshot handed to the pricing engine. It is
// read-only at calculation time; catalog changes happen through an
// administrative update outside this service.
//
// Two keying schemes exist in the published rate data: an R-value bracket table
// (single-system closed/open cell) and fixed per-inch rates (hybrid blending,
// batt, blown-in). Both live here so no call site carries its own constants.
type RateTable struct {
	Version string `json:"version"`

	Brackets []RateBracket `json:"brackets"`

	// Per-inch installed rates, $/sq ft per inch of depth.
	ClosedCellPerInch float64 `json:"closed_cell_per_inch"`
	OpenCellPerInch   float64 `json:"open_cell_per_inch"`
	BattPerInch       float64 `json:"batt_per_inch"`
	BlownInPerInch    float64 `json:"blown_in_per_inch"`

	// Thermal resistance per inch of installed depth.
	ClosedCellRPerInch float64 `json:"closed_cell_r_per_inch"`
	OpenCellRPerInch   float64 `json:"open_cell_r_per_inch"`
	BattRPerInch       float64 `json:"batt_r_per_inch"`
	BlownInRPerInch    float64 `json:"blown_in_r_per_inch"`
}

// DefaultRateTable is the built-in catalog used when the rate-table store has
// no rows (fresh install, local development).
func DefaultRateTable() RateTable {
	return RateTable{
		Version: "2025-07",
		Brackets: []RateBracket{
			{System: InsulationClosedCell, MinRValue: 1, MaxRValue: 13.9, PricePerSqFt: 1.30, ThicknessLabel: `up to 2"`},
			{System: InsulationClosedCell, MinRValue: 14, MaxRValue: 20.9, PricePerSqFt: 2.55, ThicknessLabel: `2"-3"`},
			{System: InsulationClosedCell, MinRValue: 21, MaxRValue: 27.9, PricePerSqFt: 3.80, ThicknessLabel: `3"-4"`},
			{System: InsulationClosedCell, MinRValue: 28, MaxRValue: 34.9, PricePerSqFt: 5.05, ThicknessLabel: `4"-5"`},
			{System: InsulationClosedCell, MinRValue: 35, MaxRValue: 49, PricePerSqFt: 6.30, ThicknessLabel: `5"-7"`},
			{System: InsulationOpenCell, MinRValue: 1, MaxRValue: 13.9, PricePerSqFt: 1.55, ThicknessLabel: `up to 3.5"`},
			{System: InsulationOpenCell, MinRValue: 14, MaxRValue: 20.9, PricePerSqFt: 2.45, ThicknessLabel: `3.5"-5.5"`},
			{System: InsulationOpenCell, MinRValue: 21, MaxRValue: 27.9, PricePerSqFt: 3.30, ThicknessLabel: `5.5"-7.25"`},
			{System: InsulationOpenCell, MinRValue: 28, MaxRValue: 34.9, PricePerSqFt: 4.25, ThicknessLabel: `7.25"-9.25"`},
			{System: InsulationOpenCell, MinRValue: 35, MaxRValue: 49.9, PricePerSqFt: 5.20, ThicknessLabel: `9.25"-13"`},
		},

		ClosedCellPerInch: 1.243,
		OpenCellPerInch:   0.471,
		BattPerInch:       0.31,
		BlownInPerInch:    0.27,

		ClosedCellRPerInch: 7.0,
		OpenCellRPerInch:   3.8,
		BattRPerInch:       3.7,
		BlownInRPerInch:    3.2,
	}
}
