package pricing

import (
	"math"
	"testing"

	"foamtrack/internal/domain/entities"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestCompute_Hybrid_PerInchBlend(t *testing.T) {
	// 2" closed-cell + 3" open-cell on a 10x8 ft wall (80 sq ft):
	// unit = 2×1.243 + 3×0.471 = 3.899; line = 3.899 × 80 = 311.92.
	q := Compute(Input{
		AreaSqFt:     80,
		System:       entities.InsulationHybrid,
		ClosedCellIn: 2,
		OpenCellIn:   3,
	}, entities.DefaultRateTable())

	nearlyEqual(t, "unit price", q.UnitPrice, 3.899)
	nearlyEqual(t, "line cost", q.LineCost, 311.92)
	nearlyEqual(t, "r-value", q.RValue, 2*7.0+3*3.8)
	if q.RValueLabel != "R-25.4" {
		t.Fatalf("r-value label = %q, want R-25.4", q.RValueLabel)
	}
}

func TestCompute_Hybrid_IsSumOfContributions(t *testing.T) {
	rt := entities.DefaultRateTable()

	closedOnly := Compute(Input{AreaSqFt: 1, System: entities.InsulationHybrid, ClosedCellIn: 2.5}, rt)
	openOnly := Compute(Input{AreaSqFt: 1, System: entities.InsulationHybrid, OpenCellIn: 4}, rt)
	both := Compute(Input{AreaSqFt: 1, System: entities.InsulationHybrid, ClosedCellIn: 2.5, OpenCellIn: 4}, rt)

	nearlyEqual(t, "unit price", both.UnitPrice, closedOnly.UnitPrice+openOnly.UnitPrice)
	nearlyEqual(t, "r-value", both.RValue, closedOnly.RValue+openOnly.RValue)
}

func TestCompute_ClosedCell_BracketByRValue(t *testing.T) {
	rt := entities.DefaultRateTable()

	// 3" × R-7/inch = R-21, second closed-cell bracket boundary.
	q := Compute(Input{AreaSqFt: 100, System: entities.InsulationClosedCell, ThicknessIn: 3}, rt)
	nearlyEqual(t, "unit price", q.UnitPrice, 3.80)
	nearlyEqual(t, "line cost", q.LineCost, 380)
	if q.RValueLabel != "R-21" {
		t.Fatalf("r-value label = %q, want R-21", q.RValueLabel)
	}

	// 1.5" = R-10.5 lands in the first bracket.
	q = Compute(Input{AreaSqFt: 100, System: entities.InsulationClosedCell, ThicknessIn: 1.5}, rt)
	nearlyEqual(t, "unit price", q.UnitPrice, 1.30)
}

func TestCompute_OpenCell_BracketByRValue(t *testing.T) {
	rt := entities.DefaultRateTable()

	// 5.5" × R-3.8/inch = R-20.9, top of the second open-cell bracket.
	q := Compute(Input{AreaSqFt: 50, System: entities.InsulationOpenCell, ThicknessIn: 5.5}, rt)
	nearlyEqual(t, "unit price", q.UnitPrice, 2.45)
	nearlyEqual(t, "line cost", q.LineCost, 122.5)
}

func TestCompute_NoBracketMatch_PriceIsZeroSilently(t *testing.T) {
	rt := entities.DefaultRateTable()

	// 0.1" = R-0.7, below every closed-cell bracket.
	q := Compute(Input{AreaSqFt: 100, System: entities.InsulationClosedCell, ThicknessIn: 0.1}, rt)
	nearlyEqual(t, "unit price", q.UnitPrice, 0)
	nearlyEqual(t, "line cost", q.LineCost, 0)
}

func TestCompute_OverrideWinsForEveryType(t *testing.T) {
	rt := entities.DefaultRateTable()

	for _, system := range []entities.InsulationType{
		entities.InsulationClosedCell,
		entities.InsulationOpenCell,
		entities.InsulationBatt,
		entities.InsulationBlownIn,
		entities.InsulationHybrid,
	} {
		q := Compute(Input{
			AreaSqFt:             100,
			System:               system,
			ThicknessIn:          3,
			ClosedCellIn:         2,
			OpenCellIn:           2,
			OverridePricePerSqFt: floatPtr(5),
		}, rt)

		nearlyEqual(t, string(system)+" unit price", q.UnitPrice, 5)
		nearlyEqual(t, string(system)+" line cost", q.LineCost, 500)
	}
}

func TestCompute_BattAndBlownIn_FixedPerInch(t *testing.T) {
	rt := entities.DefaultRateTable()

	batt := Compute(Input{AreaSqFt: 200, System: entities.InsulationBatt, ThicknessIn: 3.5}, rt)
	nearlyEqual(t, "batt unit price", batt.UnitPrice, 3.5*0.31)
	nearlyEqual(t, "batt line cost", batt.LineCost, 217)

	blown := Compute(Input{AreaSqFt: 200, System: entities.InsulationBlownIn, ThicknessIn: 10}, rt)
	nearlyEqual(t, "blown-in unit price", blown.UnitPrice, 2.7)
	nearlyEqual(t, "blown-in line cost", blown.LineCost, 540)
}

func TestCompute_LineCostRoundedToCents(t *testing.T) {
	rt := entities.DefaultRateTable()

	// 3.899 × 77 = 300.223 → 300.22
	q := Compute(Input{AreaSqFt: 77, System: entities.InsulationHybrid, ClosedCellIn: 2, OpenCellIn: 3}, rt)
	nearlyEqual(t, "line cost", q.LineCost, 300.22)
}

func TestCompute_UnknownSystem_Zero(t *testing.T) {
	q := Compute(Input{AreaSqFt: 100, System: entities.InsulationType("fiberglass_board"), ThicknessIn: 2}, entities.DefaultRateTable())
	nearlyEqual(t, "unit price", q.UnitPrice, 0)
	nearlyEqual(t, "line cost", q.LineCost, 0)
}

func TestRValueLabel(t *testing.T) {
	cases := map[float64]string{
		21:    "R-21",
		25.4:  "R-25.4",
		13.29: "R-13.3",
		0:     "R-0",
	}
	for in, want := range cases {
		if got := RValueLabel(in); got != want {
			t.Fatalf("RValueLabel(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRoundCents(t *testing.T) {
	nearlyEqual(t, "round up", RoundCents(1.239), 1.24)
	nearlyEqual(t, "round down", RoundCents(300.223), 300.22)
	nearlyEqual(t, "already cents", RoundCents(750.50), 750.50)
}
