// Package pricing computes installed-insulation unit prices and line costs for
// a single measurement. It is pure: inputs plus a rate-table snapshot in,
// numbers out, no I/O.
package pricing

import (
	"math"
	"strconv"

	"foamtrack/internal/domain/entities"
)

// Input is the price-affecting slice of one measurement.
type Input struct {
	AreaSqFt float64
	System   entities.InsulationType

	// ThicknessIn applies to closed_cell, open_cell, batt and blown_in.
	ThicknessIn float64

	// ClosedCellIn and OpenCellIn apply to hybrid only.
	ClosedCellIn float64
	OpenCellIn   float64

	// OverridePricePerSqFt, when non-nil, wins over any rate-table lookup.
	OverridePricePerSqFt *float64
}

// Quote is the computed price for one measurement.
//
// UnitPrice keeps the raw computed rate (a $/sq ft rate, not a currency amount;
// per-inch sums like 2"×1.243 + 3"×0.471 = 3.899 are meaningful at three
// decimals). LineCost is currency and is rounded to cents.
type Quote struct {
	UnitPrice   float64
	LineCost    float64
	RValue      float64
	RValueLabel string
}

// Compute resolves the unit price and line cost for one measurement.
//
// Resolution order:
//   - a manual override always wins and bypasses the rate table entirely;
//   - closed_cell / open_cell key the bracket table by R-value derived from
//     thickness × R-per-inch (the R-value-keyed table is the one carried; the
//     thickness-keyed variant of the published data is not);
//   - hybrid sums the two per-inch material rates; the R-value is likewise
//     the sum of each system's contribution, with no additional multiplier;
//   - batt / blown_in are fixed per-inch rates.
//
// A resolved R-value that no bracket covers yields unit price 0, silently.
// That matches the deployed behavior and is deliberately preserved.
func Compute(in Input, rt entities.RateTable) Quote {
	var q Quote

	switch in.System {
	case entities.InsulationClosedCell:
		q.RValue = in.ThicknessIn * rt.ClosedCellRPerInch
		q.UnitPrice = bracketPrice(rt, entities.InsulationClosedCell, q.RValue)
	case entities.InsulationOpenCell:
		q.RValue = in.ThicknessIn * rt.OpenCellRPerInch
		q.UnitPrice = bracketPrice(rt, entities.InsulationOpenCell, q.RValue)
	case entities.InsulationHybrid:
		q.RValue = in.ClosedCellIn*rt.ClosedCellRPerInch + in.OpenCellIn*rt.OpenCellRPerInch
		q.UnitPrice = in.ClosedCellIn*rt.ClosedCellPerInch + in.OpenCellIn*rt.OpenCellPerInch
	case entities.InsulationBatt:
		q.RValue = in.ThicknessIn * rt.BattRPerInch
		q.UnitPrice = in.ThicknessIn * rt.BattPerInch
	case entities.InsulationBlownIn:
		q.RValue = in.ThicknessIn * rt.BlownInRPerInch
		q.UnitPrice = in.ThicknessIn * rt.BlownInPerInch
	}

	if in.OverridePricePerSqFt != nil {
		q.UnitPrice = *in.OverridePricePerSqFt
	}

	q.LineCost = RoundCents(q.UnitPrice * in.AreaSqFt)
	q.RValueLabel = RValueLabel(q.RValue)
	return q
}

func bracketPrice(rt entities.RateTable, system entities.InsulationType, rValue float64) float64 {
	for _, b := range rt.Brackets {
		if b.System != system {
			continue
		}
		if rValue >= b.MinRValue && rValue <= b.MaxRValue {
			return b.PricePerSqFt
		}
	}
	return 0
}

// RoundCents rounds a currency amount to 2 decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// RValueLabel renders the display form of an R-value ("R-21", "R-13.3").
// The label is derived from the numeric inches and is never authoritative:
// callers needing the number must re-derive it, not parse this string.
func RValueLabel(rValue float64) string {
	rounded := math.Round(rValue*10) / 10
	return "R-" + strconv.FormatFloat(rounded, 'f', -1, 64)
}
