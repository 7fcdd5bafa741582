package entities

import "time"

// FramingSize is the lumber size of a job's wall/ceiling framing. It determines
// the usable insulation cavity depth for hybrid systems.

type FramingSize string

const (
	Framing2x4  FramingSize = "2x4"
	Framing2x6  FramingSize = "2x6"
	Framing2x8  FramingSize = "2x8"
	Framing2x10 FramingSize = "2x10"
	Framing2x12 FramingSize = "2x12"
)

var cavityDepths = map[FramingSize]float64{
	Framing2x4:  3.5,
	Framing2x6:  5.5,
	Framing2x8:  7.25,
	Framing2x10: 9.25,
	Framing2x12: 11.25,
}

// CavityDepthIn returns the usable cavity depth in inches, or 0 for an unknown
// framing size.
func (f FramingSize) CavityDepthIn() float64 {
	return cavityDepths[f]
}

func (f FramingSize) Valid() bool {
	_, ok := cavityDepths[f]
	return ok
}

// Job is an insulation job (one site visit / one set of field measurements).
//
// Storage model (DynamoDB):
//   - PK: id
type Job struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	SiteAddress  string      `json:"site_address"`
	Framing      FramingSize `json:"framing_size"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
