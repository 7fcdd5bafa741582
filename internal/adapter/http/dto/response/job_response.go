package response

import (
	"time"

	"foamtrack/internal/domain/entities"
)

type JobResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	SiteAddress   string    `json:"site_address,omitempty"`
	FramingSize   string    `json:"framing_size"`
	CavityDepthIn float64   `json:"cavity_depth_in"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:            j.ID,
		CustomerName:  j.CustomerName,
		SiteAddress:   j.SiteAddress,
		FramingSize:   string(j.Framing),
		CavityDepthIn: j.Framing.CavityDepthIn(),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}
