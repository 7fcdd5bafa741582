package response

import (
	"time"

	"foamtrack/internal/domain/entities"
)

type EstimateResponse struct {
	ID             string  `json:"id"`
	JobID          string  `json:"job_id"`
	EstimateNumber string  `json:"estimate_number"`
	Subtotal       float64 `json:"subtotal"`
	TotalAmount    float64 `json:"total_amount"`
	MarkupPercent  float64 `json:"markup_percent"`
	Status         string  `json:"status"`

	CreatedBy  string     `json:"created_by,omitempty"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	LocksMeasurements bool `json:"locks_measurements"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:                e.ID,
		JobID:             e.JobID,
		EstimateNumber:    e.EstimateNumber,
		Subtotal:          e.Subtotal,
		TotalAmount:       e.TotalAmount,
		MarkupPercent:     e.MarkupPercent,
		Status:            string(e.Status),
		CreatedBy:         e.CreatedBy,
		ApprovedBy:        e.ApprovedBy,
		ApprovedAt:        e.ApprovedAt,
		LocksMeasurements: e.LocksMeasurements,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}
