package response

import (
	"time"

	"foamtrack/internal/domain/entities"
)

type DepositResponse struct {
	ID         string    `json:"id"`
	EstimateID string    `json:"estimate_id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

func FromDeposit(d entities.DepositPayment) DepositResponse {
	return DepositResponse{
		ID:         d.ID,
		EstimateID: d.EstimateID,
		Amount:     d.Amount,
		Date:       d.Date,
		Status:     string(d.Status),
	}
}
