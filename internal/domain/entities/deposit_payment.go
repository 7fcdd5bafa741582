package entities

import (
	"encoding/json"
	"time"
)

// DepositStatus represents the deposit processing outcome.

type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "pending"
	DepositStatusConfirmed DepositStatus = "confirmed"
	DepositStatusDenied    DepositStatus = "denied"
)

// DepositPayment is a customer deposit collected against an approved estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.
type DepositPayment struct {
	ID         string        `json:"id"`
	EstimateID string        `json:"estimate_id"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     DepositStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
