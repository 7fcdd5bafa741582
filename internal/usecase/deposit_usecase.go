package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"foamtrack/internal/domain/entities"
	"foamtrack/internal/usecase/interfaces"
)

var (
	ErrDepositNotFound          = errors.New("deposit not found")
	ErrInvalidDepositEstimateID = errors.New("invalid estimate_id")
	ErrInvalidDepositPayload    = errors.New("invalid deposit payload")
	ErrEstimateNotApproved      = errors.New("estimate not approved")
)

// IDepositUseCase encapsulates collecting a customer deposit against an
// approved estimate through the external payment provider.

type IDepositUseCase interface {
	CreateDeposit(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error)
}

type DepositUseCase struct {
	repo      interfaces.IDepositRepository
	estimates interfaces.IEstimateRepository
	gateway   interfaces.IPaymentGateway
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, estimates interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *DepositUseCase {
	return &DepositUseCase{repo: repo, estimates: estimates, gateway: gateway}
}

func (u *DepositUseCase) CreateDeposit(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.DepositPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.DepositPayment{}, ErrInvalidDepositEstimateID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		return entities.DepositPayment{}, ErrInvalidDepositPayload
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}

	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[deposit][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.DepositPayment{}, err
	}
	if est.ID == "" {
		return entities.DepositPayment{}, ErrEstimateNotFound
	}
	// Deposits are only collected once the estimate survives approval.
	if est.Status != entities.EstimateStatusApproved {
		log.Printf("[deposit][usecase] estimate not approved estimate_id=%s status=%s", estimateID, est.Status)
		return entities.DepositPayment{}, ErrEstimateNotApproved
	}

	// The source of truth for the amount is the estimate in the store, never
	// the caller's payload.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.DepositPayment{}, ErrInvalidDepositPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = est.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Deposit for estimate %s", est.EstimateNumber)
	}
	reqMap["transaction_amount"] = est.TotalAmount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[deposit][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
		return entities.DepositPayment{}, err
	}

	status := entities.DepositStatusPending
	switch providerStatus {
	case "approved":
		status = entities.DepositStatusConfirmed
	case "rejected", "cancelled":
		status = entities.DepositStatusDenied
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	d := entities.DepositPayment{
		ID:                 providerPaymentID,
		EstimateID:         est.ID,
		Amount:             est.TotalAmount,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[deposit][usecase] deposit create failed estimate_id=%s deposit_id=%s err=%v", estimateID, d.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[deposit][usecase] deposit recorded estimate_id=%s deposit_id=%s status=%s amount=%.2f", estimateID, created.ID, created.Status, created.Amount)
	return created, nil
}

func (u *DepositUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid deposit id")
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if d.ID == "" {
		return entities.DepositPayment{}, ErrDepositNotFound
	}
	return d, nil
}

func (u *DepositUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidDepositEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}
