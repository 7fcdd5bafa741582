package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "foamtrack/internal/adapter/http/dto/response"
	"foamtrack/internal/usecase"
	"foamtrack/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles HTTP requests for customer deposits collected against
// approved estimates.

type DepositHandler struct {
	usecase usecase.IDepositUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

// CreateDepositByEstimateID collects a deposit using estimate_id in path. The
// body is forwarded to the payment provider; the deposit amount always comes
// from the stored estimate, never from the body.
func (h *DepositHandler) CreateDepositByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log.Printf("[deposit][handler] create start estimate_id=%s", estimateID)

	payload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[deposit][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), estimateID, payload)
	if err != nil {
		log.Printf("[deposit][handler] create failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] create success estimate_id=%s deposit_id=%s status=%s", estimateID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromDeposit(created))
}

// GetDepositByEstimateID returns the latest deposit for an estimate.
func (h *DepositHandler) GetDepositByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	deposits, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(deposits) == 0 {
		appErr := pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := deposits[0]
	for _, d := range deposits[1:] {
		if d.Date.After(latest.Date) {
			latest = d
		}
	}

	c.JSON(http.StatusOK, response.FromDeposit(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}
	return json.RawMessage(raw), nil
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositEstimateID), errors.Is(err, usecase.ErrInvalidDepositPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
