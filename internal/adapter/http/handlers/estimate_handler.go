package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	request "foamtrack/internal/adapter/http/dto/request"
	response "foamtrack/internal/adapter/http/dto/response"
	"foamtrack/internal/domain/entities"
	"foamtrack/internal/usecase"
	"foamtrack/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for estimates: creation, totals
// recalculation, markup adjustment and the approval state machine.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	jobID := c.Param("job_id")

	est, err := h.usecase.CreateDraft(c.Request.Context(), actorID(c), jobID)
	if err != nil {
		log.Printf("[estimate][handler] create failed job_id=%s err=%v", jobID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(est))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	jobID := c.Param("job_id")

	ests, err := h.usecase.ListByJobID(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(ests))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	id := c.Param("id")

	est, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

func (h *EstimateHandler) RecalculateEstimate(c *gin.Context) {
	h.patchEstimate(c, h.usecase.RecalculateTotals)
}

func (h *EstimateHandler) SubmitEstimate(c *gin.Context) {
	h.patchEstimate(c, h.usecase.Submit)
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimate(c, h.usecase.Approve)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimate(c, h.usecase.Reject)
}

func (h *EstimateHandler) UpdateMarkup(c *gin.Context) {
	id := c.Param("id")

	var payload request.MarkupRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.MarkupPercent == nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	est, err := h.usecase.UpdateMarkup(c.Request.Context(), actorID(c), id, *payload.MarkupPercent)
	if err != nil {
		log.Printf("[estimate][handler] markup failed id=%s err=%v", id, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

func (h *EstimateHandler) patchEstimate(
	c *gin.Context,
	transition func(ctx context.Context, actorID, estimateID string) (entities.Estimate, error),
) {
	id := c.Param("id")

	est, err := transition(c.Request.Context(), actorID(c), id)
	if err != nil {
		log.Printf("[estimate][handler] transition failed id=%s err=%v", id, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

func mapEstimateError(err error) *pkg.AppError {
	var held *usecase.LockHeldError
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidMarkup):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrManagerRequired):
		return pkg.NewDomainErrorSimple("MANAGER_REQUIRED", "Manager role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEstimateAlreadyApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_APPROVED", "Estimate already approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotEditable), errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", err.Error(), http.StatusConflict)
	case errors.As(err, &held):
		msg := fmt.Sprintf("Job measurements already locked by estimate %s", held.EstimateID)
		return pkg.NewDomainErrorSimple("LOCK_HELD", msg, http.StatusConflict)
	case errors.Is(err, usecase.ErrJobUnresolvable):
		return pkg.NewDomainErrorSimple("JOB_UNRESOLVABLE", "Could not locate job for estimate", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
