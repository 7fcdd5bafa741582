package handlers

import (
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

var errInvalidMeasurementPayload = pkg.NewDomainErrorSimple("INVALID_MEASUREMENT_INPUT", "Invalid measurement payload", http.StatusBadRequest)

// MeasurementHandler handles HTTP requests for field measurements.
//
// All mutations pass the caller identity (X-User-ID) down to the use case,
// where the lock guard decides whether a locked job may still be edited.

type MeasurementHandler struct {
	usecase usecase.IMeasurementUseCase
}

func NewMeasurementHandler(uc usecase.IMeasurementUseCase) *MeasurementHandler {
	return &MeasurementHandler{usecase: uc}
}

func (h *MeasurementHandler) CreateMeasurement(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.MeasurementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMeasurementPayload.HTTPStatus, errInvalidMeasurementPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.Create(c.Request.Context(), actorID(c), jobID, toMeasurementInput(payload))
	if err != nil {
		log.Printf("[measurement][handler] create failed job_id=%s err=%v", jobID, err)
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMeasurement(m))
}

func (h *MeasurementHandler) ListMeasurements(c *gin.Context) {
	jobID := c.Param("job_id")

	ms, err := h.usecase.ListByJobID(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMeasurements(ms))
}

func (h *MeasurementHandler) GetMeasurement(c *gin.Context) {
	id := c.Param("id")

	m, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMeasurement(m))
}

func (h *MeasurementHandler) UpdateMeasurement(c *gin.Context) {
	id := c.Param("id")

	var payload request.MeasurementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMeasurementPayload.HTTPStatus, errInvalidMeasurementPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.Update(c.Request.Context(), actorID(c), id, toMeasurementInput(payload))
	if err != nil {
		log.Printf("[measurement][handler] update failed id=%s err=%v", id, err)
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMeasurement(m))
}

func (h *MeasurementHandler) DeleteMeasurement(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), actorID(c), id); err != nil {
		log.Printf("[measurement][handler] delete failed id=%s err=%v", id, err)
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// SetOverride applies a manual unit price (manager only).
func (h *MeasurementHandler) SetOverride(c *gin.Context) {
	id := c.Param("id")

	var payload request.OverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.PricePerSqFt == nil {
		c.JSON(errInvalidMeasurementPayload.HTTPStatus, errInvalidMeasurementPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.SetOverride(c.Request.Context(), actorID(c), id, *payload.PricePerSqFt)
	if err != nil {
		log.Printf("[measurement][handler] override failed id=%s err=%v", id, err)
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMeasurement(m))
}

func (h *MeasurementHandler) ClearOverride(c *gin.Context) {
	id := c.Param("id")

	m, err := h.usecase.ClearOverride(c.Request.Context(), actorID(c), id)
	if err != nil {
		log.Printf("[measurement][handler] clear-override failed id=%s err=%v", id, err)
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMeasurement(m))
}

func toMeasurementInput(p request.MeasurementRequest) usecase.MeasurementInput {
	return usecase.MeasurementInput{
		RoomName:     p.RoomName,
		Surface:      entities.SurfaceType(p.SurfaceType),
		HeightFt:     p.HeightFt,
		WidthFt:      p.WidthFt,
		System:       entities.InsulationType(p.InsulationType),
		ThicknessIn:  p.ThicknessIn,
		ClosedCellIn: p.ClosedCellIn,
		OpenCellIn:   p.OpenCellIn,
	}
}

func mapMeasurementError(err error) *pkg.AppError {
	var locked *usecase.MeasurementsLockedError
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidMeasurementID),
		errors.Is(err, usecase.ErrInvalidSurfaceType),
		errors.Is(err, usecase.ErrInvalidInsulationType),
		errors.Is(err, usecase.ErrInvalidDimensions),
		errors.Is(err, usecase.ErrAreaOutOfRange),
		errors.Is(err, usecase.ErrInvalidThickness),
		errors.Is(err, usecase.ErrClosedCellTooThick),
		errors.Is(err, usecase.ErrOpenCellTooThick),
		errors.Is(err, usecase.ErrExceedsCavityDepth),
		errors.Is(err, usecase.ErrNegativeOverride):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMeasurementNotFound):
		return pkg.NewDomainErrorSimple("MEASUREMENT_NOT_FOUND", "Measurement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrManagerRequired):
		return pkg.NewDomainErrorSimple("MANAGER_REQUIRED", "Manager role required", http.StatusForbidden)
	case errors.As(err, &locked):
		msg := fmt.Sprintf("Measurements are locked by approved estimate %s", locked.EstimateID)
		return pkg.NewDomainErrorSimple("MEASUREMENTS_LOCKED", msg, http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
