package handlers

import (
	"errors"
	"log"
	"net/http"

	request "foamtrack/internal/adapter/http/dto/request"
	response "foamtrack/internal/adapter/http/dto/response"
	"foamtrack/internal/domain/entities"
	"foamtrack/internal/usecase"
	"foamtrack/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles HTTP requests for insulation jobs.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), usecase.JobInput{
		CustomerName: payload.ResolveCustomerName(),
		SiteAddress:  payload.SiteAddress,
		Framing:      entities.FramingSize(payload.FramingSize),
	})
	if err != nil {
		log.Printf("[job][handler] create failed customer=%s err=%v", payload.ResolveCustomerName(), err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id := c.Param("job_id")

	job, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidFramingSize):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
