package routes

import (
	"foamtrack/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs         = "/jobs"
	PathMeasurements = "/measurements"
	PathEstimates    = "/estimates"
	PathDeposits     = "/deposits"
)

func addCRMRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	measurementHandler *handlers.MeasurementHandler,
	estimateHandler *handlers.EstimateHandler,
	depositHandler *handlers.DepositHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJob)

		// Nested collections scoped to one job.
		jobs.POST("/:job_id/measurements", measurementHandler.CreateMeasurement)
		jobs.GET("/:job_id/measurements", measurementHandler.ListMeasurements)
		jobs.POST("/:job_id/estimates", estimateHandler.CreateEstimate)
		jobs.GET("/:job_id/estimates", estimateHandler.ListEstimates)
	}

	measurements := rg.Group(PathMeasurements)
	{
		measurements.GET("/:id", measurementHandler.GetMeasurement)
		measurements.PUT("/:id", measurementHandler.UpdateMeasurement)
		measurements.DELETE("/:id", measurementHandler.DeleteMeasurement)
		measurements.PUT("/:id/override", measurementHandler.SetOverride)
		measurements.DELETE("/:id/override", measurementHandler.ClearOverride)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.POST("/:id/recalculate", estimateHandler.RecalculateEstimate)
		estimates.PATCH("/:id/markup", estimateHandler.UpdateMarkup)
		estimates.PATCH("/:id/submit", estimateHandler.SubmitEstimate)
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:id/reject", estimateHandler.RejectEstimate)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("/:estimate_id", depositHandler.CreateDepositByEstimateID)
		deposits.GET("/:estimate_id", depositHandler.GetDepositByEstimateID)
	}
}
