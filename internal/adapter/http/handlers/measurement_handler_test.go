package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foamtrack/internal/adapter/http/handlers/mocks"
	"foamtrack/internal/domain/entities"
	"foamtrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMeasurementHandler_CreateMeasurement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/measurements", h.CreateMeasurement)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/measurements", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success passes actor and job id through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/measurements", h.CreateMeasurement)

		uc.EXPECT().Create(gomock.Any(), "tech-1", "job-1", usecase.MeasurementInput{
			RoomName:     "garage",
			Surface:      entities.SurfaceWall,
			HeightFt:     10,
			WidthFt:      8,
			System:       entities.InsulationHybrid,
			ClosedCellIn: 2,
			OpenCellIn:   3,
		}).Return(entities.Measurement{ID: "m-1", JobID: "job-1", UnitPrice: 3.899, LineCost: 311.92}, nil)

		body := `{"room_name":"garage","surface_type":"wall","height_ft":10,"width_ft":8,"insulation_type":"hybrid","closed_cell_in":2,"open_cell_in":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/measurements", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "tech-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "m-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("locked job maps to 403 naming the estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/measurements", h.CreateMeasurement)

		uc.EXPECT().Create(gomock.Any(), "", "job-1", gomock.Any()).Return(
			entities.Measurement{}, &usecase.MeasurementsLockedError{EstimateID: "est-9"},
		)

		body := `{"surface_type":"wall","height_ft":10,"width_ft":8,"insulation_type":"open_cell","thickness_in":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/measurements", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		msg, _ := resp["message"].(string)
		if msg != "Measurements are locked by approved estimate est-9" {
			t.Fatalf("unexpected message: %q", msg)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/measurements", h.CreateMeasurement)

		uc.EXPECT().Create(gomock.Any(), "", "job-1", gomock.Any()).Return(
			entities.Measurement{}, usecase.ErrExceedsCavityDepth,
		)

		body := `{"surface_type":"wall","height_ft":10,"width_ft":8,"insulation_type":"hybrid","closed_cell_in":3,"open_cell_in":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/measurements", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMeasurementHandler_Override(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("set override success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.PUT("/v1/measurements/:id/override", h.SetOverride)

		uc.EXPECT().SetOverride(gomock.Any(), "mgr-1", "m-1", 5.0).Return(
			entities.Measurement{ID: "m-1", UnitPrice: 5, LineCost: 500}, nil,
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/measurements/m-1/override", bytes.NewBufferString(`{"price_per_sq_ft":5}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "mgr-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.PUT("/v1/measurements/:id/override", h.SetOverride)

		req := httptest.NewRequest(http.MethodPut, "/v1/measurements/m-1/override", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-manager maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.PUT("/v1/measurements/:id/override", h.SetOverride)

		uc.EXPECT().SetOverride(gomock.Any(), "tech-1", "m-1", 5.0).Return(
			entities.Measurement{}, usecase.ErrManagerRequired,
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/measurements/m-1/override", bytes.NewBufferString(`{"price_per_sq_ft":5}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "tech-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("clear override success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.DELETE("/v1/measurements/:id/override", h.ClearOverride)

		uc.EXPECT().ClearOverride(gomock.Any(), "mgr-1", "m-1").Return(
			entities.Measurement{ID: "m-1", UnitPrice: 3.80, LineCost: 380}, nil,
		)

		req := httptest.NewRequest(http.MethodDelete, "/v1/measurements/m-1/override", nil)
		req.Header.Set("X-User-ID", "mgr-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMeasurementHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.DELETE("/v1/measurements/:id", h.DeleteMeasurement)

		uc.EXPECT().Delete(gomock.Any(), "tech-1", "m-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/measurements/m-1", nil)
		req.Header.Set("X-User-ID", "tech-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMeasurementUseCase(ctrl)
		h := NewMeasurementHandler(uc)

		r := gin.New()
		r.DELETE("/v1/measurements/:id", h.DeleteMeasurement)

		uc.EXPECT().Delete(gomock.Any(), "", "m-1").Return(usecase.ErrMeasurementNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/measurements/m-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapMeasurementError(t *testing.T) {
	if got := mapMeasurementError(usecase.ErrInvalidDimensions); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapMeasurementError(usecase.ErrMeasurementNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapMeasurementError(usecase.ErrManagerRequired); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapMeasurementError(&usecase.MeasurementsLockedError{EstimateID: "est-1"}); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapMeasurementError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
