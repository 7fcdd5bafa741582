package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"foamtrack/internal/domain/entities"
	mock_interfaces "foamtrack/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fakeTotals struct {
	jobIDs []string
	err    error
}

func (f *fakeTotals) RecalculateForJob(_ context.Context, jobID string) error {
	f.jobIDs = append(f.jobIDs, jobID)
	return f.err
}

type measurementFixture struct {
	repo   *mock_interfaces.MockIMeasurementRepository
	jobs   *mock_interfaces.MockIJobRepository
	rates  *mock_interfaces.MockIRateTableRepository
	users  *mock_interfaces.MockIUserRepository
	totals *fakeTotals
	uc     *MeasurementUseCase
}

func newMeasurementFixture(t *testing.T) (*measurementFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := &measurementFixture{
		repo:   mock_interfaces.NewMockIMeasurementRepository(ctrl),
		jobs:   mock_interfaces.NewMockIJobRepository(ctrl),
		rates:  mock_interfaces.NewMockIRateTableRepository(ctrl),
		users:  mock_interfaces.NewMockIUserRepository(ctrl),
		totals: &fakeTotals{},
	}
	guard := NewLockGuard(f.repo, f.users)
	f.uc = NewMeasurementUseCase(f.repo, f.jobs, f.rates, guard, f.totals)
	return f, ctrl
}

func (f *measurementFixture) expectNonManager(actorID string) {
	f.users.EXPECT().GetByID(gomock.Any(), actorID).Return(entities.User{ID: actorID, Role: "estimator"}, nil).AnyTimes()
}

func (f *measurementFixture) expectManager(actorID string) {
	f.users.EXPECT().GetByID(gomock.Any(), actorID).Return(entities.User{ID: actorID, Role: entities.RoleManager}, nil).AnyTimes()
}

func validHybridInput() MeasurementInput {
	return MeasurementInput{
		RoomName:     "garage",
		Surface:      entities.SurfaceWall,
		HeightFt:     10,
		WidthFt:      8,
		System:       entities.InsulationHybrid,
		ClosedCellIn: 2,
		OpenCellIn:   3,
	}
}

func TestMeasurementUseCase_Create(t *testing.T) {
	job2x6 := entities.Job{ID: "job-1", CustomerName: "Acme", Framing: entities.Framing2x6}

	t.Run("invalid job id", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		_, err := f.uc.Create(context.Background(), "tech-1", "  ", validHybridInput())
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := f.uc.Create(context.Background(), "tech-1", "job-1", validHybridInput())
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("locked job denies non-manager", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job2x6, nil)
		f.expectNonManager("tech-1")
		f.repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Measurement{
			{ID: "m-1", IsLocked: true, LockedByEstimateID: "est-7"},
		}, nil)

		_, err := f.uc.Create(context.Background(), "tech-1", "job-1", validHybridInput())
		var locked *MeasurementsLockedError
		if !errors.As(err, &locked) || locked.EstimateID != "est-7" {
			t.Fatalf("expected lock denial naming est-7, got %v", err)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*MeasurementInput)
			wantErr error
		}{
			{"bad surface", func(in *MeasurementInput) { in.Surface = "roof" }, ErrInvalidSurfaceType},
			{"bad insulation", func(in *MeasurementInput) { in.System = "foam_board" }, ErrInvalidInsulationType},
			{"zero height", func(in *MeasurementInput) { in.HeightFt = 0 }, ErrInvalidDimensions},
			{"span too long", func(in *MeasurementInput) { in.WidthFt = 101 }, ErrInvalidDimensions},
			{"area below minimum", func(in *MeasurementInput) { in.HeightFt, in.WidthFt = 0.5, 0.5 }, ErrAreaOutOfRange},
			{"closed cell too thick", func(in *MeasurementInput) { in.ClosedCellIn = 7.5 }, ErrClosedCellTooThick},
			{"open cell too thick", func(in *MeasurementInput) { in.OpenCellIn = 13.5 }, ErrOpenCellTooThick},
			// 3" + 3" = 6" exceeds the 5.5" cavity of 2x6 framing.
			{"cavity exceeded", func(in *MeasurementInput) { in.ClosedCellIn, in.OpenCellIn = 3, 3 }, ErrExceedsCavityDepth},
			{"no thickness at all", func(in *MeasurementInput) { in.ClosedCellIn, in.OpenCellIn = 0, 0 }, ErrInvalidThickness},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f, ctrl := newMeasurementFixture(t)
				defer ctrl.Finish()
				f.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job2x6, nil)
				f.expectNonManager("tech-1")
				f.repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

				in := validHybridInput()
				tc.mutate(&in)
				_, err := f.uc.Create(context.Background(), "tech-1", "job-1", in)
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("thickness required for single systems", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job2x6, nil)
		f.expectNonManager("tech-1")
		f.repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		in := validHybridInput()
		in.System = entities.InsulationClosedCell
		in.ClosedCellIn, in.OpenCellIn, in.ThicknessIn = 0, 0, 0
		_, err := f.uc.Create(context.Background(), "tech-1", "job-1", in)
		if !errors.Is(err, ErrInvalidThickness) {
			t.Fatalf("expected ErrInvalidThickness, got %v", err)
		}
	})

	t.Run("success prices hybrid and recalculates totals", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job2x6, nil)
		f.expectNonManager("tech-1")
		f.repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)
		f.rates.EXPECT().Snapshot(gomock.Any()).Return(entities.DefaultRateTable(), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Measurement{})).DoAndReturn(
			func(_ context.Context, m entities.Measurement) (entities.Measurement, error) {
				if m.ID == "" || m.JobID != "job-1" {
					t.Fatalf("unexpected measurement: %+v", m)
				}
				if m.AreaSqFt != 80 {
					t.Fatalf("expected area 80, got %v", m.AreaSqFt)
				}
				if math.Abs(m.UnitPrice-3.899) > 1e-9 {
					t.Fatalf("expected unit price 3.899, got %v", m.UnitPrice)
				}
				if math.Abs(m.LineCost-311.92) > 1e-9 {
					t.Fatalf("expected line cost 311.92, got %v", m.LineCost)
				}
				if m.RValue != "R-25.4" {
					t.Fatalf("expected R-25.4, got %s", m.RValue)
				}
				return m, nil
			},
		)

		created, err := f.uc.Create(context.Background(), "tech-1", "job-1", validHybridInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		if len(f.totals.jobIDs) != 1 || f.totals.jobIDs[0] != "job-1" {
			t.Fatalf("expected totals recalculation for job-1, got %v", f.totals.jobIDs)
		}
	})
}

func TestMeasurementUseCase_SetOverride(t *testing.T) {
	t.Run("negative override", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		_, err := f.uc.SetOverride(context.Background(), "mgr-1", "m-1", -1)
		if !errors.Is(err, ErrNegativeOverride) {
			t.Fatalf("expected ErrNegativeOverride, got %v", err)
		}
	})

	t.Run("non-manager forbidden", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.expectNonManager("tech-1")

		_, err := f.uc.SetOverride(context.Background(), "tech-1", "m-1", 5)
		if !errors.Is(err, ErrManagerRequired) {
			t.Fatalf("expected ErrManagerRequired, got %v", err)
		}
	})

	t.Run("manager override wins over rate table", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.expectManager("mgr-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Measurement{
			ID:       "m-1",
			JobID:    "job-1",
			AreaSqFt: 100,
			System:   entities.InsulationClosedCell,

			ThicknessIn: 3,
		}, nil)
		f.rates.EXPECT().Snapshot(gomock.Any()).Return(entities.DefaultRateTable(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Measurement{})).DoAndReturn(
			func(_ context.Context, m entities.Measurement) (entities.Measurement, error) {
				if m.OverridePricePerSqFt == nil || *m.OverridePricePerSqFt != 5 {
					t.Fatalf("expected override 5, got %+v", m.OverridePricePerSqFt)
				}
				if m.OverrideSetAt == nil {
					t.Fatalf("expected override timestamp")
				}
				if m.UnitPrice != 5 || m.LineCost != 500 {
					t.Fatalf("expected 5/500, got %v/%v", m.UnitPrice, m.LineCost)
				}
				return m, nil
			},
		)

		res, err := f.uc.SetOverride(context.Background(), "mgr-1", "m-1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.LineCost != 500 {
			t.Fatalf("expected line cost 500, got %v", res.LineCost)
		}
		if len(f.totals.jobIDs) != 1 || f.totals.jobIDs[0] != "job-1" {
			t.Fatalf("expected totals recalculation for job-1, got %v", f.totals.jobIDs)
		}
	})

	t.Run("clear override reprices from rate table", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.expectManager("mgr-1")
		override := 5.0
		f.repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Measurement{
			ID:                   "m-1",
			JobID:                "job-1",
			AreaSqFt:             100,
			System:               entities.InsulationClosedCell,
			ThicknessIn:          3,
			OverridePricePerSqFt: &override,
		}, nil)
		f.rates.EXPECT().Snapshot(gomock.Any()).Return(entities.DefaultRateTable(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Measurement{})).DoAndReturn(
			func(_ context.Context, m entities.Measurement) (entities.Measurement, error) {
				if m.OverridePricePerSqFt != nil {
					t.Fatalf("expected override cleared")
				}
				if m.UnitPrice != 3.80 || m.LineCost != 380 {
					t.Fatalf("expected 3.80/380, got %v/%v", m.UnitPrice, m.LineCost)
				}
				return m, nil
			},
		)

		if _, err := f.uc.ClearOverride(context.Background(), "mgr-1", "m-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMeasurementUseCase_Delete(t *testing.T) {
	t.Run("locked denies non-manager", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.expectNonManager("tech-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Measurement{ID: "m-1", JobID: "job-1"}, nil)
		f.repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Measurement{
			{ID: "m-1", JobID: "job-1", IsLocked: true, LockedByEstimateID: "est-3"},
		}, nil)

		err := f.uc.Delete(context.Background(), "tech-1", "m-1")
		var locked *MeasurementsLockedError
		if !errors.As(err, &locked) || locked.EstimateID != "est-3" {
			t.Fatalf("expected lock denial naming est-3, got %v", err)
		}
	})

	t.Run("manager deletes regardless of lock", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.expectManager("mgr-1")
		f.repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Measurement{ID: "m-1", JobID: "job-1", IsLocked: true, LockedByEstimateID: "est-3"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), "m-1").Return(nil)

		if err := f.uc.Delete(context.Background(), "mgr-1", "m-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.totals.jobIDs) != 1 {
			t.Fatalf("expected totals recalculation, got %v", f.totals.jobIDs)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f, ctrl := newMeasurementFixture(t)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Measurement{}, nil)

		if !errors.Is(f.uc.Delete(context.Background(), "tech-1", "m-1"), ErrMeasurementNotFound) {
			t.Fatalf("expected ErrMeasurementNotFound")
		}
	})
}
