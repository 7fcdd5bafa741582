package usecase

import (
	"context"
	"errors"
	"testing"

	"foamtrack/internal/domain/entities"
	mock_interfaces "foamtrack/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobUseCase_Create(t *testing.T) {
	t.Run("blank customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(mock_interfaces.NewMockIJobRepository(ctrl))

		_, err := uc.Create(context.Background(), JobInput{CustomerName: "  ", Framing: entities.Framing2x6})
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("unknown framing size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(mock_interfaces.NewMockIJobRepository(ctrl))

		_, err := uc.Create(context.Background(), JobInput{CustomerName: "Acme", Framing: "2x5"})
		if !errors.Is(err, ErrInvalidFramingSize) {
			t.Fatalf("expected ErrInvalidFramingSize, got %v", err)
		}
	})

	t.Run("creates with trimmed fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" {
					t.Fatalf("expected generated id")
				}
				if j.CustomerName != "Acme" || j.SiteAddress != "12 Pine Rd" {
					t.Fatalf("fields not trimmed: %+v", j)
				}
				if j.Framing != entities.Framing2x6 {
					t.Fatalf("expected 2x6 framing, got %s", j.Framing)
				}
				return j, nil
			},
		)

		j, err := uc.Create(context.Background(), JobInput{
			CustomerName: "  Acme  ",
			SiteAddress:  " 12 Pine Rd ",
			Framing:      entities.Framing2x6,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.CustomerName != "Acme" {
			t.Fatalf("expected Acme, got %s", j.CustomerName)
		}
	})
}

func TestJobUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.GetByID(context.Background(), "job-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewJobUseCase(mock_interfaces.NewMockIJobRepository(ctrl))

		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerName: "Acme"}, nil)

		j, err := uc.GetByID(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.ID != "job-1" {
			t.Fatalf("expected job-1, got %s", j.ID)
		}
	})
}
