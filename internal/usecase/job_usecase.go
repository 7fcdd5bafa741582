package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"foamtrack/internal/domain/entities"
	"foamtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidFramingSize  = errors.New("invalid framing size")
)

// IJobUseCase exposes job operations. Jobs carry the framing size that bounds
// hybrid measurements, so they must exist before measurements are entered.

type IJobUseCase interface {
	Create(ctx context.Context, in JobInput) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
}

type JobInput struct {
	CustomerName string
	SiteAddress  string
	Framing      entities.FramingSize
}

type JobUseCase struct {
	repo interfaces.IJobRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

func (u *JobUseCase) Create(ctx context.Context, in JobInput) (entities.Job, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return entities.Job{}, ErrInvalidCustomerName
	}
	if !in.Framing.Valid() {
		return entities.Job{}, ErrInvalidFramingSize
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:           uuid.NewString(),
		CustomerName: name,
		SiteAddress:  strings.TrimSpace(in.SiteAddress),
		Framing:      in.Framing,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}
