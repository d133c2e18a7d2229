package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrInvalidJobID       = errors.New("invalid job id")
	ErrInvalidJobInput    = errors.New("invalid job input")
	ErrInvalidSquareCount = errors.New("invalid square count")
)

// IJobUseCase exposes job lifecycle operations.
//
// Jobs are the subject every other component hangs off of. The square count
// arrives from the external roof-measurement service and is carried here so
// pricing can derive a total without another round trip.

type IJobUseCase interface {
	Create(ctx context.Context, customerName, address string, jobType entities.JobType, squareCountHundredths int64) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
}

type JobUseCase struct {
	repo interfaces.IJobRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

func (u *JobUseCase) Create(ctx context.Context, customerName, address string, jobType entities.JobType, squareCountHundredths int64) (entities.Job, error) {
	customerName = strings.TrimSpace(customerName)
	address = strings.TrimSpace(address)
	if customerName == "" || address == "" {
		return entities.Job{}, ErrInvalidJobInput
	}
	if jobType != entities.JobTypeRetail && jobType != entities.JobTypeInsurance {
		return entities.Job{}, ErrInvalidJobInput
	}
	if squareCountHundredths <= 0 {
		return entities.Job{}, ErrInvalidSquareCount
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:                    uuid.NewString(),
		CustomerName:          customerName,
		Address:               address,
		JobType:               jobType,
		SquareCountHundredths: squareCountHundredths,
		PriceStatus:           entities.PriceStatusDraft,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Info().Str("job_id", created.ID).Str("job_type", string(jobType)).Msg("job created")
	return created, nil
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
