package repository

import (
	"context"
	"errors"
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, customer_name, address, job_type, square_count_hundredths,
	price_per_square_cents, total_price_cents, counter_price_cents,
	price_status, price_submitted_by, created_at, updated_at`

// JobPostgresRepository persists Job entities in Postgres.
//
// Pricing transitions go through UpdatePricing, which conditions the write
// on the expected current status in a single statement. Concurrent
// transitions on the same job therefore resolve to exactly one winner.

type JobPostgresRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IJobRepository = (*JobPostgresRepository)(nil)

func NewJobPostgresRepository(db *pgxpool.Pool) *JobPostgresRepository {
	return &JobPostgresRepository{db: db}
}

func (r *JobPostgresRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO jobs (id, customer_name, address, job_type, square_count_hundredths,
			price_status, price_submitted_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		j.ID, j.CustomerName, j.Address, string(j.JobType), j.SquareCountHundredths,
		string(j.PriceStatus), string(j.PriceSubmittedBy), j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobPostgresRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Job{}, nil
	}
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobPostgresRepository) UpdatePricing(ctx context.Context, j entities.Job, expected entities.PriceStatus) (entities.Job, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE jobs
		SET price_per_square_cents = $1,
		    total_price_cents      = $2,
		    counter_price_cents    = $3,
		    price_status           = $4,
		    price_submitted_by     = $5,
		    updated_at             = $6
		WHERE id = $7 AND price_status = $8
		RETURNING `+jobColumns,
		fromCentsPtr(j.PricePerSquare), fromCentsPtr(j.TotalPrice), fromCentsPtr(j.CounterPrice),
		string(j.PriceStatus), string(j.PriceSubmittedBy), time.Now().UTC(),
		j.ID, string(expected),
	)
	updated, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		// Another writer moved the status first; the usecase decides what
		// that means.
		return entities.Job{}, nil
	}
	if err != nil {
		return entities.Job{}, err
	}
	return updated, nil
}

func scanJob(row pgx.Row) (entities.Job, error) {
	var (
		j            entities.Job
		jobType      string
		priceStatus  string
		submittedBy  string
		pricePerSq   *int64
		totalPrice   *int64
		counterPrice *int64
	)
	err := row.Scan(&j.ID, &j.CustomerName, &j.Address, &jobType, &j.SquareCountHundredths,
		&pricePerSq, &totalPrice, &counterPrice, &priceStatus, &submittedBy,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return entities.Job{}, err
	}
	j.JobType = entities.JobType(jobType)
	j.PriceStatus = entities.PriceStatus(priceStatus)
	j.PriceSubmittedBy = entities.Role(submittedBy)
	j.PricePerSquare = toCentsPtr(pricePerSq)
	j.TotalPrice = toCentsPtr(totalPrice)
	j.CounterPrice = toCentsPtr(counterPrice)
	return j, nil
}
