package repository

import (
	"context"
	"errors"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `id, job_id, amount_cents, payment_date, payment_method,
	check_number, notes, created_at`

// PaymentPostgresRepository persists Payment entities in Postgres.

type PaymentPostgresRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IPaymentRepository = (*PaymentPostgresRepository)(nil)

func NewPaymentPostgresRepository(db *pgxpool.Pool) *PaymentPostgresRepository {
	return &PaymentPostgresRepository{db: db}
}

func (r *PaymentPostgresRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, job_id, amount_cents, payment_date, payment_method, check_number, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.JobID, int64(p.Amount), p.PaymentDate, string(p.Method),
		p.CheckNumber, p.Notes, p.CreatedAt,
	)
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentPostgresRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	p, err := scanPayment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentPostgresRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+paymentColumns+` FROM payments
		WHERE job_id = $1 ORDER BY payment_date, created_at`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PaymentPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

func (r *PaymentPostgresRepository) GetSummary(ctx context.Context, jobID string) (entities.PaymentSummary, error) {
	var (
		total int64
		count int
	)
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0), COUNT(*)
		FROM payments WHERE job_id = $1`, jobID).Scan(&total, &count)
	if err != nil {
		return entities.PaymentSummary{}, err
	}
	return entities.PaymentSummary{TotalPaid: entities.Cents(total), PaymentCount: count}, nil
}

func scanPayment(row pgx.Row) (entities.Payment, error) {
	var (
		p      entities.Payment
		method string
		amount int64
	)
	err := row.Scan(&p.ID, &p.JobID, &amount, &p.PaymentDate, &method,
		&p.CheckNumber, &p.Notes, &p.CreatedAt)
	if err != nil {
		return entities.Payment{}, err
	}
	p.Method = entities.PaymentMethod(method)
	p.Amount = entities.Cents(amount)
	return p, nil
}
