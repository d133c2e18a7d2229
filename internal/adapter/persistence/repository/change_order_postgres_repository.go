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

const changeOrderColumns = `id, job_id, type, description, amount_cents, status, notes,
	invoice_id, created_at, updated_at`

// ChangeOrderPostgresRepository persists ChangeOrder entities in Postgres.
//
// Billing immutability is enforced at the SQL level: status updates and
// deletes only match rows that are still in the expected state, and
// invoice_id is only ever written by the supplement-invoice transaction.

type ChangeOrderPostgresRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IChangeOrderRepository = (*ChangeOrderPostgresRepository)(nil)

func NewChangeOrderPostgresRepository(db *pgxpool.Pool) *ChangeOrderPostgresRepository {
	return &ChangeOrderPostgresRepository{db: db}
}

func (r *ChangeOrderPostgresRepository) Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO change_orders (id, job_id, type, description, amount_cents, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		co.ID, co.JobID, string(co.Type), co.Description, int64(co.Amount),
		string(co.Status), co.Notes, co.CreatedAt, co.UpdatedAt,
	)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ChangeOrderPostgresRepository) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	row := r.db.QueryRow(ctx, `SELECT `+changeOrderColumns+` FROM change_orders WHERE id = $1`, id)
	co, err := scanChangeOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ChangeOrder{}, nil
	}
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ChangeOrderPostgresRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+changeOrderColumns+` FROM change_orders
		WHERE job_id = $1 ORDER BY created_at`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectChangeOrders(rows)
}

func (r *ChangeOrderPostgresRepository) ListUnbilledByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	// Oldest first for stable billing order.
	rows, err := r.db.Query(ctx, `
		SELECT `+changeOrderColumns+` FROM change_orders
		WHERE job_id = $1 AND status = 'approved' AND invoice_id IS NULL
		ORDER BY created_at`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectChangeOrders(rows)
}

func (r *ChangeOrderPostgresRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ChangeOrderStatus, notes string) (entities.ChangeOrder, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE change_orders
		SET status = $1, notes = $2, updated_at = $3
		WHERE id = $4 AND status = $5
		RETURNING `+changeOrderColumns,
		string(to), notes, time.Now().UTC(), id, string(from),
	)
	co, err := scanChangeOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ChangeOrder{}, nil
	}
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ChangeOrderPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM change_orders WHERE id = $1 AND invoice_id IS NULL`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

func (r *ChangeOrderPostgresRepository) GetJobSummary(ctx context.Context, jobID string) (entities.ChangeOrderSummary, error) {
	var (
		total int64
		count int
	)
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0), COUNT(*)
		FROM change_orders
		WHERE job_id = $1 AND status = 'approved'`, jobID).Scan(&total, &count)
	if err != nil {
		return entities.ChangeOrderSummary{}, err
	}
	return entities.ChangeOrderSummary{TotalApproved: entities.Cents(total), ApprovedCount: count}, nil
}

func scanChangeOrder(row pgx.Row) (entities.ChangeOrder, error) {
	var (
		co        entities.ChangeOrder
		coType    string
		status    string
		amount    int64
		invoiceID *string
	)
	err := row.Scan(&co.ID, &co.JobID, &coType, &co.Description, &amount, &status,
		&co.Notes, &invoiceID, &co.CreatedAt, &co.UpdatedAt)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	co.Type = entities.ChangeOrderType(coType)
	co.Status = entities.ChangeOrderStatus(status)
	co.Amount = entities.Cents(amount)
	co.InvoiceID = invoiceID
	return co, nil
}

func collectChangeOrders(rows pgx.Rows) ([]entities.ChangeOrder, error) {
	var out []entities.ChangeOrder
	for rows.Next() {
		co, err := scanChangeOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, co)
	}
	return out, rows.Err()
}
