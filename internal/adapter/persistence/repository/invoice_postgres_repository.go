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

const invoiceColumns = `id, job_id, invoice_number, invoice_type, total_amount_cents,
	due_date, status, notes, created_at, updated_at`

// InvoicePostgresRepository persists Invoice entities in Postgres.
//
// Every Create variant runs in a transaction that first locks the job row,
// so invoice writes for one job are serialized: invoice numbers stay
// monotonic, a supplement cannot double-bill a change order, and a final
// invoice sees a stable view of prior invoices.

type InvoicePostgresRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IInvoiceRepository = (*InvoicePostgresRepository)(nil)

func NewInvoicePostgresRepository(db *pgxpool.Pool) *InvoicePostgresRepository {
	return &InvoicePostgresRepository{db: db}
}

func (r *InvoicePostgresRepository) CreateFixed(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entities.Invoice{}, err
	}
	defer tx.Rollback(ctx)

	if err := lockJob(ctx, tx, inv.JobID); err != nil {
		return entities.Invoice{}, err
	}
	if inv.InvoiceNumber, err = nextInvoiceNumber(ctx, tx); err != nil {
		return entities.Invoice{}, err
	}
	if err := insertInvoice(ctx, tx, inv); err != nil {
		return entities.Invoice{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoicePostgresRepository) CreateSupplement(ctx context.Context, inv entities.Invoice, changeOrderIDs []string) (entities.Invoice, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entities.Invoice{}, err
	}
	defer tx.Rollback(ctx)

	if err := lockJob(ctx, tx, inv.JobID); err != nil {
		return entities.Invoice{}, err
	}

	// Lock the selected change orders and verify every one is still
	// approved and unbilled. A shorter result set means a concurrent
	// invoice (or delete) got there first; nothing is written.
	rows, err := tx.Query(ctx, `
		SELECT id, amount_cents FROM change_orders
		WHERE id = ANY($1::uuid[]) AND job_id = $2
		  AND status = 'approved' AND invoice_id IS NULL
		FOR UPDATE`, changeOrderIDs, inv.JobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	var total int64
	locked := 0
	for rows.Next() {
		var id string
		var amount int64
		if err := rows.Scan(&id, &amount); err != nil {
			rows.Close()
			return entities.Invoice{}, err
		}
		total += amount
		locked++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return entities.Invoice{}, err
	}
	if locked != len(changeOrderIDs) {
		return entities.Invoice{}, interfaces.ErrChangeOrderNotBillable
	}

	inv.TotalAmount = entities.Cents(total)
	if inv.InvoiceNumber, err = nextInvoiceNumber(ctx, tx); err != nil {
		return entities.Invoice{}, err
	}
	if err := insertInvoice(ctx, tx, inv); err != nil {
		return entities.Invoice{}, err
	}

	ct, err := tx.Exec(ctx, `
		UPDATE change_orders SET invoice_id = $1, updated_at = $2
		WHERE id = ANY($3::uuid[])`,
		inv.ID, time.Now().UTC(), changeOrderIDs)
	if err != nil {
		return entities.Invoice{}, err
	}
	if int(ct.RowsAffected()) != len(changeOrderIDs) {
		return entities.Invoice{}, interfaces.ErrChangeOrderNotBillable
	}

	if err := tx.Commit(ctx); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoicePostgresRepository) CreateFinal(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entities.Invoice{}, err
	}
	defer tx.Rollback(ctx)

	var totalPrice *int64
	err = tx.QueryRow(ctx, `SELECT total_price_cents FROM jobs WHERE id = $1 FOR UPDATE`, inv.JobID).
		Scan(&totalPrice)
	if err != nil {
		return entities.Invoice{}, err
	}

	sums, err := sumInvoices(ctx, tx, inv.JobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	var approved int64
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0) FROM change_orders
		WHERE job_id = $1 AND status = 'approved'`, inv.JobID).Scan(&approved)
	if err != nil {
		return entities.Invoice{}, err
	}

	// Same formula as the read-side ledger; a negative remainder is
	// recorded so over-invoicing stays visible.
	totals := entities.ComputeLedgerTotals(toCentsPtr(totalPrice),
		sums.NonSupplementNonCancelled, entities.Cents(approved), sums.TotalNonCancelled)
	inv.TotalAmount = totals.UnbilledRevenue

	if inv.InvoiceNumber, err = nextInvoiceNumber(ctx, tx); err != nil {
		return entities.Invoice{}, err
	}
	if err := insertInvoice(ctx, tx, inv); err != nil {
		return entities.Invoice{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoicePostgresRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	row := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := r.fillChangeOrderIDs(ctx, &inv); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoicePostgresRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+invoiceColumns+` FROM invoices
		WHERE job_id = $1 ORDER BY invoice_number`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if out[i].InvoiceType == entities.InvoiceTypeSupplement {
			if err := r.fillChangeOrderIDs(ctx, &out[i]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func (r *InvoicePostgresRepository) SumByJobID(ctx context.Context, jobID string) (entities.InvoiceSums, error) {
	return sumInvoices(ctx, r.db, jobID)
}

func (r *InvoicePostgresRepository) UpdateStatus(ctx context.Context, id string, from, to entities.InvoiceStatus) (entities.Invoice, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE invoices SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING `+invoiceColumns,
		string(to), time.Now().UTC(), id, string(from),
	)
	inv, err := scanInvoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// sumInvoices is shared between the pool (read side) and a transaction
// (final-invoice computation) so both see the same definition of "counts
// toward invoiced".
func sumInvoices(ctx context.Context, q queryer, jobID string) (entities.InvoiceSums, error) {
	var total, nonSupplement int64
	err := q.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(total_amount_cents), 0),
			COALESCE(SUM(total_amount_cents) FILTER (WHERE invoice_type <> 'supplement'), 0)
		FROM invoices
		WHERE job_id = $1 AND status <> 'cancelled'`, jobID).Scan(&total, &nonSupplement)
	if err != nil {
		return entities.InvoiceSums{}, err
	}
	return entities.InvoiceSums{
		TotalNonCancelled:         entities.Cents(total),
		NonSupplementNonCancelled: entities.Cents(nonSupplement),
	}, nil
}

func lockJob(ctx context.Context, tx pgx.Tx, jobID string) error {
	var id string
	return tx.QueryRow(ctx, `SELECT id FROM jobs WHERE id = $1 FOR UPDATE`, jobID).Scan(&id)
}

func nextInvoiceNumber(ctx context.Context, tx pgx.Tx) (int64, error) {
	var n int64
	err := tx.QueryRow(ctx, `
		UPDATE invoice_counters SET next_number = next_number + 1
		WHERE id = 1
		RETURNING next_number`).Scan(&n)
	return n, err
}

func insertInvoice(ctx context.Context, tx pgx.Tx, inv entities.Invoice) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO invoices (id, job_id, invoice_number, invoice_type, total_amount_cents,
			due_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		inv.ID, inv.JobID, inv.InvoiceNumber, string(inv.InvoiceType), int64(inv.TotalAmount),
		inv.DueDate, string(inv.Status), inv.Notes, inv.CreatedAt, inv.UpdatedAt,
	)
	return err
}

func (r *InvoicePostgresRepository) fillChangeOrderIDs(ctx context.Context, inv *entities.Invoice) error {
	rows, err := r.db.Query(ctx, `
		SELECT id FROM change_orders WHERE invoice_id = $1 ORDER BY created_at`, inv.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
	}
	inv.ChangeOrderIDs = ids
	return rows.Err()
}

func scanInvoice(row pgx.Row) (entities.Invoice, error) {
	var (
		inv     entities.Invoice
		invType string
		status  string
		amount  int64
	)
	err := row.Scan(&inv.ID, &inv.JobID, &inv.InvoiceNumber, &invType, &amount,
		&inv.DueDate, &status, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.InvoiceType = entities.InvoiceType(invType)
	inv.Status = entities.InvoiceStatus(status)
	inv.TotalAmount = entities.Cents(amount)
	return inv, nil
}
