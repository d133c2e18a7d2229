package interfaces

import (
	"context"
	"errors"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

// ErrChangeOrderNotBillable is returned when a supplement-invoice
// transaction finds one of the selected change orders no longer approved
// and unbilled (deleted, rejected, or billed by a concurrent invoice).
var ErrChangeOrderNotBillable = errors.New("change order not billable")

// IInvoiceRepository abstracts Postgres persistence for Invoice.
//
// Every Create variant assigns the next invoice number from a counter row
// locked inside the transaction, and locks the job row first so invoice
// writes for one job are serialized.

type IInvoiceRepository interface {
	// CreateFixed inserts a deposit or progress invoice with the
	// caller-supplied total.
	CreateFixed(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)

	// CreateSupplement inserts the invoice and stamps its id onto the given
	// change orders in the same transaction; the stored total is the sum of
	// the billed orders' amounts. Fails with ErrChangeOrderNotBillable if
	// any selected order is not currently billable; nothing is written.
	CreateSupplement(ctx context.Context, inv entities.Invoice, changeOrderIDs []string) (entities.Invoice, error)

	// CreateFinal computes contract value minus prior non-cancelled invoice
	// totals inside the transaction and records the result, negative
	// included.
	CreateFinal(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)

	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error)
	SumByJobID(ctx context.Context, jobID string) (entities.InvoiceSums, error)

	// UpdateStatus moves the invoice from the expected status in one
	// conditional statement; zero Invoice when the row moved first.
	UpdateStatus(ctx context.Context, id string, from, to entities.InvoiceStatus) (entities.Invoice, error)
}
