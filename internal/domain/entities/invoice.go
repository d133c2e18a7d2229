package entities

import "time"

// InvoiceStatus represents the billing lifecycle of an invoice.
//
// Domain notes:
//   - An invoice is created fully formed; only its status mutates afterward.
//   - cancelled invoices stay on record but are excluded from every
//     aggregate sum.

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var validInvoiceNext = map[InvoiceStatus]map[InvoiceStatus]bool{
	InvoiceStatusDraft:     {InvoiceStatusSent: true, InvoiceStatusCancelled: true},
	InvoiceStatusSent:      {InvoiceStatusPaid: true, InvoiceStatusOverdue: true, InvoiceStatusCancelled: true},
	InvoiceStatusOverdue:   {InvoiceStatusPaid: true, InvoiceStatusCancelled: true},
	InvoiceStatusPaid:      {},
	InvoiceStatusCancelled: {},
}

func (s InvoiceStatus) CanTransition(to InvoiceStatus) bool {
	return validInvoiceNext[s][to]
}

type InvoiceType string

const (
	InvoiceTypeDeposit    InvoiceType = "deposit"
	InvoiceTypeProgress   InvoiceType = "progress"
	InvoiceTypeSupplement InvoiceType = "supplement"
	InvoiceTypeFinal      InvoiceType = "final"
)

func ValidInvoiceType(t InvoiceType) bool {
	switch t {
	case InvoiceTypeDeposit, InvoiceTypeProgress, InvoiceTypeSupplement, InvoiceTypeFinal:
		return true
	}
	return false
}

// Invoice is a billing document against a job.
//
// Storage model (Postgres):
//   - table invoices, PK id (uuid), FK job_id
//   - invoice_number comes from a per-system counter row locked inside the
//     creation transaction, so numbers are unique, monotonic and gapless.
//   - change_order_ids is populated only for type=supplement and mirrors
//     the invoice_id back-references on change_orders.
//
// TotalAmount may be negative for a final invoice: an over-invoiced job
// records the overage instead of clamping it.
type Invoice struct {
	ID             string        `json:"id"`
	JobID          string        `json:"job_id"`
	InvoiceNumber  int64         `json:"invoice_number"`
	InvoiceType    InvoiceType   `json:"invoice_type"`
	TotalAmount    Cents         `json:"total_amount_cents"`
	DueDate        time.Time     `json:"due_date"`
	Status         InvoiceStatus `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	ChangeOrderIDs []string      `json:"change_order_ids,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// CountsTowardInvoiced reports whether the invoice participates in
// aggregate sums.
func (i Invoice) CountsTowardInvoiced() bool {
	return i.Status != InvoiceStatusCancelled
}

// InvoiceSums are the per-job invoice rollups the ledger needs. Cancelled
// invoices are excluded from both. NonSupplement backs the legacy
// base-contract fallback for jobs that predate total_price tracking.
type InvoiceSums struct {
	TotalNonCancelled         Cents `json:"total_non_cancelled_cents"`
	NonSupplementNonCancelled Cents `json:"non_supplement_non_cancelled_cents"`
}
