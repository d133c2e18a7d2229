package entities

import "time"

// ChangeOrderStatus represents the approval lifecycle of a scope change.
//
// Domain notes:
//   - pending transitions exactly once to approved or rejected.
//   - "billed" is not a status: an approved change order becomes billed the
//     moment InvoiceID is set, and from then on it is immutable for billing
//     purposes (cannot be rebilled or deleted).

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
)

var validChangeOrderNext = map[ChangeOrderStatus]map[ChangeOrderStatus]bool{
	ChangeOrderStatusPending:  {ChangeOrderStatusApproved: true, ChangeOrderStatusRejected: true},
	ChangeOrderStatusApproved: {},
	ChangeOrderStatusRejected: {},
}

func (s ChangeOrderStatus) CanTransition(to ChangeOrderStatus) bool {
	return validChangeOrderNext[s][to]
}

type ChangeOrderType string

const (
	ChangeOrderTypeRetail              ChangeOrderType = "retail_change"
	ChangeOrderTypeSupplement          ChangeOrderType = "supplement"
	ChangeOrderTypeInsuranceSupplement ChangeOrderType = "insurance_supplement"
)

func ValidChangeOrderType(t ChangeOrderType) bool {
	switch t {
	case ChangeOrderTypeRetail, ChangeOrderTypeSupplement, ChangeOrderTypeInsuranceSupplement:
		return true
	}
	return false
}

// ChangeOrder records a scope change against a job.
//
// Storage model (Postgres):
//   - table change_orders, PK id (uuid), FK job_id
//   - invoice_id is set in the same transaction that creates the supplement
//     invoice billing this change order.
type ChangeOrder struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	Type        ChangeOrderType   `json:"type"`
	Description string            `json:"description"`
	Amount      Cents             `json:"amount_cents"`
	Status      ChangeOrderStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	InvoiceID   *string           `json:"invoice_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Billable reports whether the change order can be selected for a
// supplement invoice: approved and not yet billed.
func (c ChangeOrder) Billable() bool {
	return c.Status == ChangeOrderStatusApproved && c.InvoiceID == nil
}

// ChangeOrderSummary is the per-job rollup of approved scope changes.
type ChangeOrderSummary struct {
	TotalApproved Cents `json:"total_approved_cents"`
	ApprovedCount int   `json:"approved_count"`
}
