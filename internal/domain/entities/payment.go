package entities

import "time"

// PaymentMethod is how the cash arrived.

type PaymentMethod string

const (
	PaymentMethodCheck      PaymentMethod = "check"
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodWire       PaymentMethod = "wire"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodOther      PaymentMethod = "other"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCheck, PaymentMethodCash, PaymentMethodWire, PaymentMethodCreditCard, PaymentMethodOther:
		return true
	}
	return false
}

// Payment records cash received against a job.
//
// Payments are independent of invoices: they track collection, not invoice
// settlement. A payment is immutable once created except for deletion.
type Payment struct {
	ID          string        `json:"id"`
	JobID       string        `json:"job_id"`
	Amount      Cents         `json:"amount_cents"`
	PaymentDate time.Time     `json:"payment_date"`
	Method      PaymentMethod `json:"payment_method"`
	CheckNumber string        `json:"check_number,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PaymentSummary is the per-job rollup of collected cash.
type PaymentSummary struct {
	TotalPaid    Cents `json:"total_paid_cents"`
	PaymentCount int   `json:"payment_count"`
}
