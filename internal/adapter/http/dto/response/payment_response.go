package response

import (
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

type PaymentResponse struct {
	ID            string    `json:"id"`
	JobID         string    `json:"job_id"`
	AmountCents   int64     `json:"amount_cents"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
	CheckNumber   string    `json:"check_number,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		JobID:         p.JobID,
		AmountCents:   int64(p.Amount),
		Amount:        p.Amount.Dollars(),
		PaymentMethod: string(p.Method),
		PaymentDate:   p.PaymentDate,
		CheckNumber:   p.CheckNumber,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

type PaymentSummaryResponse struct {
	JobID          string  `json:"job_id"`
	TotalPaidCents int64   `json:"total_paid_cents"`
	TotalPaid      float64 `json:"total_paid"`
	PaymentCount   int     `json:"payment_count"`
}

func FromPaymentSummary(jobID string, s entities.PaymentSummary) PaymentSummaryResponse {
	return PaymentSummaryResponse{
		JobID:          jobID,
		TotalPaidCents: int64(s.TotalPaid),
		TotalPaid:      s.TotalPaid.Dollars(),
		PaymentCount:   s.PaymentCount,
	}
}
