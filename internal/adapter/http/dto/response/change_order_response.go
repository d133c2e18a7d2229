package response

import (
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

type ChangeOrderResponse struct {
	ID              string    `json:"id"`
	JobID           string    `json:"job_id"`
	ChangeOrderType string    `json:"change_order_type"`
	Description     string    `json:"description"`
	AmountCents     int64     `json:"amount_cents"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	InvoiceID       *string   `json:"invoice_id,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromChangeOrder(co entities.ChangeOrder) ChangeOrderResponse {
	return ChangeOrderResponse{
		ID:              co.ID,
		JobID:           co.JobID,
		ChangeOrderType: string(co.Type),
		Description:     co.Description,
		AmountCents:     int64(co.Amount),
		Amount:          co.Amount.Dollars(),
		Status:          string(co.Status),
		InvoiceID:       co.InvoiceID,
		Notes:           co.Notes,
		CreatedAt:       co.CreatedAt,
		UpdatedAt:       co.UpdatedAt,
	}
}

func FromChangeOrders(cos []entities.ChangeOrder) []ChangeOrderResponse {
	out := make([]ChangeOrderResponse, 0, len(cos))
	for _, co := range cos {
		out = append(out, FromChangeOrder(co))
	}
	return out
}

type ChangeOrderSummaryResponse struct {
	JobID              string  `json:"job_id"`
	TotalApprovedCents int64   `json:"total_approved_cents"`
	TotalApproved      float64 `json:"total_approved"`
	ApprovedCount      int     `json:"approved_count"`
}

func FromChangeOrderSummary(jobID string, s entities.ChangeOrderSummary) ChangeOrderSummaryResponse {
	return ChangeOrderSummaryResponse{
		JobID:              jobID,
		TotalApprovedCents: int64(s.TotalApproved),
		TotalApproved:      s.TotalApproved.Dollars(),
		ApprovedCount:      s.ApprovedCount,
	}
}
