package response

import (
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

type InvoiceResponse struct {
	ID               string    `json:"id"`
	JobID            string    `json:"job_id"`
	InvoiceNumber    int64     `json:"invoice_number"`
	InvoiceType      string    `json:"invoice_type"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	TotalAmount      float64   `json:"total_amount"`
	Status           string    `json:"status"`
	ChangeOrderIDs   []string  `json:"change_order_ids,omitempty"`
	DueDate          time.Time `json:"due_date"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:               inv.ID,
		JobID:            inv.JobID,
		InvoiceNumber:    inv.InvoiceNumber,
		InvoiceType:      string(inv.InvoiceType),
		TotalAmountCents: int64(inv.TotalAmount),
		TotalAmount:      inv.TotalAmount.Dollars(),
		Status:           string(inv.Status),
		ChangeOrderIDs:   inv.ChangeOrderIDs,
		DueDate:          inv.DueDate,
		Notes:            inv.Notes,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvoice(inv))
	}
	return out
}
