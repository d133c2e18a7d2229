package request

import (
	"strings"
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase"
)

// GenerateInvoiceRequest drives invoice generation. CustomAmount is
// required for deposit/progress, ChangeOrderIDs for supplement; final
// takes neither.
type GenerateInvoiceRequest struct {
	InvoiceType    string     `json:"invoice_type" binding:"required"`
	CustomAmount   *float64   `json:"custom_amount"`
	ChangeOrderIDs []string   `json:"change_order_ids"`
	DueDate        *time.Time `json:"due_date"`
	Notes          string     `json:"notes"`
}

func (r GenerateInvoiceRequest) ResolveType() entities.InvoiceType {
	return entities.InvoiceType(strings.TrimSpace(strings.ToLower(r.InvoiceType)))
}

func (r GenerateInvoiceRequest) ToOptions() usecase.GenerateInvoiceOptions {
	opts := usecase.GenerateInvoiceOptions{
		ChangeOrderIDs: r.ChangeOrderIDs,
		DueDate:        r.DueDate,
		Notes:          r.Notes,
	}
	if r.CustomAmount != nil {
		c := entities.CentsFromDollars(*r.CustomAmount)
		opts.CustomAmount = &c
	}
	return opts
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateInvoiceStatusRequest) ResolveStatus() entities.InvoiceStatus {
	return entities.InvoiceStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}
