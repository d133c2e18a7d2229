package response

import (
	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

type LedgerSummaryResponse struct {
	JobID                   string  `json:"job_id"`
	BaseContractValueCents  int64   `json:"base_contract_value_cents"`
	BaseContractValue       float64 `json:"base_contract_value"`
	ApprovedChangesCents    int64   `json:"approved_changes_cents"`
	ApprovedChanges         float64 `json:"approved_changes"`
	TotalContractValueCents int64   `json:"total_contract_value_cents"`
	TotalContractValue      float64 `json:"total_contract_value"`
	TotalInvoicedCents      int64   `json:"total_invoiced_cents"`
	TotalInvoiced           float64 `json:"total_invoiced"`
	UnbilledRevenueCents    int64   `json:"unbilled_revenue_cents"`
	UnbilledRevenue         float64 `json:"unbilled_revenue"`
	IsFullyInvoiced         bool    `json:"is_fully_invoiced"`
	HasOverage              bool    `json:"has_overage"`
	TotalCollectedCents     int64   `json:"total_collected_cents"`
	TotalCollected          float64 `json:"total_collected"`
	PaymentCount            int     `json:"payment_count"`
	ApprovedCount           int     `json:"approved_change_order_count"`
	SuggestedDepositCents   int64   `json:"suggested_deposit_cents"`
	SuggestedDeposit        float64 `json:"suggested_deposit"`
}

func FromLedgerSummary(s entities.LedgerSummary) LedgerSummaryResponse {
	return LedgerSummaryResponse{
		JobID:                   s.JobID,
		BaseContractValueCents:  int64(s.BaseContractValue),
		BaseContractValue:       s.BaseContractValue.Dollars(),
		ApprovedChangesCents:    int64(s.ApprovedChanges),
		ApprovedChanges:         s.ApprovedChanges.Dollars(),
		TotalContractValueCents: int64(s.TotalContractValue),
		TotalContractValue:      s.TotalContractValue.Dollars(),
		TotalInvoicedCents:      int64(s.TotalInvoiced),
		TotalInvoiced:           s.TotalInvoiced.Dollars(),
		UnbilledRevenueCents:    int64(s.UnbilledRevenue),
		UnbilledRevenue:         s.UnbilledRevenue.Dollars(),
		IsFullyInvoiced:         s.IsFullyInvoiced,
		HasOverage:              s.HasOverage,
		TotalCollectedCents:     int64(s.TotalCollected),
		TotalCollected:          s.TotalCollected.Dollars(),
		PaymentCount:            s.PaymentCount,
		ApprovedCount:           s.ApprovedCount,
		SuggestedDepositCents:   int64(s.SuggestedDepositCents),
		SuggestedDeposit:        s.SuggestedDepositCents.Dollars(),
	}
}
