package entities

// LedgerTotals is the derived financial position of a job.
//
// ComputeLedgerTotals is the only place the contract-value formula exists.
// Both the read-side ledger summary and the final-invoice amount (computed
// inside the invoice-creation transaction) go through it, so the two views
// of a job can never disagree.

type LedgerTotals struct {
	BaseContractValue  Cents `json:"base_contract_value_cents"`
	ApprovedChanges    Cents `json:"approved_changes_cents"`
	TotalContractValue Cents `json:"total_contract_value_cents"`
	TotalInvoiced      Cents `json:"total_invoiced_cents"`
	UnbilledRevenue    Cents `json:"unbilled_revenue_cents"`
	IsFullyInvoiced    bool  `json:"is_fully_invoiced"`
	HasOverage         bool  `json:"has_overage"`
}

// ComputeLedgerTotals derives the job's financial position.
//
// totalPrice is the job's approved total (nil when pricing never completed).
// legacyInvoiceBase is the sum of non-cancelled, non-supplement invoice
// totals; it backs jobs created before totalPrice was tracked and is only
// consulted while totalPrice is unset or non-positive.
func ComputeLedgerTotals(totalPrice *Cents, legacyInvoiceBase, approvedChanges, totalInvoiced Cents) LedgerTotals {
	base := legacyInvoiceBase
	if totalPrice != nil && *totalPrice > 0 {
		base = *totalPrice
	}

	contract := base + approvedChanges
	unbilled := contract - totalInvoiced

	return LedgerTotals{
		BaseContractValue:  base,
		ApprovedChanges:    approvedChanges,
		TotalContractValue: contract,
		TotalInvoiced:      totalInvoiced,
		UnbilledRevenue:    unbilled,
		IsFullyInvoiced:    unbilled <= 0,
		HasOverage:         unbilled < 0,
	}
}

// LedgerSummary is the full read aggregate served by ledger.getSummary.
type LedgerSummary struct {
	JobID string `json:"job_id"`
	LedgerTotals
	TotalCollected Cents `json:"total_collected_cents"`
	PaymentCount   int   `json:"payment_count"`
	ApprovedCount  int   `json:"approved_change_order_count"`

	// SuggestedDepositCents is a UI hint only (half the contract for retail
	// jobs, zero for insurance jobs); the server never enforces it.
	SuggestedDepositCents Cents `json:"suggested_deposit_cents"`
}

// SuggestedDeposit returns the deposit hint for a job type.
func SuggestedDeposit(jobType JobType, totalContractValue Cents) Cents {
	if jobType == JobTypeRetail {
		return totalContractValue / 2
	}
	return 0
}
