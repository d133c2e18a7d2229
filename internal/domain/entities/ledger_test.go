package entities

import "testing"

func cents(v int64) *Cents {
	c := Cents(v)
	return &c
}

func TestComputeLedgerTotals(t *testing.T) {
	t.Run("contract walkthrough", func(t *testing.T) {
		// $10,000 contract, one $1,500 approved change order, $5,000 deposit
		// already invoiced.
		got := ComputeLedgerTotals(cents(1000000), 0, 150000, 500000)
		if got.BaseContractValue != 1000000 {
			t.Fatalf("base = %d, want 1000000", got.BaseContractValue)
		}
		if got.TotalContractValue != 1150000 {
			t.Fatalf("contract = %d, want 1150000", got.TotalContractValue)
		}
		if got.UnbilledRevenue != 650000 {
			t.Fatalf("unbilled = %d, want 650000", got.UnbilledRevenue)
		}
		if got.IsFullyInvoiced || got.HasOverage {
			t.Fatalf("expected neither fully invoiced nor overage, got %+v", got)
		}
	})

	t.Run("fully invoiced", func(t *testing.T) {
		got := ComputeLedgerTotals(cents(1000000), 0, 150000, 1150000)
		if got.UnbilledRevenue != 0 {
			t.Fatalf("unbilled = %d, want 0", got.UnbilledRevenue)
		}
		if !got.IsFullyInvoiced {
			t.Fatal("expected fully invoiced at zero unbilled")
		}
		if got.HasOverage {
			t.Fatal("zero unbilled is not an overage")
		}
	})

	t.Run("over-invoiced", func(t *testing.T) {
		got := ComputeLedgerTotals(cents(1000000), 0, 150000, 1200000)
		if got.UnbilledRevenue != -50000 {
			t.Fatalf("unbilled = %d, want -50000", got.UnbilledRevenue)
		}
		if !got.IsFullyInvoiced || !got.HasOverage {
			t.Fatalf("expected fully invoiced and overage, got %+v", got)
		}
	})

	t.Run("legacy fallback when total price unset", func(t *testing.T) {
		got := ComputeLedgerTotals(nil, 800000, 100000, 300000)
		if got.BaseContractValue != 800000 {
			t.Fatalf("base = %d, want legacy 800000", got.BaseContractValue)
		}
		if got.TotalContractValue != 900000 {
			t.Fatalf("contract = %d, want 900000", got.TotalContractValue)
		}
	})

	t.Run("legacy fallback when total price non-positive", func(t *testing.T) {
		got := ComputeLedgerTotals(cents(0), 800000, 0, 0)
		if got.BaseContractValue != 800000 {
			t.Fatalf("base = %d, want legacy 800000", got.BaseContractValue)
		}
	})

	t.Run("approved price wins over legacy", func(t *testing.T) {
		got := ComputeLedgerTotals(cents(1000000), 800000, 0, 0)
		if got.BaseContractValue != 1000000 {
			t.Fatalf("base = %d, want 1000000", got.BaseContractValue)
		}
	})
}

func TestSuggestedDeposit(t *testing.T) {
	if got := SuggestedDeposit(JobTypeRetail, 1150000); got != 575000 {
		t.Fatalf("retail deposit = %d, want 575000", got)
	}
	if got := SuggestedDeposit(JobTypeInsurance, 1150000); got != 0 {
		t.Fatalf("insurance deposit = %d, want 0", got)
	}
}
