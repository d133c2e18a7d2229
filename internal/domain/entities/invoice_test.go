package entities

import "testing"

func TestInvoiceStatusCanTransition(t *testing.T) {
	allowed := []struct{ from, to InvoiceStatus }{
		{InvoiceStatusDraft, InvoiceStatusSent},
		{InvoiceStatusDraft, InvoiceStatusCancelled},
		{InvoiceStatusSent, InvoiceStatusPaid},
		{InvoiceStatusSent, InvoiceStatusOverdue},
		{InvoiceStatusSent, InvoiceStatusCancelled},
		{InvoiceStatusOverdue, InvoiceStatusPaid},
		{InvoiceStatusOverdue, InvoiceStatusCancelled},
	}
	for _, tr := range allowed {
		if !tr.from.CanTransition(tr.to) {
			t.Errorf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to InvoiceStatus }{
		{InvoiceStatusDraft, InvoiceStatusPaid},
		{InvoiceStatusDraft, InvoiceStatusOverdue},
		{InvoiceStatusPaid, InvoiceStatusSent},
		{InvoiceStatusPaid, InvoiceStatusCancelled},
		{InvoiceStatusCancelled, InvoiceStatusDraft},
		{InvoiceStatusCancelled, InvoiceStatusSent},
		{InvoiceStatusOverdue, InvoiceStatusSent},
	}
	for _, tr := range denied {
		if tr.from.CanTransition(tr.to) {
			t.Errorf("expected %s -> %s to be denied", tr.from, tr.to)
		}
	}
}

func TestInvoiceCountsTowardInvoiced(t *testing.T) {
	for _, s := range []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue} {
		if !(Invoice{Status: s}).CountsTowardInvoiced() {
			t.Errorf("expected %s invoice to count toward invoiced", s)
		}
	}
	if (Invoice{Status: InvoiceStatusCancelled}).CountsTowardInvoiced() {
		t.Error("expected cancelled invoice not to count toward invoiced")
	}
}
