package entities

import "testing"

func TestChangeOrderStatusCanTransition(t *testing.T) {
	if !ChangeOrderStatusPending.CanTransition(ChangeOrderStatusApproved) {
		t.Error("expected pending -> approved to be allowed")
	}
	if !ChangeOrderStatusPending.CanTransition(ChangeOrderStatusRejected) {
		t.Error("expected pending -> rejected to be allowed")
	}
	if ChangeOrderStatusApproved.CanTransition(ChangeOrderStatusRejected) {
		t.Error("approved is terminal")
	}
	if ChangeOrderStatusRejected.CanTransition(ChangeOrderStatusApproved) {
		t.Error("rejected is terminal")
	}
}

func TestChangeOrderBillable(t *testing.T) {
	invID := "inv-1"
	cases := []struct {
		name string
		co   ChangeOrder
		want bool
	}{
		{"approved unbilled", ChangeOrder{Status: ChangeOrderStatusApproved}, true},
		{"approved billed", ChangeOrder{Status: ChangeOrderStatusApproved, InvoiceID: &invID}, false},
		{"pending", ChangeOrder{Status: ChangeOrderStatusPending}, false},
		{"rejected", ChangeOrder{Status: ChangeOrderStatusRejected}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.co.Billable(); got != tc.want {
				t.Fatalf("Billable() = %v, want %v", got, tc.want)
			}
		})
	}
}
