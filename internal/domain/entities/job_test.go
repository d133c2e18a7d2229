package entities

import "testing"

func TestPriceStatusCanTransition(t *testing.T) {
	allowed := []struct{ from, to PriceStatus }{
		{PriceStatusDraft, PriceStatusPendingApproval},
		{PriceStatusDraft, PriceStatusApproved},
		{PriceStatusPendingApproval, PriceStatusApproved},
		{PriceStatusPendingApproval, PriceStatusNegotiation},
		{PriceStatusNegotiation, PriceStatusApproved},
		{PriceStatusNegotiation, PriceStatusDraft},
	}
	for _, tr := range allowed {
		if !tr.from.CanTransition(tr.to) {
			t.Errorf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to PriceStatus }{
		{PriceStatusApproved, PriceStatusDraft},
		{PriceStatusApproved, PriceStatusPendingApproval},
		{PriceStatusApproved, PriceStatusNegotiation},
		{PriceStatusDraft, PriceStatusNegotiation},
		{PriceStatusNegotiation, PriceStatusPendingApproval},
		{PriceStatusPendingApproval, PriceStatusDraft},
	}
	for _, tr := range denied {
		if tr.from.CanTransition(tr.to) {
			t.Errorf("expected %s -> %s to be denied", tr.from, tr.to)
		}
	}
}

func TestRolePermissions(t *testing.T) {
	for _, r := range []Role{RoleSalesRep, RoleTeamLead, RoleOffice, RoleOwner} {
		if !r.CanSubmitPrice() {
			t.Errorf("expected %s to be able to submit", r)
		}
	}
	if !RoleOwner.CanApprovePrice() || !RoleOffice.CanApprovePrice() {
		t.Error("expected owner and office to approve prices")
	}
	if RoleSalesRep.CanApprovePrice() || RoleTeamLead.CanApprovePrice() {
		t.Error("expected sales_rep and team_lead not to approve prices")
	}
	if ValidRole("manager") {
		t.Error("expected unknown role to be invalid")
	}
}
