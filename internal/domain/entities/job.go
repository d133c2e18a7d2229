package entities

import "time"

// PriceStatus represents the pricing-approval lifecycle of a job.
//
// Domain notes:
//   - The ledger service is the source of truth for pricing state; UI
//     surfaces derive what they show from this status, never the reverse.
//   - approved is the practical terminal state. A reset back to draft is
//     only reachable from negotiation (deny-and-reset).

type PriceStatus string

const (
	PriceStatusDraft           PriceStatus = "draft"
	PriceStatusPendingApproval PriceStatus = "pending_approval"
	PriceStatusNegotiation     PriceStatus = "negotiation"
	PriceStatusApproved        PriceStatus = "approved"
)

var validPriceNext = map[PriceStatus]map[PriceStatus]bool{
	PriceStatusDraft:           {PriceStatusPendingApproval: true, PriceStatusApproved: true},
	PriceStatusPendingApproval: {PriceStatusApproved: true, PriceStatusNegotiation: true},
	PriceStatusNegotiation:     {PriceStatusApproved: true, PriceStatusDraft: true},
	PriceStatusApproved:        {},
}

func (s PriceStatus) CanTransition(to PriceStatus) bool {
	return validPriceNext[s][to]
}

// Pricing thresholds, in cents. These two constants are the single source
// of truth for the submit/approve contract:
//   - below PriceFloorCents the submission is rejected outright,
//   - in [PriceFloorCents, PriceAutoApproveCents) it needs office/owner
//     approval,
//   - at or above PriceAutoApproveCents it is approved on submit.
const (
	PriceFloorCents       Cents = 45000
	PriceAutoApproveCents Cents = 50000
)

// Role is the actor role attached to each request by the upstream gateway.
type Role string

const (
	RoleSalesRep Role = "sales_rep"
	RoleTeamLead Role = "team_lead"
	RoleOffice   Role = "office"
	RoleOwner    Role = "owner"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleSalesRep, RoleTeamLead, RoleOffice, RoleOwner:
		return true
	}
	return false
}

// CanSubmitPrice reports whether the role may submit a proposal price.
func (r Role) CanSubmitPrice() bool {
	switch r {
	case RoleSalesRep, RoleTeamLead, RoleOffice, RoleOwner:
		return true
	}
	return false
}

// CanApprovePrice reports whether the role may approve, counter or
// force-approve a submitted price.
func (r Role) CanApprovePrice() bool {
	return r == RoleOwner || r == RoleOffice
}

type JobType string

const (
	JobTypeRetail    JobType = "retail"
	JobTypeInsurance JobType = "insurance"
)

// Job carries the contract subject plus its pricing-negotiation fields.
//
// Storage model (Postgres):
//   - table jobs, PK id (uuid)
//   - nullable money columns are represented as *Cents; a nil pointer means
//     "never set", distinct from an explicit zero.
//
// SquareCountHundredths is supplied by the external roof-measurement
// service and is carried in hundredths of a square so totals stay in
// integer arithmetic.
type Job struct {
	ID                    string      `json:"id"`
	CustomerName          string      `json:"customer_name"`
	Address               string      `json:"address"`
	JobType               JobType     `json:"job_type"`
	SquareCountHundredths int64       `json:"square_count_hundredths"`
	PricePerSquare        *Cents      `json:"price_per_square,omitempty"`
	TotalPrice            *Cents      `json:"total_price,omitempty"`
	CounterPrice          *Cents      `json:"counter_price,omitempty"`
	PriceStatus           PriceStatus `json:"price_status"`
	PriceSubmittedBy      Role        `json:"price_submitted_by,omitempty"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}
