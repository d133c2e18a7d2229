package request

import "github.com/grupo95/job-ledger-service/internal/domain/entities"

// Proposal payloads speak decimal dollars; conversion to cents happens
// exactly once, here.

type SubmitProposalRequest struct {
	PricePerSquare float64 `json:"price_per_square" binding:"required"`
}

func (r SubmitProposalRequest) PricePerSquareCents() entities.Cents {
	return entities.CentsFromDollars(r.PricePerSquare)
}

type CounterProposalRequest struct {
	CounterPrice float64 `json:"counter_price" binding:"required"`
}

func (r CounterProposalRequest) CounterPriceCents() entities.Cents {
	return entities.CentsFromDollars(r.CounterPrice)
}
