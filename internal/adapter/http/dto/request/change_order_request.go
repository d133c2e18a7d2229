package request

import (
	"strings"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

type CreateChangeOrderRequest struct {
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

func (r CreateChangeOrderRequest) ResolveType() entities.ChangeOrderType {
	return entities.ChangeOrderType(strings.TrimSpace(strings.ToLower(r.Type)))
}

func (r CreateChangeOrderRequest) AmountCents() entities.Cents {
	return entities.CentsFromDollars(r.Amount)
}

type ApproveChangeOrderRequest struct {
	Notes string `json:"notes"`
}

type RejectChangeOrderRequest struct {
	Reason string `json:"reason"`
}
