package request

import (
	"strings"
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

type RecordPaymentRequest struct {
	Amount        float64    `json:"amount" binding:"required"`
	PaymentDate   *time.Time `json:"payment_date"`
	PaymentMethod string     `json:"payment_method" binding:"required"`
	CheckNumber   string     `json:"check_number"`
	Notes         string     `json:"notes"`
}

func (r RecordPaymentRequest) AmountCents() entities.Cents {
	return entities.CentsFromDollars(r.Amount)
}

func (r RecordPaymentRequest) ResolveMethod() entities.PaymentMethod {
	return entities.PaymentMethod(strings.TrimSpace(strings.ToLower(r.PaymentMethod)))
}

func (r RecordPaymentRequest) ResolveDate() time.Time {
	if r.PaymentDate != nil {
		return *r.PaymentDate
	}
	return time.Time{}
}
