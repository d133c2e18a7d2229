package interfaces

import (
	"context"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

// IPaymentRepository abstracts Postgres persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)

	// Delete is irreversible and has no cascading effect on invoices.
	// Returns false when no row was deleted.
	Delete(ctx context.Context, id string) (bool, error)

	GetSummary(ctx context.Context, jobID string) (entities.PaymentSummary, error)
}
