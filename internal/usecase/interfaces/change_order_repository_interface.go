package interfaces

import (
	"context"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

// IChangeOrderRepository abstracts Postgres persistence for ChangeOrder.

type IChangeOrderRepository interface {
	Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error)
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)

	// ListUnbilledByJobID returns approved, not-yet-billed change orders
	// ordered by creation time (oldest first) for stable billing order.
	ListUnbilledByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)

	// UpdateStatus moves the change order from the expected status in one
	// conditional statement; zero ChangeOrder when the row was not in the
	// expected status anymore.
	UpdateStatus(ctx context.Context, id string, from, to entities.ChangeOrderStatus, notes string) (entities.ChangeOrder, error)

	// Delete removes the change order only while it is unbilled. Returns
	// false when no row was deleted (missing, or already billed).
	Delete(ctx context.Context, id string) (bool, error)

	GetJobSummary(ctx context.Context, jobID string) (entities.ChangeOrderSummary, error)
}
