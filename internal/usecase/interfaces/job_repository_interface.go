package interfaces

import (
	"context"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

// IJobRepository abstracts Postgres persistence for Job.
//
// Not-found rows come back as zero-value entities with a nil error; the
// usecase layer turns those into domain errors.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)

	// UpdatePricing persists the job's pricing fields conditioned on the
	// row still holding the expected status; the update and the status
	// check happen in one statement so concurrent transitions on the same
	// job cannot interleave. A zero Job (nil error) means another writer
	// moved the status first.
	UpdatePricing(ctx context.Context, j entities.Job, expected entities.PriceStatus) (entities.Job, error)
}
