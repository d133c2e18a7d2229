package interfaces

import (
	"context"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

// ILedgerCache is the short-TTL cache in front of ledger.getSummary.
//
// Correctness lives in the transactional write path: every write usecase
// calls Invalidate for the job before it reports success, so a cached
// summary can be stale at most for the window between two reads, never
// across a write.

type ILedgerCache interface {
	GetSummary(ctx context.Context, jobID string) (entities.LedgerSummary, bool, error)
	SetSummary(ctx context.Context, jobID string, s entities.LedgerSummary) error
	Invalidate(ctx context.Context, jobID string) error
}
