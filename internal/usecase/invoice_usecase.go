package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrInvalidInvoiceID       = errors.New("invalid invoice id")
	ErrInvalidInvoiceType     = errors.New("invalid invoice type")
	ErrCustomAmountRequired   = errors.New("custom amount required for this invoice type")
	ErrNoChangeOrdersSelected = errors.New("supplement invoice requires change orders")
	ErrChangeOrderNotBillable = errors.New("selected change order is not billable")
	ErrChangeOrderWrongJob    = errors.New("selected change order belongs to another job")
	ErrInvoiceStatusConflict  = errors.New("invoice status transition not allowed")
)

const defaultDueDays = 30

// GenerateInvoiceOptions carries the per-type inputs of invoice generation.
type GenerateInvoiceOptions struct {
	// CustomAmount is required for deposit and progress invoices.
	CustomAmount *entities.Cents
	// ChangeOrderIDs selects the approved, unbilled change orders a
	// supplement invoice bills.
	ChangeOrderIDs []string
	// DueDate defaults to 30 days from creation when nil.
	DueDate *time.Time
	Notes   string
}

// IInvoiceUseCase creates invoices and owns their status lifecycle.

type IInvoiceUseCase interface {
	Generate(ctx context.Context, jobID string, invType entities.InvoiceType, opts GenerateInvoiceOptions) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetJobInvoices(ctx context.Context, jobID string) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, to entities.InvoiceStatus) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo            interfaces.IInvoiceRepository
	jobRepo         interfaces.IJobRepository
	changeOrderRepo interfaces.IChangeOrderRepository
	cache           interfaces.ILedgerCache
	events          interfaces.ILedgerEventPublisher
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, jobRepo interfaces.IJobRepository, changeOrderRepo interfaces.IChangeOrderRepository, cache interfaces.ILedgerCache, events interfaces.ILedgerEventPublisher) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, jobRepo: jobRepo, changeOrderRepo: changeOrderRepo, cache: cache, events: events}
}

func (u *InvoiceUseCase) Generate(ctx context.Context, jobID string, invType entities.InvoiceType, opts GenerateInvoiceOptions) (entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Invoice{}, ErrInvalidJobID
	}
	if !entities.ValidInvoiceType(invType) {
		return entities.Invoice{}, ErrInvalidInvoiceType
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if job.ID == "" {
		return entities.Invoice{}, ErrJobNotFound
	}

	now := time.Now().UTC()
	dueDate := now.AddDate(0, 0, defaultDueDays)
	if opts.DueDate != nil {
		dueDate = opts.DueDate.UTC()
	}

	inv := entities.Invoice{
		ID:          uuid.NewString(),
		JobID:       jobID,
		InvoiceType: invType,
		DueDate:     dueDate,
		Status:      entities.InvoiceStatusDraft,
		Notes:       strings.TrimSpace(opts.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created entities.Invoice
	switch invType {
	case entities.InvoiceTypeDeposit, entities.InvoiceTypeProgress:
		if opts.CustomAmount == nil || *opts.CustomAmount <= 0 {
			return entities.Invoice{}, ErrCustomAmountRequired
		}
		inv.TotalAmount = *opts.CustomAmount
		created, err = u.repo.CreateFixed(ctx, inv)

	case entities.InvoiceTypeSupplement:
		if len(opts.ChangeOrderIDs) == 0 {
			return entities.Invoice{}, ErrNoChangeOrdersSelected
		}
		if err := u.checkBillable(ctx, jobID, opts.ChangeOrderIDs); err != nil {
			return entities.Invoice{}, err
		}
		inv.ChangeOrderIDs = opts.ChangeOrderIDs
		created, err = u.repo.CreateSupplement(ctx, inv, opts.ChangeOrderIDs)
		if errors.Is(err, interfaces.ErrChangeOrderNotBillable) {
			// A concurrent invoice billed one of the selected orders between
			// our check and the transaction; nothing was written.
			return entities.Invoice{}, ErrChangeOrderNotBillable
		}

	case entities.InvoiceTypeFinal:
		// The remaining-balance math runs inside the repository transaction
		// so a concurrent invoice cannot slip in between read and write.
		// Negative totals are recorded as-is: an over-invoiced job must show
		// its overage, not hide it.
		created, err = u.repo.CreateFinal(ctx, inv)
	}
	if err != nil {
		return entities.Invoice{}, err
	}

	u.afterWrite(ctx, jobID, "invoice_generated")
	log.Info().Str("job_id", jobID).Str("invoice_id", created.ID).
		Int64("invoice_number", created.InvoiceNumber).
		Str("invoice_type", string(invType)).
		Int64("total_cents", int64(created.TotalAmount)).Msg("invoice generated")
	return created, nil
}

// checkBillable validates the selection up front so callers get a precise
// error before the transaction runs. The repository re-checks atomically.
func (u *InvoiceUseCase) checkBillable(ctx context.Context, jobID string, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			return ErrInvalidChangeOrderID
		}
		seen[id] = true

		co, err := u.changeOrderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if co.ID == "" {
			return ErrChangeOrderNotFound
		}
		if co.JobID != jobID {
			return ErrChangeOrderWrongJob
		}
		if !co.Billable() {
			return ErrChangeOrderNotBillable
		}
	}
	return nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) GetJobInvoices(ctx context.Context, jobID string) ([]entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, to entities.InvoiceStatus) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.Status == to {
		return inv, nil
	}
	if !inv.Status.CanTransition(to) {
		return entities.Invoice{}, ErrInvoiceStatusConflict
	}

	updated, err := u.repo.UpdateStatus(ctx, id, inv.Status, to)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		inv, err = u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Invoice{}, err
		}
		if inv.ID != "" && inv.Status == to {
			return inv, nil
		}
		return entities.Invoice{}, ErrInvoiceStatusConflict
	}

	u.afterWrite(ctx, updated.JobID, "invoice_status_"+string(to))
	log.Info().Str("job_id", updated.JobID).Str("invoice_id", id).
		Str("status", string(to)).Msg("invoice status updated")
	return updated, nil
}

func (u *InvoiceUseCase) afterWrite(ctx context.Context, jobID, reason string) {
	if u.cache != nil {
		if err := u.cache.Invalidate(ctx, jobID); err != nil {
			log.Warn().Err(err).Str("job_id", jobID).Msg("ledger cache invalidation failed")
		}
	}
	if u.events != nil {
		u.events.LedgerUpdated(jobID, reason)
	}
}
