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
	ErrChangeOrderNotFound    = errors.New("change order not found")
	ErrInvalidChangeOrderID   = errors.New("invalid change order id")
	ErrInvalidChangeOrderType = errors.New("invalid change order type")
	ErrInvalidChangeOrderAmt  = errors.New("invalid change order amount")
	ErrChangeOrderConflict    = errors.New("change order not in a state that allows this action")
	ErrChangeOrderBilled      = errors.New("change order already billed")
)

// IChangeOrderUseCase records scope changes against a job and owns their
// approval lifecycle. Approved-and-unbilled orders are what the invoice
// generator may bill.

type IChangeOrderUseCase interface {
	Create(ctx context.Context, jobID string, coType entities.ChangeOrderType, description string, amount entities.Cents) (entities.ChangeOrder, error)
	Approve(ctx context.Context, id, notes string) (entities.ChangeOrder, error)
	Reject(ctx context.Context, id, reason string) (entities.ChangeOrder, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)
	GetJobSummary(ctx context.Context, jobID string) (entities.ChangeOrderSummary, error)
	GetUnbilledChangeOrders(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)
}

type ChangeOrderUseCase struct {
	repo    interfaces.IChangeOrderRepository
	jobRepo interfaces.IJobRepository
	cache   interfaces.ILedgerCache
	events  interfaces.ILedgerEventPublisher
}

var _ IChangeOrderUseCase = (*ChangeOrderUseCase)(nil)

func NewChangeOrderUseCase(repo interfaces.IChangeOrderRepository, jobRepo interfaces.IJobRepository, cache interfaces.ILedgerCache, events interfaces.ILedgerEventPublisher) *ChangeOrderUseCase {
	return &ChangeOrderUseCase{repo: repo, jobRepo: jobRepo, cache: cache, events: events}
}

func (u *ChangeOrderUseCase) Create(ctx context.Context, jobID string, coType entities.ChangeOrderType, description string, amount entities.Cents) (entities.ChangeOrder, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.ChangeOrder{}, ErrInvalidJobID
	}
	if !entities.ValidChangeOrderType(coType) {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderType
	}
	if amount <= 0 {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderAmt
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if job.ID == "" {
		return entities.ChangeOrder{}, ErrJobNotFound
	}

	now := time.Now().UTC()
	co := entities.ChangeOrder{
		ID:          uuid.NewString(),
		JobID:       jobID,
		Type:        coType,
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Status:      entities.ChangeOrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, co)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	u.afterWrite(ctx, jobID, "change_order_created")
	log.Info().Str("job_id", jobID).Str("change_order_id", created.ID).
		Int64("amount_cents", int64(amount)).Msg("change order created")
	return created, nil
}

func (u *ChangeOrderUseCase) Approve(ctx context.Context, id, notes string) (entities.ChangeOrder, error) {
	return u.resolve(ctx, id, entities.ChangeOrderStatusApproved, notes)
}

func (u *ChangeOrderUseCase) Reject(ctx context.Context, id, reason string) (entities.ChangeOrder, error) {
	return u.resolve(ctx, id, entities.ChangeOrderStatusRejected, reason)
}

func (u *ChangeOrderUseCase) resolve(ctx context.Context, id string, to entities.ChangeOrderStatus, notes string) (entities.ChangeOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderID
	}

	co, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	// Re-resolving to the same status tolerates duplicate submissions.
	if co.Status == to {
		return co, nil
	}
	if !co.Status.CanTransition(to) {
		return entities.ChangeOrder{}, ErrChangeOrderConflict
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.ChangeOrderStatusPending, to, strings.TrimSpace(notes))
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if updated.ID == "" {
		// Lost a race; a duplicate of the same resolution is still a no-op.
		co, err = u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.ChangeOrder{}, err
		}
		if co.ID != "" && co.Status == to {
			return co, nil
		}
		return entities.ChangeOrder{}, ErrChangeOrderConflict
	}

	u.afterWrite(ctx, updated.JobID, "change_order_"+string(to))
	log.Info().Str("job_id", updated.JobID).Str("change_order_id", id).
		Str("status", string(to)).Msg("change order resolved")
	return updated, nil
}

func (u *ChangeOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidChangeOrderID
	}

	co, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if co.ID == "" {
		return ErrChangeOrderNotFound
	}
	if co.InvoiceID != nil {
		return ErrChangeOrderBilled
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		// The row survived the conditional delete: either it was billed
		// after our read, or a concurrent delete already removed it.
		co, err = u.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if co.ID != "" {
			return ErrChangeOrderBilled
		}
		return ErrChangeOrderNotFound
	}

	u.afterWrite(ctx, co.JobID, "change_order_deleted")
	log.Info().Str("job_id", co.JobID).Str("change_order_id", id).Msg("change order deleted")
	return nil
}

func (u *ChangeOrderUseCase) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderID
	}

	co, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	return co, nil
}

func (u *ChangeOrderUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func (u *ChangeOrderUseCase) GetJobSummary(ctx context.Context, jobID string) (entities.ChangeOrderSummary, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.ChangeOrderSummary{}, ErrInvalidJobID
	}
	return u.repo.GetJobSummary(ctx, jobID)
}

func (u *ChangeOrderUseCase) GetUnbilledChangeOrders(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListUnbilledByJobID(ctx, jobID)
}

func (u *ChangeOrderUseCase) afterWrite(ctx context.Context, jobID, reason string) {
	if u.cache != nil {
		if err := u.cache.Invalidate(ctx, jobID); err != nil {
			log.Warn().Err(err).Str("job_id", jobID).Msg("ledger cache invalidation failed")
		}
	}
	if u.events != nil {
		u.events.LedgerUpdated(jobID, reason)
	}
}
