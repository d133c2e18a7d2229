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
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// IPaymentUseCase records cash received against a job.
//
// Payments are informational cash tracking, not invoice settlement:
// recording or deleting one never touches invoices.

type IPaymentUseCase interface {
	Record(ctx context.Context, jobID string, amount entities.Cents, paymentDate time.Time, method entities.PaymentMethod, checkNumber, notes string) (entities.Payment, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
	GetSummary(ctx context.Context, jobID string) (entities.PaymentSummary, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	jobRepo interfaces.IJobRepository
	cache   interfaces.ILedgerCache
	events  interfaces.ILedgerEventPublisher
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, jobRepo interfaces.IJobRepository, cache interfaces.ILedgerCache, events interfaces.ILedgerEventPublisher) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, jobRepo: jobRepo, cache: cache, events: events}
}

func (u *PaymentUseCase) Record(ctx context.Context, jobID string, amount entities.Cents, paymentDate time.Time, method entities.PaymentMethod, checkNumber, notes string) (entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Payment{}, ErrInvalidJobID
	}
	if amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	if !entities.ValidPaymentMethod(method) {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Payment{}, err
	}
	if job.ID == "" {
		return entities.Payment{}, ErrJobNotFound
	}

	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	p := entities.Payment{
		ID:          uuid.NewString(),
		JobID:       jobID,
		Amount:      amount,
		PaymentDate: paymentDate.UTC(),
		Method:      method,
		CheckNumber: strings.TrimSpace(checkNumber),
		Notes:       strings.TrimSpace(notes),
		CreatedAt:   time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	u.afterWrite(ctx, jobID, "payment_recorded")
	log.Info().Str("job_id", jobID).Str("payment_id", created.ID).
		Int64("amount_cents", int64(amount)).Str("method", string(method)).
		Msg("payment recorded")
	return created, nil
}

func (u *PaymentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPaymentNotFound
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPaymentNotFound
	}

	u.afterWrite(ctx, p.JobID, "payment_deleted")
	log.Info().Str("job_id", p.JobID).Str("payment_id", id).Msg("payment deleted")
	return nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func (u *PaymentUseCase) GetSummary(ctx context.Context, jobID string) (entities.PaymentSummary, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.PaymentSummary{}, ErrInvalidJobID
	}
	return u.repo.GetSummary(ctx, jobID)
}

func (u *PaymentUseCase) afterWrite(ctx context.Context, jobID, reason string) {
	if u.cache != nil {
		if err := u.cache.Invalidate(ctx, jobID); err != nil {
			log.Warn().Err(err).Str("job_id", jobID).Msg("ledger cache invalidation failed")
		}
	}
	if u.events != nil {
		u.events.LedgerUpdated(jobID, reason)
	}
}
