package usecase

import (
	"context"
	"strings"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// ILedgerUseCase is the read-side composition over pricing, change orders,
// invoices and payments. It mutates nothing.

type ILedgerUseCase interface {
	GetSummary(ctx context.Context, jobID string) (entities.LedgerSummary, error)
}

type LedgerUseCase struct {
	jobRepo         interfaces.IJobRepository
	changeOrderRepo interfaces.IChangeOrderRepository
	invoiceRepo     interfaces.IInvoiceRepository
	paymentRepo     interfaces.IPaymentRepository
	cache           interfaces.ILedgerCache
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(jobRepo interfaces.IJobRepository, changeOrderRepo interfaces.IChangeOrderRepository, invoiceRepo interfaces.IInvoiceRepository, paymentRepo interfaces.IPaymentRepository, cache interfaces.ILedgerCache) *LedgerUseCase {
	return &LedgerUseCase{
		jobRepo:         jobRepo,
		changeOrderRepo: changeOrderRepo,
		invoiceRepo:     invoiceRepo,
		paymentRepo:     paymentRepo,
		cache:           cache,
	}
}

func (u *LedgerUseCase) GetSummary(ctx context.Context, jobID string) (entities.LedgerSummary, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.LedgerSummary{}, ErrInvalidJobID
	}

	// Cache-aside: the cache is a convenience, never the source of truth.
	// Every write path invalidates the key before reporting success, so a
	// hit is always post-write-consistent.
	if u.cache != nil {
		if s, ok, err := u.cache.GetSummary(ctx, jobID); err == nil && ok {
			return s, nil
		} else if err != nil {
			log.Warn().Err(err).Str("job_id", jobID).Msg("ledger cache read failed")
		}
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.LedgerSummary{}, err
	}
	if job.ID == "" {
		return entities.LedgerSummary{}, ErrJobNotFound
	}

	coSummary, err := u.changeOrderRepo.GetJobSummary(ctx, jobID)
	if err != nil {
		return entities.LedgerSummary{}, err
	}
	sums, err := u.invoiceRepo.SumByJobID(ctx, jobID)
	if err != nil {
		return entities.LedgerSummary{}, err
	}
	paySummary, err := u.paymentRepo.GetSummary(ctx, jobID)
	if err != nil {
		return entities.LedgerSummary{}, err
	}

	totals := entities.ComputeLedgerTotals(job.TotalPrice, sums.NonSupplementNonCancelled, coSummary.TotalApproved, sums.TotalNonCancelled)

	summary := entities.LedgerSummary{
		JobID:                 jobID,
		LedgerTotals:          totals,
		TotalCollected:        paySummary.TotalPaid,
		PaymentCount:          paySummary.PaymentCount,
		ApprovedCount:         coSummary.ApprovedCount,
		SuggestedDepositCents: entities.SuggestedDeposit(job.JobType, totals.TotalContractValue),
	}

	if u.cache != nil {
		if err := u.cache.SetSummary(ctx, jobID, summary); err != nil {
			log.Warn().Err(err).Str("job_id", jobID).Msg("ledger cache write failed")
		}
	}
	return summary, nil
}
