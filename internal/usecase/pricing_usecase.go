package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrPriceBelowFloor   = errors.New("price per square below floor")
	ErrRoleNotAllowed    = errors.New("role not allowed for this pricing action")
	ErrPricingConflict   = errors.New("pricing action not valid for current status")
	ErrNoCounterOnRecord = errors.New("no counter price on record")
)

// IPricingUseCase owns the proposal price and its approval state machine.
//
// The $450 floor and $500 auto-approval threshold live in entities
// (PriceFloorCents / PriceAutoApproveCents); this usecase is the only code
// that applies them.
//
// State machine:
//   - draft -> pending_approval | approved   (submit; auto-approve at/over threshold)
//   - pending_approval -> approved           (approve, owner/office)
//   - pending_approval -> negotiation        (counter, owner/office)
//   - negotiation -> approved                (acceptCounter, original submitter role)
//   - negotiation -> draft                   (denyCounter: full reset)

type IPricingUseCase interface {
	Submit(ctx context.Context, jobID string, actor entities.Role, pricePerSquare entities.Cents) (entities.Job, error)
	Approve(ctx context.Context, jobID string, actor entities.Role) (entities.Job, error)
	Counter(ctx context.Context, jobID string, actor entities.Role, counterPrice entities.Cents) (entities.Job, error)
	AcceptCounter(ctx context.Context, jobID string, actor entities.Role) (entities.Job, error)
	DenyCounter(ctx context.Context, jobID string, actor entities.Role) (entities.Job, error)
}

type PricingUseCase struct {
	repo   interfaces.IJobRepository
	cache  interfaces.ILedgerCache
	events interfaces.ILedgerEventPublisher
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IJobRepository, cache interfaces.ILedgerCache, events interfaces.ILedgerEventPublisher) *PricingUseCase {
	return &PricingUseCase{repo: repo, cache: cache, events: events}
}

func (u *PricingUseCase) Submit(ctx context.Context, jobID string, actor entities.Role, pricePerSquare entities.Cents) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if !actor.CanSubmitPrice() {
		return entities.Job{}, ErrRoleNotAllowed
	}
	// Hard floor: rejected before any read or write, for every role.
	if pricePerSquare < entities.PriceFloorCents {
		return entities.Job{}, ErrPriceBelowFloor
	}

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.PriceStatus != entities.PriceStatusDraft {
		return entities.Job{}, ErrPricingConflict
	}

	target := entities.PriceStatusPendingApproval
	if pricePerSquare >= entities.PriceAutoApproveCents {
		target = entities.PriceStatusApproved
	}

	total := pricePerSquare.MulHundredths(job.SquareCountHundredths)
	job.PricePerSquare = &pricePerSquare
	job.TotalPrice = &total
	job.CounterPrice = nil
	job.PriceStatus = target
	job.PriceSubmittedBy = actor
	job.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdatePricing(ctx, job, entities.PriceStatusDraft)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrPricingConflict
	}

	u.afterWrite(ctx, jobID, "price_submitted")
	log.Info().Str("job_id", jobID).Str("role", string(actor)).
		Int64("price_per_square_cents", int64(pricePerSquare)).
		Str("price_status", string(target)).Msg("proposal submitted")
	return updated, nil
}

func (u *PricingUseCase) Approve(ctx context.Context, jobID string, actor entities.Role) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if !actor.CanApprovePrice() {
		return entities.Job{}, ErrRoleNotAllowed
	}

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	// Duplicate submissions are tolerated: approving an approved price is a
	// no-op, not an error.
	if job.PriceStatus == entities.PriceStatusApproved {
		return job, nil
	}
	if job.PriceStatus != entities.PriceStatusPendingApproval {
		return entities.Job{}, ErrPricingConflict
	}

	job.PriceStatus = entities.PriceStatusApproved
	job.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdatePricing(ctx, job, entities.PriceStatusPendingApproval)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return u.reloadAfterLostRace(ctx, jobID, entities.PriceStatusApproved)
	}

	u.afterWrite(ctx, jobID, "price_approved")
	log.Info().Str("job_id", jobID).Str("role", string(actor)).Msg("proposal approved")
	return updated, nil
}

func (u *PricingUseCase) Counter(ctx context.Context, jobID string, actor entities.Role, counterPrice entities.Cents) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if !actor.CanApprovePrice() {
		return entities.Job{}, ErrRoleNotAllowed
	}
	if counterPrice < entities.PriceFloorCents {
		return entities.Job{}, ErrPriceBelowFloor
	}

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.PriceStatus != entities.PriceStatusPendingApproval {
		return entities.Job{}, ErrPricingConflict
	}

	job.CounterPrice = &counterPrice
	job.PriceStatus = entities.PriceStatusNegotiation
	job.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdatePricing(ctx, job, entities.PriceStatusPendingApproval)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrPricingConflict
	}

	u.afterWrite(ctx, jobID, "price_countered")
	log.Info().Str("job_id", jobID).Str("role", string(actor)).
		Int64("counter_price_cents", int64(counterPrice)).Msg("counter offered")
	return updated, nil
}

func (u *PricingUseCase) AcceptCounter(ctx context.Context, jobID string, actor entities.Role) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.PriceStatus != entities.PriceStatusNegotiation {
		return entities.Job{}, ErrPricingConflict
	}
	if actor != job.PriceSubmittedBy {
		return entities.Job{}, ErrRoleNotAllowed
	}
	if job.CounterPrice == nil {
		return entities.Job{}, ErrNoCounterOnRecord
	}

	accepted := *job.CounterPrice
	total := accepted.MulHundredths(job.SquareCountHundredths)
	job.PricePerSquare = &accepted
	job.TotalPrice = &total
	job.CounterPrice = nil
	job.PriceStatus = entities.PriceStatusApproved
	job.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdatePricing(ctx, job, entities.PriceStatusNegotiation)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrPricingConflict
	}

	u.afterWrite(ctx, jobID, "counter_accepted")
	log.Info().Str("job_id", jobID).Str("role", string(actor)).
		Int64("accepted_price_cents", int64(accepted)).Msg("counter accepted")
	return updated, nil
}

func (u *PricingUseCase) DenyCounter(ctx context.Context, jobID string, actor entities.Role) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.PriceStatus != entities.PriceStatusNegotiation {
		return entities.Job{}, ErrPricingConflict
	}
	if actor != job.PriceSubmittedBy && !actor.CanApprovePrice() {
		return entities.Job{}, ErrRoleNotAllowed
	}

	// Deny-and-reset: the negotiation is abandoned and pricing starts over.
	job.PricePerSquare = nil
	job.TotalPrice = nil
	job.CounterPrice = nil
	job.PriceSubmittedBy = ""
	job.PriceStatus = entities.PriceStatusDraft
	job.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdatePricing(ctx, job, entities.PriceStatusNegotiation)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrPricingConflict
	}

	u.afterWrite(ctx, jobID, "counter_denied")
	log.Info().Str("job_id", jobID).Str("role", string(actor)).Msg("counter denied, pricing reset")
	return updated, nil
}

// reloadAfterLostRace re-reads the job after a conditional update matched no
// row. If a concurrent caller already landed the same terminal status the
// duplicate is a no-op; anything else is a real conflict.
func (u *PricingUseCase) reloadAfterLostRace(ctx context.Context, jobID string, want entities.PriceStatus) (entities.Job, error) {
	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID != "" && job.PriceStatus == want {
		return job, nil
	}
	return entities.Job{}, ErrPricingConflict
}

func (u *PricingUseCase) afterWrite(ctx context.Context, jobID, reason string) {
	if u.cache != nil {
		if err := u.cache.Invalidate(ctx, jobID); err != nil {
			log.Warn().Err(err).Str("job_id", jobID).Msg("ledger cache invalidation failed")
		}
	}
	if u.events != nil {
		u.events.LedgerUpdated(jobID, reason)
	}
}
