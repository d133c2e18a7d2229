package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/grupo95/job-ledger-service/internal/adapter/http/dto/request"
	response "github.com/grupo95/job-ledger-service/internal/adapter/http/dto/response"
	"github.com/grupo95/job-ledger-service/internal/adapter/http/middleware"
	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase"
	"github.com/grupo95/job-ledger-service/pkg"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// PricingHandler handles the pricing negotiation endpoints of a job.
//
// Every route behind this handler requires the X-Actor-Role header; the
// use case enforces which roles may perform each action.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// SubmitProposal godoc
// @Summary      Submit a price proposal
// @Description  Submits a per-square price. Prices at or above the auto-approve threshold are approved immediately; prices between the floor and the threshold go to pending approval; prices below the floor are rejected for every role.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        X-Actor-Role  header    string  true  "Actor role"
// @Param        job_id        path      string  true  "Job ID"
// @Param        proposal      body      request.SubmitProposalRequest  true  "Proposal payload"
// @Success      200  {object}  response.JobResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/proposal [post]
func (h *PricingHandler) SubmitProposal(c *gin.Context) {
	var payload request.SubmitProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Submit(c.Request.Context(), c.Param("job_id"), middleware.ActorRole(c), payload.PricePerSquareCents())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ApproveProposal godoc
// @Summary      Approve a pending proposal
// @Tags         pricing
// @Produce      json
// @Param        X-Actor-Role  header    string  true  "Actor role"
// @Param        job_id        path      string  true  "Job ID"
// @Success      200  {object}  response.JobResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/proposal/approve [patch]
func (h *PricingHandler) ApproveProposal(c *gin.Context) {
	h.patchPricing(c, h.usecase.Approve)
}

// CounterProposal godoc
// @Summary      Counter a pending proposal
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        X-Actor-Role  header    string  true  "Actor role"
// @Param        job_id        path      string  true  "Job ID"
// @Param        counter       body      request.CounterProposalRequest  true  "Counter payload"
// @Success      200  {object}  response.JobResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/proposal/counter [patch]
func (h *PricingHandler) CounterProposal(c *gin.Context) {
	var payload request.CounterProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Counter(c.Request.Context(), c.Param("job_id"), middleware.ActorRole(c), payload.CounterPriceCents())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// AcceptCounter godoc
// @Summary      Accept a counter price
// @Tags         pricing
// @Produce      json
// @Param        X-Actor-Role  header    string  true  "Actor role"
// @Param        job_id        path      string  true  "Job ID"
// @Success      200  {object}  response.JobResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/proposal/counter/accept [patch]
func (h *PricingHandler) AcceptCounter(c *gin.Context) {
	h.patchPricing(c, h.usecase.AcceptCounter)
}

// DenyCounter godoc
// @Summary      Deny a counter price
// @Tags         pricing
// @Produce      json
// @Param        X-Actor-Role  header    string  true  "Actor role"
// @Param        job_id        path      string  true  "Job ID"
// @Success      200  {object}  response.JobResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/proposal/counter/deny [patch]
func (h *PricingHandler) DenyCounter(c *gin.Context) {
	h.patchPricing(c, h.usecase.DenyCounter)
}

func (h *PricingHandler) patchPricing(
	c *gin.Context,
	updater func(ctx context.Context, jobID string, actor entities.Role) (entities.Job, error),
) {
	job, err := updater(c.Request.Context(), c.Param("job_id"), middleware.ActorRole(c))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceBelowFloor):
		return pkg.NewDomainErrorSimple("PRICE_BELOW_FLOOR", "Price per square is below the minimum", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return pkg.NewDomainErrorSimple("ROLE_NOT_ALLOWED", "Role is not allowed to perform this pricing action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPricingConflict), errors.Is(err, usecase.ErrNoCounterOnRecord):
		return pkg.NewDomainErrorSimple("PRICING_CONFLICT", "Pricing action is not valid for the job's current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
