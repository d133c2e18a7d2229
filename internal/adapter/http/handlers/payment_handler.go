package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/grupo95/job-ledger-service/internal/adapter/http/dto/request"
	response "github.com/grupo95/job-ledger-service/internal/adapter/http/dto/response"
	"github.com/grupo95/job-ledger-service/internal/usecase"
	"github.com/grupo95/job-ledger-service/pkg"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment godoc
// @Summary      Record a payment against a job
// @Description  Payments track collected cash only; they are not applied to specific invoices.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        job_id   path      string  true  "Job ID"
// @Param        payment  body      request.RecordPaymentRequest  true  "Payment payload"
// @Success      201  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.Record(c.Request.Context(), c.Param("job_id"), payload.AmountCents(), payload.ResolveDate(), payload.ResolveMethod(), payload.CheckNumber, payload.Notes)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

// ListPayments godoc
// @Summary      List payments for a job
// @Tags         payments
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {array}   response.PaymentResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPaymentSummary godoc
// @Summary      Get the collected-cash rollup for a job
// @Tags         payments
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {object}  response.PaymentSummaryResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/payments/summary [get]
func (h *PaymentHandler) GetPaymentSummary(c *gin.Context) {
	jobID := c.Param("job_id")
	summary, err := h.usecase.GetSummary(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentSummary(jobID, summary))
}

// DeletePayment godoc
// @Summary      Delete a payment
// @Description  Deletion is permanent and does not touch any invoice.
// @Tags         payments
// @Param        payment_id  path  string  true  "Payment ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("payment_id")); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
