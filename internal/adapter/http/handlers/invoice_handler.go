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
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GenerateInvoice godoc
// @Summary      Generate an invoice
// @Description  Deposit and progress invoices take a custom amount. Supplement invoices bill selected approved change orders atomically. Final invoices bill the remaining contract value, which may be negative when the job was over-invoiced.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        job_id   path      string  true  "Job ID"
// @Param        invoice  body      request.GenerateInvoiceRequest  true  "Invoice payload"
// @Success      201  {object}  response.InvoiceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/invoices [post]
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var payload request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.Generate(c.Request.Context(), c.Param("job_id"), payload.ResolveType(), payload.ToOptions())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// ListInvoices godoc
// @Summary      List invoices for a job
// @Tags         invoices
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {array}   response.InvoiceResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invs, err := h.usecase.GetJobInvoices(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invs))
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        invoice_id  path      string  true  "Invoice ID"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// UpdateInvoiceStatus godoc
// @Summary      Move an invoice through its lifecycle
// @Description  draft can be sent or cancelled; sent can be paid, overdue or cancelled; overdue can be paid or cancelled. Cancelled invoices stop counting toward the job's invoiced total.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice_id  path      string  true  "Invoice ID"
// @Param        status      body      request.UpdateInvoiceStatusRequest  true  "Target status"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var payload request.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("invoice_id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoiceType), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomAmountRequired):
		return pkg.NewDomainErrorSimple("CUSTOM_AMOUNT_REQUIRED", "A positive custom amount is required for this invoice type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoChangeOrdersSelected):
		return pkg.NewDomainErrorSimple("NO_CHANGE_ORDERS_SELECTED", "A supplement invoice requires at least one change order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChangeOrderWrongJob):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_WRONG_JOB", "A selected change order belongs to another job", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChangeOrderNotBillable):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_BILLABLE", "A selected change order is not approved or is already invoiced", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceStatusConflict):
		return pkg.NewDomainErrorSimple("INVOICE_STATUS_CONFLICT", "Invoice status transition is not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
