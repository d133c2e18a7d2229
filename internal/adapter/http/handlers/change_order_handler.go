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
	errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)
)

type ChangeOrderHandler struct {
	usecase usecase.IChangeOrderUseCase
}

func NewChangeOrderHandler(uc usecase.IChangeOrderUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

// CreateChangeOrder godoc
// @Summary      Create a change order
// @Tags         change-orders
// @Accept       json
// @Produce      json
// @Param        job_id        path      string  true  "Job ID"
// @Param        change_order  body      request.CreateChangeOrderRequest  true  "Change order payload"
// @Success      201  {object}  response.ChangeOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/change-orders [post]
func (h *ChangeOrderHandler) CreateChangeOrder(c *gin.Context) {
	var payload request.CreateChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	co, err := h.usecase.Create(c.Request.Context(), c.Param("job_id"), payload.ResolveType(), payload.Description, payload.AmountCents())
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeOrder(co))
}

// ListChangeOrders godoc
// @Summary      List change orders for a job
// @Tags         change-orders
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {array}   response.ChangeOrderResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/change-orders [get]
func (h *ChangeOrderHandler) ListChangeOrders(c *gin.Context) {
	cos, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrders(cos))
}

// ListUnbilledChangeOrders godoc
// @Summary      List approved, not-yet-invoiced change orders for a job
// @Tags         change-orders
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {array}   response.ChangeOrderResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/change-orders/unbilled [get]
func (h *ChangeOrderHandler) ListUnbilledChangeOrders(c *gin.Context) {
	cos, err := h.usecase.GetUnbilledChangeOrders(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrders(cos))
}

// GetChangeOrderSummary godoc
// @Summary      Get the approved change order rollup for a job
// @Tags         change-orders
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {object}  response.ChangeOrderSummaryResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/change-orders/summary [get]
func (h *ChangeOrderHandler) GetChangeOrderSummary(c *gin.Context) {
	jobID := c.Param("job_id")
	summary, err := h.usecase.GetJobSummary(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrderSummary(jobID, summary))
}

// ApproveChangeOrder godoc
// @Summary      Approve a pending change order
// @Tags         change-orders
// @Accept       json
// @Produce      json
// @Param        change_order_id  path      string  true  "Change order ID"
// @Param        approval         body      request.ApproveChangeOrderRequest  false  "Optional notes"
// @Success      200  {object}  response.ChangeOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /change-orders/{change_order_id}/approve [patch]
func (h *ChangeOrderHandler) ApproveChangeOrder(c *gin.Context) {
	// Body is optional; a missing or malformed body just means no notes.
	var payload request.ApproveChangeOrderRequest
	_ = c.ShouldBindJSON(&payload)

	co, err := h.usecase.Approve(c.Request.Context(), c.Param("change_order_id"), payload.Notes)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

// RejectChangeOrder godoc
// @Summary      Reject a pending change order
// @Tags         change-orders
// @Accept       json
// @Produce      json
// @Param        change_order_id  path      string  true  "Change order ID"
// @Param        rejection        body      request.RejectChangeOrderRequest  false  "Optional reason"
// @Success      200  {object}  response.ChangeOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /change-orders/{change_order_id}/reject [patch]
func (h *ChangeOrderHandler) RejectChangeOrder(c *gin.Context) {
	var payload request.RejectChangeOrderRequest
	_ = c.ShouldBindJSON(&payload)

	co, err := h.usecase.Reject(c.Request.Context(), c.Param("change_order_id"), payload.Reason)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

// DeleteChangeOrder godoc
// @Summary      Delete a change order
// @Description  Change orders already attached to an invoice cannot be deleted.
// @Tags         change-orders
// @Param        change_order_id  path  string  true  "Change order ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /change-orders/{change_order_id} [delete]
func (h *ChangeOrderHandler) DeleteChangeOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("change_order_id")); err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetChangeOrder godoc
// @Summary      Get a change order
// @Tags         change-orders
// @Produce      json
// @Param        change_order_id  path      string  true  "Change order ID"
// @Success      200  {object}  response.ChangeOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /change-orders/{change_order_id} [get]
func (h *ChangeOrderHandler) GetChangeOrder(c *gin.Context) {
	co, err := h.usecase.GetByID(c.Request.Context(), c.Param("change_order_id"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

func mapChangeOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChangeOrderID), errors.Is(err, usecase.ErrInvalidChangeOrderType), errors.Is(err, usecase.ErrInvalidChangeOrderAmt), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChangeOrderBilled):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_BILLED", "Change order is already attached to an invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrChangeOrderConflict):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_CONFLICT", "Change order is not in a state that allows this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
