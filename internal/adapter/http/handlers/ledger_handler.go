package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/grupo95/job-ledger-service/internal/adapter/http/dto/response"
	"github.com/grupo95/job-ledger-service/internal/usecase"
	"github.com/grupo95/job-ledger-service/pkg"
)

type LedgerHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewLedgerHandler(uc usecase.ILedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

// GetLedgerSummary godoc
// @Summary      Get the financial summary of a job
// @Description  Aggregates contract value, approved change orders, invoiced and collected totals into a single read model.
// @Tags         ledger
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {object}  response.LedgerSummaryResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/ledger [get]
func (h *LedgerHandler) GetLedgerSummary(c *gin.Context) {
	summary, err := h.usecase.GetSummary(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLedgerSummary(summary))
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
