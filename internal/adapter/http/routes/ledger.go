package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/grupo95/job-ledger-service/internal/adapter/http/handlers"
	"github.com/grupo95/job-ledger-service/internal/adapter/http/middleware"
)

const (
	PathJobs         = "/jobs"
	PathChangeOrders = "/change-orders"
	PathInvoices     = "/invoices"
	PathPayments     = "/payments"
)

func addLedgerRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	pricingHandler *handlers.PricingHandler,
	changeOrderHandler *handlers.ChangeOrderHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	ledgerHandler *handlers.LedgerHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.GET("/:job_id/ledger", ledgerHandler.GetLedgerSummary)

		// Pricing negotiation requires an identified actor.
		proposal := jobs.Group("/:job_id/proposal", middleware.RequireActorRole())
		{
			proposal.POST("", pricingHandler.SubmitProposal)
			proposal.PATCH("/approve", pricingHandler.ApproveProposal)
			proposal.PATCH("/counter", pricingHandler.CounterProposal)
			proposal.PATCH("/counter/accept", pricingHandler.AcceptCounter)
			proposal.PATCH("/counter/deny", pricingHandler.DenyCounter)
		}

		jobs.POST("/:job_id/change-orders", changeOrderHandler.CreateChangeOrder)
		jobs.GET("/:job_id/change-orders", changeOrderHandler.ListChangeOrders)
		jobs.GET("/:job_id/change-orders/unbilled", changeOrderHandler.ListUnbilledChangeOrders)
		jobs.GET("/:job_id/change-orders/summary", changeOrderHandler.GetChangeOrderSummary)

		jobs.POST("/:job_id/invoices", invoiceHandler.GenerateInvoice)
		jobs.GET("/:job_id/invoices", invoiceHandler.ListInvoices)

		jobs.POST("/:job_id/payments", paymentHandler.RecordPayment)
		jobs.GET("/:job_id/payments", paymentHandler.ListPayments)
		jobs.GET("/:job_id/payments/summary", paymentHandler.GetPaymentSummary)
	}

	changeOrders := rg.Group(PathChangeOrders)
	{
		changeOrders.GET("/:change_order_id", changeOrderHandler.GetChangeOrder)
		changeOrders.PATCH("/:change_order_id/approve", changeOrderHandler.ApproveChangeOrder)
		changeOrders.PATCH("/:change_order_id/reject", changeOrderHandler.RejectChangeOrder)
		changeOrders.DELETE("/:change_order_id", changeOrderHandler.DeleteChangeOrder)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:invoice_id/status", invoiceHandler.UpdateInvoiceStatus)
	}

	payments := rg.Group(PathPayments)
	{
		payments.DELETE("/:payment_id", paymentHandler.DeletePayment)
	}
}
