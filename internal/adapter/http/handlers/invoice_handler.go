package handlers

import (
	"errors"
	"log"
	"net/http"

	request "taller_mecanico/internal/adapter/http/dto/request"
	response "taller_mecanico/internal/adapter/http/dto/response"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices, payments and completion.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	reports usecase.IReportUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, reports usecase.IReportUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, reports: reports}
}

// EnsureOpenInvoice returns the vehicle's open invoice, creating it if needed.
//
//	@Summary	Open invoice of a vehicle
//	@Tags		invoices
//	@Produce	json
//	@Param		id	path		string	true	"Vehicle ID"
//	@Success	200	{object}	response.InvoiceResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/vehicles/{id}/invoice [post]
func (h *InvoiceHandler) EnsureOpenInvoice(c *gin.Context) {
	vehicleID := c.Param("id")
	inv, err := h.usecase.EnsureOpenInvoice(c.Request.Context(), vehicleID)
	if err != nil {
		log.Printf("[invoice][handler] ensure-open failed vehicle_id=%s err=%v", vehicleID, err)
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// RecalculateTotal rebuilds the cached total from the invoice lines.
//
//	@Summary	Recalculate invoice total
//	@Tags		invoices
//	@Produce	json
//	@Param		id	path		string	true	"Invoice ID"
//	@Success	200	{object}	response.TotalResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/invoices/{id}/recalculate [post]
func (h *InvoiceHandler) RecalculateTotal(c *gin.Context) {
	invoiceID := c.Param("id")
	total, err := h.usecase.RecalculateTotal(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[invoice][handler] recalculate failed invoice_id=%s err=%v", invoiceID, err)
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.TotalResponse{Total: total.StringFixed(2)})
}

// RecordPayment appends a payment and settles the invoice when fully paid.
//
//	@Summary	Record payment
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Invoice ID"
//	@Param		body	body		request.PaymentRequest	true	"Payment"
//	@Success	201		{object}	response.PaymentResultResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	402		{object}	pkg.HTTPError
//	@Failure	404		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/v1/invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	invoiceID := c.Param("id")
	log.Printf("[invoice][handler] payment start invoice_id=%s", invoiceID)

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[invoice][handler] invalid payment payload invoice_id=%s err=%v", invoiceID, err)
		writeError(c, errInvalidRequest)
		return
	}

	result, err := h.usecase.RecordPayment(c.Request.Context(), invoiceID, payload.ToInput())
	if err != nil {
		log.Printf("[invoice][handler] payment failed invoice_id=%s err=%v", invoiceID, err)
		writeError(c, mapInvoiceError(err))
		return
	}
	log.Printf("[invoice][handler] payment success invoice_id=%s payment_id=%s status=%s", invoiceID, result.Payment.ID, result.Invoice.Status)
	c.JSON(http.StatusCreated, response.FromPaymentResult(result))
}

// MarkTerminated records the completion of a paid job. Repeated calls return
// the existing record with created=false.
//
//	@Summary	Mark job completed
//	@Tags		invoices
//	@Produce	json
//	@Param		id	path		string	true	"Invoice ID"
//	@Success	200	{object}	response.CompletionResponse
//	@Success	201	{object}	response.CompletionResponse
//	@Failure	409	{object}	pkg.HTTPError
//	@Router		/v1/invoices/{id}/terminate [post]
func (h *InvoiceHandler) MarkTerminated(c *gin.Context) {
	invoiceID := c.Param("id")
	result, err := h.usecase.MarkTerminated(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[invoice][handler] terminate failed invoice_id=%s err=%v", invoiceID, err)
		writeError(c, mapInvoiceError(err))
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromCompletion(result))
}

// GetInvoice returns an invoice with its lines and payments.
//
//	@Summary	Get invoice
//	@Tags		invoices
//	@Produce	json
//	@Param		id	path		string	true	"Invoice ID"
//	@Success	200	{object}	response.InvoiceDetailResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	detail, err := h.usecase.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceDetail(detail))
}

// ListInvoices is the billing list, one row per vehicle.
//
//	@Summary	Billing list
//	@Tags		invoices
//	@Produce	json
//	@Success	200	{array}	response.InvoiceSummaryResponse
//	@Router		/v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	rows, err := h.usecase.ListInvoices(c.Request.Context())
	if err != nil {
		log.Printf("[invoice][handler] list failed err=%v", err)
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceSummaries(rows))
}

// BillingTotal sums every invoice line ever billed.
//
//	@Summary	Billing grand total
//	@Tags		invoices
//	@Produce	json
//	@Success	200	{object}	response.TotalResponse
//	@Router		/v1/invoices/total [get]
func (h *InvoiceHandler) BillingTotal(c *gin.Context) {
	total, err := h.usecase.BillingTotal(c.Request.Context())
	if err != nil {
		log.Printf("[invoice][handler] total failed err=%v", err)
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.TotalResponse{Total: total.StringFixed(2)})
}

// ExportInvoices downloads the billing list as a spreadsheet.
//
//	@Summary	Export billing list
//	@Tags		invoices
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200
//	@Router		/v1/invoices/export [get]
func (h *InvoiceHandler) ExportInvoices(c *gin.Context) {
	report, err := h.reports.ExportInvoices(c.Request.Context())
	if err != nil {
		log.Printf("[invoice][handler] export failed err=%v", err)
		writeError(c, mapInvoiceError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(http.StatusOK, report.ContentType, report.Body)
}

func mapInvoiceError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return validationError("INVALID_INVOICE", err)
	case errors.Is(err, usecase.ErrInvalidPaymentDate),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return validationError("INVALID_PAYMENT", err)
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Card payments are not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPaid):
		return pkg.NewDomainError("INVOICE_NOT_PAID", err.Error(), err, http.StatusConflict)
	default:
		return internalError(err)
	}
}
