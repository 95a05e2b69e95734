package handler

import (
	"github.com/gin-gonic/gin"

	appinvoicing "github.com/ilidanrock/ecohome-sub001/internal/application/invoicing"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/dto"
)

// PaymentHandler handles payment recording and reconciliation HTTP requests
type PaymentHandler struct {
	BaseHandler
	paymentService *appinvoicing.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *appinvoicing.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// RecordRentalPayment godoc
// @Summary      Record a rent payment
// @Description  Appends a payment against a rental; never touches invoices
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body appinvoicing.RecordRentalPaymentRequest true "Payment data"
// @Success      201 {object} dto.Response{data=appinvoicing.PaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /payments/rental [post]
func (h *PaymentHandler) RecordRentalPayment(c *gin.Context) {
	var req appinvoicing.RecordRentalPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.paymentService.RecordRentalPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// RecordServicePayment godoc
// @Summary      Record a service payment against an invoice
// @Description  Reconciles the invoice after recording; it flips to PAID once covered
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body appinvoicing.RecordServicePaymentRequest true "Payment data"
// @Success      201 {object} dto.Response{data=appinvoicing.ServicePaymentResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /payments/service [post]
func (h *PaymentHandler) RecordServicePayment(c *gin.Context) {
	var req appinvoicing.RecordServicePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.paymentService.RecordServicePayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListPaymentsByInvoice godoc
// @Summary      List payments recorded against an invoice
// @Tags         payments
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} dto.Response{data=[]appinvoicing.PaymentResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /payments/invoice/{id} [get]
func (h *PaymentHandler) ListPaymentsByInvoice(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.paymentService.GetPaymentsByInvoice(c.Request.Context(), mustParseUUID(req.ID), actorID, getRole(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// ListPaymentsByRental godoc
// @Summary      List payments recorded against a rental
// @Tags         payments
// @Produce      json
// @Param        id path string true "Rental ID"
// @Success      200 {object} dto.Response{data=[]appinvoicing.PaymentResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /payments/rental/{id} [get]
func (h *PaymentHandler) ListPaymentsByRental(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid rental ID")
		return
	}

	payments, err := h.paymentService.GetPaymentsByRental(c.Request.Context(), mustParseUUID(req.ID), actorID, getRole(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}
