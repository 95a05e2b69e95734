package handler

import (
	"github.com/gin-gonic/gin"

	appinvoicing "github.com/ilidanrock/ecohome-sub001/internal/application/invoicing"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/invoicing"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/dto"
)

// InvoiceHandler handles invoice generation and retrieval HTTP requests
type InvoiceHandler struct {
	BaseHandler
	invoiceService *appinvoicing.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *appinvoicing.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// GenerateInvoices godoc
// @Summary      Generate invoices for a billing period
// @Description  Splits a property's utility costs for one month across its active rentals
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body appinvoicing.GenerateInvoicesRequest true "Generation parameters"
// @Success      201 {object} dto.Response{data=[]appinvoicing.InvoiceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /invoices/generate [post]
func (h *InvoiceHandler) GenerateInvoices(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appinvoicing.GenerateInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	invoices, err := h.invoiceService.GenerateInvoices(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoices)
}

// ListMyInvoices godoc
// @Summary      List the caller's invoices
// @Tags         invoices
// @Produce      json
// @Param        status query string false "Filter by status (PAID or UNPAID)"
// @Success      200 {object} dto.Response{data=[]appinvoicing.InvoiceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /invoices [get]
func (h *InvoiceHandler) ListMyInvoices(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var status *invoicing.InvoiceStatus
	if raw := c.Query("status"); raw != "" {
		s := invoicing.InvoiceStatus(raw)
		if !s.IsValid() {
			h.BadRequest(c, "Invalid status filter: must be PAID or UNPAID")
			return
		}
		status = &s
	}

	invoices, err := h.invoiceService.GetUserInvoices(c.Request.Context(), actorID, status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoices)
}

// GetInvoice godoc
// @Summary      Get an invoice with its payment coverage
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} dto.Response{data=appinvoicing.InvoiceDetailResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
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

	resp, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), mustParseUUID(req.ID), actorID, getRole(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
