package handler

import (
	"github.com/gin-gonic/gin"

	appbilling "github.com/ilidanrock/ecohome-sub001/internal/application/billing"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/dto"
)

// BillHandler handles utility bill and meter reading HTTP requests
type BillHandler struct {
	BaseHandler
	billService *appbilling.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *appbilling.BillService) *BillHandler {
	return &BillHandler{
		billService: billService,
	}
}

// CreateElectricityBill godoc
// @Summary      Record an electricity bill
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body appbilling.CreateElectricityBillRequest true "Bill data"
// @Success      201 {object} dto.Response{data=appbilling.ElectricityBillResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /bills/electricity [post]
func (h *BillHandler) CreateElectricityBill(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appbilling.CreateElectricityBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.billService.CreateElectricityBill(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListElectricityBills godoc
// @Summary      List electricity bills for a property
// @Tags         bills
// @Produce      json
// @Param        id path string true "Property ID"
// @Success      200 {object} dto.Response{data=[]appbilling.ElectricityBillResponse}
// @Router       /properties/{id}/bills/electricity [get]
func (h *BillHandler) ListElectricityBills(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	bills, err := h.billService.ListElectricityBills(c.Request.Context(), mustParseUUID(req.ID), actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bills)
}

// CreateWaterBill godoc
// @Summary      Record a water bill
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body appbilling.CreateWaterBillRequest true "Bill data"
// @Success      201 {object} dto.Response{data=appbilling.WaterBillResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /bills/water [post]
func (h *BillHandler) CreateWaterBill(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appbilling.CreateWaterBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.billService.CreateWaterBill(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListWaterBills godoc
// @Summary      List water bills for a property
// @Tags         bills
// @Produce      json
// @Param        id path string true "Property ID"
// @Success      200 {object} dto.Response{data=[]appbilling.WaterBillResponse}
// @Router       /properties/{id}/bills/water [get]
func (h *BillHandler) ListWaterBills(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	bills, err := h.billService.ListWaterBills(c.Request.Context(), mustParseUUID(req.ID), actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bills)
}

// RecordConsumption godoc
// @Summary      Record a meter reading for a rental
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body appbilling.RecordConsumptionRequest true "Meter reading"
// @Success      201 {object} dto.Response{data=appbilling.ConsumptionResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /consumptions [post]
func (h *BillHandler) RecordConsumption(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appbilling.RecordConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.billService.RecordConsumption(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListConsumptions godoc
// @Summary      List meter readings for a rental
// @Tags         bills
// @Produce      json
// @Param        id path string true "Rental ID"
// @Success      200 {object} dto.Response{data=[]appbilling.ConsumptionResponse}
// @Router       /rentals/{id}/consumptions [get]
func (h *BillHandler) ListConsumptions(c *gin.Context) {
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

	readings, err := h.billService.ListConsumptionsByRental(c.Request.Context(), mustParseUUID(req.ID), actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, readings)
}
