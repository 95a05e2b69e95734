package handler

import (
	"github.com/gin-gonic/gin"

	appproperty "github.com/ilidanrock/ecohome-sub001/internal/application/property"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/dto"
)

// RentalHandler handles rental (tenancy) HTTP requests
type RentalHandler struct {
	BaseHandler
	rentalService *appproperty.RentalService
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentalService *appproperty.RentalService) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
	}
}

// CreateRental godoc
// @Summary      Start a tenancy
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request body appproperty.CreateRentalRequest true "Rental data"
// @Success      201 {object} dto.Response{data=appproperty.RentalResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appproperty.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.rentalService.CreateRental(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetRental godoc
// @Summary      Get a rental
// @Tags         rentals
// @Produce      json
// @Param        id path string true "Rental ID"
// @Success      200 {object} dto.Response{data=appproperty.RentalResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
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

	resp, err := h.rentalService.GetRentalByID(c.Request.Context(), mustParseUUID(req.ID), actorID, getRole(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListRentalsByProperty godoc
// @Summary      List rentals for a property
// @Tags         rentals
// @Produce      json
// @Param        id path string true "Property ID"
// @Success      200 {object} dto.Response{data=[]appproperty.RentalResponse}
// @Router       /properties/{id}/rentals [get]
func (h *RentalHandler) ListRentalsByProperty(c *gin.Context) {
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

	rentals, err := h.rentalService.ListRentalsByProperty(c.Request.Context(), mustParseUUID(req.ID), actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rentals)
}

// ListMyRentals godoc
// @Summary      List the caller's rentals
// @Tags         rentals
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appproperty.RentalResponse}
// @Router       /rentals [get]
func (h *RentalHandler) ListMyRentals(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	rentals, err := h.rentalService.ListRentalsByUser(c.Request.Context(), actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rentals)
}

// TerminateRental godoc
// @Summary      End a tenancy
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        id path string true "Rental ID"
// @Param        request body appproperty.TerminateRentalRequest true "End date"
// @Success      200 {object} dto.Response{data=appproperty.RentalResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /rentals/{id}/terminate [post]
func (h *RentalHandler) TerminateRental(c *gin.Context) {
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

	var body appproperty.TerminateRentalRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.rentalService.TerminateRental(c.Request.Context(), mustParseUUID(req.ID), actorID, body)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
