package handler

import (
	"github.com/gin-gonic/gin"

	appproperty "github.com/ilidanrock/ecohome-sub001/internal/application/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/dto"
)

// PropertyHandler handles property management HTTP requests
type PropertyHandler struct {
	BaseHandler
	propertyService *appproperty.PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *appproperty.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// CreateProperty godoc
// @Summary      Register a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body appproperty.CreatePropertyRequest true "Property data"
// @Success      201 {object} dto.Response{data=appproperty.PropertyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appproperty.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.propertyService.CreateProperty(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListProperties godoc
// @Summary      List properties administered by the caller
// @Tags         properties
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appproperty.PropertyResponse}
// @Router       /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	listReq = dto.DefaultListRequest(listReq)

	filter := shared.Filter{
		Page:     listReq.Page,
		PageSize: listReq.PageSize,
		OrderBy:  listReq.OrderBy,
		OrderDir: listReq.OrderDir,
		Search:   listReq.Search,
	}

	properties, err := h.propertyService.ListProperties(c.Request.Context(), actorID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, properties)
}

// GetProperty godoc
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID"
// @Success      200 {object} dto.Response{data=appproperty.PropertyResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
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

	resp, err := h.propertyService.GetProperty(c.Request.Context(), mustParseUUID(req.ID), actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateProperty godoc
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id path string true "Property ID"
// @Param        request body appproperty.UpdatePropertyRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=appproperty.PropertyResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
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

	var body appproperty.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.propertyService.UpdateProperty(c.Request.Context(), mustParseUUID(req.ID), actorID, body)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteProperty godoc
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
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

	if err := h.propertyService.DeleteProperty(c.Request.Context(), mustParseUUID(req.ID), actorID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
