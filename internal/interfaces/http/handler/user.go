package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ilidanrock/ecohome-sub001/internal/application/identity"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/dto"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identity.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register godoc
// @Summary      Register a user
// @Description  Create a new user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body identity.CreateUserInput true "User data"
// @Success      201 {object} dto.Response{data=identity.UserInfo}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input identity.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	info, err := h.userService.CreateUser(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// GetUser godoc
// @Summary      Get a user
// @Description  Fetch a user by ID
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=identity.UserInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	info, err := h.userService.GetUserByID(c.Request.Context(), mustParseUUID(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
