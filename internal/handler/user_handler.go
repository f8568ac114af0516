package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "academix/internal/errors"
	"academix/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents a user creation request.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher admin"`
	Image    string `json:"image" validate:"omitempty,url"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param search query string false "Match name or email"
// @Param role query string false "Filter by role"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, meta, err := h.userService.List(
		c.Request().Context(),
		c.QueryParam("search"),
		c.QueryParam("role"),
		pageParams(c),
	)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, users, meta)
}

// GetUser godoc
// @Summary Get user detail with role-conditional nested aggregate
// @Tags users
// @Produce json
// @Param id path string true "User ID (opaque string)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	// User ids are opaque strings; no format validation applies.
	detail, err := h.userService.GetDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return dataResponse(c, detail)
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	user, err := h.userService.Create(c.Request().Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Image:    req.Image,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return createdResponse(c, user.ID)
}
