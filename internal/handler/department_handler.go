package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "academix/internal/errors"
	"academix/internal/service"
)

// DepartmentHandler handles department endpoints.
type DepartmentHandler struct {
	departmentService service.DepartmentService
}

// NewDepartmentHandler creates a new department handler.
func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// CreateDepartmentRequest represents a department creation request.
type CreateDepartmentRequest struct {
	Code        string `json:"code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ListDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Param search query string false "Match name or code"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c echo.Context) error {
	departments, meta, err := h.departmentService.List(
		c.Request().Context(),
		c.QueryParam("search"),
		pageParams(c),
	)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, departments, meta)
}

// GetDepartment godoc
// @Summary Get department detail with subjects, classes and enrolled students
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.departmentService.GetDetail(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return dataResponse(c, detail)
}

// CreateDepartment godoc
// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Param request body CreateDepartmentRequest true "Department payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c echo.Context) error {
	var req CreateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	department, err := h.departmentService.Create(c.Request().Context(), service.CreateDepartmentInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return createdResponse(c, department.ID)
}
