package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "academix/internal/errors"
	"academix/internal/service"
)

// SubjectHandler handles subject endpoints.
type SubjectHandler struct {
	subjectService service.SubjectService
}

// NewSubjectHandler creates a new subject handler.
func NewSubjectHandler(subjectService service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// CreateSubjectRequest represents a subject creation request.
type CreateSubjectRequest struct {
	DepartmentID uint   `json:"department_id" validate:"required,gt=0"`
	Name         string `json:"name" validate:"required"`
	Code         string `json:"code" validate:"required,max=20"`
	Description  string `json:"description"`
}

// ListSubjects godoc
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Param search query string false "Match name or code"
// @Param departmentId query int false "Filter by department"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /subjects [get]
func (h *SubjectHandler) ListSubjects(c echo.Context) error {
	subjects, meta, err := h.subjectService.List(
		c.Request().Context(),
		c.QueryParam("search"),
		queryID(c, "departmentId"),
		pageParams(c),
	)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, subjects, meta)
}

// GetSubject godoc
// @Summary Get subject detail with department and classes
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /subjects/{id} [get]
func (h *SubjectHandler) GetSubject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.subjectService.GetDetail(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return dataResponse(c, detail)
}

// CreateSubject godoc
// @Summary Create subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body CreateSubjectRequest true "Subject payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /subjects [post]
func (h *SubjectHandler) CreateSubject(c echo.Context) error {
	var req CreateSubjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	subject, err := h.subjectService.Create(c.Request().Context(), service.CreateSubjectInput{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return createdResponse(c, subject.ID)
}

// queryID reads an optional numeric filter parameter; anything
// unparseable reads as "not provided".
func queryID(c echo.Context, name string) uint {
	n, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}
