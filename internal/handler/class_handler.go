package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "academix/internal/errors"
	"academix/internal/model"
	"academix/internal/service"
)

// ClassHandler handles class endpoints.
type ClassHandler struct {
	classService service.ClassService
}

// NewClassHandler creates a new class handler.
func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// CreateClassRequest represents a class creation request. The invite code
// is generated server-side and never accepted from the client.
type CreateClassRequest struct {
	SubjectID   uint                  `json:"subject_id" validate:"required,gt=0"`
	TeacherID   string                `json:"teacher_id" validate:"required"`
	Name        string                `json:"name" validate:"required"`
	Capacity    int                   `json:"capacity" validate:"omitempty,gt=0"`
	BannerURL   string                `json:"banner_url" validate:"omitempty,url"`
	BannerColor string                `json:"banner_color"`
	Schedules   []model.ClassSchedule `json:"schedules" validate:"omitempty,dive"`
}

// ListClasses godoc
// @Summary List classes
// @Tags classes
// @Produce json
// @Param search query string false "Match name"
// @Param subjectId query int false "Filter by subject"
// @Param teacherId query string false "Filter by teacher"
// @Param status query string false "Filter by status"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /classes [get]
func (h *ClassHandler) ListClasses(c echo.Context) error {
	classes, meta, err := h.classService.List(
		c.Request().Context(),
		c.QueryParam("search"),
		queryID(c, "subjectId"),
		c.QueryParam("teacherId"),
		c.QueryParam("status"),
		pageParams(c),
	)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, classes, meta)
}

// GetClass godoc
// @Summary Get class detail with subject, teacher and enrolled students
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /classes/{id} [get]
func (h *ClassHandler) GetClass(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.classService.GetDetail(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return dataResponse(c, detail)
}

// CreateClass godoc
// @Summary Create class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body CreateClassRequest true "Class payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /classes [post]
func (h *ClassHandler) CreateClass(c echo.Context) error {
	var req CreateClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	class, err := h.classService.Create(c.Request().Context(), service.CreateClassInput{
		SubjectID:   req.SubjectID,
		TeacherID:   req.TeacherID,
		Name:        req.Name,
		Capacity:    req.Capacity,
		BannerURL:   req.BannerURL,
		BannerColor: req.BannerColor,
		Schedules:   req.Schedules,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return createdResponse(c, class.ID)
}
