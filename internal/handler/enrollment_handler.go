package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "academix/internal/errors"
	"academix/internal/service"
)

// EnrollmentHandler handles enrollment endpoints.
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler.
func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// CreateEnrollmentRequest represents an enrollment creation request.
type CreateEnrollmentRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	ClassID   uint   `json:"class_id" validate:"required,gt=0"`
}

// ListEnrollments godoc
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Param studentId query string false "Filter by student"
// @Param classId query int false "Filter by class"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /enrollments [get]
func (h *EnrollmentHandler) ListEnrollments(c echo.Context) error {
	enrollments, meta, err := h.enrollmentService.List(
		c.Request().Context(),
		c.QueryParam("studentId"),
		queryID(c, "classId"),
		pageParams(c),
	)
	if err != nil {
		return serviceError(c, err)
	}
	return listResponse(c, enrollments, meta)
}

// CreateEnrollment godoc
// @Summary Enroll a student in a class
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body CreateEnrollmentRequest true "Enrollment payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /enrollments [post]
func (h *EnrollmentHandler) CreateEnrollment(c echo.Context) error {
	var req CreateEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	enrollment, err := h.enrollmentService.Create(c.Request().Context(), req.StudentID, req.ClassID)
	if err != nil {
		return serviceError(c, err)
	}
	return createdResponse(c, enrollment.ID)
}
