package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "academix/internal/errors"
	"academix/internal/query"
)

// parseID validates a numeric path id. Non-numeric input is a 400, per
// the error taxonomy; only users carry opaque string ids.
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// pageParams reads the common page/limit query parameters.
func pageParams(c echo.Context) query.Params {
	return query.ParseParams(c.QueryParam("page"), c.QueryParam("limit"))
}

// validationError wraps a validator failure in the standard error
// envelope, matching the bind-failure path.
func validationError(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// serviceError maps a service failure onto the response taxonomy. The
// generic 500 hides the cause from the caller; the cause is logged here
// and nowhere else.
func serviceError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// listResponse is the common list envelope.
func listResponse(c echo.Context, data interface{}, meta query.Meta) error {
	return c.JSON(http.StatusOK, echo.Map{"data": data, "pagination": meta})
}

// dataResponse is the common detail envelope.
func dataResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"data": data})
}

// createdResponse returns the insert-and-return-id create envelope.
func createdResponse(c echo.Context, id interface{}) error {
	return c.JSON(http.StatusCreated, echo.Map{"data": echo.Map{"id": id}})
}
