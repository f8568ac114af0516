package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"academix/internal/auth"
	"academix/internal/config"
	apperrors "academix/internal/errors"
	"academix/internal/handler"
)

// Register wires routes and middleware. Read endpoints are public;
// mutating endpoints sit behind the session cookie guard.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	departmentHandler *handler.DepartmentHandler,
	subjectHandler *handler.SubjectHandler,
	classHandler *handler.ClassHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)
	api.GET("/departments", departmentHandler.ListDepartments)
	api.GET("/departments/:id", departmentHandler.GetDepartment)
	api.GET("/subjects", subjectHandler.ListSubjects)
	api.GET("/subjects/:id", subjectHandler.GetSubject)
	api.GET("/classes", classHandler.ListClasses)
	api.GET("/classes/:id", classHandler.GetClass)
	api.GET("/enrollments", enrollmentHandler.ListEnrollments)
	api.GET("/stats", statsHandler.GetStats)

	// Secured routes (require a valid session cookie). The JWT guard
	// proves signature and expiry; RequireSession then checks the
	// session is still live, so a logged-out cookie stops working
	// before the token itself expires.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + auth.SessionCookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			// Missing and malformed cookies alike read as "no session".
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrInvalidSession.Error(),
				Code:  "INVALID_SESSION",
			})
		},
	}), authHandler.RequireSession)

	secured.GET("/auth/session", authHandler.GetSession)
	secured.POST("/auth/logout", authHandler.Logout)
	secured.POST("/users", userHandler.CreateUser)
	secured.POST("/departments", departmentHandler.CreateDepartment)
	secured.POST("/subjects", subjectHandler.CreateSubject)
	secured.POST("/classes", classHandler.CreateClass)
	secured.POST("/enrollments", enrollmentHandler.CreateEnrollment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
