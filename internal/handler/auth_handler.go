package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"academix/internal/auth"
	apperrors "academix/internal/errors"
	"academix/internal/service"
)

// AuthHandler handles the session authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary Log in and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return serviceError(c, err)
	}

	c.SetCookie(sessionCookie(token, auth.SessionExpiry))
	return dataResponse(c, user)
}

// Logout godoc
// @Summary Log out and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return serviceError(c, apperrors.ErrInvalidSession)
	}
	if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
		return serviceError(c, err)
	}

	c.SetCookie(sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// GetSession godoc
// @Summary Resolve the current session to its user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/session [get]
func (h *AuthHandler) GetSession(c echo.Context) error {
	cookie, err := c.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return serviceError(c, apperrors.ErrInvalidSession)
	}
	user, err := h.authService.CurrentUser(c.Request().Context(), cookie.Value)
	if err != nil {
		return serviceError(c, err)
	}
	return dataResponse(c, user)
}

// RequireSession rejects requests whose session has been revoked. It
// runs after the cookie JWT guard, which only proves the token was
// signed by us; liveness of the session itself is decided here.
func (h *AuthHandler) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(auth.SessionCookieName)
		if err != nil || cookie.Value == "" {
			return serviceError(c, apperrors.ErrInvalidSession)
		}
		if err := h.authService.CheckSession(c.Request().Context(), cookie.Value); err != nil {
			return serviceError(c, err)
		}
		return next(c)
	}
}

func sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
