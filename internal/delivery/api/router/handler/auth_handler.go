// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"portfolio/config"
	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/response"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the account and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type registerRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	SecondName    string `json:"second_name" validate:"required"`
	FirstSurname  string `json:"first_surname" validate:"required"`
	SecondSurname string `json:"second_surname" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Password      string `json:"password" validate:"required,min=6"`
	Photo         string `json:"photo" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// Register handles the account creation request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName:     req.FirstName,
		SecondName:    req.SecondName,
		FirstSurname:  req.FirstSurname,
		SecondSurname: req.SecondSurname,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      req.Password,
		Photo:         req.Photo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, result.Status, result)
}

// VerifyEmail handles the link sent in the verification email and redirects to the front-end.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	target := h.uc.VerifyEmail(c.Request().Context(), pathParam(c, "email"), c.QueryParam("token"))

	return c.Redirect(http.StatusFound, target)
}

// Login handles the login request and starts a cookie session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithSession(c, result)
}

// Refresh rotates the session cookie and issues a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	result, err := h.uc.Refresh(c.Request().Context(), h.sessionToken(c))
	if err != nil {
		// A dead session cookie is dropped so the browser stops replaying it.
		if errors.Is(err, domainerrors.ErrRefreshTokenInvalid) {
			c.SetCookie(h.sessionCookie("", -1))
		}
		return errors.WithStack(err)
	}

	return h.respondWithSession(c, result)
}

// Logout retires the session behind the cookie. The cookie must belong to the bearer.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	result, err := h.uc.Logout(c.Request().Context(), userID, h.sessionToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithSession(c, result)
}

// ForgotPassword mails a reset link when the account exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid password reset input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, result.Status, result)
}

// ResetPassword handles the link sent in the reset email and redirects to the front-end.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	target := h.uc.ResetPassword(c.Request().Context(), c.QueryParam("token"))

	return c.Redirect(http.StatusFound, target)
}

// ChangePassword sets a new password using the token from the reset link.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		Token:    c.QueryParam("token"),
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, result.Status, result)
}

// pathParam decodes a path parameter once. Echo matches on URL.RawPath when
// the request carries one, leaving its params escaped; otherwise they come
// from the already decoded URL.Path.
func pathParam(c echo.Context, name string) string {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}

	return value
}

func (h *AuthHandler) sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(h.cfg.Auth.CookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func (h *AuthHandler) respondWithSession(c echo.Context, result *usecase.AuthResult) error {
	switch {
	case result.RefreshToken != "":
		c.SetCookie(h.sessionCookie(result.RefreshToken, int(h.cfg.Auth.RefreshTokenTTL.Seconds())))
	case result.ClearSession:
		c.SetCookie(h.sessionCookie("", -1))
	}

	return response.Success(c, result.Status, result)
}

// sessionCookie builds the refresh-token cookie. A negative maxAge deletes it.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure(),
		SameSite: http.SameSiteLaxMode,
	}
}
