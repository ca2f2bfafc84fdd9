package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkuznecov/shopify_ecom/internal/logging"
	"github.com/mkuznecov/shopify_ecom/internal/service"
	"github.com/mkuznecov/shopify_ecom/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if _, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "some fields are missing")
		case errors.Is(err, service.ErrUserExists):
			return echo.NewHTTPError(http.StatusBadRequest, "User already exists")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
	}

	l.Info("register_success")
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User created successfully",
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "some fields are missing")
		case errors.Is(err, service.ErrUserNotRegistered):
			return echo.NewHTTPError(http.StatusBadRequest, "User does not exist. Please register first")
		case errors.Is(err, service.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusUnauthorized, "Password is incorrect")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
	}

	l.Info("login_success")
	return c.JSON(http.StatusOK, transport.LoginResponse{
		Message: "Login successful",
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Token:   user.Token,
		Role:    user.Role,
	})
}
