package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eksiblog/internal/auth"
	apperrors "eksiblog/internal/errors"
	"eksiblog/internal/service"
)

// AuthHandler handles identity endpoints.
type AuthHandler struct {
	identityService service.IdentityService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identityService service.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Username       string `json:"username" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	VerifyPassword string `json:"verifyPassword" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents a password change request.
type ChangePasswordRequest struct {
	OldPassword    string `json:"oldPassword" validate:"required"`
	NewPassword    string `json:"newPassword" validate:"required"`
	VerifyPassword string `json:"verifyPassword" validate:"required"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}

	_, err := h.identityService.Signup(c.Request().Context(),
		req.FirstName, req.LastName, req.Username, req.Email, req.Password, req.VerifyPassword)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.Success("user created"))
}

// Login godoc
// @Summary Log in and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}

	token, err := h.identityService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	resp := apperrors.Success("login successful")
	resp.Token = token
	return c.JSON(http.StatusOK, resp)
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Password change data"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /auth/change-password [patch]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}

	if err := h.identityService.ChangePassword(c.Request().Context(),
		callerID, req.OldPassword, req.NewPassword, req.VerifyPassword); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.Success("password changed"))
}
