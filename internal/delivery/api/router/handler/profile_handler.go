package handler

import (
	"net/http"

	"storerating/internal/delivery/api/middleware"
	"storerating/internal/delivery/api/response"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// ChangePasswordRequest defines the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,password"`
}

// GetProfile returns the caller's account.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.GetProfile(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ChangePassword replaces the caller's password after checking the current one.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	err := h.profileUC.ChangePassword(c.Request().Context(), middleware.GetActor(c), usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
