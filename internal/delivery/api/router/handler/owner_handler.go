package handler

import (
	"net/http"

	"storerating/internal/delivery/api/middleware"
	"storerating/internal/delivery/api/response"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OwnerHandler serves the read-only views of a store owner.
type OwnerHandler struct {
	ownerUC usecase.OwnerUsecase
}

// NewOwnerHandler is the constructor for OwnerHandler.
func NewOwnerHandler(ownerUC usecase.OwnerUsecase) *OwnerHandler {
	return &OwnerHandler{ownerUC: ownerUC}
}

// GetDashboard returns the statistics of the caller's store.
func (h *OwnerHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.ownerUC.Dashboard(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

func (h *OwnerHandler) GetMyStore(c echo.Context) error {
	store, err := h.ownerUC.MyStore(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

func (h *OwnerHandler) GetStoreRatings(c echo.Context) error {
	ratings, err := h.ownerUC.StoreRatings(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ratings)
}
