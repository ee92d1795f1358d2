package handler

import (
	"log/slog"
	"net/http"

	"storerating/internal/delivery/api/middleware"
	"storerating/internal/delivery/api/response"
	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC  usecase.StoreUsecase
	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// StoreHandler serves public store browsing and store management.
type StoreHandler struct {
	storeUC  usecase.StoreUsecase
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler.
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC:  params.StoreUC,
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// StoreListQuery defines the query parameters of a store listing.
type StoreListQuery struct {
	Search  string `query:"search" validate:"omitempty,max=100"`
	Name    string `query:"name" validate:"omitempty,max=60"`
	Email   string `query:"email" validate:"omitempty,max=255"`
	Address string `query:"address" validate:"omitempty,max=400"`
	PageQuery
}

func (q StoreListQuery) filter() entity.StoreFilter {
	return entity.StoreFilter{
		Search:      q.Search,
		Name:        q.Name,
		Email:       q.Email,
		Address:     q.Address,
		SortBy:      q.SortBy,
		Order:       q.sortOrder(),
		PageRequest: q.pageRequest(),
	}
}

// UpdateStoreRequest defines the editable store fields. Omitted fields stay unchanged.
type UpdateStoreRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=60"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=400"`
}

// ListStores returns a page of stores with rating summaries.
func (h *StoreHandler) ListStores(c echo.Context) error {
	var query StoreListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationFailed(c, err)
	}

	page, err := h.storeUC.ListStores(c.Request().Context(), middleware.GetActor(c), query.filter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetStore returns one store with its rating summary.
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	store, err := h.storeUC.GetStore(c.Request().Context(), middleware.GetActor(c), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// GetStoreQRCode returns a PNG QR code linking to the store page.
func (h *StoreHandler) GetStoreQRCode(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	png, err := h.storeUC.StoreQRCode(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Store QR code generated",
		slog.String("store_id", storeID.String()),
		slog.Int("bytes", len(png)),
	)

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetMyRating returns the caller's rating for the store, or null when there is none.
func (h *StoreHandler) GetMyRating(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	rating, err := h.ratingUC.MyRatingForStore(c.Request().Context(), middleware.GetActor(c), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rating)
}

// ManageStore returns the full store view for its owner or an admin.
func (h *StoreHandler) ManageStore(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	managed, err := h.storeUC.ManageStore(c.Request().Context(), middleware.GetActor(c), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, managed)
}

// UpdateStore edits a store's details.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var req UpdateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	store, err := h.storeUC.UpdateStore(c.Request().Context(), middleware.GetActor(c), storeID, usecase.UpdateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}
