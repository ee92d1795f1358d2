package handler

import (
	"net/http"

	"storerating/internal/delivery/api/middleware"
	"storerating/internal/delivery/api/response"
	"storerating/internal/domain/entity"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RatingHandler serves the rating lifecycle of the calling user.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
}

// NewRatingHandler is the constructor for RatingHandler.
func NewRatingHandler(ratingUC usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{ratingUC: ratingUC}
}

// CreateRatingRequest defines the request body for rating a store.
type CreateRatingRequest struct {
	StoreID string  `json:"store_id" validate:"required,uuid"`
	Value   int     `json:"value" validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=500"`
}

// UpdateRatingRequest defines a partial rating update.
type UpdateRatingRequest struct {
	Value   *int    `json:"value" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=500"`
}

// CreateRating rates a store on behalf of the caller.
func (h *RatingHandler) CreateRating(c echo.Context) error {
	var req CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	rating, err := h.ratingUC.CreateRating(c.Request().Context(), middleware.GetActor(c), usecase.CreateRatingInput{
		StoreID: storeID,
		Value:   req.Value,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, rating)
}

// ListMyRatings returns every rating the caller has written.
func (h *RatingHandler) ListMyRatings(c echo.Context) error {
	ratings, err := h.ratingUC.ListMyRatings(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ratings)
}

// UpdateRating changes the value or comment of one of the caller's ratings.
func (h *RatingHandler) UpdateRating(c echo.Context) error {
	ratingID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid rating ID")
	}

	var req UpdateRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	rating, err := h.ratingUC.UpdateRating(c.Request().Context(), middleware.GetActor(c), ratingID, entity.RatingPatch{
		Value:   req.Value,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rating)
}

// DeleteRating removes one of the caller's ratings.
func (h *RatingHandler) DeleteRating(c echo.Context) error {
	ratingID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid rating ID")
	}

	if err := h.ratingUC.DeleteRating(c.Request().Context(), middleware.GetActor(c), ratingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Rating deleted successfully"})
}
