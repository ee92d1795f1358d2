package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	mockUsecase "storerating/internal/mocks/usecase"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRatingHandler_CreateRating(t *testing.T) {
	storeID := uuid.New()

	t.Run("created", func(t *testing.T) {
		ratingUC := mockUsecase.NewMockRatingUsecase(t)
		h := NewRatingHandler(ratingUC)

		c, rec := newTestContext(http.MethodPost, "/api/v1/ratings", `{"store_id":"`+storeID.String()+`","value":4,"comment":"Friendly staff"}`)
		actor := withActor(c, entity.RoleUser)

		ratingUC.EXPECT().
			CreateRating(mock.Anything, actor, mock.MatchedBy(func(input usecase.CreateRatingInput) bool {
				return input.StoreID == storeID && input.Value == 4 && *input.Comment == "Friendly staff"
			})).
			Return(&usecase.RatingView{ID: uuid.New(), StoreID: storeID, UserID: actor.ID, Value: 4}, nil)

		require.NoError(t, h.CreateRating(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var view usecase.RatingView
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
		assert.Equal(t, 4, view.Value)
	})

	t.Run("value out of range", func(t *testing.T) {
		h := NewRatingHandler(mockUsecase.NewMockRatingUsecase(t))

		c, rec := newTestContext(http.MethodPost, "/api/v1/ratings", `{"store_id":"`+storeID.String()+`","value":6}`)
		withActor(c, entity.RoleUser)

		require.NoError(t, h.CreateRating(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "value")
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewRatingHandler(mockUsecase.NewMockRatingUsecase(t))

		c, rec := newTestContext(http.MethodPost, "/api/v1/ratings", `{"value":`)
		withActor(c, entity.RoleUser)

		require.NoError(t, h.CreateRating(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("already rated", func(t *testing.T) {
		ratingUC := mockUsecase.NewMockRatingUsecase(t)
		h := NewRatingHandler(ratingUC)

		c, rec := newTestContext(http.MethodPost, "/api/v1/ratings", `{"store_id":"`+storeID.String()+`","value":2}`)
		withActor(c, entity.RoleUser)

		ratingUC.EXPECT().CreateRating(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrRatingAlreadyExists)

		require.NoError(t, h.CreateRating(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "RATING_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestRatingHandler_UpdateRating(t *testing.T) {
	ratingID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		ratingUC := mockUsecase.NewMockRatingUsecase(t)
		h := NewRatingHandler(ratingUC)

		c, rec := newTestContext(http.MethodPatch, "/api/v1/ratings/"+ratingID.String(), `{"value":5}`)
		withIDParam(c, ratingID.String())
		withActor(c, entity.RoleUser)

		ratingUC.EXPECT().
			UpdateRating(mock.Anything, mock.Anything, ratingID, mock.MatchedBy(func(patch entity.RatingPatch) bool {
				return patch.Value != nil && *patch.Value == 5 && patch.Comment == nil
			})).
			Return(&usecase.RatingView{ID: ratingID, Value: 5}, nil)

		require.NoError(t, h.UpdateRating(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("someone else's rating", func(t *testing.T) {
		ratingUC := mockUsecase.NewMockRatingUsecase(t)
		h := NewRatingHandler(ratingUC)

		c, rec := newTestContext(http.MethodPatch, "/api/v1/ratings/"+ratingID.String(), `{"comment":"changed"}`)
		withIDParam(c, ratingID.String())
		withActor(c, entity.RoleUser)

		ratingUC.EXPECT().UpdateRating(mock.Anything, mock.Anything, ratingID, mock.Anything).
			Return(nil, domainerrors.ErrRatingOwnershipViolation)

		require.NoError(t, h.UpdateRating(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("invalid id", func(t *testing.T) {
		h := NewRatingHandler(mockUsecase.NewMockRatingUsecase(t))

		c, rec := newTestContext(http.MethodPatch, "/api/v1/ratings/abc", `{"value":3}`)
		withIDParam(c, "abc")

		require.NoError(t, h.UpdateRating(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestRatingHandler_DeleteRating(t *testing.T) {
	ratingUC := mockUsecase.NewMockRatingUsecase(t)
	h := NewRatingHandler(ratingUC)
	ratingID := uuid.New()

	c, rec := newTestContext(http.MethodDelete, "/api/v1/ratings/"+ratingID.String(), "")
	withIDParam(c, ratingID.String())
	actor := withActor(c, entity.RoleUser)

	ratingUC.EXPECT().DeleteRating(mock.Anything, actor, ratingID).Return(nil)

	require.NoError(t, h.DeleteRating(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRatingHandler_ListMyRatings(t *testing.T) {
	ratingUC := mockUsecase.NewMockRatingUsecase(t)
	h := NewRatingHandler(ratingUC)

	c, rec := newTestContext(http.MethodGet, "/api/v1/ratings", "")
	withActor(c, entity.RoleUser)

	ratingUC.EXPECT().ListMyRatings(mock.Anything, mock.AnythingOfType("*policy.Actor")).
		Return([]*usecase.RatingWithStore{{StoreName: "Corner Bakery"}}, nil)

	require.NoError(t, h.ListMyRatings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var ratings []*usecase.RatingWithStore
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &ratings))
	require.Len(t, ratings, 1)
	assert.Equal(t, "Corner Bakery", ratings[0].StoreName)
}

func TestRatingHandler_UnexpectedErrorIsPropagated(t *testing.T) {
	ratingUC := mockUsecase.NewMockRatingUsecase(t)
	h := NewRatingHandler(ratingUC)

	c, _ := newTestContext(http.MethodGet, "/api/v1/ratings", "")
	withActor(c, entity.RoleUser)

	ratingUC.EXPECT().ListMyRatings(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	assert.ErrorIs(t, h.ListMyRatings(c), assert.AnError)
}
