package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	mockUsecase "storerating/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

// captureActor records the actor seen by the next handler.
func captureActor(seen **policy.Actor) echo.HandlerFunc {
	return func(c echo.Context) error {
		*seen = GetActor(c)

		return c.NoContent(http.StatusNoContent)
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	actor := &policy.Actor{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleOwner}

	t.Run("valid token", func(t *testing.T) {
		userUC := mockUsecase.NewMockUserUsecase(t)
		m := NewAuthMiddleware(AuthMiddlewareParams{UserUC: userUC})
		c, rec := newAuthContext("Bearer good-token")

		userUC.EXPECT().ResolveActor(mock.Anything, "good-token").Return(actor, nil)

		var seen *policy.Actor
		require.NoError(t, m.Authenticate(captureActor(&seen))(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, actor, seen)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic dXNlcjpwYXNz"},
		{"empty bearer token", "Bearer  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(AuthMiddlewareParams{UserUC: mockUsecase.NewMockUserUsecase(t)})
			c, rec := newAuthContext(tt.header)

			var seen *policy.Actor
			require.NoError(t, m.Authenticate(captureActor(&seen))(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, seen)
		})
	}

	t.Run("rejected token", func(t *testing.T) {
		userUC := mockUsecase.NewMockUserUsecase(t)
		m := NewAuthMiddleware(AuthMiddlewareParams{UserUC: userUC})
		c, rec := newAuthContext("Bearer expired")

		userUC.EXPECT().ResolveActor(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken)

		var seen *policy.Actor
		require.NoError(t, m.Authenticate(captureActor(&seen))(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{UserUC: mockUsecase.NewMockUserUsecase(t)})
		c, rec := newAuthContext("")

		var seen *policy.Actor
		require.NoError(t, m.OptionalAuth(captureActor(&seen))(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		userUC := mockUsecase.NewMockUserUsecase(t)
		m := NewAuthMiddleware(AuthMiddlewareParams{UserUC: userUC})
		c, rec := newAuthContext("Bearer forged")

		userUC.EXPECT().ResolveActor(mock.Anything, "forged").Return(nil, domainerrors.ErrInvalidToken)

		var seen *policy.Actor
		require.NoError(t, m.OptionalAuth(captureActor(&seen))(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
