package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	mockUsecase "storerating/internal/mocks/usecase"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)

	return NewAuthHandler(AuthHandlerParams{
		UserUC: userUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), userUC
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		h, userUC := createTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/auth/register",
			`{"name":"Ada Augusta King Lovelace","email":"ada@example.com","password":"Engine#1843","address":"London"}`)

		userUC.EXPECT().
			RegisterUser(mock.Anything, usecase.RegisterUserInput{
				Name:     "Ada Augusta King Lovelace",
				Email:    "ada@example.com",
				Password: "Engine#1843",
				Address:  "London",
			}).
			Return(&policy.UserView{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser}, nil)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, decodeEnvelope(t, rec).Meta.RequestID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, userUC := createTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/auth/register",
			`{"name":"Ada Augusta King Lovelace","email":"ada@example.com","password":"Engine#1843"}`)

		userUC.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("password without special character", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/auth/register",
			`{"name":"Ada Augusta King Lovelace","email":"ada@example.com","password":"Engine1843"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "password")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("token issued", func(t *testing.T) {
		h, userUC := createTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"Engine#1843"}`)

		userUC.EXPECT().
			Login(mock.Anything, usecase.LoginInput{Email: "ada@example.com", Password: "Engine#1843"}).
			Return(&usecase.LoginOutput{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600}, nil)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out usecase.LoginOutput
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, "token", out.AccessToken)
	})

	t.Run("bad credentials", func(t *testing.T) {
		h, userUC := createTestAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

		userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
