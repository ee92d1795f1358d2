package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storerating/config"
	"storerating/internal/delivery/api/middleware"
	"storerating/internal/delivery/api/response"
	"storerating/internal/delivery/api/router"
	"storerating/internal/delivery/api/router/handler"
	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	mockUsecase "storerating/internal/mocks/usecase"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixtures struct {
	server   *apiServer
	userUC   *mockUsecase.MockUserUsecase
	storeUC  *mockUsecase.MockStoreUsecase
	ratingUC *mockUsecase.MockRatingUsecase
	adminUC  *mockUsecase.MockAdminUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AccessLog = true

	userUC := mockUsecase.NewMockUserUsecase(t)
	storeUC := mockUsecase.NewMockStoreUsecase(t)
	ratingUC := mockUsecase.NewMockRatingUsecase(t)
	adminUC := mockUsecase.NewMockAdminUsecase(t)

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: userUC, Logger: logger}),
			ProfileHandler: handler.NewProfileHandler(mockUsecase.NewMockProfileUsecase(t)),
			StoreHandler:   handler.NewStoreHandler(handler.StoreHandlerParams{StoreUC: storeUC, RatingUC: ratingUC, Logger: logger}),
			RatingHandler:  handler.NewRatingHandler(ratingUC),
			OwnerHandler:   handler.NewOwnerHandler(mockUsecase.NewMockOwnerUsecase(t)),
			AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: adminUC, Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{UserUC: userUC}),
		},
	})
	require.NoError(t, err)

	return serverFixtures{
		server:   srv.(*apiServer),
		userUC:   userUC,
		storeUC:  storeUC,
		ratingUC: ratingUC,
		adminUC:  adminUC,
	}
}

func (f serverFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.server.server.ServeHTTP(rec, req)

	return rec
}

func (f serverFixtures) loginAs(role entity.Role) (string, *policy.Actor) {
	actor := &policy.Actor{ID: uuid.New(), Email: string(role) + "@example.com", Role: role}
	f.userUC.EXPECT().ResolveActor(mock.Anything, string(role)+"-token").Return(actor, nil).Maybe()

	return string(role) + "-token", actor
}

func TestServer_Health(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	f := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-123")
	rec := httptest.NewRecorder()
	f.server.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHENTICATED", body.Error.Code)
	assert.Equal(t, "trace-123", body.Meta.RequestID)
}

func TestServer_AdminRoutesRequireAdmin(t *testing.T) {
	f := createTestServer(t)
	token, actor := f.loginAs(entity.RoleOwner)

	f.adminUC.EXPECT().Dashboard(mock.Anything, actor).Return(nil, domainerrors.ErrForbidden)

	rec := f.do(http.MethodGet, "/api/v1/admin/dashboard", token, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
}

func TestServer_AdminDashboard(t *testing.T) {
	f := createTestServer(t)
	token, actor := f.loginAs(entity.RoleAdmin)

	f.adminUC.EXPECT().Dashboard(mock.Anything, actor).
		Return(&usecase.AdminDashboard{TotalUsers: 3, TotalStores: 1, TotalRatings: 2}, nil)

	rec := f.do(http.MethodGet, "/api/v1/admin/dashboard", token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_users":3`)
}

func TestServer_PublicStoreListWithOptionalToken(t *testing.T) {
	f := createTestServer(t)
	token, actor := f.loginAs(entity.RoleUser)

	f.storeUC.EXPECT().ListStores(mock.Anything, (*policy.Actor)(nil), mock.Anything).
		Return(usecase.NewPage[*usecase.StoreListItem](nil, 0, entity.PageRequest{Page: 1, Limit: 20}), nil).Once()
	f.storeUC.EXPECT().ListStores(mock.Anything, actor, mock.Anything).
		Return(usecase.NewPage[*usecase.StoreListItem](nil, 0, entity.PageRequest{Page: 1, Limit: 20}), nil).Once()

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/stores", "", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/stores", token, "").Code)
}

func TestServer_CreateRating(t *testing.T) {
	f := createTestServer(t)
	token, actor := f.loginAs(entity.RoleUser)
	storeID := uuid.New()

	f.ratingUC.EXPECT().
		CreateRating(mock.Anything, actor, usecase.CreateRatingInput{StoreID: storeID, Value: 5}).
		Return(&usecase.RatingView{ID: uuid.New(), StoreID: storeID, UserID: actor.ID, Value: 5}, nil)

	rec := f.do(http.MethodPost, "/api/v1/ratings", token, `{"store_id":"`+storeID.String()+`","value":5}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	f := createTestServer(t)
	token, _ := f.loginAs(entity.RoleUser)

	comment := strings.Repeat("a", 2048)
	rec := f.do(http.MethodPost, "/api/v1/ratings", token, `{"store_id":"`+uuid.NewString()+`","value":5,"comment":"`+comment+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/nowhere", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
