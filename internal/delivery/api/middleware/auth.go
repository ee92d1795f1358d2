package middleware

import (
	"log/slog"
	"strings"

	"storerating/internal/delivery/api/response"
	deliverycontext "storerating/internal/delivery/context"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	actorKey     = "actor"
	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// AuthMiddleware resolves bearer tokens into the calling Actor.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{userUC: params.UserUC}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		actor, err := m.userUC.ResolveActor(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		SetActor(c, actor)
		deliverycontext.EnrichLogger(c,
			slog.String("user_id", actor.ID.String()),
			slog.String("role", actor.Role.String()),
		)

		return next(c)
	}
}

// OptionalAuth resolves the actor when a token is sent and lets anonymous
// requests through. A token that fails validation is still rejected.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}

		return m.Authenticate(next)(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// SetActor stores the authenticated actor on the request.
func SetActor(c echo.Context, actor *policy.Actor) {
	c.Set(actorKey, actor)
}

// GetActor returns the authenticated actor, or nil for anonymous requests.
func GetActor(c echo.Context) *policy.Actor {
	actor, _ := c.Get(actorKey).(*policy.Actor)

	return actor
}
