package auth

import (
	"testing"
	"time"

	"storerating/config"
	"storerating/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTokenConfig("test_access_secret_key_very_long_for_testing", ttl))
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleOwner}

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, entity.RoleOwner, claims.Role)
	assert.Equal(t, time.Hour, svc.AccessTokenTTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTokenConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTokenConfig("secret", 0))
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.AccessTokenTTL())
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken(&entity.User{ID: uuid.New(), Role: entity.RoleUser})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	other, err := NewJWTService(newTokenConfig("another_secret", time.Hour))
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(&entity.User{ID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    tokenIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}
