package services

import (
	"testing"
	"time"

	"github.com/gestaopublica/painel-projetos/internal/config"
	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenClaims(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 15 * time.Minute,
	}
	svc := NewAuthService(nil, cfg)

	avatar := "https://cdn.example.org/avatar.png"
	user := &models.User{
		ID:     uuid.New(),
		Name:   "Ana Souza",
		Email:  "ana@example.org",
		Avatar: &avatar,
	}

	signed, err := svc.generateAccessToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, user.Name, claims["name"])
	assert.Equal(t, avatar, claims["avatar"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(cfg.JWTAccessExpiry), exp.Time, time.Minute)
}

func TestAccessTokenOmitsMissingAvatar(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTAccessExpiry: time.Hour}
	svc := NewAuthService(nil, cfg)

	signed, err := svc.generateAccessToken(&models.User{ID: uuid.New(), Email: "x@example.org"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	_, present := claims["avatar"]
	assert.False(t, present)
}

func TestHashTokenIsStableHex(t *testing.T) {
	a := hashToken("abc")
	b := hashToken("abc")
	c := hashToken("abd")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
