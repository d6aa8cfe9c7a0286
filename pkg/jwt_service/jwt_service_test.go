package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	jwtservice "github.com/limbo/goalkeeper/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	serv := jwtservice.New("secret")
	uid := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		token, err := serv.SignToken(uid, time.Hour)
		require.NoError(t, err)
		claims, err := serv.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, uid.String(), claims.UserID)
	})
	t.Run("expired token", func(t *testing.T) {
		token, err := serv.SignToken(uid, -time.Minute)
		require.NoError(t, err)
		_, err = serv.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("foreign secret", func(t *testing.T) {
		token, err := jwtservice.New("other").SignToken(uid, time.Hour)
		require.NoError(t, err)
		_, err = serv.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("missing expiration", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": uid.String()}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = serv.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("wrong signing method", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"user_id": uid.String(),
			"exp":     time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = serv.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := serv.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
