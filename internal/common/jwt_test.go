package common

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestTokenValidator_RoundTrip(t *testing.T) {
	v := NewTokenValidator("secret")

	token, err := v.GenerateToken("buyer-1", "Ada", time.Hour)
	require.NoError(t, err)

	claims, err := v.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "buyer-1", claims.ViewerID)
	assert.Equal(t, "Ada", claims.DisplayName)
}

func TestTokenValidator_Rejects(t *testing.T) {
	v := NewTokenValidator("secret")

	expired, err := v.GenerateToken("buyer-1", "", -time.Minute)
	require.NoError(t, err)
	_, err = v.Validate(expired)
	assert.Error(t, err)

	other, err := NewTokenValidator("other").GenerateToken("buyer-1", "", time.Hour)
	require.NoError(t, err)
	_, err = v.Validate(other)
	assert.Error(t, err)

	_, err = v.Validate("garbage")
	assert.Error(t, err)
}

func TestTokenValidator_EmptySecret(t *testing.T) {
	v := NewTokenValidator("")

	_, err := v.GenerateToken("victim", "", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		ViewerID:         "victim",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(""))
	require.NoError(t, err)

	claims, err := v.Validate(forged)
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Nil(t, claims)
}

func TestAuthInterceptor(t *testing.T) {
	v := NewTokenValidator("secret")
	token, err := v.GenerateToken("seller-9", "", time.Hour)
	require.NoError(t, err)

	interceptor := AuthInterceptor(v)
	info := &grpc.UnaryServerInfo{FullMethod: "/gomarket.chat.v1.ChatService/SendMessage"}

	var seen string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen, _ = ViewerFromContext(ctx)
		return "ok", nil
	}

	t.Run("valid token", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
		resp, err := interceptor(ctx, nil, info, handler)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
		assert.Equal(t, "seller-9", seen)
	})

	t.Run("missing header", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs())
		_, err := interceptor(ctx, nil, info, handler)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("malformed header", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", token))
		_, err := interceptor(ctx, nil, info, handler)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}
