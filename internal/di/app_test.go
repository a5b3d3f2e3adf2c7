package di

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket/internal/common"
	"gomarket/internal/config"
)

func TestProvideTokenValidator(t *testing.T) {
	t.Run("empty_secret_refused", func(t *testing.T) {
		v, err := provideTokenValidator(&config.Config{})
		assert.ErrorIs(t, err, common.ErrEmptySecret)
		assert.Nil(t, v)
	})

	t.Run("configured_secret", func(t *testing.T) {
		v, err := provideTokenValidator(&config.Config{Auth: config.AuthConfig{JWTSecret: "s3cret"}})
		require.NoError(t, err)

		token, err := v.GenerateToken("buyer-1", "", time.Hour)
		require.NoError(t, err)
		claims, err := v.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "buyer-1", claims.ViewerID)
	})
}
