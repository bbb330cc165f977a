package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestSessionJWTRoundTrip(t *testing.T) {
	const secret = "unit-test-secret"

	t.Run("parses its own token", func(t *testing.T) {
		token, err := GenerateSessionJWT("sess-42", secret, 1)
		require.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "sess-42", sessionID)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("sess-42", "another-secret", 1)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseSessionJWT("definitely.not.ajwt", secret)
		assert.Error(t, err)
	})
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.Contains(t, first, "MDBK_SVC_")
	assert.NotEqual(t, first, second)
}
