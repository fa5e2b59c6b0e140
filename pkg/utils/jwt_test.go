package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := CreateJWTToken("01J0USER", "Super Admin", "admin@velvetvogue.com", "SUPER_ADMIN", "secret", "kid-1")
	require.NoError(t, err)

	claims, err := ParseJWTToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "01J0USER", claims.UserID)
	assert.Equal(t, "SUPER_ADMIN", claims.Role)
	assert.Equal(t, "admin@velvetvogue.com", claims.Email)

	_, err = ParseJWTToken(token, "other-secret")
	assert.Error(t, err)

	_, err = ParseJWTToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
