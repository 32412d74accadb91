package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)
	require.NotEqual(t, "password", hash)

	require.True(t, CheckPassword(hash, "password"))
	require.False(t, CheckPassword(hash, "wrong"))
	require.False(t, CheckPassword("not-a-hash", "password"))
}
