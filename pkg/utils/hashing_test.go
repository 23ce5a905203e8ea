package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hashed)

	require.NoError(t, ComparePasswords(hashed, "correct horse battery staple"))
	require.Error(t, ComparePasswords(hashed, "wrong password"))
}
