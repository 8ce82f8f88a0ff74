//go:build unit

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.NoError(t, ComparePassword(hashed, "correct horse battery staple"))
	assert.ErrorIs(t, ComparePassword(hashed, "wrong password"), ErrMismatch)
}

func TestEmptyInputsRejected(t *testing.T) {
	_, err := Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	hashed, err := Hash("password123")
	require.NoError(t, err)
	assert.ErrorIs(t, ComparePassword(hashed, ""), ErrEmptyPassword)
	assert.ErrorIs(t, ComparePassword("", "password123"), ErrEmptyPassword)
}
