package passwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	hashed, err := Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hashed)
	assert.True(t, Matches(hashed, "correct horse"))
	assert.False(t, Matches(hashed, "battery staple"))

	_, err = Hash("short")
	assert.ErrorIs(t, err, ErrTooShort)
}
