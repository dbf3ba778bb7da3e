package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashLast4Roundtrip(t *testing.T) {
	hash, err := HashLast4("4321")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "4321", hash)

	assert.True(t, compareLast4(hash, "4321"))
	assert.True(t, compareLast4(hash, " 4321 "), "input form boleh berspasi")
	assert.False(t, compareLast4(hash, "1234"))
	assert.False(t, compareLast4("", "4321"))
}
