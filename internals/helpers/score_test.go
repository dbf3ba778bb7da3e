package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidScore0to50(t *testing.T) {
	assert.True(t, ValidScore0to50(0))
	assert.True(t, ValidScore0to50(42.5))
	assert.True(t, ValidScore0to50(50))
	assert.False(t, ValidScore0to50(-0.01))
	assert.False(t, ValidScore0to50(50.01))
}
