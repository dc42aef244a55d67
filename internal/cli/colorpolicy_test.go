package cli

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestApplyOutputPolicy(t *testing.T) {
	preserveColorState(t)

	// Absent flag leaves the platform default untouched.
	color.NoColor = false
	applyOutputPolicy(false)
	assert.False(t, color.NoColor)

	applyOutputPolicy(true)
	assert.True(t, color.NoColor)

	// Idempotent: re-applying either reading never re-enables color.
	applyOutputPolicy(true)
	assert.True(t, color.NoColor)
	applyOutputPolicy(false)
	assert.True(t, color.NoColor)
}

func TestDisableColorIsWriteOnce(t *testing.T) {
	preserveColorState(t)

	color.NoColor = false
	DisableColor()
	DisableColor()
	assert.True(t, color.NoColor)
}
