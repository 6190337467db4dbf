package toggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	var tg Toggle
	assert.False(t, tg.Enabled())

	tg.Enable()
	assert.True(t, tg.Enabled())
	assert.Equal(t, "on", tg.String())

	tg.Flip()
	assert.False(t, tg.Enabled())

	tg.Flip()
	tg.Disable()
	assert.False(t, tg.Enabled())

	tg.Set(true)
	assert.True(t, New(true) == tg)
}
