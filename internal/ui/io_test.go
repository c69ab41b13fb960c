package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIO_UpdateDeltaTime(t *testing.T) {
	t.Parallel()

	var io IO
	io.UpdateDeltaTime(10 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, io.DeltaTime)
	assert.InDelta(t, 100, io.Framerate, 0.01)

	io.UpdateDeltaTime(20 * time.Millisecond)
	assert.InDelta(t, 97.5, io.Framerate, 0.01, "framerate is smoothed")

	io.UpdateDeltaTime(0)
	assert.InDelta(t, 97.5, io.Framerate, 0.01, "zero delta keeps the previous rate")
}

func TestIO_EdgeDetection(t *testing.T) {
	t.Parallel()

	var io IO
	io.SetMouseButton(MouseLeft, true)
	io.SetKey(KeyPause, true)

	assert.True(t, io.MouseClicked(MouseLeft))
	assert.True(t, io.KeyPressed(KeyPause))

	io.endFrame()
	assert.False(t, io.MouseClicked(MouseLeft), "held button is not a new click")
	assert.False(t, io.KeyPressed(KeyPause))

	io.SetMouseButton(MouseLeft, false)
	assert.True(t, io.MouseReleased(MouseLeft))
}

func TestIO_IgnoresOutOfRange(t *testing.T) {
	t.Parallel()

	var io IO
	assert.NotPanics(t, func() {
		io.SetMouseButton(7, true)
		io.SetMouseButton(-1, true)
		io.SetKey(KeyNone, true)
		io.SetKey(keyCount, true)
	})
	assert.False(t, io.MouseClicked(7))
	assert.False(t, io.KeyPressed(keyCount))
}

func TestIO_EndFrameDropsOneShotInput(t *testing.T) {
	t.Parallel()

	var io IO
	io.AddInputChar('a')
	io.MouseWheel = 2
	io.endFrame()

	assert.Empty(t, io.InputChars)
	assert.Zero(t, io.MouseWheel)
}

func TestIO_MouseValidity(t *testing.T) {
	t.Parallel()

	var io IO
	io.SetMousePos(4, 5)
	assert.True(t, io.MouseValid)
	assert.Equal(t, float32(4), io.MousePos.X)

	io.InvalidateMouse()
	assert.False(t, io.MouseValid)
}
