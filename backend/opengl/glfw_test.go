package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/learngl"
)

func TestGLFWKey(t *testing.T) {
	tests := []struct {
		key  learngl.Key
		want glfw.Key
	}{
		{learngl.KeyQ, glfw.KeyQ},
		{learngl.KeyA, glfw.KeyA},
		{learngl.KeyZ, glfw.KeyZ},
		{learngl.KeyEscape, glfw.KeyEscape},
		{learngl.KeySpace, glfw.KeySpace},
		{learngl.KeyEnter, glfw.KeyEnter},
	}
	for _, tt := range tests {
		got, ok := glfwKey(tt.key)
		assert.True(t, ok, tt.key.String())
		assert.Equal(t, tt.want, got, tt.key.String())
	}

	_, ok := glfwKey(learngl.KeyUnknown)
	assert.False(t, ok)
}

func TestWindowConfigFrom(t *testing.T) {
	cfg := learngl.DefaultConfig()
	cfg.Width, cfg.Height = 1024, 768

	w := WindowConfigFrom(cfg)
	assert.Equal(t, 1024, w.Width)
	assert.Equal(t, 768, w.Height)
	assert.Equal(t, "LearnOpenGL", w.Title)
	assert.Equal(t, 3, w.GLMajor)
	assert.Equal(t, 3, w.GLMinor)
	assert.False(t, w.Hidden)
}

func TestInitError(t *testing.T) {
	err := &InitError{Stage: "window", Err: assert.AnError}
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "init window")
}
