package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

// InitError reports a failure to bring up the window, the context or the
// GL function loader.
type InitError struct {
	Stage string // "glfw", "window" or "gl"
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// WindowConfig describes the window and context to create.
type WindowConfig struct {
	Width, Height    int
	Title            string
	GLMajor, GLMinor int
	VSync            bool
	Hidden           bool // Create an invisible window (offscreen rendering)
}

// WindowConfigFrom extracts the window settings from a learngl.Config.
func WindowConfigFrom(cfg learngl.Config) WindowConfig {
	return WindowConfig{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Title:   cfg.Title,
		GLMajor: cfg.GLMajor,
		GLMinor: cfg.GLMinor,
		VSync:   cfg.VSync,
	}
}

// Window adapts a GLFW window to learngl.Window.
type Window struct {
	window *glfw.Window
}

var _ learngl.Window = (*Window)(nil)

// OpenWindow initializes GLFW, creates a window with a core-profile context,
// makes it current and loads the GL functions. Call it from the main thread
// (see runtime.LockOSThread) and Close the window when done.
func OpenWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &InitError{Stage: "glfw", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &InitError{Stage: "window", Err: err}
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, &InitError{Stage: "gl", Err: err}
	}

	return &Window{window: window}, nil
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}

// FramebufferSize returns the framebuffer size in pixels, which differs from
// the window size on high-DPI displays.
func (w *Window) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

// GLVersion returns the GL_VERSION string of the current context.
func (w *Window) GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) KeyPressed(k learngl.Key) bool {
	key, ok := glfwKey(k)
	if !ok {
		return false
	}
	return w.window.GetKey(key) == glfw.Press
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) SetResizeCallback(fn func(width, height int)) {
	if fn == nil {
		w.window.SetFramebufferSizeCallback(nil)
		return
	}
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// glfwKey maps learngl keys to GLFW keys.
func glfwKey(k learngl.Key) (glfw.Key, bool) {
	switch {
	case k == learngl.KeySpace:
		return glfw.KeySpace, true
	case k == learngl.KeyEnter:
		return glfw.KeyEnter, true
	case k == learngl.KeyEscape:
		return glfw.KeyEscape, true
	case k >= learngl.KeyA && k <= learngl.KeyZ:
		// GLFW letter keys are contiguous ASCII codes.
		return glfw.KeyA + glfw.Key(k-learngl.KeyA), true
	default:
		return glfw.KeyUnknown, false
	}
}
