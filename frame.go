package learngl

import (
	"errors"
	"log/slog"
)

// Window is the windowing and input collaborator of the frame loop.
type Window interface {
	ShouldClose() bool
	SetShouldClose(v bool)
	// PollEvents processes pending events without blocking.
	PollEvents()
	// KeyPressed reports whether k is currently held down.
	KeyPressed(k Key) bool
	SwapBuffers()
	// SetResizeCallback registers fn to run with the new framebuffer size.
	SetResizeCallback(fn func(width, height int))
}

// LoopState is the state of a FrameLoop.
type LoopState int

const (
	Running LoopState = iota
	Closing           // Terminal
)

// String returns "running" or "closing".
func (s LoopState) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// FrameLoop draws a pipeline into a window until it is asked to close.
type FrameLoop struct {
	win      Window
	dev      Device
	pipeline *Pipeline
	log      *slog.Logger

	quitKey   Key
	maxFrames uint64
	onFrame   func(frame uint64)

	state  LoopState
	frames uint64
}

// NewFrameLoop creates a frame loop and registers the resize callback that
// keeps the viewport at the framebuffer size. pipeline may be nil, in which
// case frames are only cleared to the default background.
func NewFrameLoop(win Window, dev Device, pipeline *Pipeline, opts ...Option) *FrameLoop {
	s := applyOptions(opts)
	l := &FrameLoop{
		win:       win,
		dev:       dev,
		pipeline:  pipeline,
		log:       s.logger,
		quitKey:   s.quitKey,
		maxFrames: s.maxFrames,
		onFrame:   s.onFrame,
	}
	if l.pipeline == nil {
		l.pipeline = &Pipeline{Clear: ColorBackground}
	}

	win.SetResizeCallback(func(width, height int) {
		dev.Viewport(0, 0, width, height)
	})
	dev.SetWireframe(l.pipeline.Wireframe)
	return l
}

// State returns the current loop state.
func (l *FrameLoop) State() LoopState {
	return l.state
}

// Frames returns the number of frames presented so far.
func (l *FrameLoop) Frames() uint64 {
	return l.frames
}

// Run steps frames until the window close flag is set or the frame limit is
// reached. The loop is in the Closing state when Run returns.
func (l *FrameLoop) Run() error {
	for !l.win.ShouldClose() {
		if l.maxFrames > 0 && l.frames >= l.maxFrames {
			break
		}
		if err := l.Step(); err != nil {
			l.state = Closing
			return err
		}
	}
	l.state = Closing
	l.log.Debug("frame loop finished", "frames", l.frames)
	return nil
}

// Step runs one iteration: process events and input, clear, draw every
// pipeline item, present.
func (l *FrameLoop) Step() error {
	l.win.PollEvents()
	l.processInput()

	l.dev.Clear(l.pipeline.Clear)

	var errs []error
	for _, it := range l.pipeline.Items {
		if err := it.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		l.dev.Draw(it.Call())
	}

	l.win.SwapBuffers()
	l.frames++
	if l.onFrame != nil {
		l.onFrame(l.frames)
	}
	return errors.Join(errs...)
}

// processInput moves the loop to Closing the first time the quit key is seen.
func (l *FrameLoop) processInput() {
	if l.state != Running || l.quitKey == KeyUnknown {
		return
	}
	if l.win.KeyPressed(l.quitKey) {
		l.log.Info(l.quitKey.String() + " pressed. Closing...")
		l.win.SetShouldClose(true)
		l.state = Closing
	}
}
