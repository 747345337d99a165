package learngl

import "log/slog"

// Option configures a Builder or a FrameLoop.
// Options that do not apply to the receiving type are ignored.
type Option func(*settings)

type settings struct {
	logger    *slog.Logger
	glMajor   int
	glMinor   int
	quitKey   Key
	maxFrames uint64
	onFrame   func(frame uint64)
}

func defaultSettings() settings {
	return settings{
		logger:  slog.Default(),
		glMajor: 3,
		glMinor: 3,
		quitKey: KeyQ,
	}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// WithLogger sets the logger used for [INFO] and [ERROR] lines.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithGLVersion sets the context version WGSL shaders are translated for.
func WithGLVersion(major, minor int) Option {
	return func(s *settings) {
		s.glMajor = major
		s.glMinor = minor
	}
}

// WithQuitKey sets the key that closes the window. KeyUnknown disables it.
func WithQuitKey(k Key) Option {
	return func(s *settings) { s.quitKey = k }
}

// WithMaxFrames stops Run after n frames. Zero means no limit.
func WithMaxFrames(n uint64) Option {
	return func(s *settings) { s.maxFrames = n }
}

// WithFrameHook registers fn to run after every presented frame.
func WithFrameHook(fn func(frame uint64)) Option {
	return func(s *settings) { s.onFrame = fn }
}
