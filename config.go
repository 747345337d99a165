package learngl

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings of the demo program.
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`

	// GLMajor and GLMinor select the requested core-profile context version.
	GLMajor int `toml:"gl_major"`
	GLMinor int `toml:"gl_minor"`

	// Scene names a built-in scene; SceneFile, when set, takes precedence.
	Scene     string `toml:"scene"`
	SceneFile string `toml:"scene_file"`

	QuitKey   string `toml:"quit_key"`
	Wireframe bool   `toml:"wireframe"`
	VSync     bool   `toml:"vsync"`
	LogLevel  string `toml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   600,
		Title:    "LearnOpenGL",
		GLMajor:  3,
		GLMinor:  3,
		Scene:    "window",
		QuitKey:  "q",
		VSync:    true,
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML file on top of the defaults.
// Keys missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// RegisterFlags binds the config fields to command-line flags on fs, using
// the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "Window title")
	fs.IntVar(&c.GLMajor, "gl-major", c.GLMajor, "OpenGL context major version")
	fs.IntVar(&c.GLMinor, "gl-minor", c.GLMinor, "OpenGL context minor version")
	fs.StringVar(&c.Scene, "scene", c.Scene, "Built-in scene to draw")
	fs.StringVar(&c.SceneFile, "file", c.SceneFile, "Scene file (.yaml, .yml or .toml) to draw instead of a built-in scene")
	fs.StringVar(&c.QuitKey, "quit", c.QuitKey, "Key that closes the window (letter, escape, space, enter or none)")
	fs.BoolVar(&c.Wireframe, "wireframe", c.Wireframe, "Draw polygons as outlines")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "Wait for vertical sync when presenting")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error")
}

// Validate checks the config values.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is below the 3.3 core profile", c.GLMajor, c.GLMinor))
	}
	if _, err := ParseKey(c.QuitKey); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.SceneFile == "" {
		if _, ok := builtinScenes[c.Scene]; !ok {
			errs = append(errs, fmt.Errorf("unknown scene %q (available: %v)", c.Scene, Scenes()))
		}
	}
	return errors.Join(errs...)
}

// Quit returns the parsed quit key.
func (c Config) Quit() Key {
	k, _ := ParseKey(c.QuitKey)
	return k
}

// Level returns the parsed log level.
func (c Config) Level() slog.Level {
	l, _ := ParseLogLevel(c.LogLevel)
	return l
}

// LoadScene returns the scene selected by the config, with the wireframe
// setting applied.
func (c Config) LoadScene() (Scene, error) {
	var (
		scene Scene
		err   error
	)
	if c.SceneFile != "" {
		scene, err = LoadScene(c.SceneFile)
	} else {
		scene, err = LookupScene(c.Scene)
	}
	if err != nil {
		return Scene{}, err
	}
	if c.Wireframe {
		scene.Wireframe = true
	}
	return scene, nil
}
