// Example opens a window and draws one of the learngl scenes until Q is
// pressed or the window is closed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                              # Go + OpenGL/X11 headers
//	go run ./example/                         # clear-only window
//	go run ./example/ -scene rectangle -wireframe
//	go run ./example/ -file scenes/two-triangles.yaml
//
// Exit status is 69 when the window, context or GL loader cannot be
// initialized, 1 for configuration or scene errors, and 0 otherwise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

const (
	exitOK          = 0
	exitError       = 1
	exitInitFailure = 69
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, list, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	if list {
		for _, name := range learngl.Scenes() {
			fmt.Println(name)
		}
		return exitOK
	}

	logger := learngl.NewLogger(os.Stderr, cfg.Level())
	slog.SetDefault(logger)

	scene, err := cfg.LoadScene()
	if err != nil {
		logger.Error(err.Error())
		return exitError
	}

	window, err := opengl.OpenWindow(opengl.WindowConfigFrom(cfg))
	if err != nil {
		logger.Error(err.Error())
		return exitInitFailure
	}
	defer window.Close()
	logger.Info("opened window", "gl", window.GLVersion(), "scene", scene.Name)

	dev := opengl.NewDevice()
	fbw, fbh := window.FramebufferSize()
	dev.Viewport(0, 0, fbw, fbh)

	builder := learngl.NewBuilder(dev,
		learngl.WithLogger(logger),
		learngl.WithGLVersion(cfg.GLMajor, cfg.GLMinor),
	)
	pipeline, err := builder.Build(scene)
	if err != nil {
		// Build already logged each diagnostic.
		logger.Error("scene build failed", "scene", scene.Name)
		return exitError
	}
	defer pipeline.Release(dev)

	loop := learngl.NewFrameLoop(window, dev, pipeline,
		learngl.WithLogger(logger),
		learngl.WithQuitKey(cfg.Quit()),
	)
	if err := loop.Run(); err != nil {
		logger.Error(err.Error())
		return exitError
	}
	return exitOK
}

func parseArgs(args []string) (learngl.Config, bool, error) {
	cfg := learngl.DefaultConfig()

	// The config file is read first so that explicit flags override it.
	// Every flag is registered on the pre-pass so -config is found anywhere.
	pre := flag.NewFlagSet("learngl", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	configPath := pre.String("config", "", "")
	pre.Bool("list", false, "")
	scratch := learngl.DefaultConfig()
	scratch.RegisterFlags(pre)
	_ = pre.Parse(args)
	if *configPath != "" {
		var err error
		cfg, err = learngl.LoadConfig(*configPath)
		if err != nil {
			return cfg, false, err
		}
	}

	fs := flag.NewFlagSet("learngl", flag.ContinueOnError)
	fs.String("config", *configPath, "TOML config file")
	list := fs.Bool("list", false, "List the built-in scenes and exit")
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, false, err
	}
	return cfg, *list, cfg.Validate()
}
