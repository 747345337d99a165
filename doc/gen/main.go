// Command gen renders every built-in scene in a hidden window, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

const (
	shotWidth  = 400
	shotHeight = 300
	shotFrames = 2
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := learngl.DefaultConfig()
	wcfg := opengl.WindowConfigFrom(cfg)
	wcfg.Width, wcfg.Height = shotWidth, shotHeight
	wcfg.Title = "screenshot-gen"
	wcfg.Hidden = true
	wcfg.VSync = false

	window, err := opengl.OpenWindow(wcfg)
	if err != nil {
		return err
	}
	defer window.Close()

	logger := learngl.NewLogger(os.Stderr, cfg.Level())
	dev := opengl.NewDevice()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	names := learngl.Scenes()
	for _, name := range names {
		if err := capture(window, dev, logger, name, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(names), outDir)
	return nil
}

func capture(window *opengl.Window, dev *opengl.Device, logger *slog.Logger, name, outDir string) error {
	scene, err := learngl.LookupScene(name)
	if err != nil {
		return err
	}
	pipeline, err := learngl.NewBuilder(dev, learngl.WithLogger(logger)).Build(scene)
	if err != nil {
		return err
	}
	defer pipeline.Release(dev)

	// The hidden window is never resized, so the viewport is set once.
	dev.Viewport(0, 0, shotWidth, shotHeight)
	loop := learngl.NewFrameLoop(window, dev, pipeline,
		learngl.WithLogger(logger),
		learngl.WithQuitKey(learngl.KeyUnknown),
		learngl.WithMaxFrames(shotFrames),
	)
	if err := loop.Run(); err != nil {
		return err
	}

	// The last frame was swapped to the front buffer; draw it once more
	// into the back buffer before reading.
	dev.Clear(pipeline.Clear)
	for _, it := range pipeline.Items {
		dev.Draw(it.Call())
	}
	img := dev.ReadPixels(shotWidth, shotHeight)

	path := filepath.Join(outDir, name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
