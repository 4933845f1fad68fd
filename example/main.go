// Example opens an 800x600 window and draws one colored triangle on a teal
// background until Escape is pressed or the window is closed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

// exitFailure is returned for every startup failure.
const exitFailure = -1

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(); err != nil {
		logStartupError(err)
		os.Exit(exitFailure)
	}
}

func run() error {
	slog.Info("running application")

	window, err := opengl.NewWindow(opengl.DefaultWindowConfig())
	if err != nil {
		return err
	}
	defer window.Close()

	version, renderer := opengl.ContextInfo()
	slog.Info("opengl context ready", "version", version, "renderer", renderer)

	width, height := window.FramebufferSize()
	r, err := opengl.NewRenderer(width, height)
	if err != nil {
		return fmt.Errorf("triangle renderer: %w", err)
	}
	defer r.Delete()

	frames := triangle.NewLoop(window, r).Run()
	slog.Info("window closed", "frames", frames)

	return nil
}

// logStartupError logs err, putting any driver diagnostic in its own attribute.
func logStartupError(err error) {
	var (
		ce *opengl.CompileError
		le *opengl.LinkError
	)
	switch {
	case errors.As(err, &ce):
		slog.Error("shader compilation failed", "stage", ce.Stage, "log", ce.Log)
	case errors.As(err, &le):
		slog.Error("shader program linking failed", "log", le.Log)
	case errors.Is(err, opengl.ErrLoader):
		slog.Error("unable to load OpenGL functions", "error", err)
	default:
		slog.Error("startup failed", "error", err)
	}
	slog.Error("exiting application")
}
