package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/triangle"
)

// WindowConfig describes the window and context to create.
type WindowConfig struct {
	Width, Height int
	Title         string
	Major, Minor  int  // OpenGL context version
	Hidden        bool // Create the window invisible (offscreen tests)
}

// DefaultWindowConfig returns an 800x600 "LearnOpenGL" window with a 3.3 core context.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:  triangle.WindowWidth,
		Height: triangle.WindowHeight,
		Title:  triangle.WindowTitle,
		Major:  triangle.GLVersionMajor,
		Minor:  triangle.GLVersionMinor,
	}
}

// Window owns a GLFW window, its OpenGL context and the keyboard state fed
// from GLFW callbacks. It implements triangle.Surface.
//
// Window must be created and used on the main OS thread.
type Window struct {
	window *glfw.Window
	input  *triangle.InputState
}

// NewWindow initializes GLFW, creates the window, makes its context current
// and loads the OpenGL function pointers.
// GLFW is terminated again if any step fails.
func NewWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrLoader, err)
	}

	w := &Window{
		window: window,
		input:  triangle.NewInputState(),
	}
	window.SetKeyCallback(w.keyCallback)

	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	return w, nil
}

// ShouldClose reports whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SetShouldClose sets the close request flag.
func (w *Window) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

// PollEvents resets per-frame input and processes pending window events.
func (w *Window) PollEvents() {
	w.input.Reset()
	glfw.PollEvents()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Input returns the keyboard state collected by the last PollEvents.
func (w *Window) Input() *triangle.InputState {
	return w.input
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == triangle.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(k, true)
	case glfw.Release:
		w.input.SetKey(k, false)
	}
}

// glfwKeyToKey maps GLFW keys to the keys the demo reacts to.
func glfwKeyToKey(key glfw.Key) triangle.Key {
	switch key {
	case glfw.KeyEscape:
		return triangle.KeyEscape
	default:
		return triangle.KeyNone
	}
}

// ContextInfo returns the GL version and renderer strings of the current context.
func ContextInfo() (version, renderer string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER))
}
