/*
Package triangle renders a single colored triangle with OpenGL 3.3 core.

# Overview

The package holds the backend independent pieces of the demo: the vertex
data and its attribute layout, the keyboard state, and the two-state render
loop. The OpenGL/GLFW side lives in backend/opengl.

# Quick Start

	window, err := opengl.NewWindow(opengl.DefaultWindowConfig())
	if err != nil {
	    return err
	}
	defer window.Close()

	renderer, err := opengl.NewRenderer(triangle.WindowWidth, triangle.WindowHeight)
	if err != nil {
	    return err
	}
	defer renderer.Delete()

	triangle.NewLoop(window, renderer).Run()

# Render Loop

The loop has two states, Running and Closing. Every Running iteration does,
in order:

  - process input (the quit key requests close)
  - clear the color buffer to teal
  - bind the program and vertex array, draw 3 vertices
  - poll window events
  - swap buffers

The loop leaves Running as soon as the surface reports that it should
close, either because of the quit key or the window close button.

# Threading

GLFW and OpenGL calls must come from the main OS thread. Call
runtime.LockOSThread from an init function in package main.
*/
package triangle
