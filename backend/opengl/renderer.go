package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/triangle"
)

// Vertex shader source
const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 ourColor;

void main() {
    gl_Position = vec4(aPos, 1.0);
    ourColor = aColor;
}
` + "\x00"

// Fragment shader source
const fragmentShaderSource = `
#version 330 core
in vec3 ourColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(ourColor, 1.0);
}
` + "\x00"

// Renderer draws the triangle. It implements triangle.Renderer.
type Renderer struct {
	program  *Program
	geometry *GeometryBuffer
}

// NewRenderer builds the shader program and uploads the triangle.
// width and height are framebuffer pixels, not window coordinates; they set
// the viewport. A context must be current on the calling thread.
func NewRenderer(width, height int) (*Renderer, error) {
	program, err := NewProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	geometry, err := NewGeometryBuffer(triangle.Vertices())
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("failed to create geometry: %w", err)
	}

	gl.Viewport(0, 0, int32(width), int32(height))

	return &Renderer{
		program:  program,
		geometry: geometry,
	}, nil
}

// Clear clears the color buffer.
func (r *Renderer) Clear(c triangle.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw binds the program and vertex array and issues one draw call.
func (r *Renderer) Draw() {
	r.program.Use()
	r.geometry.Draw()
}

// ReadPixels copies the current viewport of the back buffer into an image
// with the origin at the top left. Call it before SwapBuffers.
func (r *Renderer) ReadPixels() *image.RGBA {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	x, y, width, height := vp[0], vp[1], int(vp[2]), int(vp[3])

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	rows := make([]byte, len(img.Pix))

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(x, y, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rows))

	// OpenGL rows start at the bottom.
	for row := 0; row < height; row++ {
		src := rows[(height-1-row)*img.Stride : (height-row)*img.Stride]
		copy(img.Pix[row*img.Stride:], src)
	}
	return img
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.geometry != nil {
		r.geometry.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}
