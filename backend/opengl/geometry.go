package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/triangle"
)

// GeometryBuffer is a static vertex buffer plus the vertex array describing it.
type GeometryBuffer struct {
	vao, vbo uint32
	count    int32
}

// NewGeometryBuffer uploads vertices once as STATIC_DRAW data and declares
// the attribute layout from triangle.VertexLayout.
func NewGeometryBuffer(vertices []triangle.Vertex) (*GeometryBuffer, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}

	g := &GeometryBuffer{count: int32(len(vertices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(triangle.Vertex{})),
		gl.Ptr(vertices), gl.STATIC_DRAW)

	stride, attribs := triangle.VertexLayout()
	for _, a := range attribs {
		gl.VertexAttribPointerWithOffset(a.Index, a.Components, gl.FLOAT, false, stride, a.Offset)
		gl.EnableVertexAttribArray(a.Index)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return g, nil
}

// Count returns the number of vertices in the buffer.
func (g *GeometryBuffer) Count() int32 {
	return g.count
}

// Bind binds the vertex array.
func (g *GeometryBuffer) Bind() {
	gl.BindVertexArray(g.vao)
}

// Draw binds the vertex array and draws its vertices as triangles.
func (g *GeometryBuffer) Draw() {
	g.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, g.count)
}

// Delete releases the buffer and vertex array.
func (g *GeometryBuffer) Delete() {
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
