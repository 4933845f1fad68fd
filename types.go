package triangle

import "unsafe"

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "LearnOpenGL"

	// Requested OpenGL context version (core profile).
	GLVersionMajor = 3
	GLVersionMinor = 3
)

// Vertex is one triangle corner.
// Memory layout matches the attribute layout returned by VertexLayout.
type Vertex struct {
	Pos   [3]float32 // Position (x, y, z) in normalized device coordinates
	Color [3]float32 // RGB color
}

// Attrib describes one vertex attribute inside a Vertex.
type Attrib struct {
	Index      uint32  // Shader input location
	Components int32   // Number of float32 components
	Offset     uintptr // Byte offset from the start of a Vertex
}

// VertexLayout returns the stride of a Vertex in bytes and its attributes:
// location 0 is the position, location 1 is the color.
func VertexLayout() (stride int32, attribs []Attrib) {
	stride = int32(unsafe.Sizeof(Vertex{}))
	attribs = []Attrib{
		{Index: 0, Components: 3, Offset: unsafe.Offsetof(Vertex{}.Pos)},
		{Index: 1, Components: 3, Offset: unsafe.Offsetof(Vertex{}.Color)},
	}
	return stride, attribs
}

var triangleVertices = [3]Vertex{
	{Pos: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{1, 0, 0}}, // bottom left, red
	{Pos: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0, 1, 0}},  // bottom right, green
	{Pos: [3]float32{0, 0.5, 0}, Color: [3]float32{0, 0, 1}},     // top, blue
}

// Vertices returns a copy of the triangle's vertices.
func Vertices() []Vertex {
	v := triangleVertices
	return v[:]
}

// Color is an RGBA color with float components (0.0-1.0).
type Color struct {
	R, G, B, A float32
}

// Teal is the background the loop clears to.
var Teal = Color{R: 0, G: 0.5, B: 0.5, A: 1}

// RGBA8 converts the color to 8-bit components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float32) uint8 {
	return uint8(clampf(v, 0, 1)*255 + 0.5)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
