// Package opengl provides the OpenGL 3.3 core backend for the triangle demo:
// the GLFW window, shader stages, the linked program, the vertex buffer and
// the per-frame renderer.
package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// InfoLogSize is the maximum number of bytes read from a shader or program info log.
const InfoLogSize = 512

var (
	ErrLoader        = errors.New("gl loader failed")
	ErrUnknownStage  = errors.New("unknown shader stage")
	ErrCompile       = errors.New("shader compilation failed")
	ErrLink          = errors.New("shader program linking failed")
	ErrMissingStage  = errors.New("missing shader stage")
	ErrStageMismatch = errors.New("shader stage mismatch")
	ErrNoVertices    = errors.New("no vertices")
)

// Stage is a shader pipeline stage.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

func (s Stage) glType() (uint32, bool) {
	switch s {
	case VertexStage:
		return gl.VERTEX_SHADER, true
	case FragmentStage:
		return gl.FRAGMENT_SHADER, true
	default:
		return 0, false
	}
}

// CompileError carries the driver's diagnostic for a failed compilation.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

func (e *CompileError) Is(target error) bool { return target == ErrCompile }

// ShaderStage is a compiled shader object.
type ShaderStage struct {
	id    uint32
	stage Stage
}

// CompileShader compiles source for the given stage. On failure the shader
// object is deleted and a *CompileError is returned.
func CompileShader(stage Stage, source string) (*ShaderStage, error) {
	kind, ok := stage.glType()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStage, int(stage))
	}
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}

	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return nil, &CompileError{Stage: stage, Log: log}
	}

	return &ShaderStage{id: shader, stage: stage}, nil
}

// ID returns the GL shader name, or 0 once deleted.
func (s *ShaderStage) ID() uint32 {
	return s.id
}

// Stage returns the pipeline stage the shader was compiled for.
func (s *ShaderStage) Stage() Stage {
	return s.stage
}

// Delete releases the shader object. It is safe to call more than once.
func (s *ShaderStage) Delete() {
	if s.id != 0 {
		gl.DeleteShader(s.id)
		s.id = 0
	}
}

func shaderInfoLog(shader uint32) string {
	var length int32
	buf := make([]byte, InfoLogSize)
	gl.GetShaderInfoLog(shader, InfoLogSize, &length, &buf[0])
	return trimLog(buf, length)
}

func trimLog(buf []byte, length int32) string {
	if length < 0 {
		length = 0
	}
	if int(length) > len(buf) {
		length = int32(len(buf))
	}
	return strings.TrimRight(string(buf[:length]), "\x00\n ")
}
