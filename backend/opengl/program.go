package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// LinkError carries the driver's diagnostic for a failed link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader program linking failed: " + e.Log
}

func (e *LinkError) Is(target error) bool { return target == ErrLink }

// Program is a successfully linked shader program.
type Program struct {
	id uint32
}

// LinkProgram attaches a vertex and a fragment stage to a new program and
// links it. The stages stay owned by the caller and can be deleted once this
// returns. A program that failed to link is deleted and never returned.
func LinkProgram(vertex, fragment *ShaderStage) (*Program, error) {
	if vertex == nil || fragment == nil || vertex.id == 0 || fragment.id == 0 {
		return nil, ErrMissingStage
	}
	if vertex.stage != VertexStage || fragment.stage != FragmentStage {
		return nil, fmt.Errorf("%w: got %s and %s", ErrStageMismatch, vertex.stage, fragment.stage)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex.id)
	gl.AttachShader(program, fragment.id)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		buf := make([]byte, InfoLogSize)
		gl.GetProgramInfoLog(program, InfoLogSize, &length, &buf[0])
		gl.DeleteProgram(program)
		return nil, &LinkError{Log: trimLog(buf, length)}
	}

	gl.DetachShader(program, vertex.id)
	gl.DetachShader(program, fragment.id)

	return &Program{id: program}, nil
}

// NewProgram compiles both sources, links them and deletes the stages.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertex, err := CompileShader(VertexStage, vertexSource)
	if err != nil {
		return nil, err
	}
	defer vertex.Delete()

	fragment, err := CompileShader(FragmentStage, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer fragment.Delete()

	return LinkProgram(vertex, fragment)
}

// ID returns the GL program name, or 0 once deleted.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
