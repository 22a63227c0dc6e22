// Package shader carries the GLSL sources for the gradient program and the
// compile/link helpers used by the GL renderer.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Compile compiles a single shader stage and returns its handle. On failure
// the driver's info log is returned verbatim in the error.
func Compile(source string, shaderType uint32) (uint32, error) {
	handle := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(logMsg))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("failed to compile shader: %s", strings.TrimRight(logMsg, "\x00"))
	}

	return handle, nil
}

// Link attaches the two stages to a fresh program and links it. The stage
// handles are deleted regardless of outcome; the caller owns the program.
func Link(vert, frag uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logMsg))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %s", strings.TrimRight(logMsg, "\x00"))
	}

	return program, nil
}
