package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Mr1am/chroma-noise/internal/logging"
	"github.com/Mr1am/chroma-noise/internal/shader"
)

// Two triangles covering clip space.
var quadVertices = []float32{
	-1, -1,
	1, -1,
	1, 1,
	-1, -1,
	1, 1,
	-1, 1,
}

// glRenderer owns the GPU program and quad geometry for one surface
// acquisition. It must only be touched from the goroutine that holds the
// surface's context.
type glRenderer struct {
	program   uint32
	vao, vbo  uint32
	locations map[string]int32
}

func newGLRenderer() *glRenderer {
	return &glRenderer{}
}

func (r *glRenderer) init(fragment string) error {
	if err := gl.Init(); err != nil {
		return err
	}

	vert, err := shader.Compile(shader.VertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	frag, err := shader.Compile(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return err
	}
	r.program, err = shader.Link(vert, frag)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	r.locations = make(map[string]int32, len(uniformTable))
	for _, u := range uniformTable {
		loc := gl.GetUniformLocation(r.program, gl.Str(u.name+"\x00"))
		if loc < 0 {
			logging.L().Debug("uniform not active in program", "name", u.name)
		}
		r.locations[u.name] = loc
	}

	logging.L().Info("gradient program linked", "uniforms", len(r.locations))
	return nil
}

func (r *glRenderer) resize(w, h int) {
	// Viewport tracks the snapshot resolution on every frame; nothing to do
	// here beyond what the surface already did to its buffer.
}

func (r *glRenderer) render(snap *Snapshot) error {
	w := int32(snap.Resolution[0])
	h := int32(snap.Resolution[1])
	if w <= 0 || h <= 0 {
		return nil
	}

	gl.Viewport(0, 0, w, h)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	r.upload(snap)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	return nil
}

// upload pushes every snapshot field to its uniform, dispatched by the
// static type table.
func (r *glRenderer) upload(snap *Snapshot) {
	for _, u := range uniformTable {
		loc, ok := r.locations[u.name]
		if !ok || loc < 0 {
			continue
		}
		switch u.kind {
		case kindFloat:
			gl.Uniform1f(loc, snap.floatValue(u.name))
		case kindInt:
			gl.Uniform1i(loc, snap.intValue(u.name))
		case kindVec2:
			v := snap.vec2Value(u.name)
			gl.Uniform2f(loc, v[0], v[1])
		case kindVec2Array:
			gl.Uniform2fv(loc, MaxPoints, &snap.Positions[0][0])
		case kindVec3Array:
			gl.Uniform3fv(loc, MaxPoints, &snap.Colors[0][0])
		}
	}
}

func (r *glRenderer) destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		gl.DeleteBuffers(1, &r.vbo)
		r.vao, r.vbo = 0, 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
