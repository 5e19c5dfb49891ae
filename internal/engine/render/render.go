// Package render draws stroke meshes with OpenGL.
package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/strokemesh/internal/engine/shader"
	"github.com/Faultbox/strokemesh/internal/logger"
	"github.com/Faultbox/strokemesh/pkg/math"
	"github.com/Faultbox/strokemesh/pkg/tube"
)

// Floats per interleaved vertex: position 3, normal 3, color 4, uv 2.
const vertexFloats = 12

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL state for the stroke viewer.
type Renderer struct {
	config Config

	strokeProg *shader.Program
	gridProg   *shader.Program

	grid      uint32 // VAO
	gridVBO   uint32
	gridVerts int32
}

// New initializes OpenGL and compiles the viewer shaders.
// Must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)

	var err error
	r.strokeProg, err = shader.Compile(strokeVertexShader, strokeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("stroke shader: %w", err)
	}
	r.gridProg, err = shader.Compile(gridVertexShader, gridFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("grid shader: %w", err)
	}

	r.createGrid()

	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	if r.grid != 0 {
		gl.DeleteVertexArrays(1, &r.grid)
	}
	if r.gridVBO != 0 {
		gl.DeleteBuffers(1, &r.gridVBO)
	}
	if r.strokeProg != nil {
		r.strokeProg.Delete()
	}
	if r.gridProg != nil {
		r.gridProg.Delete()
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Aspect returns the current width/height ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawStroke draws an uploaded stroke mesh.
func (r *Renderer) DrawStroke(m *StrokeMesh, viewProj math.Mat4, lightDir math.Vec3) {
	if m.indexCount == 0 {
		return
	}
	r.strokeProg.Use()
	r.strokeProg.SetMat4("uViewProj", viewProj)
	r.strokeProg.SetVec3("uLightDir", lightDir.Normalize())

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// DrawGrid draws the ground reference grid.
func (r *Renderer) DrawGrid(viewProj math.Mat4) {
	r.gridProg.Use()
	r.gridProg.SetMat4("uViewProj", viewProj)

	gl.BindVertexArray(r.grid)
	gl.DrawArrays(gl.LINES, 0, r.gridVerts)
	gl.BindVertexArray(0)
}

// createGrid builds a line grid on the Y=0 plane.
func (r *Renderer) createGrid() {
	const half = 20
	const step = 1.0

	var verts []float32
	for i := -half; i <= half; i++ {
		f := float32(i) * step
		// Lines along X and along Z
		verts = append(verts,
			-half*step, 0, f, half*step, 0, f,
			f, 0, -half*step, f, 0, half*step,
		)
	}
	r.gridVerts = int32(len(verts) / 3)

	gl.GenVertexArrays(1, &r.grid)
	gl.BindVertexArray(r.grid)

	gl.GenBuffers(1, &r.gridVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.gridVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

// StrokeMesh is GPU-side stroke geometry, re-uploaded as the stroke grows.
type StrokeMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	vboCap     int // bytes
	eboCap     int // bytes
}

// NewStrokeMesh creates the VAO/VBO/EBO for one stroke.
func NewStrokeMesh() *StrokeMesh {
	m := &StrokeMesh{}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	stride := int32(vertexFloats * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, stride, 10*4)
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)

	gl.BindVertexArray(0)
	return m
}

// Delete releases the mesh's GL buffers.
func (m *StrokeMesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}

// Upload pushes the current stroke buffers to the GPU. Buffers grow and
// shrink as knots respawn, so the full committed range is re-sent each
// time; stroke meshes are small enough that this stays cheap.
func (m *StrokeMesh) Upload(b *tube.Buffers) {
	n := b.VertexCount()
	m.indexCount = int32(len(b.Indices))
	if n == 0 || m.indexCount == 0 {
		return
	}

	verts := make([]float32, 0, n*vertexFloats)
	for i := 0; i < n; i++ {
		p := b.Positions[i]
		nm := b.Normals[i]
		c := b.Colors[i]
		uv := b.UV(i)
		verts = append(verts,
			p.X, p.Y, p.Z,
			nm.X, nm.Y, nm.Z,
			c[0], c[1], c[2], c[3],
			uv.X, uv.Y,
		)
	}

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vbytes := len(verts) * 4
	if vbytes > m.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, vbytes, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)
		m.vboCap = vbytes
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, vbytes, unsafe.Pointer(&verts[0]))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	ibytes := len(b.Indices) * 4
	if ibytes > m.eboCap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, ibytes, unsafe.Pointer(&b.Indices[0]), gl.DYNAMIC_DRAW)
		m.eboCap = ibytes
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, ibytes, unsafe.Pointer(&b.Indices[0]))
	}

	gl.BindVertexArray(0)
}
