package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Bruno48Ferreira/formulap2/internal/engine/mesh"
)

// gpuMesh is a unit mesh uploaded to a vertex buffer.
type gpuMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func upload(m *mesh.Mesh) *gpuMesh {
	g := &gpuMesh{count: int32(m.VertexCount())}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	if len(m.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)
	}

	// Vertex format: position(3) + normal(3)
	stride := int32(mesh.FloatsPerVertex * 4)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return g
}

func (g *gpuMesh) draw() {
	if g.count == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, g.count)
}

func (g *gpuMesh) delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
}
