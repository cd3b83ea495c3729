// Package mesh generates unit-sized triangle meshes for the canvas primitives
// and the model matrices that stretch them to a command's size.
//
// Every mesh is centred on the origin. Boxes and planes span [-0.5, 0.5];
// cylinders, rings and discs have radius 1 around the X axis, so one mesh
// serves every size and only the segment count (and ring ratio) needs its own
// buffer.
package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Bruno48Ferreira/formulap2/internal/engine/canvas"
)

// FloatsPerVertex is position (3) followed by normal (3).
const FloatsPerVertex = 6

// MinSegments is the smallest segment count used for round shapes.
const MinSegments = 3

// Mesh is a non-indexed triangle list.
type Mesh struct {
	Vertices []float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

func (m *Mesh) add(p, n mgl32.Vec3) {
	m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
}

func (m *Mesh) tri(a, b, c, n mgl32.Vec3) {
	m.add(a, n)
	m.add(b, n)
	m.add(c, n)
}

func (m *Mesh) quad(a, b, c, d, n mgl32.Vec3) {
	m.tri(a, b, c, n)
	m.tri(a, c, d, n)
}

// Key identifies a unit mesh.
type Key struct {
	Shape    canvas.Shape
	Segments int
	// Inner radius over outer radius, rings only.
	Ratio float32
}

// KeyOf returns the unit mesh a command draws with.
func KeyOf(cmd canvas.Command) Key {
	k := Key{Shape: cmd.Shape}
	switch cmd.Shape {
	case canvas.ShapeCylinder, canvas.ShapeDisc:
		k.Segments = clampSegments(cmd.Segments)
	case canvas.ShapeRing:
		k.Segments = clampSegments(cmd.Segments)
		if outer := cmd.Size[1]; outer > 0 {
			k.Ratio = cmd.Size[0] / outer
		}
	}
	return k
}

func clampSegments(n int) int {
	if n < MinSegments {
		return MinSegments
	}
	return n
}

// Build generates the unit mesh for a key.
func Build(k Key) *Mesh {
	switch k.Shape {
	case canvas.ShapeBox:
		return Box()
	case canvas.ShapeCylinder:
		return Cylinder(k.Segments)
	case canvas.ShapeRing:
		return Ring(k.Ratio, k.Segments)
	case canvas.ShapeDisc:
		return Disc(k.Segments)
	case canvas.ShapePlane:
		return Plane()
	}
	return &Mesh{}
}

// Model returns the transform that maps the unit mesh onto the command.
// It reports false for degenerate sizes, which are skipped.
func Model(cmd canvas.Command) (mgl32.Mat4, bool) {
	var sx, sy, sz float32
	switch cmd.Shape {
	case canvas.ShapeBox:
		sx, sy, sz = cmd.Size[0], cmd.Size[1], cmd.Size[2]
	case canvas.ShapeCylinder:
		sx, sy, sz = cmd.Size[1], cmd.Size[0], cmd.Size[0]
	case canvas.ShapeRing:
		if cmd.Size[0] >= cmd.Size[1] {
			return mgl32.Mat4{}, false
		}
		sx, sy, sz = 1, cmd.Size[1], cmd.Size[1]
	case canvas.ShapeDisc:
		sx, sy, sz = 1, cmd.Size[0], cmd.Size[0]
	case canvas.ShapePlane:
		sx, sy, sz = cmd.Size[0], 1, cmd.Size[2]
	default:
		return mgl32.Mat4{}, false
	}
	if sx <= 0 || sy <= 0 || sz <= 0 {
		return mgl32.Mat4{}, false
	}
	return cmd.Transform.Mul4(mgl32.Scale3D(sx, sy, sz)), true
}

// Box returns a unit cube.
func Box() *Mesh {
	m := &Mesh{Vertices: make([]float32, 0, 36*FloatsPerVertex)}
	const h = 0.5
	v := func(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x * h, y * h, z * h} }

	m.quad(v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1), mgl32.Vec3{0, 0, 1})
	m.quad(v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1), mgl32.Vec3{0, 0, -1})
	m.quad(v(1, -1, 1), v(1, -1, -1), v(1, 1, -1), v(1, 1, 1), mgl32.Vec3{1, 0, 0})
	m.quad(v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1), mgl32.Vec3{-1, 0, 0})
	m.quad(v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1), v(-1, 1, -1), mgl32.Vec3{0, 1, 0})
	m.quad(v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1), mgl32.Vec3{0, -1, 0})
	return m
}

// Plane returns a unit square in the XZ plane facing +Y.
func Plane() *Mesh {
	m := &Mesh{Vertices: make([]float32, 0, 6*FloatsPerVertex)}
	m.quad(
		mgl32.Vec3{-0.5, 0, 0.5}, mgl32.Vec3{0.5, 0, 0.5},
		mgl32.Vec3{0.5, 0, -0.5}, mgl32.Vec3{-0.5, 0, -0.5},
		mgl32.Vec3{0, 1, 0},
	)
	return m
}

// circle returns the point at angle i/segments on a circle of radius r in the YZ plane.
func circle(i, segments int, r, x float32) mgl32.Vec3 {
	a := 2 * math.Pi * float64(i) / float64(segments)
	return mgl32.Vec3{x, r * float32(math.Cos(a)), r * float32(math.Sin(a))}
}

// Cylinder returns an open tube of radius 1 and length 1 along X.
func Cylinder(segments int) *Mesh {
	segments = clampSegments(segments)
	m := &Mesh{Vertices: make([]float32, 0, segments*6*FloatsPerVertex)}
	for i := 0; i < segments; i++ {
		a0, a1 := circle(i, segments, 1, -0.5), circle(i+1, segments, 1, -0.5)
		b0, b1 := circle(i, segments, 1, 0.5), circle(i+1, segments, 1, 0.5)
		n0 := mgl32.Vec3{0, a0[1], a0[2]}
		n1 := mgl32.Vec3{0, a1[1], a1[2]}
		m.add(a0, n0)
		m.add(a1, n1)
		m.add(b1, n1)
		m.add(a0, n0)
		m.add(b1, n1)
		m.add(b0, n0)
	}
	return m
}

// Disc returns a flat disc of radius 1 in the YZ plane facing +X.
func Disc(segments int) *Mesh {
	segments = clampSegments(segments)
	m := &Mesh{Vertices: make([]float32, 0, segments*3*FloatsPerVertex)}
	n := mgl32.Vec3{1, 0, 0}
	for i := 0; i < segments; i++ {
		m.tri(mgl32.Vec3{}, circle(i, segments, 1, 0), circle(i+1, segments, 1, 0), n)
	}
	return m
}

// Ring returns a flat annulus with outer radius 1 and the given inner radius, facing +X.
func Ring(inner float32, segments int) *Mesh {
	segments = clampSegments(segments)
	if inner < 0 {
		inner = 0
	}
	m := &Mesh{Vertices: make([]float32, 0, segments*6*FloatsPerVertex)}
	n := mgl32.Vec3{1, 0, 0}
	for i := 0; i < segments; i++ {
		m.quad(circle(i, segments, inner, 0), circle(i, segments, 1, 0),
			circle(i+1, segments, 1, 0), circle(i+1, segments, inner, 0), n)
	}
	return m
}
