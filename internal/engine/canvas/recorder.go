package canvas

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"
)

// White is the colour a fresh Recorder draws with.
var White = Color{R: 1, G: 1, B: 1}

// Recorder is a Canvas that appends every draw call to an in-memory list.
type Recorder struct {
	stack *matstack.MatStack
	color Color
	cmds  []Command
}

// NewRecorder creates a recorder with an identity transform on the stack.
func NewRecorder() *Recorder {
	return &Recorder{
		stack: matstack.NewMatStack(),
		color: White,
		cmds:  make([]Command, 0, 256),
	}
}

// Reset clears recorded commands and restores the identity transform.
func (r *Recorder) Reset() {
	*r.stack = (*r.stack)[:1]
	r.stack.LoadIdent()
	r.color = White
	r.cmds = r.cmds[:0]
}

// Load replaces the current top of the stack.
func (r *Recorder) Load(m mgl32.Mat4) {
	r.stack.Load(m)
}

// Top returns the current transform.
func (r *Recorder) Top() mgl32.Mat4 {
	return r.stack.Peek()
}

// Depth returns the number of saved transforms plus the current one.
func (r *Recorder) Depth() int {
	return len(*r.stack)
}

// Commands returns the recorded draw calls. The slice is reused after Reset.
func (r *Recorder) Commands() []Command {
	return r.cmds
}

// Push saves the current transform.
func (r *Recorder) Push() {
	r.stack.Push()
}

// Pop restores the transform saved by the matching Push.
func (r *Recorder) Pop() error {
	if err := r.stack.Pop(); err != nil {
		return fmt.Errorf("canvas pop: %w", err)
	}
	return nil
}

// Translate right-multiplies a translation onto the current transform.
func (r *Recorder) Translate(x, y, z float32) {
	r.stack.RightMul(mgl32.Translate3D(x, y, z))
}

// Rotate right-multiplies a rotation of angleDeg degrees about (ax, ay, az).
// A zero axis leaves the transform unchanged.
func (r *Recorder) Rotate(angleDeg, ax, ay, az float32) {
	axis := mgl32.Vec3{ax, ay, az}
	if axis.Len() == 0 {
		return
	}
	r.stack.RightMul(mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), axis.Normalize()))
}

// SetColor sets the colour of subsequent boxes, cylinders and planes.
func (r *Recorder) SetColor(c Color) {
	r.color = c
}

// Box records a box centred on the local origin.
func (r *Recorder) Box(width, height, depth float32) {
	r.emit(ShapeBox, [3]float32{width, height, depth}, 0, r.color, r.stack.Peek())
}

// Cylinder records an open cylinder along local X, centred on the origin.
func (r *Recorder) Cylinder(radius, length float32, segments int) {
	r.emit(ShapeCylinder, [3]float32{radius, length, 0}, segments, r.color, r.stack.Peek())
}

// Ring records a flat annulus facing local X at the given offset along X.
func (r *Recorder) Ring(inner, outer, offset float32, c Color, segments int) {
	m := r.stack.Peek().Mul4(mgl32.Translate3D(offset, 0, 0))
	r.emit(ShapeRing, [3]float32{inner, outer, 0}, segments, c, m)
}

// Disc records a flat disc facing local X at the given offset along X.
func (r *Recorder) Disc(radius, offset float32, c Color, segments int) {
	m := r.stack.Peek().Mul4(mgl32.Translate3D(offset, 0, 0))
	r.emit(ShapeDisc, [3]float32{radius, 0, 0}, segments, c, m)
}

// Plane records a horizontal rectangle in the local XZ plane.
func (r *Recorder) Plane(width, depth float32) {
	r.emit(ShapePlane, [3]float32{width, 0, depth}, 0, r.color, r.stack.Peek())
}

func (r *Recorder) emit(shape Shape, size [3]float32, segments int, c Color, m mgl32.Mat4) {
	r.cmds = append(r.cmds, Command{
		Shape:     shape,
		Size:      size,
		Segments:  segments,
		Color:     c,
		Transform: m,
	})
}
