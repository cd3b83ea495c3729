// Package canvas records primitive draw calls issued through an explicit transform stack.
//
// Builders never touch the GPU. They write to a Canvas, which resolves every call
// into a Command carrying its own world transform and colour; a renderer consumes
// the resulting list later in the frame.
package canvas

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Bruno48Ferreira/formulap2/internal/logger"
)

// Color is an RGB colour with components in [0,1].
type Color struct {
	R, G, B float32
}

// Shape identifies the primitive a Command draws.
type Shape uint8

// Primitive shapes.
const (
	ShapeBox Shape = iota
	ShapeCylinder
	ShapeRing
	ShapeDisc
	ShapePlane
)

func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeRing:
		return "ring"
	case ShapeDisc:
		return "disc"
	case ShapePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Command is one resolved draw call.
type Command struct {
	Shape Shape

	// Size holds the shape parameters:
	//   box      width, height, depth
	//   cylinder radius, length, 0
	//   ring     inner radius, outer radius, 0
	//   disc     radius, 0, 0
	//   plane    width, 0, depth
	Size [3]float32

	// Segments is the tessellation of round shapes (0 for box and plane).
	Segments int

	Color Color

	// Transform maps the primitive's local frame to world space. Size is not baked in.
	Transform mgl32.Mat4
}

// Canvas is the surface the scene builders draw on.
//
// Boxes are centred on the local origin. Cylinders, rings and discs have their
// axis along local X; rings and discs sit at an offset along that axis. Planes
// lie in the local XZ plane.
type Canvas interface {
	Push()
	Pop() error
	Translate(x, y, z float32)
	Rotate(angleDeg, ax, ay, az float32)
	SetColor(c Color)

	Box(width, height, depth float32)
	Cylinder(radius, length float32, segments int)
	Ring(inner, outer, offset float32, c Color, segments int)
	Disc(radius, offset float32, c Color, segments int)
	Plane(width, depth float32)
}

// Scoped runs fn between a Push and its matching Pop. A failing Pop means fn
// popped more than it pushed; it is logged and the stack is left as is.
func Scoped(c Canvas, fn func()) {
	c.Push()
	defer func() {
		if err := c.Pop(); err != nil {
			logger.Warn("unbalanced canvas scope", zap.Error(err))
		}
	}()
	fn()
}
