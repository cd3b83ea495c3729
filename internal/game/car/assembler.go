package car

import (
	"math"

	"github.com/Bruno48Ferreira/formulap2/internal/engine/canvas"
)

// sides enumerates the two mirrored halves of the car: -1 is left, +1 is right.
var sides = [2]float32{-1, 1}

// Assembler builds the car from immutable dimensions and palette.
type Assembler struct {
	dims *Dimensions
	pal  *Palette
}

// NewAssembler creates an assembler. Nil arguments select the defaults.
func NewAssembler(dims *Dimensions, pal *Palette) *Assembler {
	if dims == nil {
		dims = DefaultDimensions()
	}
	if pal == nil {
		pal = DefaultPalette()
	}
	return &Assembler{dims: dims, pal: pal}
}

// Dimensions returns the car measurements.
func (a *Assembler) Dimensions() *Dimensions {
	return a.dims
}

// Assemble draws the whole car in the canvas' current frame.
//
// The caller is expected to have placed the car in the world (position and
// steering yaw) before calling. wheelAngle is the rolling angle in degrees.
// Assemble leaves the canvas transform stack as it found it.
func (a *Assembler) Assemble(c canvas.Canvas, wheelAngle float64, drsOpen bool) {
	a.floor(c)
	a.chassis(c)
	a.nose(c)
	a.cockpit(c)
	a.halo(c)
	a.airbox(c)
	a.engineFin(c)
	for _, side := range sides {
		a.sidepod(c, side)
	}
	a.frontWing(c)
	a.rearWing(c, drsOpen)
	a.wheels(c, float32(math.Mod(wheelAngle, 360)))
	a.suspension(c)
}

// box draws one box of colour col centred at (x, y, z).
func box(c canvas.Canvas, col canvas.Color, x, y, z, w, h, d float32) {
	canvas.Scoped(c, func() {
		c.Translate(x, y, z)
		c.SetColor(col)
		c.Box(w, h, d)
	})
}

// tiltedBox draws a box centred at (x, y, z) after rotating it by angle degrees about axis.
func tiltedBox(c canvas.Canvas, col canvas.Color, x, y, z, angle float32, axis [3]float32, w, h, d float32) {
	canvas.Scoped(c, func() {
		c.Translate(x, y, z)
		c.Rotate(angle, axis[0], axis[1], axis[2])
		c.SetColor(col)
		c.Box(w, h, d)
	})
}

var (
	axisX = [3]float32{1, 0, 0}
	axisY = [3]float32{0, 1, 0}
	axisZ = [3]float32{0, 0, 1}
)
