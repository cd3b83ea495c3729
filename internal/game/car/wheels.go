package car

import (
	"math"

	"github.com/Bruno48Ferreira/formulap2/internal/engine/canvas"
)

const (
	wheelSegments = 24
	rimSegments   = 32

	// rimStep separates the stacked decorations on the outer wheel face.
	rimStep = 0.004

	wishboneThick = 0.025
)

// XZ is a point in the car's ground plane.
type XZ struct {
	X, Z float32
}

// wheelCentres returns the four wheel centres: front right, front left, rear right, rear left.
func (a *Assembler) wheelCentres() [4][3]float32 {
	d := a.dims
	x := d.WheelOffsetX()
	r := d.WheelRadius
	return [4][3]float32{
		{x, r, d.FrontAxleZ()},
		{-x, r, d.FrontAxleZ()},
		{x, r, d.RearAxleZ()},
		{-x, r, d.RearAxleZ()},
	}
}

// wheels draws the four rolling wheels.
func (a *Assembler) wheels(c canvas.Canvas, angle float32) {
	for _, w := range a.wheelCentres() {
		side := float32(1)
		if w[0] < 0 {
			side = -1
		}
		canvas.Scoped(c, func() {
			c.Translate(w[0], w[1], w[2])
			c.Rotate(angle, 1, 0, 0)
			a.wheel(c, side)
		})
	}
}

// wheel draws one tyre with end caps and rim decoration on the face pointing to side.
func (a *Assembler) wheel(c canvas.Canvas, side float32) {
	d, p := a.dims, a.pal
	r := d.WheelRadius
	half := d.WheelWidth / 2

	c.SetColor(p.Tyre)
	c.Cylinder(r, d.WheelWidth, wheelSegments)
	c.Disc(r, -half, p.Tyre, wheelSegments)
	c.Disc(r, half, p.Tyre, wheelSegments)

	// Decorations step outwards from the cap, drawn after it.
	face := side * half
	c.Ring(r*0.55, r*0.75, face+side*rimStep, p.Rim, rimSegments)
	c.Ring(r*0.30, r*0.40, face+side*rimStep*2, p.PetronasTeal, rimSegments)
	c.Disc(r*0.20, face+side*rimStep*3, p.DarkGrey, rimSegments)
}

// suspension draws upper and lower wishbones for all four corners.
func (a *Assembler) suspension(c canvas.Canvas) {
	d, p := a.dims, a.pal
	upperY := d.WheelRadius + 0.05
	lowerY := d.WheelRadius - 0.05
	front, rear := d.FrontAxleZ(), d.RearAxleZ()
	outerX := d.WheelOffsetX() - 0.05

	for _, side := range sides {
		frontOuter := XZ{side * outerX, front}
		DrawWishbone(c, p.Suspension, XZ{side * d.Width * 0.30, front + 0.25}, frontOuter, upperY, wishboneThick)
		DrawWishbone(c, p.Suspension, XZ{side * d.Width * 0.32, front + 0.10}, frontOuter, lowerY, wishboneThick)

		rearOuter := XZ{side * outerX, rear}
		DrawWishbone(c, p.Suspension, XZ{side * d.Width * 0.28, rear - 0.20}, rearOuter, upperY, wishboneThick)
		DrawWishbone(c, p.Suspension, XZ{side * d.Width * 0.30, rear - 0.05}, rearOuter, lowerY, wishboneThick)
	}
}

// DrawWishbone draws a straight strut between two ground-plane points at height y.
// Coincident points draw nothing and leave the canvas untouched.
func DrawWishbone(c canvas.Canvas, col canvas.Color, inner, outer XZ, y, thickness float32) {
	dx := outer.X - inner.X
	dz := outer.Z - inner.Z
	length := float32(math.Sqrt(float64(dx*dx + dz*dz)))
	if length <= 0 {
		return
	}

	yaw := float32(math.Atan2(float64(dx), float64(dz)) * 180 / math.Pi)
	canvas.Scoped(c, func() {
		c.Translate((inner.X+outer.X)/2, y, (inner.Z+outer.Z)/2)
		c.Rotate(yaw, 0, 1, 0)
		c.SetColor(col)
		c.Box(thickness, thickness, length)
	})
}
