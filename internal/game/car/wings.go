package car

import "github.com/Bruno48Ferreira/formulap2/internal/engine/canvas"

// Front wing layout.
const (
	frontMainSpanFactor = 1.30
	frontMainDepth      = 0.85
	flapThick           = 0.025
	flapDepth           = 0.45
	flapMargin          = 0.03
	flapsPerSide        = 4

	endplateHeight = 0.22
	endplateDepth  = 0.65
	endplateThick  = 0.06
	endplateToeOut = 6.0
)

// DRSOpenAngle is the rear flap angle in degrees when DRS is open.
const DRSOpenAngle = 22.0

// Flap describes one front wing flap.
type Flap struct {
	CenterX, Y, Z float32
	Span, Depth   float32
	Attack        float32 // degrees about X
	Sweep         float32 // degrees about Z
}

// FrontMainSpan returns the span of the front wing main plane.
func (a *Assembler) FrontMainSpan() float32 {
	return a.dims.Width * frontMainSpanFactor
}

// FrontFlap returns the layout of flap i (0 innermost) on the given side.
// The flap is placed so that it never reaches past the main plane edge.
func (a *Assembler) FrontFlap(side float32, i int) Flap {
	baseY := a.dims.FloorY()
	baseZ := a.dims.FrontWingZ()
	mainSpan := a.FrontMainSpan()

	t := float32(i) / float32(flapsPerSide-1)
	span := mainSpan * 0.32 * (1 - 0.10*float32(i))

	return Flap{
		CenterX: side * (mainSpan/2 - flapMargin - span/2),
		Y:       baseY + 0.03 + 0.03*float32(i),
		Z:       baseZ + 0.05 + 0.06*float32(i),
		Span:    span,
		Depth:   flapDepth,
		Attack:  -8 - 6*t,
		Sweep:   4 * side * t,
	}
}

// frontWing draws the main plane, four flaps per side, the canards and the endplates.
func (a *Assembler) frontWing(c canvas.Canvas) {
	d, p := a.dims, a.pal
	baseY := d.FloorY()
	baseZ := d.FrontWingZ()
	mainSpan := a.FrontMainSpan()

	box(c, p.BlackMain, 0, baseY, baseZ, mainSpan, 0.05, frontMainDepth)

	for _, side := range sides {
		for i := 0; i < flapsPerSide; i++ {
			f := a.FrontFlap(side, i)
			canvas.Scoped(c, func() {
				c.Translate(f.CenterX, f.Y, f.Z)
				c.Rotate(f.Sweep, 0, 0, 1)
				c.Rotate(f.Attack, 1, 0, 0)
				c.SetColor(p.PetronasTeal)
				c.Box(f.Span, flapThick, f.Depth)
			})
		}
	}

	for i := 0; i < 2; i++ {
		fi := float32(i)
		tiltedBox(c, p.PetronasTeal, 0, baseY+0.02+fi*0.02, baseZ+0.10+fi*0.16, -10, axisX,
			d.Width*0.45, flapThick, 0.35)
	}

	for _, side := range sides {
		a.frontEndplate(c, side, mainSpan)
	}
}

// frontEndplate draws one endplate, toed out, with a light teal top stripe.
func (a *Assembler) frontEndplate(c canvas.Canvas, side, mainSpan float32) {
	p := a.pal
	x := side * (mainSpan/2 - endplateThick/2)
	y := a.dims.FloorY() + endplateHeight/2
	z := a.dims.FrontWingZ() + 0.10

	tiltedBox(c, p.BlackMain, x, y, z, endplateToeOut*side, axisY, endplateThick, endplateHeight, endplateDepth)
	tiltedBox(c, p.PetronasLight, x, y+endplateHeight/2+0.01, z+endplateDepth*0.10, endplateToeOut*side, axisY,
		endplateThick*1.02, 0.03, endplateDepth*0.50)
}

// rearWing draws the endplates, the pylon, the main plane and the DRS flap.
func (a *Assembler) rearWing(c canvas.Canvas, drsOpen bool) {
	d, p := a.dims, a.pal
	r := d.WheelRadius
	wingZ := d.RearWingZ()
	width := d.Width * 0.95

	for _, side := range sides {
		box(c, p.BlackMain, side*(width/2-0.03), r+0.60, wingZ, 0.06, 0.80, 0.18)
		box(c, p.PetronasTeal, side*(width/2-0.025), r+0.85, wingZ+0.02, 0.02, 0.30, 0.20)
	}

	box(c, p.BlackMain, 0, r+0.60, d.RearAxleZ()+0.25, 0.10, 0.75, 0.12)
	box(c, p.BlackMain, 0, r+1.00, wingZ, width, 0.16, 0.35)

	// The flap hinges on its leading edge, a quarter metre ahead of its centre.
	var angle float32
	if drsOpen {
		angle = DRSOpenAngle
	}
	const pivotDZ = -0.25
	cy, cz := r+1.05, wingZ+0.15
	canvas.Scoped(c, func() {
		c.Translate(0, cy, cz+pivotDZ)
		c.Rotate(angle, 1, 0, 0)
		c.Translate(0, 0, -pivotDZ)
		c.SetColor(p.PetronasTeal)
		c.Box(width-0.10, 0.12, 0.28)
	})
}
