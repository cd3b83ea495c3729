package car

import "github.com/Bruno48Ferreira/formulap2/internal/engine/canvas"

const (
	chassisHeight = 0.32
	cockpitHeight = 0.30

	sidepodHeight = 0.45
	sidepodWidth  = 0.70

	airboxWidth  = 0.50
	airboxHeight = 0.35
	airboxLen    = 0.55
)

// Fractions of the front-to-rear axle span. See Dimensions.SpanZ.
const (
	chassisSplit = 0.375
	chassisEnd   = 0.945

	cockpitAt  = 0.36
	cockpitLen = 0.35

	airboxAt = 0.47

	finStart = 0.53
	finEnd   = 1.08

	sidepodAt       = 0.58
	sidepodLen      = 0.50
	undercutAt      = 0.47
	sidepodStripeAt = 0.57
)

// extent returns the centre and length of the segment [from, to].
func extent(from, to float32) (z, length float32) {
	return (from + to) / 2, to - from
}

// floor draws the plank, the stepped floor sections, the teal edges and the diffuser.
func (a *Assembler) floor(c canvas.Canvas) {
	d, p := a.dims, a.pal
	baseY := d.FloorY()
	front, rear := d.FrontAxleZ(), d.RearAxleZ()

	box(c, p.PlankBrown, 0, baseY-d.PlankThick/2, d.SpanZ(0.53), d.Width*0.25, d.PlankThick, d.Wheelbase*1.3)

	// Floor sections: wide under the inlets, widest under the sidepods, tapering to the rear.
	frontZ, frontLen := extent(front+0.25, d.SpanZ(0.57))
	box(c, p.BlackPlank, 0, baseY, frontZ, d.Width*1.05, d.PlankThick, frontLen)

	midWidth := d.Width * 1.15
	midZ, midLen := extent(d.SpanZ(0.39), d.SpanZ(0.92))
	box(c, p.BlackPlank, 0, baseY, midZ, midWidth, d.PlankThick, midLen)

	rearWidth := d.Width * 0.90
	rearZ, rearLen := extent(d.SpanZ(0.72), rear+0.4)
	box(c, p.BlackPlank, 0, baseY, rearZ, rearWidth, d.PlankThick, rearLen)

	const edgeWidth = 0.06
	for _, side := range sides {
		x := side * (midWidth/2 - edgeWidth/2)
		box(c, p.PetronasTeal, x, baseY+0.001, midZ, edgeWidth, 0.01, midLen*0.85)
	}

	tiltedBox(c, p.BlackPlank, 0, baseY+0.05, rear+0.45, -12, axisX, rearWidth*0.95, d.PlankThick, 0.6)
}

// chassis draws the monocoque front block and the engine cover block. The two
// blocks meet at chassisSplit whatever the wheelbase.
func (a *Assembler) chassis(c canvas.Canvas) {
	d, p := a.dims, a.pal
	y := d.BodyBaseY() + chassisHeight/2
	split := d.SpanZ(chassisSplit)

	z, length := extent(d.FrontAxleZ()-0.75, split)
	box(c, p.BlackMain, 0, y, z, d.Width*0.55, chassisHeight, length)

	z, length = extent(split, d.SpanZ(chassisEnd))
	box(c, p.BlackMain, 0, y, z, d.Width*0.75, chassisHeight, length)
}

// nose draws the cape, the mid-section, the tip, the bridge between them, the wing
// pillars and the teal stripe underneath.
func (a *Assembler) nose(c canvas.Canvas) {
	d, p := a.dims, a.pal
	baseY := d.BodyBaseY()
	wingZ := d.FrontWingZ()

	box(c, p.BlackMain, 0, baseY-0.02, wingZ+0.50, d.Width*0.55, 0.04, 0.90)

	const midH = 0.22
	box(c, p.BlackMain, 0, baseY+midH/2+0.03, d.FrontAxleZ()+0.25, d.Width*0.26, midH, 1.10)

	const tipH = 0.20
	tipWidth := d.Width * 0.18
	box(c, p.BlackMain, 0, baseY+tipH/2-0.02, wingZ+0.70, tipWidth, tipH, 0.95)

	// Bridge fairs the low tip into the taller mid-section.
	tiltedBox(c, p.BlackMain, 0, baseY+0.19, wingZ+0.95, 6, axisX, d.Width*0.22, 0.08, 0.55)

	for _, side := range sides {
		box(c, p.BlackMain, side*(tipWidth/2-0.03), baseY+0.05, wingZ+0.65, 0.06, 0.16, 0.35)
	}

	box(c, p.PetronasTeal, 0, baseY-0.03, wingZ+0.55, d.Width*0.40, 0.02, 0.70)
}

// cockpitTopY is the height of the cockpit tub's upper surface.
func (a *Assembler) cockpitTopY() float32 {
	return a.dims.BodyBaseY() + chassisHeight + cockpitHeight
}

// cockpitZ returns the centre and length of the cockpit tub.
func (a *Assembler) cockpitZ() (z, length float32) {
	return a.dims.SpanZ(cockpitAt), a.dims.Wheelbase * cockpitLen
}

// cockpit draws the tub, its silver side stripes, the lid, the opening, the
// headrest and the mirrors.
func (a *Assembler) cockpit(c canvas.Canvas) {
	d, p := a.dims, a.pal
	width := d.Width * 0.52
	centerY := d.BodyBaseY() + chassisHeight + cockpitHeight/2
	topY := a.cockpitTopY()
	z, length := a.cockpitZ()

	box(c, p.BlackMain, 0, centerY, z, width, cockpitHeight, length)

	for _, side := range sides {
		box(c, p.SilverStripe, side*(width/2-0.02), centerY, z, 0.03, 0.06, length*0.64)
	}

	box(c, p.DarkGrey, 0, topY+0.01, z, width*1.05, 0.02, length*1.1)

	// Opening sits proud of the lid so the two never share a plane.
	box(c, p.BlackMain, 0, topY+0.025, z-length*0.08, width*0.55, 0.01, length*0.6)
	box(c, p.PetronasTeal, 0, topY+0.07, z+length*0.28, width*0.60, 0.10, 0.18)

	mirrorZ := z - length*0.36
	for _, side := range sides {
		a.mirror(c, side, width, topY, mirrorZ)
	}
}

// mirror draws one rear-view mirror on a short stalk.
func (a *Assembler) mirror(c canvas.Canvas, side, cockpitWidth, topY, z float32) {
	p := a.pal
	x := side * (cockpitWidth/2 + 0.08)

	tiltedBox(c, p.BlackMain, side*(cockpitWidth/2), topY+0.04, z, -20*side, axisZ, 0.16, 0.02, 0.03)
	box(c, p.BlackMain, x, topY+0.08, z, 0.16, 0.07, 0.05)
	box(c, p.SilverStripe, x, topY+0.08, z+0.026, 0.14, 0.05, 0.002)
}

// haloY is the reference height of the halo.
func (a *Assembler) haloY() float32 {
	return a.cockpitTopY() + 0.06
}

// halo draws the centre post, the two side posts and the top arc.
func (a *Assembler) halo(c canvas.Canvas) {
	d, p := a.dims, a.pal
	y := a.haloY()
	width := d.Width * 0.52
	z, length := a.cockpitZ()

	box(c, p.BlackMain, 0, y-0.18, z-length*0.16, 0.08, 0.30, 0.08)
	for _, side := range sides {
		box(c, p.BlackMain, side*(width/2-0.06), y-0.10, z+length*0.20, 0.08, 0.40, 0.08)
	}
	box(c, p.BlackMain, 0, y+0.04, z+length*0.12, width+0.30, 0.08, 0.10)
}

// airbox draws the intake base and its red top.
func (a *Assembler) airbox(c canvas.Canvas) {
	p := a.pal
	y := a.haloY() + 0.18
	z := a.dims.SpanZ(airboxAt)

	box(c, p.BlackMain, 0, y, z, airboxWidth, airboxHeight*0.6, airboxLen)
	box(c, p.IneosRed, 0, y+airboxHeight*0.35, z, airboxWidth*0.85, airboxHeight*0.35, airboxLen*0.9)
}

// engineFin draws the shark fin along the engine cover.
func (a *Assembler) engineFin(c canvas.Canvas) {
	d := a.dims
	z, length := extent(d.SpanZ(finStart), d.SpanZ(finEnd))
	box(c, a.pal.BlackMain, 0, a.haloY()+0.05, z, 0.10, 0.70, length)
}

// sidepod draws one sidepod with its undercut and livery stripes.
func (a *Assembler) sidepod(c canvas.Canvas, side float32) {
	d, p := a.dims, a.pal
	baseY := d.BodyBaseY()
	x := side * (d.Width/2 - sidepodWidth/2)
	y := baseY + sidepodHeight/2
	length := d.Wheelbase * sidepodLen

	box(c, p.BlackMain, x, y, d.SpanZ(sidepodAt), sidepodWidth, sidepodHeight, length)
	box(c, p.BlackMain, x, y-0.18, d.SpanZ(undercutAt), sidepodWidth*0.9, sidepodHeight*0.6, length*0.8)

	stripeX := d.Width/2 - sidepodWidth
	stripeZ := d.SpanZ(sidepodStripeAt)
	box(c, p.PetronasTeal, side*(stripeX+0.05), baseY+0.15, stripeZ, 0.05, 0.18, length*0.78)
	box(c, p.WhiteSponsor, side*(stripeX+0.055), baseY+0.26, stripeZ, 0.01, 0.03, length*0.75)
}
