// Package car assembles the procedural F1 car from primitive shapes.
//
// All geometry is expressed against a handful of reference axes (front and rear
// axle Z, wing Z, wheel-radius ride height), so changing Dimensions rescales the
// whole model consistently. Units are metres; -Z is the front of the car.
package car

import "github.com/Bruno48Ferreira/formulap2/internal/engine/canvas"

// Dimensions holds the overall car measurements.
type Dimensions struct {
	Length      float32
	Width       float32
	Height      float32
	WheelRadius float32
	WheelWidth  float32
	Wheelbase   float32
	PlankThick  float32
}

// DefaultDimensions returns approximate real-world sizes.
func DefaultDimensions() *Dimensions {
	return &Dimensions{
		Length:      5.5,
		Width:       2.0,
		Height:      1.0,
		WheelRadius: 0.40,
		WheelWidth:  0.45,
		Wheelbase:   3.6,
		PlankThick:  0.02,
	}
}

// FrontAxleZ is the Z of the front axle.
func (d *Dimensions) FrontAxleZ() float32 { return -d.Wheelbase / 2 }

// RearAxleZ is the Z of the rear axle.
func (d *Dimensions) RearAxleZ() float32 { return d.Wheelbase / 2 }

// SpanZ is the Z at fraction t of the way from the front axle to the rear axle.
// Body parts between the axles are placed and sized with it so they follow the wheelbase.
func (d *Dimensions) SpanZ(t float32) float32 { return d.FrontAxleZ() + t*d.Wheelbase }

// FrontWingZ is the Z of the front wing main plane.
func (d *Dimensions) FrontWingZ() float32 { return d.FrontAxleZ() - 1.0 }

// RearWingZ is the Z of the rear wing main plane.
func (d *Dimensions) RearWingZ() float32 { return d.RearAxleZ() + 0.7 }

// FloorY is the height of the floor surface.
func (d *Dimensions) FloorY() float32 { return d.WheelRadius - 0.20 }

// BodyBaseY is the height the chassis, nose and sidepods sit on.
func (d *Dimensions) BodyBaseY() float32 { return d.WheelRadius - 0.18 + d.PlankThick }

// WheelOffsetX is the lateral distance from the centre line to a wheel centre.
func (d *Dimensions) WheelOffsetX() float32 { return d.Width/2 - 0.10 }

// Palette holds the livery colours.
type Palette struct {
	BlackMain     canvas.Color
	BlackPlank    canvas.Color
	DarkGrey      canvas.Color
	PetronasTeal  canvas.Color
	PetronasLight canvas.Color
	SilverStripe  canvas.Color
	IneosRed      canvas.Color
	WhiteSponsor  canvas.Color
	PlankBrown    canvas.Color
	Tyre          canvas.Color
	Suspension    canvas.Color
	Rim           canvas.Color
}

// DefaultPalette returns the Mercedes W12 style livery.
func DefaultPalette() *Palette {
	return &Palette{
		BlackMain:     canvas.Color{R: 0.02, G: 0.02, B: 0.03},
		BlackPlank:    canvas.Color{R: 0.03, G: 0.03, B: 0.03},
		DarkGrey:      canvas.Color{R: 0.08, G: 0.08, B: 0.09},
		PetronasTeal:  canvas.Color{R: 0.0, G: 0.78, B: 0.75},
		PetronasLight: canvas.Color{R: 0.3, G: 0.95, B: 0.95},
		SilverStripe:  canvas.Color{R: 0.80, G: 0.80, B: 0.84},
		IneosRed:      canvas.Color{R: 0.65, G: 0.10, B: 0.10},
		WhiteSponsor:  canvas.Color{R: 0.95, G: 0.95, B: 0.95},
		PlankBrown:    canvas.Color{R: 0.18, G: 0.11, B: 0.04},
		Tyre:          canvas.Color{R: 0.02, G: 0.02, B: 0.02},
		Suspension:    canvas.Color{R: 0.03, G: 0.03, B: 0.03},
		Rim:           canvas.Color{R: 0.55, G: 0.56, B: 0.60},
	}
}
