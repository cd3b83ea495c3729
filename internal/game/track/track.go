// Package track builds the static environment the car drives on: a long straight
// of asphalt with white edges and a dashed centre line, laid over grass.
package track

import "github.com/Bruno48Ferreira/formulap2/internal/engine/canvas"

// Layout describes the straight. Layers sit at well separated heights so
// coplanar surfaces never fight for depth.
type Layout struct {
	MinZ, MaxZ float32

	GrassWidth float32
	GrassY     float32

	AsphaltWidth float32
	AsphaltY     float32

	EdgeWidth float32
	EdgeY     float32

	LineWidth float32
	DashLen   float32
	DashGap   float32
	LineY     float32
}

// DefaultLayout returns a 4 km straight centred on the origin.
func DefaultLayout() Layout {
	return Layout{
		MinZ:         -2000,
		MaxZ:         2000,
		GrassWidth:   60,
		GrassY:       -0.1,
		AsphaltWidth: 10,
		AsphaltY:     0,
		EdgeWidth:    0.2,
		EdgeY:        0.05,
		LineWidth:    0.25,
		DashLen:      4,
		DashGap:      4,
		LineY:        0.06,
	}
}

// Colours.
var (
	Grass   = canvas.Color{R: 0.0, G: 0.4, B: 0.0}
	Asphalt = canvas.Color{R: 0.15, G: 0.15, B: 0.15}
	Edge    = canvas.Color{R: 0.9, G: 0.9, B: 0.9}
	Line    = canvas.Color{R: 1.0, G: 1.0, B: 1.0}
)

// DashCount returns the number of centre line dashes between MinZ and MaxZ.
func (l Layout) DashCount() int {
	step := l.DashLen + l.DashGap
	if step <= 0 || l.DashLen <= 0 || l.MaxZ <= l.MinZ {
		return 0
	}
	n := 0
	for z := l.MinZ; z < l.MaxZ; z += step {
		n++
	}
	return n
}

// Build draws the environment onto c.
func Build(c canvas.Canvas, l Layout) {
	length := l.MaxZ - l.MinZ
	midZ := (l.MinZ + l.MaxZ) / 2

	strip(c, Grass, 0, l.GrassY, midZ, l.GrassWidth, length)
	strip(c, Asphalt, 0, l.AsphaltY, midZ, l.AsphaltWidth, length)

	half := l.AsphaltWidth / 2
	for _, side := range [2]float32{1, -1} {
		strip(c, Edge, side*(half-l.EdgeWidth/2), l.EdgeY, midZ, l.EdgeWidth, length)
	}

	for i, n := 0, l.DashCount(); i < n; i++ {
		z := l.MinZ + float32(i)*(l.DashLen+l.DashGap)
		strip(c, Line, 0, l.LineY, z+l.DashLen/2, l.LineWidth, l.DashLen)
	}
}

func strip(c canvas.Canvas, col canvas.Color, x, y, z, width, depth float32) {
	canvas.Scoped(c, func() {
		c.Translate(x, y, z)
		c.SetColor(col)
		c.Plane(width, depth)
	})
}
