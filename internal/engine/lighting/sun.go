// Package lighting provides the directional light used to shade flat-coloured parts.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light described by its position in the sky.
type Sun struct {
	Azimuth   float32 // degrees around Y, 0 looks down +Z
	Elevation float32 // degrees above the horizon
	Ambient   float32 // light a face receives when turned fully away, 0..1
}

// DefaultSun is a high afternoon sun behind and to the right of the start line.
func DefaultSun() Sun {
	return Sun{Azimuth: 35, Elevation: 55, Ambient: 0.45}
}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() mgl32.Vec3 {
	return SunDirection(s.Azimuth, s.Elevation)
}

// SunDirection converts azimuth and elevation angles in degrees to a unit vector.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := float64(azimuth) * math.Pi / 180
	el := float64(elevation) * math.Pi / 180

	return mgl32.Vec3{
		float32(math.Cos(el) * math.Sin(az)),
		float32(math.Sin(el)),
		float32(math.Cos(el) * math.Cos(az)),
	}
}

// Shade returns the brightness factor for a surface normal. It mirrors the
// flat fragment shader: ambient plus the clamped diffuse term.
func (s Sun) Shade(normal mgl32.Vec3) float32 {
	if normal.Len() == 0 {
		return s.Ambient
	}
	d := normal.Normalize().Dot(s.Direction())
	if d < 0 {
		d = 0
	}
	return s.Ambient + (1-s.Ambient)*d
}
