// Package camera provides the orbit camera that follows the car.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings holds orbit camera tuning. Angles are in degrees.
type Settings struct {
	Yaw              float64
	Pitch            float64
	Distance         float64
	MouseSensitivity float64
	ZoomStep         float64
	MinDistance      float64
	MaxDistance      float64
	PitchLimit       float64
	TargetHeight     float64
	MinEyeHeight     float64
}

// DefaultSettings returns the reference camera setup.
func DefaultSettings() Settings {
	return Settings{
		Yaw:              0,
		Pitch:            -20,
		Distance:         10,
		MouseSensitivity: 0.15,
		ZoomStep:         1,
		MinDistance:      5,
		MaxDistance:      30,
		PitchLimit:       80,
		TargetHeight:     0.8,
		MinEyeHeight:     1.0,
	}
}

// OrbitCamera orbits around a target on the car's centre line.
type OrbitCamera struct {
	// Spherical coordinates, degrees
	Yaw      float64
	Pitch    float64
	Distance float64

	Eye    mgl32.Vec3
	Target mgl32.Vec3

	settings Settings
}

// NewOrbitCamera creates a camera looking at the origin.
func NewOrbitCamera(s Settings) *OrbitCamera {
	c := &OrbitCamera{
		Yaw:      s.Yaw,
		Pitch:    s.Pitch,
		Distance: s.Distance,
		settings: s,
	}
	c.clamp()
	c.Follow(0)
	return c
}

// HandleDrag applies relative mouse motion. Moving right decreases yaw,
// moving down decreases pitch.
func (c *OrbitCamera) HandleDrag(dx, dy float64) {
	c.Yaw -= dx * c.settings.MouseSensitivity
	c.Pitch -= dy * c.settings.MouseSensitivity
	c.clamp()
}

// HandleZoom applies a scroll amount. Positive values move closer.
func (c *OrbitCamera) HandleZoom(amount float64) {
	c.Distance -= amount * c.settings.ZoomStep
	c.clamp()
}

// Update applies one tick of input and recomputes the eye for a car at positionZ.
func (c *OrbitCamera) Update(dx, dy, scroll, positionZ float64) {
	c.HandleDrag(dx, dy)
	c.HandleZoom(scroll)
	c.Follow(positionZ)
}

// Follow recomputes Target and Eye for a car at positionZ.
func (c *OrbitCamera) Follow(positionZ float64) {
	c.clamp()

	tx, ty, tz := 0.0, c.settings.TargetHeight, positionZ

	yr := c.Yaw * math.Pi / 180
	pr := c.Pitch * math.Pi / 180
	ex := tx + c.Distance*math.Cos(pr)*math.Sin(yr)
	ey := ty + c.Distance*math.Sin(pr)
	ez := tz + c.Distance*math.Cos(pr)*math.Cos(yr)

	if ey < c.settings.MinEyeHeight {
		ey = c.settings.MinEyeHeight
	}

	c.Target = mgl32.Vec3{float32(tx), float32(ty), float32(tz)}
	c.Eye = mgl32.Vec3{float32(ex), float32(ey), float32(ez)}
}

// ViewMatrix returns the world to view transform with world up.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitCamera) clamp() {
	if math.IsNaN(c.Yaw) || math.IsInf(c.Yaw, 0) {
		c.Yaw = c.settings.Yaw
	}
	c.Pitch = clamp(c.Pitch, -c.settings.PitchLimit, c.settings.PitchLimit)
	c.Distance = clamp(c.Distance, c.settings.MinDistance, c.settings.MaxDistance)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Projection holds perspective parameters.
type Projection struct {
	FOV    float32 // vertical, degrees
	Near   float32
	Far    float32
	Aspect float32
}

// SetViewport updates the aspect ratio from a framebuffer size. Degenerate sizes are ignored.
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.Aspect = float32(width) / float32(height)
}

// Matrix returns the perspective projection.
func (p Projection) Matrix() mgl32.Mat4 {
	aspect := p.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), aspect, p.Near, p.Far)
}
