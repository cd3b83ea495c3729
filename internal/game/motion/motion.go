// Package motion drives the car along the track: steering, the automatic
// speed profile, wheel rolling and the DRS flag.
package motion

import (
	"math"

	"go.uber.org/zap"

	"github.com/Bruno48Ferreira/formulap2/internal/engine/input"
	"github.com/Bruno48Ferreira/formulap2/internal/logger"
)

// Phase is the run state of the animation.
type Phase int

const (
	Idle Phase = iota
	Running
	Finished
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Fractions of MaxDistance that split the automatic profile.
const (
	cruiseFraction  = 0.5
	brakingFraction = 0.8

	cruiseAccelFactor = 0.3
	bleedBrakeFactor  = 0.1
)

// Params are the fixed tuning values of the controller.
type Params struct {
	MaxSpeed    float64 // m/s
	Accel       float64 // m/s²
	BrakeAccel  float64 // m/s²
	MaxDistance float64 // m
	SteerRate   float64 // degrees per second
	SteerLimit  float64 // degrees
	WheelRadius float64 // m
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		MaxSpeed:    50,
		Accel:       25,
		BrakeAccel:  40,
		MaxDistance: 1200,
		SteerRate:   40,
		SteerLimit:  20,
		WheelRadius: 0.40,
	}
}

// State is the car's kinematic state. PositionZ decreases as the car moves forward.
type State struct {
	PositionZ      float64
	Speed          float64
	TravelDistance float64
	WheelAngle     float64 // degrees, unbounded
	SteerAngle     float64 // degrees
	DRSOpen        bool
	Phase          Phase
}

// Controller owns a State and advances it once per tick.
type Controller struct {
	params Params
	state  State
	log    *zap.Logger
}

// NewController creates a controller at rest in the Idle phase.
func NewController(p Params) *Controller {
	return &Controller{
		params: p,
		log:    logger.Named("motion"),
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// SetState replaces the current state.
func (c *Controller) SetState(s State) {
	c.state = s
}

// Update advances the state by dt seconds using one input snapshot.
// A negative or non-finite dt is a zero-length tick; edge events still apply.
func (c *Controller) Update(dt float64, in input.Snapshot) State {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	toggles := in.Count(input.EventToggleAnimation)
	for i := 0; i < toggles; i++ {
		c.toggleRunning()
	}

	c.steer(dt, in)

	s := &c.state
	p := c.params

	if s.Phase == Running {
		if in.Held(input.KeyAccelerate) {
			s.Speed += p.Accel * dt
		}
		if in.Held(input.KeyBrake) {
			s.Speed -= p.BrakeAccel * dt
		}
		c.profile(dt)
	}

	s.Speed = clamp(s.Speed, 0, p.MaxSpeed)

	step := s.Speed * dt
	s.PositionZ -= step
	s.TravelDistance += step

	if p.WheelRadius > 0 {
		s.WheelAngle += step / (2 * math.Pi * p.WheelRadius) * 360
	}

	if n := in.Count(input.EventToggleDRS); n%2 == 1 {
		s.DRSOpen = !s.DRSOpen
		c.log.Info("DRS toggled", zap.Bool("open", s.DRSOpen))
	}

	return c.state
}

func (c *Controller) toggleRunning() {
	switch c.state.Phase {
	case Idle:
		c.setPhase(Running)
	case Running:
		c.state.Speed = 0
		c.setPhase(Idle)
	}
}

func (c *Controller) setPhase(p Phase) {
	c.log.Info("phase changed",
		zap.Stringer("from", c.state.Phase),
		zap.Stringer("to", p),
		zap.Float64("travel", c.state.TravelDistance))
	c.state.Phase = p
}

func (c *Controller) steer(dt float64, in input.Snapshot) {
	delta := 0.0
	if in.Held(input.KeyLeft) {
		delta += c.params.SteerRate * dt
	}
	if in.Held(input.KeyRight) {
		delta -= c.params.SteerRate * dt
	}
	angle := c.state.SteerAngle + delta
	if math.IsNaN(angle) {
		// Straight ahead rather than full lock.
		angle = 0
	}
	c.state.SteerAngle = clamp(angle, -c.params.SteerLimit, c.params.SteerLimit)
}

// profile applies the automatic accelerate, cruise and brake segments.
func (c *Controller) profile(dt float64) {
	s := &c.state
	p := c.params

	f := 1.0
	if p.MaxDistance > 0 {
		f = s.TravelDistance / p.MaxDistance
	}

	switch {
	case f < cruiseFraction:
		s.Speed += p.Accel * dt
	case f < brakingFraction:
		if s.Speed < p.MaxSpeed {
			s.Speed += p.Accel * cruiseAccelFactor * dt
		} else {
			s.Speed -= p.BrakeAccel * bleedBrakeFactor * dt
		}
	default:
		s.Speed -= p.BrakeAccel * dt
		if s.Speed < 0 {
			s.Speed = 0
			c.setPhase(Finished)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
