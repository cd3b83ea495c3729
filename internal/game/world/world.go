// Package world owns the per-tick simulation: the car's motion, the orbit
// camera and the draw lists for the car and the static environment.
package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Bruno48Ferreira/formulap2/internal/config"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/camera"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/canvas"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/input"
	"github.com/Bruno48Ferreira/formulap2/internal/game/car"
	"github.com/Bruno48Ferreira/formulap2/internal/game/motion"
	"github.com/Bruno48Ferreira/formulap2/internal/game/track"
)

// Config collects the tuning for every part of the world.
type Config struct {
	Motion     motion.Params
	Camera     camera.Settings
	Track      track.Layout
	Dimensions *car.Dimensions
	Palette    *car.Palette
}

// DefaultConfig returns the reference setup.
func DefaultConfig() Config {
	return Config{
		Motion: motion.DefaultParams(),
		Camera: camera.DefaultSettings(),
		Track:  track.DefaultLayout(),
	}
}

// FromConfig maps the loaded configuration onto the world's tuning.
func FromConfig(cfg *config.Config) Config {
	wc := DefaultConfig()

	a := cfg.Animation
	wc.Motion.MaxSpeed = a.MaxSpeed
	wc.Motion.Accel = a.Accel
	wc.Motion.BrakeAccel = a.BrakeAccel
	wc.Motion.MaxDistance = a.MaxDistance
	wc.Motion.SteerRate = a.SteerRate
	wc.Motion.SteerLimit = a.SteerLimit

	c := cfg.Camera
	wc.Camera = camera.Settings{
		Yaw:              c.Yaw,
		Pitch:            c.Pitch,
		Distance:         c.Distance,
		MouseSensitivity: c.MouseSensitivity,
		ZoomStep:         c.ZoomStep,
		MinDistance:      c.MinDistance,
		MaxDistance:      c.MaxDistance,
		PitchLimit:       c.PitchLimit,
		TargetHeight:     c.TargetHeight,
		MinEyeHeight:     c.MinEyeHeight,
	}
	return wc
}

// Frame is the outcome of one tick.
type Frame struct {
	State motion.State
	View  mgl32.Mat4

	Quit       bool
	Screenshot bool
	ToggleHelp bool

	// Resized is set when the window changed size this tick; the last
	// resize of the tick wins.
	Resized bool
	Width   int
	Height  int
}

// World is the viewer's simulation state.
type World struct {
	motion    *motion.Controller
	camera    *camera.OrbitCamera
	assembler *car.Assembler

	env *canvas.Recorder
	car *canvas.Recorder
}

// New creates a world with the car at rest and builds the environment once.
func New(cfg Config) *World {
	asm := car.NewAssembler(cfg.Dimensions, cfg.Palette)

	p := cfg.Motion
	p.WheelRadius = float64(asm.Dimensions().WheelRadius)

	w := &World{
		motion:    motion.NewController(p),
		camera:    camera.NewOrbitCamera(cfg.Camera),
		assembler: asm,
		env:       canvas.NewRecorder(),
		car:       canvas.NewRecorder(),
	}

	track.Build(w.env, cfg.Track)
	w.assemble()
	return w
}

// Step advances the world by one tick.
func (w *World) Step(dt float64, in input.Snapshot) Frame {
	state := w.motion.Update(dt, in)
	w.camera.Update(float64(in.MouseDX), float64(in.MouseDY), float64(in.Scroll()), state.PositionZ)
	w.assemble()

	f := Frame{
		State:      state,
		View:       w.camera.ViewMatrix(),
		Quit:       in.Has(input.EventQuit),
		Screenshot: in.Has(input.EventScreenshot),
		ToggleHelp: in.Count(input.EventToggleHelp)%2 == 1,
	}
	for _, e := range in.Events {
		if e.Type == input.EventWindowResize {
			f.Resized = true
			f.Width, f.Height = e.Width, e.Height
		}
	}
	return f
}

// assemble redraws the car under its world transform.
func (w *World) assemble() {
	s := w.motion.State()

	w.car.Reset()
	canvas.Scoped(w.car, func() {
		w.car.Translate(0, 0, float32(s.PositionZ))
		w.car.Rotate(float32(s.SteerAngle), 0, 1, 0)
		w.assembler.Assemble(w.car, s.WheelAngle, s.DRSOpen)
	})
}

// CarCommands returns the car's draw list from the last tick.
func (w *World) CarCommands() []canvas.Command {
	return w.car.Commands()
}

// Environment returns the static track draw list. It never changes.
func (w *World) Environment() []canvas.Command {
	return w.env.Commands()
}

// State returns the current car state.
func (w *World) State() motion.State {
	return w.motion.State()
}
