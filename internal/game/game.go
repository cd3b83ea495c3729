// Package game implements the viewer's frame loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Bruno48Ferreira/formulap2/internal/config"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/camera"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/clock"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/debug"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/input"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/lighting"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/renderer"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/window"
	"github.com/Bruno48Ferreira/formulap2/internal/game/hud"
	"github.com/Bruno48Ferreira/formulap2/internal/game/world"
	"github.com/Bruno48Ferreira/formulap2/internal/logger"
)

// Title is the window title.
const Title = "FormulaP2 - F1 W12"

const hudMargin = 12

// Game is the main viewer instance.
type Game struct {
	config  *config.Config
	running bool

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Collector
	clock      *clock.Clock
	world      *world.World
	hud        *hud.Overlay
	projection camera.Projection
	screenshot *debug.ScreenshotCapture
}

// New creates the window, GL renderer and world.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("fps_limit", cfg.Graphics.FPSLimit),
	)

	g := &Game{
		config:     cfg,
		input:      input.New(),
		world:      world.New(world.FromConfig(cfg)),
		hud:        hud.New(cfg.HUD.ShowHelp, cfg.HUD.ShowStatus),
		screenshot: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "formulap2"),
		projection: camera.Projection{
			FOV:  cfg.Graphics.FOV,
			Near: cfg.Graphics.Near,
			Far:  cfg.Graphics.Far,
		},
	}

	// Window first, since the renderer needs its GL context.
	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		GrabMouse:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		Sky:    renderer.SkyColor,
		Sun:    lighting.DefaultSun(),
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.projection.SetViewport(width, height)

	logger.Info("viewer initialized",
		zap.Int("environment_parts", len(g.world.Environment())),
		zap.Int("car_parts", len(g.world.CarCommands())),
	)
	return g, nil
}

// Run drives the loop until a quit event. Each tick: clock, input, world, draw, present.
func (g *Game) Run() error {
	g.running = true
	g.clock = clock.New(g.config.Graphics.FPSLimit)
	fps := clock.NewCounter(time.Second)

	logger.Info("starting frame loop")

	for g.running {
		dt := g.clock.Tick()

		g.window.PollInput(g.input)
		frame := g.world.Step(dt, g.input.Snapshot())

		if frame.Resized {
			g.renderer.Resize(frame.Width, frame.Height)
			g.projection.SetViewport(frame.Width, frame.Height)
		}
		if frame.ToggleHelp {
			g.hud.ToggleHelp()
		}

		g.render(frame)

		if frame.Screenshot {
			g.capture()
		}

		g.window.SwapBuffers()

		if rate, ok := fps.Add(dt); ok {
			stats := g.renderer.Stats()
			logger.Debug("fps",
				zap.Float64("fps", rate),
				zap.Int("draw_calls", stats.DrawCalls),
				zap.Int("skipped", stats.Skipped),
				zap.Float64("speed_kmh", frame.State.Speed*3.6),
				zap.Stringer("phase", frame.State.Phase),
			)
		}

		// Quit takes effect after the tick that received it.
		if frame.Quit {
			g.running = false
		}
	}

	logger.Info("frame loop stopped", zap.Float64("travel", g.world.State().TravelDistance))
	return nil
}

func (g *Game) render(frame world.Frame) {
	g.renderer.Begin(frame.View, g.projection.Matrix())
	g.renderer.Draw(g.world.Environment())
	g.renderer.Draw(g.world.CarCommands())

	if g.hud.Update(frame.State) {
		g.renderer.SetOverlay(g.hud.Image())
	}
	g.renderer.DrawOverlay(hudMargin, hudMargin)
	g.renderer.End()
}

func (g *Game) capture() {
	pixels, w, h := g.renderer.ReadPixels()
	if _, err := g.screenshot.CaptureFromPixels(pixels, w, h); err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
	}
}

// Close cleans up viewer resources.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
