package window

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Bruno48Ferreira/formulap2/internal/engine/input"
	"github.com/Bruno48Ferreira/formulap2/internal/logger"
)

// Level-sensitive bindings.
var heldKeys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_LEFT:  input.KeyLeft,
	sdl.SCANCODE_RIGHT: input.KeyRight,
	sdl.SCANCODE_UP:    input.KeyAccelerate,
	sdl.SCANCODE_DOWN:  input.KeyBrake,
}

// Edge-triggered bindings.
var edgeKeys = map[sdl.Scancode]input.EventType{
	sdl.SCANCODE_SPACE:  input.EventToggleAnimation,
	sdl.SCANCODE_D:      input.EventToggleDRS,
	sdl.SCANCODE_H:      input.EventToggleHelp,
	sdl.SCANCODE_F12:    input.EventScreenshot,
	sdl.SCANCODE_ESCAPE: input.EventQuit,
}

// PollInput drains the SDL event queue into the collector.
func (w *Window) PollInput(c *input.Collector) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				width, height := w.DrawableSize()
				logger.Debug("window resized", zap.Int("width", width), zap.Int("height", height))
				c.Push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				c.ReleaseAll()
			}

		case *sdl.KeyboardEvent:
			down := e.Type == sdl.KEYDOWN
			if k, ok := heldKeys[e.Keysym.Scancode]; ok {
				c.SetHeld(k, down)
			}
			if t, ok := edgeKeys[e.Keysym.Scancode]; ok && down {
				c.Trigger(t, e.Repeat != 0)
			}

		case *sdl.MouseMotionEvent:
			c.AddMouse(float32(e.XRel), float32(e.YRel))

		case *sdl.MouseWheelEvent:
			amount := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				amount = -amount
			}
			c.Push(input.Event{Type: input.EventScroll, Scroll: amount})
		}
	}
}
