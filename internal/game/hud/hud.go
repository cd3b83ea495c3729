// Package hud builds the on-screen help and status text as an RGBA image.
// The image is regenerated only when its text changes; the renderer uploads
// it as a texture and draws it as a screen-space quad.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Bruno48Ferreira/formulap2/internal/game/motion"
)

const (
	padding     = 8
	lineSpacing = 3
)

var (
	panelColor = color.RGBA{R: 8, G: 10, B: 14, A: 170}
	textColor  = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	// Petronas teal for the status line.
	statusColor = color.RGBA{R: 0, G: 210, B: 190, A: 255}
)

var helpLines = []string{
	"SPACE       start / pause",
	"UP / DOWN   throttle / brake",
	"LEFT/RIGHT  steer",
	"D           toggle DRS",
	"MOUSE       orbit camera",
	"WHEEL       zoom",
	"H           toggle help",
	"F12         screenshot",
	"ESC         quit",
}

// HelpLines returns the key binding reference.
func HelpLines() []string {
	return slices.Clone(helpLines)
}

// StatusLine formats the car state for display.
func StatusLine(s motion.State) string {
	drs := "closed"
	if s.DRSOpen {
		drs = "open"
	}
	return fmt.Sprintf("%3.0f km/h  %-8s  DRS %-6s  steer %+5.1f  %6.0f m",
		s.Speed*3.6, s.Phase, drs, s.SteerAngle, s.TravelDistance)
}

// Overlay holds the current HUD text and its rendered image.
type Overlay struct {
	ShowHelp   bool
	ShowStatus bool

	status string
	lines  []string
	img    *image.RGBA
	dirty  bool
}

// New creates an overlay with the given sections visible.
func New(showHelp, showStatus bool) *Overlay {
	return &Overlay{
		ShowHelp:   showHelp,
		ShowStatus: showStatus,
		dirty:      true,
	}
}

// ToggleHelp shows or hides the key reference.
func (o *Overlay) ToggleHelp() {
	o.ShowHelp = !o.ShowHelp
}

// Update refreshes the text from the car state. It reports whether the
// image changed and must be uploaded again.
func (o *Overlay) Update(s motion.State) bool {
	var lines []string
	if o.ShowStatus {
		lines = append(lines, StatusLine(s))
	}
	if o.ShowHelp {
		lines = append(lines, helpLines...)
	}

	if !o.dirty && slices.Equal(lines, o.lines) {
		return false
	}

	o.lines = lines
	o.dirty = false
	if len(lines) == 0 {
		o.img = nil
		return true
	}

	highlight := -1
	if o.ShowStatus {
		highlight = 0
	}
	o.img = Render(lines, highlight)
	return true
}

// Image returns the last rendered image, or nil when nothing is visible.
func (o *Overlay) Image() *image.RGBA {
	return o.img
}

// Render draws lines onto a translucent panel. The line at index highlight,
// if any, uses the accent colour.
func Render(lines []string, highlight int) *image.RGBA {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil() + lineSpacing

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}

	bounds := image.Rect(0, 0, width+2*padding, len(lines)*lineHeight+2*padding)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(panelColor), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Face: face}
	for i, line := range lines {
		src := textColor
		if i == highlight {
			src = statusColor
		}
		d.Src = image.NewUniform(src)
		d.Dot = fixed.P(padding, padding+i*lineHeight+metrics.Ascent.Ceil())
		d.DrawString(line)
	}
	return img
}
