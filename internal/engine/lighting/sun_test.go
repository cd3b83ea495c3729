package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		az, el   float32
		expected mgl32.Vec3
	}{
		{"overhead", 0, 90, mgl32.Vec3{0, 1, 0}},
		{"horizon +Z", 0, 0, mgl32.Vec3{0, 0, 1}},
		{"horizon +X", 90, 0, mgl32.Vec3{1, 0, 0}},
		{"45 up towards -Z", 180, 45, mgl32.Vec3{0, float32(math.Sqrt2 / 2), -float32(math.Sqrt2 / 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.az, tt.el)
			if !got.ApproxEqualThreshold(tt.expected, 1e-5) {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.az, tt.el, got, tt.expected)
			}
			if l := got.Len(); math.Abs(float64(l)-1) > 1e-5 {
				t.Errorf("direction not normalized: %f", l)
			}
		})
	}
}

func TestShade(t *testing.T) {
	s := Sun{Azimuth: 0, Elevation: 90, Ambient: 0.4}

	if got := s.Shade(mgl32.Vec3{0, 1, 0}); math.Abs(float64(got)-1) > 1e-5 {
		t.Errorf("face towards the sun = %f, want 1", got)
	}
	if got := s.Shade(mgl32.Vec3{0, -1, 0}); got != 0.4 {
		t.Errorf("face away = %f, want ambient", got)
	}
	if got := s.Shade(mgl32.Vec3{1, 0, 0}); math.Abs(float64(got)-0.4) > 1e-5 {
		t.Errorf("side face = %f, want ambient", got)
	}
	if got := s.Shade(mgl32.Vec3{}); got != 0.4 {
		t.Errorf("zero normal = %f, want ambient", got)
	}

	d := DefaultSun()
	top, side := d.Shade(mgl32.Vec3{0, 1, 0}), d.Shade(mgl32.Vec3{-1, 0, 0})
	if top <= side {
		t.Errorf("roof should be brighter than the shaded side: %f <= %f", top, side)
	}
}
