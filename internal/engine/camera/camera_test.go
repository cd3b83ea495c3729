package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaults(t *testing.T) {
	c := NewOrbitCamera(DefaultSettings())
	if c.Yaw != 0 || c.Pitch != -20 || c.Distance != 10 {
		t.Errorf("unexpected defaults: yaw=%f pitch=%f dist=%f", c.Yaw, c.Pitch, c.Distance)
	}
	if c.Target != (mgl32.Vec3{0, 0.8, 0}) {
		t.Errorf("unexpected target %v", c.Target)
	}
	// Pitch -20 at distance 10 puts the eye below the floor guard.
	if c.Eye.Y() != 1.0 {
		t.Errorf("expected eye clamped to 1.0, got %f", c.Eye.Y())
	}
}

func TestDragConvention(t *testing.T) {
	c := NewOrbitCamera(DefaultSettings())
	c.HandleDrag(10, 0)
	if math.Abs(c.Yaw-(-1.5)) > 1e-9 {
		t.Errorf("moving right should decrease yaw, got %f", c.Yaw)
	}
	c.HandleDrag(0, -100)
	if math.Abs(c.Pitch-(-5)) > 1e-9 {
		t.Errorf("moving up should increase pitch, got %f", c.Pitch)
	}
}

func TestZoom(t *testing.T) {
	c := NewOrbitCamera(DefaultSettings())
	c.HandleZoom(2)
	if c.Distance != 8 {
		t.Errorf("expected distance 8, got %f", c.Distance)
	}
	c.HandleZoom(100)
	if c.Distance != 5 {
		t.Errorf("expected distance clamped to 5, got %f", c.Distance)
	}
	c.HandleZoom(-100)
	if c.Distance != 30 {
		t.Errorf("expected distance clamped to 30, got %f", c.Distance)
	}
}

func TestEyePosition(t *testing.T) {
	s := DefaultSettings()
	s.Pitch = 30
	s.Yaw = 90
	c := NewOrbitCamera(s)
	c.Follow(-100)

	pr := 30 * math.Pi / 180
	want := mgl32.Vec3{
		float32(10 * math.Cos(pr)),
		float32(0.8 + 10*math.Sin(pr)),
		-100,
	}
	if !c.Eye.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("eye = %v, want %v", c.Eye, want)
	}
	if c.Target != (mgl32.Vec3{0, 0.8, -100}) {
		t.Errorf("target = %v", c.Target)
	}
}

func TestInvariantsUnderExtremeInput(t *testing.T) {
	c := NewOrbitCamera(DefaultSettings())
	inputs := []struct{ dx, dy, scroll float64 }{
		{1e6, 1e6, 1e6},
		{-1e6, -1e6, -1e6},
		{3, -7, 0.5},
		{0, 533, -2},
		{math.NaN(), math.NaN(), math.NaN()},
		{math.Inf(1), math.Inf(-1), math.Inf(1)},
	}
	for i, in := range inputs {
		c.Update(in.dx, in.dy, in.scroll, float64(-i)*50)
		if c.Pitch < -80 || c.Pitch > 80 {
			t.Errorf("input %d: pitch %f out of range", i, c.Pitch)
		}
		if c.Distance < 5 || c.Distance > 30 {
			t.Errorf("input %d: distance %f out of range", i, c.Distance)
		}
		if c.Eye.Y() < 1.0 {
			t.Errorf("input %d: eye.y %f below floor", i, c.Eye.Y())
		}
	}
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera(DefaultSettings())
	c.Follow(-42)
	v := c.ViewMatrix()

	// The target lies straight ahead on the view -Z axis.
	p := v.Mul4x1(c.Target.Vec4(1))
	if math.Abs(float64(p.X())) > 1e-4 || math.Abs(float64(p.Y())) > 1e-4 {
		t.Errorf("target not centred in view: %v", p)
	}
	if p.Z() >= 0 {
		t.Errorf("target should be in front of the camera: %v", p)
	}
}

func TestProjectionViewport(t *testing.T) {
	p := Projection{FOV: 60, Near: 1, Far: 5000}
	p.SetViewport(1280, 720)
	if math.Abs(float64(p.Aspect)-1280.0/720.0) > 1e-6 {
		t.Errorf("unexpected aspect %f", p.Aspect)
	}
	p.SetViewport(0, 720)
	if math.Abs(float64(p.Aspect)-1280.0/720.0) > 1e-6 {
		t.Error("degenerate viewport should be ignored")
	}
	want := mgl32.Perspective(mgl32.DegToRad(60), p.Aspect, 1, 5000)
	if p.Matrix() != want {
		t.Error("projection matrix mismatch")
	}
}
