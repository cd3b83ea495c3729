// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	HUD       HUDConfig       `yaml:"hud"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// AnimationConfig holds the car's speed profile and steering.
type AnimationConfig struct {
	MaxSpeed    float64 `yaml:"max_speed"`
	Accel       float64 `yaml:"accel"`
	BrakeAccel  float64 `yaml:"brake_accel"`
	MaxDistance float64 `yaml:"max_distance"`
	SteerRate   float64 `yaml:"steer_rate"`
	SteerLimit  float64 `yaml:"steer_limit"`
}

// CameraConfig holds orbit camera settings. Angles are in degrees.
type CameraConfig struct {
	Yaw              float64 `yaml:"yaw"`
	Pitch            float64 `yaml:"pitch"`
	Distance         float64 `yaml:"distance"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	ZoomStep         float64 `yaml:"zoom_step"`
	MinDistance      float64 `yaml:"min_distance"`
	MaxDistance      float64 `yaml:"max_distance"`
	PitchLimit       float64 `yaml:"pitch_limit"`
	TargetHeight     float64 `yaml:"target_height"`
	MinEyeHeight     float64 `yaml:"min_eye_height"`
}

// HUDConfig holds overlay settings.
type HUDConfig struct {
	ShowHelp   bool `yaml:"show_help"`
	ShowStatus bool `yaml:"show_status"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
			FOV:        60,
			Near:       1,
			Far:        5000,
		},
		Animation: AnimationConfig{
			MaxSpeed:    50,
			Accel:       25,
			BrakeAccel:  40,
			MaxDistance: 1200,
			SteerRate:   40,
			SteerLimit:  20,
		},
		Camera: CameraConfig{
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
		},
		HUD: HUDConfig{
			ShowHelp:   true,
			ShowStatus: true,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks ranges that would otherwise break the viewer at run time.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Graphics.FPSLimit < 0:
		return fmt.Errorf("%w: fps_limit %d", ErrInvalid, c.Graphics.FPSLimit)
	case c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180:
		return fmt.Errorf("%w: fov %.1f", ErrInvalid, c.Graphics.FOV)
	case c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near:
		return fmt.Errorf("%w: clip planes %.2f..%.2f", ErrInvalid, c.Graphics.Near, c.Graphics.Far)
	case c.Animation.MaxSpeed < 0 || c.Animation.Accel < 0 || c.Animation.BrakeAccel < 0:
		return fmt.Errorf("%w: negative animation rate", ErrInvalid)
	case c.Animation.MaxDistance <= 0:
		return fmt.Errorf("%w: max_distance %.1f", ErrInvalid, c.Animation.MaxDistance)
	case c.Animation.SteerLimit < 0:
		return fmt.Errorf("%w: steer_limit %.1f", ErrInvalid, c.Animation.SteerLimit)
	case c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance:
		return fmt.Errorf("%w: camera distance %.1f..%.1f", ErrInvalid, c.Camera.MinDistance, c.Camera.MaxDistance)
	case c.Camera.PitchLimit < 0 || c.Camera.PitchLimit >= 90:
		return fmt.Errorf("%w: pitch_limit %.1f", ErrInvalid, c.Camera.PitchLimit)
	}
	return nil
}
