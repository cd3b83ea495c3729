// Package renderer draws canvas command lists with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Bruno48Ferreira/formulap2/internal/engine/canvas"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/lighting"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/mesh"
	"github.com/Bruno48Ferreira/formulap2/internal/engine/shader"
	"github.com/Bruno48Ferreira/formulap2/internal/logger"
)

// SkyColor is the daytime clear colour.
var SkyColor = canvas.Color{R: 0.53, G: 0.76, B: 0.96}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	Sky    canvas.Color
	Sun    lighting.Sun
}

// Stats counts the work done by the last frame.
type Stats struct {
	DrawCalls int
	Skipped   int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	flat    *shader.Program
	meshes  map[mesh.Key]*gpuMesh
	overlay *overlay

	viewProj mgl32.Mat4
	stats    Stats
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[mesh.Key]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(cfg.Sky.R, cfg.Sky.G, cfg.Sky.B, 1.0)

	var err error
	r.flat, err = shader.New(shader.FlatVertexShader, shader.FlatFragmentShader,
		"uModel", "uViewProj", "uColor", "uLightDir", "uAmbient")
	if err != nil {
		return nil, fmt.Errorf("failed to create flat shader: %w", err)
	}

	r.overlay, err = newOverlay()
	if err != nil {
		r.flat.Delete()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for k, m := range r.meshes {
		m.delete()
		delete(r.meshes, k)
	}
	if r.overlay != nil {
		r.overlay.delete()
	}
	if r.flat != nil {
		r.flat.Delete()
	}
}

// Resize handles window resize. Degenerate sizes, as sent while minimised, are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin clears the frame and sets the camera for subsequent draws.
func (r *Renderer) Begin(view, projection mgl32.Mat4) {
	r.viewProj = projection.Mul4(view)
	r.stats = Stats{}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.flat.Use()
	r.flat.SetMat4("uViewProj", r.viewProj)
	r.flat.SetVec3("uLightDir", r.config.Sun.Direction())
	r.flat.SetFloat("uAmbient", r.config.Sun.Ambient)
}

// Draw submits a command list in order.
func (r *Renderer) Draw(cmds []canvas.Command) {
	r.flat.Use()
	for i := range cmds {
		cmd := &cmds[i]
		model, ok := mesh.Model(*cmd)
		if !ok {
			r.stats.Skipped++
			continue
		}
		m := r.mesh(mesh.KeyOf(*cmd))

		r.flat.SetMat4("uModel", model)
		r.flat.SetVec3("uColor", mgl32.Vec3{cmd.Color.R, cmd.Color.G, cmd.Color.B})
		m.draw()
		r.stats.DrawCalls++
	}
	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// Stats returns counters for the last frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) mesh(k mesh.Key) *gpuMesh {
	if m, ok := r.meshes[k]; ok {
		return m
	}
	m := upload(mesh.Build(k))
	r.meshes[k] = m
	logger.Debug("mesh uploaded",
		zap.Stringer("shape", k.Shape),
		zap.Int("segments", k.Segments),
		zap.Int32("vertices", m.count),
	)
	return m
}
