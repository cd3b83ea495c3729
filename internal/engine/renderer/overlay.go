package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Bruno48Ferreira/formulap2/internal/engine/shader"
)

// overlay draws one RGBA image as a screen-space quad.
type overlay struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	texture uint32
	width   int
	height  int
}

func newOverlay() (*overlay, error) {
	p, err := shader.New(shader.OverlayVertexShader, shader.OverlayFragmentShader, "uProjection", "uTexture")
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	o := &overlay{program: p}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)

	// Vertex format: pos(2) + texcoord(2)
	stride := int32(4 * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &o.texture)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return o, nil
}

func (o *overlay) upload(img *image.RGBA) {
	if img == nil {
		o.width, o.height = 0, 0
		return
	}
	b := img.Bounds()
	o.width, o.height = b.Dx(), b.Dy()

	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(o.width), int32(o.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (o *overlay) draw(x, y float32, screenW, screenH int) {
	if o.width == 0 || o.height == 0 {
		return
	}

	w, h := float32(o.width), float32(o.height)
	// Texture row 0 is the top of the image.
	verts := []float32{
		x, y, 0, 0,
		x + w, y, 1, 0,
		x + w, y + h, 1, 1,
		x, y, 0, 0,
		x + w, y + h, 1, 1,
		x, y + h, 0, 1,
	}

	prevDepth := gl.IsEnabled(gl.DEPTH_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	o.program.Use()
	o.program.SetMat4("uProjection", mgl32.Ortho2D(0, float32(screenW), float32(screenH), 0))
	o.program.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
	if prevDepth {
		gl.Enable(gl.DEPTH_TEST)
	}
}

func (o *overlay) delete() {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	o.program.Delete()
}

// SetOverlay uploads the HUD image. A nil image hides the overlay.
func (r *Renderer) SetOverlay(img *image.RGBA) {
	r.overlay.upload(img)
}

// DrawOverlay draws the HUD image with its top-left corner at (x, y) pixels.
func (r *Renderer) DrawOverlay(x, y float32) {
	r.overlay.draw(x, y, r.config.Width, r.config.Height)
}
