package shader

import _ "embed"

// FlatVertexShader transforms unit meshes by the per-part model matrix.
//
//go:embed glsl/flat.vert
var FlatVertexShader string

// FlatFragmentShader shades a part's colour with one directional light.
//
//go:embed glsl/flat.frag
var FlatFragmentShader string

// OverlayVertexShader places screen-space quads in pixel coordinates.
//
//go:embed glsl/overlay.vert
var OverlayVertexShader string

// OverlayFragmentShader samples the HUD texture.
//
//go:embed glsl/overlay.frag
var OverlayFragmentShader string
