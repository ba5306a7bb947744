package nis

// Extent is a width/height pair in pixels.
type Extent struct {
	Width, Height uint32
}

// Viewport is the active sub-rectangle of a texture.
// A zero Width or Height means "use the full texture" on that axis.
type Viewport struct {
	X, Y          uint32
	Width, Height uint32
}

// resolve substitutes the texture dimension for each zero viewport dimension.
func (v Viewport) resolve(tex Extent) Viewport {
	if v.Width == 0 {
		v.Width = tex.Width
	}
	if v.Height == 0 {
		v.Height = tex.Height
	}
	return v
}

// ScaleGeometry is the per-frame geometry of an upscale pass.
type ScaleGeometry struct {
	InputViewport  Viewport
	InputTexture   Extent
	OutputViewport Viewport
	OutputTexture  Extent
}

// SharpenGeometry is the per-frame geometry of a sharpen-only pass.
// The output viewport and texture take the input's sizes; only the
// output origin may differ.
type SharpenGeometry struct {
	InputViewport Viewport
	InputTexture  Extent
	OutputX       uint32
	OutputY       uint32
}

// scale expands a sharpen geometry into the equivalent scale geometry.
// The requested (unresolved) input viewport size is forwarded, so a zero
// dimension resolves to the input texture on both sides.
func (g SharpenGeometry) scale() ScaleGeometry {
	return ScaleGeometry{
		InputViewport: g.InputViewport,
		InputTexture:  g.InputTexture,
		OutputViewport: Viewport{
			X:      g.OutputX,
			Y:      g.OutputY,
			Width:  g.InputViewport.Width,
			Height: g.InputViewport.Height,
		},
		OutputTexture: g.InputTexture,
	}
}
