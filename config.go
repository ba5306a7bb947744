package nis

// Config holds the shader constants of one upscale or sharpen pass.
//
// The field order is the uniform buffer layout read by the shader (see
// ConfigWGSL and Marshal). A Config is recomputed every frame and has no
// state beyond the call that produced it.
type Config struct {
	// Edge detection and contrast.
	DetectRatio      float32
	DetectThres      float32
	MinContrastRatio float32
	RatioNorm        float32
	ContrastBoost    float32
	Eps              float32

	// Sharpening response curve.
	SharpStartY        float32
	SharpScaleY        float32
	SharpStrengthMin   float32
	SharpStrengthScale float32
	SharpLimitMin      float32
	SharpLimitScale    float32

	// Geometric normalization.
	ScaleX   float32
	ScaleY   float32
	DstNormX float32
	DstNormY float32
	SrcNormX float32
	SrcNormY float32

	InputViewportOriginX uint32
	InputViewportOriginY uint32
	InputViewportWidth   uint32
	InputViewportHeight  uint32

	OutputViewportOriginX uint32
	OutputViewportOriginY uint32
	OutputViewportWidth   uint32
	OutputViewportHeight  uint32

	Reserved0 float32
	Reserved1 float32
}

// InputViewport returns the resolved input viewport.
func (c *Config) InputViewport() Viewport {
	return Viewport{
		X:      c.InputViewportOriginX,
		Y:      c.InputViewportOriginY,
		Width:  c.InputViewportWidth,
		Height: c.InputViewportHeight,
	}
}

// OutputViewport returns the resolved output viewport.
func (c *Config) OutputViewport() Viewport {
	return Viewport{
		X:      c.OutputViewportOriginX,
		Y:      c.OutputViewportOriginY,
		Width:  c.OutputViewportWidth,
		Height: c.OutputViewportHeight,
	}
}

// ScaleConfig is the Config of an upscale pass.
type ScaleConfig struct {
	Config
}

// SharpenConfig is the Config of a sharpen-only pass. Its output viewport
// always has the input viewport's size, so ScaleX and ScaleY are 1.
type SharpenConfig struct {
	Config
}
