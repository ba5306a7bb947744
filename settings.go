package nis

import (
	"fmt"
	"math"
)

// Upscale ratio limits accepted by Settings. A ratio is output size over
// input size, the inverse of Config.ScaleX.
const (
	MinUpscaleRatio float32 = 1.0
	MaxUpscaleRatio float32 = 2.0
)

// Settings is the user-facing configuration of an upscale/sharpen pass.
type Settings struct {
	// Sharpness is the slider in [0, 1]. 0.5 is neutral.
	Sharpness float32

	// HDRMode is the dynamic range of the rendered image.
	HDRMode HDRMode

	// UpscaleRatio is the output/input size ratio per axis, in
	// [MinUpscaleRatio, MaxUpscaleRatio]. The scene is rendered at
	// InputSizeForTarget(target, UpscaleRatio) and upscaled to target.
	UpscaleRatio float32
}

// DefaultSettings returns sharpness 0.25, SDR, and a 1.5x upscale.
func DefaultSettings() Settings {
	return Settings{
		Sharpness:    DefaultSharpness,
		HDRMode:      HDRModeNone,
		UpscaleRatio: 1.5,
	}
}

// Validate reports whether the settings can produce a valid pass.
// Sharpness outside [0, 1] is accepted, derivation clamps it.
func (s Settings) Validate() error {
	if math.IsNaN(float64(s.Sharpness)) {
		return fmt.Errorf("%w: sharpness is NaN", ErrInvalidSettings)
	}
	r := s.UpscaleRatio
	if math.IsNaN(float64(r)) || r < MinUpscaleRatio || r > MaxUpscaleRatio {
		return fmt.Errorf("%w: upscale ratio %g outside [%g, %g]",
			ErrInvalidSettings, r, MinUpscaleRatio, MaxUpscaleRatio)
	}
	if s.HDRMode > HDRModePQ {
		return fmt.Errorf("%w: unknown %v", ErrInvalidSettings, s.HDRMode)
	}
	return nil
}

// InputSizeForTarget returns the render resolution that upscales to target
// at ratio: ceil(target/ratio) on each axis.
func InputSizeForTarget(target Extent, ratio float32) Extent {
	scale := 1 / ratio
	return Extent{
		Width:  uint32(math.Ceil(float64(float32(target.Width) * scale))),
		Height: uint32(math.Ceil(float64(float32(target.Height) * scale))),
	}
}

// ScaleGeometry returns the full-texture upscale geometry for a render
// target: the input is rendered at InputSizeForTarget and both viewports
// cover their whole textures.
func (s Settings) ScaleGeometry(target Extent) ScaleGeometry {
	in := InputSizeForTarget(target, s.UpscaleRatio)
	return ScaleGeometry{
		InputViewport:  Viewport{Width: in.Width, Height: in.Height},
		InputTexture:   in,
		OutputViewport: Viewport{Width: target.Width, Height: target.Height},
		OutputTexture:  target,
	}
}

// SharpenGeometry returns the full-texture sharpen-only geometry for a
// render target.
func (s Settings) SharpenGeometry(target Extent) SharpenGeometry {
	return SharpenGeometry{
		InputViewport: Viewport{Width: target.Width, Height: target.Height},
		InputTexture:  target,
	}
}
