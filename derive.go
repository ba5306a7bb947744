package nis

import (
	"fmt"
	"log/slog"
	"math"
)

// Supported input/output ratio band. An input viewport may be between half
// the output size (2x upscale) and the output size (no resampling).
const (
	MinScale float32 = 0.5
	MaxScale float32 = 1.0
)

// DefaultSharpness is the slider value used by hosts that do not expose one.
const DefaultSharpness float32 = 0.25

const (
	detectRatio   float32 = 2 * 1127.0 / 1024.0
	contrastBoost float32 = 1.0
	eps           float32 = 1.0 / 255.0
)

// curve is a slider-driven constant: base + slider*scale*coef.
type curve struct {
	base, coef float32
}

func (c curve) at(slider, scale float32) float32 {
	return c.base + slider*scale*c.coef
}

// profile holds the empirically tuned constants of one dynamic-range mode.
type profile struct {
	detectThres float32
	minContrast float32
	maxContrast float32
	sharpStartY float32
	sharpEndY   float32

	strengthMin   curve
	strengthMax   curve
	limitMin      curve
	limitMinFloor float32
	limitMax      curve
}

var profiles = [...]profile{
	HDRModeNone: {
		detectThres:   64.0 / 1024.0,
		minContrast:   2.0,
		maxContrast:   10.0,
		sharpStartY:   0.45,
		sharpEndY:     0.9,
		strengthMin:   curve{0.4, 1.2},
		strengthMax:   curve{1.6, 1.8},
		limitMin:      curve{0.14, 0.32},
		limitMinFloor: 0.1,
		limitMax:      curve{0.5, 0.6},
	},
	HDRModeLinear: {
		detectThres:   32.0 / 1024.0,
		minContrast:   1.5,
		maxContrast:   5.0,
		sharpStartY:   0.3,
		sharpEndY:     0.5,
		strengthMin:   curve{0.4, 1.1},
		strengthMax:   curve{2.2, 1.8},
		limitMin:      curve{0.10, 0.28},
		limitMinFloor: 0.06,
		limitMax:      curve{0.6, 0.6},
	},
	HDRModePQ: {
		detectThres:   32.0 / 1024.0,
		minContrast:   1.5,
		maxContrast:   5.0,
		sharpStartY:   0.35,
		sharpEndY:     0.55,
		strengthMin:   curve{0.4, 1.1},
		strengthMax:   curve{2.2, 1.8},
		limitMin:      curve{0.10, 0.28},
		limitMinFloor: 0.06,
		limitMax:      curve{0.6, 0.6},
	},
}

// profileFor returns the profile of mode. Unknown modes use the SDR profile.
func profileFor(mode HDRMode) *profile {
	if int(mode) >= len(profiles) {
		mode = HDRModeNone
	}
	return &profiles[mode]
}

// sliderScales returns the (max, min, limit) multipliers for a slider
// position. The upper half of the slider is damped so that 100% does not
// over-sharpen, while 0% still maps to no sharpening.
func sliderScales(slider float32) (maxScale, minScale, limitScale float32) {
	if slider < 0 {
		return 1.75, 1.0, 1.0
	}
	return 1.25, 1.25, 1.25
}

// clampSharpness clamps s to [0, 1]. NaN maps to 1.
func clampSharpness(s float32) float32 {
	switch {
	case math.IsNaN(float64(s)):
		return 1
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

// DeriveScale computes the constants of an upscale pass.
//
// sharpness is clamped to [0, 1]; 0.5 is neutral, lower values soften and
// higher values sharpen. Zero viewport dimensions in g are replaced by the
// corresponding texture dimension.
//
// The error wraps ErrInvalidGeometry when a resolved viewport dimension is
// zero or the input/output ratio on either axis is outside
// [MinScale, MaxScale]. The returned config must not be used in that case;
// the host should skip the frame's pass.
func DeriveScale(sharpness float32, g ScaleGeometry, mode HDRMode) (ScaleConfig, error) {
	c, err := derive(sharpness, g, mode)
	if err != nil {
		return ScaleConfig{}, err
	}
	return ScaleConfig{Config: c}, nil
}

// DeriveSharpen computes the constants of a sharpen-only pass. The output
// viewport and texture are given the input's sizes, so no resampling takes
// place and ScaleX = ScaleY = 1.
//
// It fails with ErrInvalidGeometry under the same rules as DeriveScale.
func DeriveSharpen(sharpness float32, g SharpenGeometry, mode HDRMode) (SharpenConfig, error) {
	c, err := derive(sharpness, g.scale(), mode)
	if err != nil {
		return SharpenConfig{}, err
	}
	return SharpenConfig{Config: c}, nil
}

func derive(sharpness float32, g ScaleGeometry, mode HDRMode) (Config, error) {
	slider := clampSharpness(sharpness) - 0.5
	maxScale, minScale, limitScale := sliderScales(slider)
	p := profileFor(mode)

	strengthMin := max(0, p.strengthMin.at(slider, minScale))
	strengthMax := p.strengthMax.at(slider, maxScale)
	limitMin := max(p.limitMinFloor, p.limitMin.at(slider, limitScale))
	limitMax := p.limitMax.at(slider, limitScale)

	in := g.InputViewport.resolve(g.InputTexture)
	out := g.OutputViewport.resolve(g.OutputTexture)
	if in.Width == 0 || in.Height == 0 || out.Width == 0 || out.Height == 0 {
		return Config{}, fmt.Errorf("%w: zero viewport dimension (input %dx%d, output %dx%d)",
			ErrInvalidGeometry, in.Width, in.Height, out.Width, out.Height)
	}

	c := Config{
		DetectRatio:      detectRatio,
		DetectThres:      p.detectThres,
		MinContrastRatio: p.minContrast,
		RatioNorm:        1 / (p.maxContrast - p.minContrast),
		ContrastBoost:    contrastBoost,
		Eps:              eps,

		SharpStartY:        p.sharpStartY,
		SharpScaleY:        1 / (p.sharpEndY - p.sharpStartY),
		SharpStrengthMin:   strengthMin,
		SharpStrengthScale: strengthMax - strengthMin,
		SharpLimitMin:      limitMin,
		SharpLimitScale:    limitMax - limitMin,

		ScaleX:   float32(in.Width) / float32(out.Width),
		ScaleY:   float32(in.Height) / float32(out.Height),
		DstNormX: 1 / float32(g.OutputTexture.Width),
		DstNormY: 1 / float32(g.OutputTexture.Height),
		SrcNormX: 1 / float32(g.InputTexture.Width),
		SrcNormY: 1 / float32(g.InputTexture.Height),

		InputViewportOriginX: in.X,
		InputViewportOriginY: in.Y,
		InputViewportWidth:   in.Width,
		InputViewportHeight:  in.Height,

		OutputViewportOriginX: out.X,
		OutputViewportOriginY: out.Y,
		OutputViewportWidth:   out.Width,
		OutputViewportHeight:  out.Height,
	}

	if c.ScaleX < MinScale || c.ScaleX > MaxScale || c.ScaleY < MinScale || c.ScaleY > MaxScale {
		return Config{}, fmt.Errorf("%w: scale %gx%g outside [%g, %g] (input %dx%d, output %dx%d)",
			ErrInvalidGeometry, c.ScaleX, c.ScaleY, MinScale, MaxScale,
			in.Width, in.Height, out.Width, out.Height)
	}

	Logger().Debug("nis: derived config",
		slog.String("mode", mode.String()),
		slog.Float64("sharpness", float64(sharpness)),
		slog.Float64("scale_x", float64(c.ScaleX)),
		slog.Float64("scale_y", float64(c.ScaleY)),
		slog.Float64("strength_min", float64(c.SharpStrengthMin)),
		slog.Float64("strength_scale", float64(c.SharpStrengthScale)))

	return c, nil
}
