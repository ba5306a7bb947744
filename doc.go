// Package nis computes the runtime parameters of the NVIDIA Image Scaling
// (NIS) spatial upscale and sharpen filter for GPU renderers.
//
// # Overview
//
// The NIS shader reads two kinds of constant data:
//
//   - a uniform record (Config) derived every frame from a sharpness slider,
//     the input/output viewport geometry, and the dynamic-range mode
//   - two 64-phase, 8-tap filter tables (resize and unsharp-mask) uploaded
//     once as 2x64 RGBA32Float textures (see package coef)
//
// This package derives the uniform. Package coef holds the tables and their
// texture layout, and package gpu creates and uploads the GPU resources with
// gogpu/wgpu. The pixel resampling itself is done by the host's shader.
//
// # Quick Start
//
//	s := nis.DefaultSettings()
//	target := nis.Extent{Width: 1920, Height: 1080}
//
//	cfg, err := nis.DeriveScale(s.Sharpness, s.ScaleGeometry(target), s.HDRMode)
//	if errors.Is(err, nis.ErrInvalidGeometry) {
//	    // skip the upscale pass this frame
//	}
//	queue.WriteBuffer(uniform, 0, cfg.Marshal())
//
// # Geometry
//
// A viewport dimension of 0 means "use the whole texture". Upscaling is
// supported from 2x down to parity: the input/output ratio on each axis must
// lie in [MinScale, MaxScale]. DeriveSharpen runs the same derivation with the
// output forced to the input size, so only the sharpening curve applies.
//
// # Concurrency
//
// Derivation is a pure function of its arguments and may be called from any
// goroutine.
package nis
