// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package gpu binds NIS configuration records and filter tables to wgpu HAL
// resources.
//
// A host renders its scene at nis.InputSizeForTarget, then runs its own
// upscale or sharpen compute shader over the result. This package owns the
// resources that shader reads:
//
//   - the 112-byte uniform buffer holding nis.Config (binding 0)
//   - the resize coefficient texture (binding 1)
//   - the unsharp-mask coefficient texture (binding 2)
//
// Shaders declare these bindings by prefixing their body with nis.ConfigWGSL,
// which CompileShader does.
//
// Each frame the host calls Pass.Prepare with the render target size. When
// the geometry is out of range Prepare returns false and the host skips the
// dispatch for that frame; the previous uniform contents stay in place.
//
// Usage:
//
//	res, err := gpu.NewResourcesFromProvider(provider)
//	if err != nil { ... }
//	defer res.Destroy()
//
//	pass, err := gpu.NewPass(res, gpu.ModeScale, nis.DefaultSettings())
//	if err != nil { ... }
//
//	ok, err := pass.Prepare(nis.Extent{Width: 1920, Height: 1080})
//	if err != nil { ... }
//	if ok {
//		// dispatch the upscale shader
//	}
package gpu
