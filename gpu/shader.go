// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/nis"
	"github.com/gogpu/wgpu/hal"
)

// ShaderSource returns body prefixed with the NISConfig uniform and
// coefficient texture declarations.
func ShaderSource(body string) string {
	return nis.ConfigWGSL + "\n" + body
}

// CompileSPIRV compiles a shader body, prefixed by ShaderSource, to SPIR-V
// words.
func CompileSPIRV(body string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(ShaderSource(body))
	if err != nil {
		return nil, fmt.Errorf("nisgpu: compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("nisgpu: compile shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return code, nil
}

// CompileShader compiles a host compute shader body against the NIS bindings
// and creates a shader module on device.
func CompileShader(device hal.Device, label, body string) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	code, err := CompileSPIRV(body)
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: code},
	})
	if err != nil {
		return nil, fmt.Errorf("nisgpu: create shader module %q: %w", label, err)
	}
	nis.Logger().Debug("nisgpu: shader module created", "label", label, "spirv_words", len(code))
	return module, nil
}
