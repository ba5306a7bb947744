// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/nis"
	"github.com/gogpu/nis/coef"
	"github.com/gogpu/wgpu/hal"
)

// Bind group slots shared with nis.ConfigWGSL.
const (
	BindingConfig    = 0
	BindingCoefScale = 1
	BindingCoefUSM   = 2
)

// coefFormat is the texel format of both coefficient textures: one phase row
// of eight float32 taps spans two RGBA32Float texels.
const coefFormat = gputypes.TextureFormatRGBA32Float

// Resources holds the GPU objects an NIS shader binds: the uniform buffer,
// the two coefficient textures and their views, and the bind group layout.
//
// Objects are created on first use. Resources is safe for concurrent use.
type Resources struct {
	mu     sync.Mutex
	device hal.Device
	queue  hal.Queue

	textures [len(coef.Kinds)]hal.Texture
	views    [len(coef.Kinds)]hal.TextureView
	uniform  hal.Buffer
	layout   hal.BindGroupLayout

	// last is the record currently in the uniform buffer.
	last    nis.Config
	hasLast bool

	// tableUploads and configUploads count queue writes.
	tableUploads  int
	configUploads int
	destroyed     bool
}

// NewResources wraps a HAL device and queue. No GPU objects are created
// until they are first needed.
func NewResources(device hal.Device, queue hal.Queue) (*Resources, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	return &Resources{device: device, queue: queue}, nil
}

// EnsureCoefficientTextures creates both coefficient textures and uploads the
// filter tables. The tables are constant, so only the first successful call
// does any work. If creation fails part way, everything created by the call
// is released.
func (r *Resources) EnsureCoefficientTextures() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureTexturesLocked()
}

func (r *Resources) ensureTexturesLocked() error {
	if r.destroyed {
		return ErrDestroyed
	}
	if r.textures[coef.KindScale] != nil {
		return nil
	}

	layout := coef.TextureLayout()
	size := hal.Extent3D{Width: layout.Width, Height: layout.Height, DepthOrArrayLayers: 1}

	for _, k := range coef.Kinds {
		tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
			Label:         "nis_coef_" + k.String(),
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        coefFormat,
			Usage: gputypes.TextureUsageTextureBinding |
				gputypes.TextureUsageCopyDst |
				gputypes.TextureUsageCopySrc,
		})
		if err != nil {
			r.destroyTexturesLocked()
			return fmt.Errorf("nisgpu: create %v coefficient texture: %w", k, err)
		}
		r.textures[k] = tex

		view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
			Label:         "nis_coef_" + k.String() + "_view",
			Format:        coefFormat,
			Dimension:     gputypes.TextureViewDimension2D,
			Aspect:        gputypes.TextureAspectAll,
			MipLevelCount: 1,
		})
		if err != nil {
			r.destroyTexturesLocked()
			return fmt.Errorf("nisgpu: create %v coefficient view: %w", k, err)
		}
		r.views[k] = view
	}

	for _, k := range coef.Kinds {
		m := coef.Table(k)
		r.queue.WriteTexture(
			&hal.ImageCopyTexture{
				Texture:  r.textures[k],
				MipLevel: 0,
			},
			coef.Pack(&m),
			&hal.ImageDataLayout{
				Offset:       0,
				BytesPerRow:  layout.BytesPerRow,
				RowsPerImage: layout.RowsPerImage,
			},
			&size,
		)
		r.tableUploads++
	}

	nis.Logger().Debug("nisgpu: coefficient textures uploaded",
		"width", layout.Width,
		"height", layout.Height,
		"bytes_per_row", layout.BytesPerRow,
		"bytes", layout.Size())
	return nil
}

// WriteConfig uploads c into the uniform buffer, creating the buffer on
// first use. Writing the record the buffer already holds is a no-op.
func (r *Resources) WriteConfig(c nis.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return ErrDestroyed
	}
	if r.uniform == nil {
		buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "nis_config",
			Size:  nis.UniformSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("nisgpu: create uniform buffer: %w", err)
		}
		r.uniform = buf
		nis.Logger().Debug("nisgpu: uniform buffer created", "size", nis.UniformSize)
	}

	if r.hasLast && c == r.last {
		return nil
	}
	r.queue.WriteBuffer(r.uniform, 0, c.Marshal())
	r.last, r.hasLast = c, true
	r.configUploads++
	return nil
}

// BindGroupLayoutEntries returns the layout matching nis.ConfigWGSL:
// the uniform at BindingConfig and two unfilterable float32 2D textures at
// BindingCoefScale and BindingCoefUSM, all visible to compute shaders.
func BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	coefTexture := func(binding uint32) gputypes.BindGroupLayoutEntry {
		return gputypes.BindGroupLayoutEntry{
			Binding:    binding,
			Visibility: gputypes.ShaderStageCompute,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeUnfilterableFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		}
	}
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    BindingConfig,
			Visibility: gputypes.ShaderStageCompute,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: nis.UniformSize,
			},
		},
		coefTexture(BindingCoefScale),
		coefTexture(BindingCoefUSM),
	}
}

// BindGroupLayout returns the bind group layout, creating it on first use.
func (r *Resources) BindGroupLayout() (hal.BindGroupLayout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return nil, ErrDestroyed
	}
	if r.layout != nil {
		return r.layout, nil
	}
	layout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "nis_bgl",
		Entries: BindGroupLayoutEntries(),
	})
	if err != nil {
		return nil, fmt.Errorf("nisgpu: create bind group layout: %w", err)
	}
	r.layout = layout
	return layout, nil
}

// CoefficientViews returns the resize and unsharp-mask texture views,
// creating and uploading the textures on first use.
func (r *Resources) CoefficientViews() (scale, usm hal.TextureView, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureTexturesLocked(); err != nil {
		return nil, nil, err
	}
	return r.views[coef.KindScale], r.views[coef.KindUSM], nil
}

// UniformBuffer returns the uniform buffer, or nil before the first
// WriteConfig.
func (r *Resources) UniformBuffer() hal.Buffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniform
}

// Device returns the HAL device the resources live on.
func (r *Resources) Device() hal.Device { return r.device }

// Destroy releases every GPU object. Calling it more than once is safe.
func (r *Resources) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return
	}
	r.destroyTexturesLocked()
	if r.uniform != nil {
		r.device.DestroyBuffer(r.uniform)
		r.uniform = nil
		r.hasLast = false
	}
	if r.layout != nil {
		r.device.DestroyBindGroupLayout(r.layout)
		r.layout = nil
	}
	r.destroyed = true
}

func (r *Resources) destroyTexturesLocked() {
	for i := range r.textures {
		if r.views[i] != nil {
			r.device.DestroyTextureView(r.views[i])
			r.views[i] = nil
		}
		if r.textures[i] != nil {
			r.device.DestroyTexture(r.textures[i])
			r.textures[i] = nil
		}
	}
}
