// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by device providers that expose their
// underlying HAL objects, such as gogpu's App.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewResourcesFromProvider creates Resources on a shared device from a
// gpucontext.DeviceProvider. The provider must also implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
// The provider keeps ownership of the device.
func NewResourcesFromProvider(provider gpucontext.DeviceProvider) (*Resources, error) {
	if provider == nil {
		return nil, ErrNoDevice
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	return NewResources(device, queue)
}
