// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import "errors"

var (
	// ErrNoDevice is returned when a nil device or queue is supplied.
	ErrNoDevice = errors.New("nisgpu: device and queue are required")

	// ErrNoHAL is returned when a device provider does not expose HAL types.
	ErrNoHAL = errors.New("nisgpu: provider does not expose HAL device and queue")

	// ErrDestroyed is returned when resources are used after Destroy.
	ErrDestroyed = errors.New("nisgpu: resources destroyed")
)
