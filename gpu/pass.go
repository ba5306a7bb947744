// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/nis"
)

// Mode selects which NIS pass a Pass prepares.
type Mode uint8

const (
	// ModeScale upscales the rendered image to the target and sharpens it.
	ModeScale Mode = iota

	// ModeSharpen sharpens an image already at target resolution.
	ModeSharpen
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeScale:
		return "scale"
	case ModeSharpen:
		return "sharpen"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Pass derives per-frame configuration from Settings and keeps the uniform
// buffer of its Resources current.
type Pass struct {
	mu       sync.Mutex
	res      *Resources
	mode     Mode
	settings nis.Settings

	config  nis.Config
	valid   bool
	skipped int
}

// NewPass creates a pass over res. The settings are validated.
func NewPass(res *Resources, mode Mode, s nis.Settings) (*Pass, error) {
	if res == nil {
		return nil, ErrNoDevice
	}
	if mode > ModeSharpen {
		return nil, fmt.Errorf("nisgpu: unknown pass %v", mode)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Pass{res: res, mode: mode, settings: s}, nil
}

// Mode returns the pass mode.
func (p *Pass) Mode() Mode { return p.mode }

// Settings returns the current settings.
func (p *Pass) Settings() nis.Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

// SetSettings replaces the settings. They take effect on the next Prepare.
func (p *Pass) SetSettings(s nis.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	p.settings = s
	p.mu.Unlock()
	return nil
}

// InputSize returns the resolution the scene must be rendered at for target.
// A sharpen pass renders at target resolution.
func (p *Pass) InputSize(target nis.Extent) nis.Extent {
	if p.mode == ModeSharpen {
		return target
	}
	return nis.InputSizeForTarget(target, p.Settings().UpscaleRatio)
}

// Prepare derives the configuration for a frame rendered to target and
// writes it to the uniform buffer. The coefficient tables are uploaded on the
// first call.
//
// It returns false with a nil error when the frame's geometry is unusable,
// for example a zero-sized target. The host must skip the dispatch for that
// frame. The uniform buffer keeps its previous contents.
func (p *Pass) Prepare(target nis.Extent) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg, err := p.derive(target)
	if errors.Is(err, nis.ErrInvalidGeometry) {
		p.skipped++
		nis.Logger().Warn("nisgpu: skipping frame",
			"pass", p.mode.String(),
			"width", target.Width,
			"height", target.Height,
			"err", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := p.res.EnsureCoefficientTextures(); err != nil {
		return false, err
	}
	if err := p.res.WriteConfig(cfg); err != nil {
		return false, err
	}
	p.config = cfg
	p.valid = true
	return true, nil
}

func (p *Pass) derive(target nis.Extent) (nis.Config, error) {
	s := p.settings
	if p.mode == ModeSharpen {
		c, err := nis.DeriveSharpen(s.Sharpness, s.SharpenGeometry(target), s.HDRMode)
		return c.Config, err
	}
	c, err := nis.DeriveScale(s.Sharpness, s.ScaleGeometry(target), s.HDRMode)
	return c.Config, err
}

// Config returns the configuration last uploaded by Prepare, and false if
// no frame has been prepared successfully.
func (p *Pass) Config() (nis.Config, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config, p.valid
}

// Skipped returns the number of frames Prepare rejected.
func (p *Pass) Skipped() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.skipped
}
