// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/nis"
)

func TestNewPassValidates(t *testing.T) {
	res := newTestResources(t)

	if _, err := NewPass(nil, ModeScale, nis.DefaultSettings()); !errors.Is(err, ErrNoDevice) {
		t.Errorf("nil resources: %v", err)
	}
	bad := nis.DefaultSettings()
	bad.UpscaleRatio = 3
	if _, err := NewPass(res, ModeScale, bad); !errors.Is(err, nis.ErrInvalidSettings) {
		t.Errorf("ratio 3: %v", err)
	}
	if _, err := NewPass(res, Mode(7), nis.DefaultSettings()); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestPassPrepareScale(t *testing.T) {
	res := newTestResources(t)
	p, err := NewPass(res, ModeScale, nis.DefaultSettings())
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}
	if _, ok := p.Config(); ok {
		t.Error("Config valid before Prepare")
	}

	target := nis.Extent{Width: 1920, Height: 1080}
	ok, err := p.Prepare(target)
	if err != nil || !ok {
		t.Fatalf("Prepare = %v, %v; want true, nil", ok, err)
	}
	if got := p.InputSize(target); got != (nis.Extent{Width: 1280, Height: 720}) {
		t.Errorf("InputSize = %+v, want 1280x720", got)
	}

	cfg, valid := p.Config()
	if !valid {
		t.Fatal("Config not valid after Prepare")
	}
	if cfg.InputViewportWidth != 1280 || cfg.OutputViewportWidth != 1920 {
		t.Errorf("viewports = %d -> %d, want 1280 -> 1920", cfg.InputViewportWidth, cfg.OutputViewportWidth)
	}
	if res.tableUploads != 2 || res.configUploads != 1 {
		t.Errorf("uploads: tables %d, config %d", res.tableUploads, res.configUploads)
	}

	if _, err := p.Prepare(target); err != nil {
		t.Fatal(err)
	}
	if res.tableUploads != 2 || res.configUploads != 1 {
		t.Errorf("unchanged frame uploads: tables %d, config %d", res.tableUploads, res.configUploads)
	}

	// A resize changes the record.
	if _, err := p.Prepare(nis.Extent{Width: 2560, Height: 1440}); err != nil {
		t.Fatal(err)
	}
	if res.configUploads != 2 {
		t.Errorf("resized frame: configUploads = %d, want 2", res.configUploads)
	}
}

func TestPassPrepareSharpen(t *testing.T) {
	res := newTestResources(t)
	p, err := NewPass(res, ModeSharpen, nis.DefaultSettings())
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}
	target := nis.Extent{Width: 2560, Height: 1440}
	ok, err := p.Prepare(target)
	if err != nil || !ok {
		t.Fatalf("Prepare = %v, %v", ok, err)
	}
	if p.InputSize(target) != target {
		t.Error("sharpen pass must render at target size")
	}
	cfg, _ := p.Config()
	if cfg.ScaleX != 1 || cfg.ScaleY != 1 {
		t.Errorf("scale = %v x %v, want 1 x 1", cfg.ScaleX, cfg.ScaleY)
	}
}

func TestPassSkipsInvalidFrame(t *testing.T) {
	var logs bytes.Buffer
	nis.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer nis.SetLogger(nil)

	res := newTestResources(t)
	p, err := NewPass(res, ModeScale, nis.DefaultSettings())
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}
	if ok, err := p.Prepare(nis.Extent{Width: 1920, Height: 1080}); !ok || err != nil {
		t.Fatalf("Prepare = %v, %v", ok, err)
	}
	before, _ := p.Config()
	uploads := res.configUploads

	// A minimized window reports a zero-sized target.
	ok, err := p.Prepare(nis.Extent{})
	if err != nil {
		t.Fatalf("Prepare(zero) error = %v, want nil", err)
	}
	if ok {
		t.Fatal("Prepare(zero) = true, want false")
	}
	if res.configUploads != uploads {
		t.Error("uniform written for a skipped frame")
	}
	if after, _ := p.Config(); after != before {
		t.Error("Config changed by a skipped frame")
	}
	if p.Skipped() != 1 {
		t.Errorf("Skipped = %d, want 1", p.Skipped())
	}
	if !strings.Contains(logs.String(), "nisgpu: skipping frame") {
		t.Errorf("no warning logged, got %q", logs.String())
	}
}

func TestPassSetSettings(t *testing.T) {
	res := newTestResources(t)
	p, err := NewPass(res, ModeScale, nis.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	s := nis.DefaultSettings()
	s.UpscaleRatio = 2
	s.HDRMode = nis.HDRModePQ
	if err := p.SetSettings(s); err != nil {
		t.Fatalf("SetSettings: %v", err)
	}
	if p.Settings() != s {
		t.Errorf("Settings = %+v, want %+v", p.Settings(), s)
	}
	if _, err := p.Prepare(nis.Extent{Width: 1920, Height: 1080}); err != nil {
		t.Fatal(err)
	}
	cfg, _ := p.Config()
	if cfg.InputViewportWidth != 960 || cfg.ScaleX != 0.5 {
		t.Errorf("input width %d, scale %v; want 960, 0.5", cfg.InputViewportWidth, cfg.ScaleX)
	}

	s.Sharpness = float32(math.NaN())
	if err := p.SetSettings(s); !errors.Is(err, nis.ErrInvalidSettings) {
		t.Errorf("NaN sharpness: %v", err)
	}
	if p.Settings().HDRMode != nis.HDRModePQ {
		t.Error("rejected settings were applied")
	}
}

func TestModeString(t *testing.T) {
	if ModeScale.String() != "scale" || ModeSharpen.String() != "sharpen" || Mode(5).String() != "Mode(5)" {
		t.Error("unexpected Mode names")
	}
}
