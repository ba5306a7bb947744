package nis

import (
	"fmt"
	"strings"
)

// HDRMode classifies the pixel value domain of the input image.
// It selects the tuning of the sharpening response curve.
type HDRMode uint32

const (
	// HDRModeNone is standard dynamic range input.
	HDRModeNone HDRMode = iota

	// HDRModeLinear is linear high dynamic range input.
	HDRModeLinear

	// HDRModePQ is perceptual-quantizer (SMPTE ST 2084) encoded input.
	HDRModePQ
)

// String returns the mode name.
func (m HDRMode) String() string {
	switch m {
	case HDRModeNone:
		return "None"
	case HDRModeLinear:
		return "Linear"
	case HDRModePQ:
		return "PQ"
	default:
		return fmt.Sprintf("HDRMode(%d)", uint32(m))
	}
}

// ParseHDRMode parses a mode name as produced by String.
// Matching is case-insensitive; "sdr" is accepted as an alias of None.
func ParseHDRMode(s string) (HDRMode, error) {
	switch strings.ToLower(s) {
	case "none", "sdr", "":
		return HDRModeNone, nil
	case "linear":
		return HDRModeLinear, nil
	case "pq":
		return HDRModePQ, nil
	default:
		return HDRModeNone, fmt.Errorf("nis: unknown HDR mode %q", s)
	}
}

