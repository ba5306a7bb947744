package coef

import (
	"errors"
	"fmt"
	"math"

	"github.com/x448/float16"
)

// Table geometry.
const (
	// PhaseCount is the number of fractional sub-pixel offsets (table rows).
	PhaseCount = 64

	// FilterSize is the number of taps per phase (table columns).
	FilterSize = 8

	// ChannelsPerTexel is the channel count of the RGBA32Float texture.
	ChannelsPerTexel = 4

	// TexelsPerRow is the texture width: one row of taps spans two texels.
	TexelsPerRow = (FilterSize + ChannelsPerTexel - 1) / ChannelsPerTexel

	// BytesPerTap is the size of one float32 tap.
	BytesPerTap = 4

	// RowPitch is the byte size of one phase row.
	RowPitch = FilterSize * BytesPerTap

	// ImageSize is the byte size of a packed table.
	ImageSize = PhaseCount * RowPitch
)

// ErrHalfMismatch is returned by ValidateHalf when a binary16 entry does not
// correspond to its float32 entry.
var ErrHalfMismatch = errors.New("coef: fp16 table does not match float32 table")

// Matrix is a polyphase filter table of float32 taps, indexed [phase][tap].
type Matrix [PhaseCount][FilterSize]float32

// HalfMatrix is a polyphase filter table of IEEE-754 binary16 bit patterns.
type HalfMatrix [PhaseCount][FilterSize]uint16

// Kind selects one of the two NIS filter tables.
type Kind uint8

const (
	// KindScale is the resize kernel.
	KindScale Kind = iota

	// KindUSM is the unsharp-mask kernel.
	KindUSM
)

// Kinds lists every table kind.
var Kinds = [...]Kind{KindScale, KindUSM}

// String returns the table name.
func (k Kind) String() string {
	switch k {
	case KindScale:
		return "scale"
	case KindUSM:
		return "usm"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Table returns a copy of the float32 table of kind k.
// Unknown kinds return the resize table.
func Table(k Kind) Matrix {
	if k == KindUSM {
		return USM
	}
	return Scale
}

// HalfTable returns a copy of the binary16 table of kind k.
// Unknown kinds return the resize table.
func HalfTable(k Kind) HalfMatrix {
	if k == KindUSM {
		return USMFP16
	}
	return ScaleFP16
}

// Phase returns the taps for a fractional source offset frac in [0, 1).
// The row is floor(frac*PhaseCount); offsets outside [0, 1) are clamped.
func (m *Matrix) Phase(frac float32) [FilterSize]float32 {
	if math.IsNaN(float64(frac)) || frac <= 0 {
		return m[0]
	}
	if frac >= 1 {
		return m[PhaseCount-1]
	}
	return m[int(frac*PhaseCount)]
}

// Half converts every tap to its binary16 bit pattern, rounding to nearest
// even.
func (m *Matrix) Half() HalfMatrix {
	var h HalfMatrix
	for p := range m {
		for t, v := range m[p] {
			h[p][t] = float16.Fromfloat32(v).Bits()
		}
	}
	return h
}

// Float32 widens every binary16 entry back to float32.
func (h *HalfMatrix) Float32() Matrix {
	var m Matrix
	for p := range h {
		for t, bits := range h[p] {
			m[p][t] = float16.Frombits(bits).Float32()
		}
	}
	return m
}

// ValidateHalf checks that every entry of h is within one unit in the last
// place of the binary16 rounding of the matching entry of m.
func ValidateHalf(m *Matrix, h *HalfMatrix) error {
	for p := range m {
		for t, v := range m[p] {
			want := float16.Fromfloat32(v).Bits()
			if ulpDistance(want, h[p][t]) > 1 {
				return fmt.Errorf("%w: phase %d tap %d: float %v rounds to %#04x, table has %#04x",
					ErrHalfMismatch, p, t, v, want, h[p][t])
			}
		}
	}
	return nil
}

// Validate checks both built-in tables against their binary16 forms.
func Validate() error {
	for _, k := range Kinds {
		m, h := Table(k), HalfTable(k)
		if err := ValidateHalf(&m, &h); err != nil {
			return fmt.Errorf("%v table: %w", k, err)
		}
	}
	return nil
}

// ulpDistance is the number of representable binary16 values between a and
// b. Both zeros are the same point.
func ulpDistance(a, b uint16) int {
	d := ordinal(a) - ordinal(b)
	if d < 0 {
		d = -d
	}
	return d
}

// ordinal maps sign-magnitude bits onto a monotonic integer line.
func ordinal(h uint16) int {
	if h&0x8000 != 0 {
		return -int(h & 0x7fff)
	}
	return int(h)
}
