package coef

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrShortBuffer is returned when a buffer cannot hold ImageSize bytes.
var ErrShortBuffer = errors.New("coef: buffer smaller than packed table")

// Layout describes how a packed table maps onto a 2D texture upload.
type Layout struct {
	// Width is the texture width in texels (TexelsPerRow).
	Width uint32
	// Height is the texture height in texels (PhaseCount).
	Height uint32
	// BytesPerRow is the byte stride between phase rows (RowPitch).
	BytesPerRow uint32
	// RowsPerImage is the number of rows in the upload (PhaseCount).
	RowsPerImage uint32
}

// Size returns the payload size the layout describes.
func (l Layout) Size() int {
	return int(l.BytesPerRow) * int(l.RowsPerImage)
}

// TextureLayout returns the layout of a packed table as a 2x64
// four-channel float32 texture.
func TextureLayout() Layout {
	return Layout{
		Width:        TexelsPerRow,
		Height:       PhaseCount,
		BytesPerRow:  RowPitch,
		RowsPerImage: PhaseCount,
	}
}

// Pack returns the table in its native row-major float32 layout as
// little-endian bytes. The result is always ImageSize bytes; taps are
// neither transformed nor reordered, so texel (x, y) channel c holds
// m[y][x*ChannelsPerTexel+c].
func Pack(m *Matrix) []byte {
	buf := make([]byte, ImageSize)
	pack(buf, m)
	return buf
}

// PackInto writes the packed table into dst, which must hold ImageSize bytes.
func PackInto(dst []byte, m *Matrix) error {
	if len(dst) < ImageSize {
		return ErrShortBuffer
	}
	pack(dst, m)
	return nil
}

func pack(buf []byte, m *Matrix) {
	le := binary.LittleEndian
	for p := range m {
		row := buf[p*RowPitch : (p+1)*RowPitch]
		for t, v := range m[p] {
			le.PutUint32(row[t*BytesPerTap:], math.Float32bits(v))
		}
	}
}

// Unpack decodes a packed table.
func Unpack(b []byte) (Matrix, error) {
	var m Matrix
	if len(b) < ImageSize {
		return m, ErrShortBuffer
	}
	le := binary.LittleEndian
	for p := range m {
		for t := range m[p] {
			m[p][t] = math.Float32frombits(le.Uint32(b[p*RowPitch+t*BytesPerTap:]))
		}
	}
	return m, nil
}
