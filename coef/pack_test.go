package coef

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestPackSize(t *testing.T) {
	for _, k := range Kinds {
		m := Table(k)
		if got := len(Pack(&m)); got != ImageSize {
			t.Errorf("%v: len(Pack) = %d, want %d", k, got, ImageSize)
		}
	}
	if got := TextureLayout().Size(); got != 2048 {
		t.Errorf("TextureLayout().Size() = %d, want 2048", got)
	}
}

func TestTextureLayout(t *testing.T) {
	want := Layout{Width: 2, Height: 64, BytesPerRow: 32, RowsPerImage: 64}
	if got := TextureLayout(); got != want {
		t.Errorf("TextureLayout() = %+v, want %+v", got, want)
	}
}

func TestPackRowMajor(t *testing.T) {
	m := Table(KindUSM)
	buf := Pack(&m)
	layout := TextureLayout()

	// Texel (x, y) channel c must hold m[y][x*4+c].
	for y := 0; y < int(layout.Height); y++ {
		for x := 0; x < int(layout.Width); x++ {
			for c := 0; c < ChannelsPerTexel; c++ {
				off := y*int(layout.BytesPerRow) + (x*ChannelsPerTexel+c)*BytesPerTap
				got := math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
				if want := m[y][x*ChannelsPerTexel+c]; got != want {
					t.Fatalf("texel (%d,%d) channel %d = %v, want %v", x, y, c, got, want)
				}
			}
		}
	}
}

func TestPackCenterTapBytes(t *testing.T) {
	m := Table(KindScale)
	buf := Pack(&m)
	// Phase 0, tap 2 is 1.0f = 0x3f800000.
	if got := buf[8:12]; !bytes.Equal(got, []byte{0x00, 0x00, 0x80, 0x3f}) {
		t.Errorf("center tap bytes = % x", got)
	}
}

func TestPackDeterministic(t *testing.T) {
	m := Table(KindScale)
	if !bytes.Equal(Pack(&m), Pack(&m)) {
		t.Error("Pack is not deterministic")
	}
	if Table(KindScale) != Scale {
		t.Error("Pack modified its input")
	}
}

func TestPackIntoUnpack(t *testing.T) {
	m := Table(KindScale)
	dst := make([]byte, ImageSize)
	if err := PackInto(dst, &m); err != nil {
		t.Fatalf("PackInto: %v", err)
	}
	if !bytes.Equal(dst, Pack(&m)) {
		t.Error("PackInto and Pack disagree")
	}
	got, err := Unpack(dst)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got != m {
		t.Error("Unpack(Pack(m)) != m")
	}

	if err := PackInto(make([]byte, ImageSize-1), &m); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("PackInto short: %v", err)
	}
	if _, err := Unpack(dst[:100]); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Unpack short: %v", err)
	}
}

func BenchmarkPack(b *testing.B) {
	m := Table(KindScale)
	buf := make([]byte, ImageSize)
	b.SetBytes(ImageSize)
	for i := 0; i < b.N; i++ {
		_ = PackInto(buf, &m)
	}
}
