package nis

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"math"
)

// ConfigWGSL is the canonical WGSL declaration of the NISConfig uniform and
// of the two coefficient texture bindings in group 0. Its field order matches
// Config.Marshal exactly.
//
//go:embed shaders/nis_config.wgsl
var ConfigWGSL string

// Uniform buffer layout of Config.
const (
	// UniformWords is the number of 4-byte scalars in the uniform.
	UniformWords = 28

	// UniformSize is the size of the marshalled uniform in bytes.
	UniformSize = UniformWords * 4
)

// ErrShortBuffer is returned by MarshalTo when dst cannot hold UniformSize bytes.
var ErrShortBuffer = errors.New("nis: buffer too small for uniform")

// UniformField describes one scalar of the uniform.
type UniformField struct {
	// Name is the WGSL member name.
	Name string
	// Unsigned is true for u32 members, false for f32.
	Unsigned bool
}

// UniformLayout lists the uniform members in buffer order.
var UniformLayout = [UniformWords]UniformField{
	{"kDetectRatio", false},
	{"kDetectThres", false},
	{"kMinContrastRatio", false},
	{"kRatioNorm", false},
	{"kContrastBoost", false},
	{"kEps", false},
	{"kSharpStartY", false},
	{"kSharpScaleY", false},
	{"kSharpStrengthMin", false},
	{"kSharpStrengthScale", false},
	{"kSharpLimitMin", false},
	{"kSharpLimitScale", false},
	{"kScaleX", false},
	{"kScaleY", false},
	{"kDstNormX", false},
	{"kDstNormY", false},
	{"kSrcNormX", false},
	{"kSrcNormY", false},
	{"kInputViewportOriginX", true},
	{"kInputViewportOriginY", true},
	{"kInputViewportWidth", true},
	{"kInputViewportHeight", true},
	{"kOutputViewportOriginX", true},
	{"kOutputViewportOriginY", true},
	{"kOutputViewportWidth", true},
	{"kOutputViewportHeight", true},
	{"reserved0", false},
	{"reserved1", false},
}

// Words returns the uniform as raw 32-bit words in buffer order.
// Float members are stored as their IEEE-754 bits.
func (c *Config) Words() [UniformWords]uint32 {
	f := math.Float32bits
	return [UniformWords]uint32{
		f(c.DetectRatio), f(c.DetectThres), f(c.MinContrastRatio), f(c.RatioNorm),
		f(c.ContrastBoost), f(c.Eps), f(c.SharpStartY), f(c.SharpScaleY),
		f(c.SharpStrengthMin), f(c.SharpStrengthScale), f(c.SharpLimitMin), f(c.SharpLimitScale),
		f(c.ScaleX), f(c.ScaleY), f(c.DstNormX), f(c.DstNormY),
		f(c.SrcNormX), f(c.SrcNormY),
		c.InputViewportOriginX, c.InputViewportOriginY, c.InputViewportWidth, c.InputViewportHeight,
		c.OutputViewportOriginX, c.OutputViewportOriginY, c.OutputViewportWidth, c.OutputViewportHeight,
		f(c.Reserved0), f(c.Reserved1),
	}
}

// Size returns the size of the marshalled uniform in bytes.
func (c *Config) Size() int { return UniformSize }

// Marshal serializes the config into a UniformSize-byte little-endian
// buffer ready for a uniform buffer write.
func (c *Config) Marshal() []byte {
	buf := make([]byte, UniformSize)
	c.marshal(buf)
	return buf
}

// MarshalTo writes the uniform into dst, which must hold at least
// UniformSize bytes. It lets per-frame callers reuse one buffer.
func (c *Config) MarshalTo(dst []byte) error {
	if len(dst) < UniformSize {
		return ErrShortBuffer
	}
	c.marshal(dst)
	return nil
}

func (c *Config) marshal(buf []byte) {
	le := binary.LittleEndian
	for i, w := range c.Words() {
		le.PutUint32(buf[i*4:i*4+4], w)
	}
}
