// Package coef holds the NIS polyphase filter tables and their GPU texture
// layout.
//
// Each table has PhaseCount rows (fractional sub-pixel offsets) of
// FilterSize taps. Scale is the resize kernel, USM the unsharp-mask kernel.
// The float32 tables are authoritative; ScaleFP16 and USMFP16 carry the same
// values as binary16 bit patterns for shaders that sample half-precision
// data.
//
// Pack lays a table out for an RGBA32Float texture of TexelsPerRow x
// PhaseCount texels: the row-major float32 data as bytes, with a row pitch of
// RowPitch bytes. The tables never change, so a host packs and uploads them
// once.
//
// The package-level tables must be treated as read-only. Table and HalfTable
// return copies for callers that need to modify one.
package coef
