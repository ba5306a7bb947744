package nis

import "errors"

// ErrInvalidGeometry is returned when the viewport geometry cannot be
// processed: a resolved viewport dimension is zero, or the input/output
// ratio on an axis falls outside [MinScale, MaxScale].
//
// Derivation is deterministic, so the same geometry fails again until the
// caller changes it. The returned error wraps ErrInvalidGeometry with the
// failing condition; test for it with errors.Is.
var ErrInvalidGeometry = errors.New("nis: invalid geometry")

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("nis: invalid settings")
