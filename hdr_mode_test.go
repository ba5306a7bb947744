package nis

import "testing"

func TestHDRModeString(t *testing.T) {
	tests := []struct {
		mode HDRMode
		want string
	}{
		{HDRModeNone, "None"},
		{HDRModeLinear, "Linear"},
		{HDRModePQ, "PQ"},
		{HDRMode(42), "HDRMode(42)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("HDRMode(%d).String() = %q, want %q", uint32(tt.mode), got, tt.want)
		}
	}
}

func TestParseHDRMode(t *testing.T) {
	for _, m := range []HDRMode{HDRModeNone, HDRModeLinear, HDRModePQ} {
		got, err := ParseHDRMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseHDRMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseHDRMode("SDR"); err != nil || got != HDRModeNone {
		t.Errorf("ParseHDRMode(SDR) = %v, %v", got, err)
	}
	if _, err := ParseHDRMode("hlg"); err == nil {
		t.Error("ParseHDRMode(hlg) should fail")
	}
}
