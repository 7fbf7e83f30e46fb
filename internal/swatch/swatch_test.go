package swatch

import (
	"image/color"
	"strings"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{color.NRGBA{R: 255, G: 0, B: 0, A: 255}, "#FF0000"},
		{color.NRGBA{R: 0, G: 128, B: 255, A: 255}, "#0080FF"},
		{color.Black, "#000000"},
		{color.White, "#FFFFFF"},
	}
	for _, tt := range tests {
		if got := Hex(tt.c); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestRGB(t *testing.T) {
	got := RGB(color.NRGBA{R: 12, G: 34, B: 56, A: 255})
	if got != "rgb(12, 34, 56)" {
		t.Errorf("RGB() = %q, want rgb(12, 34, 56)", got)
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#FF0000", "#0080FF", "#ABCDEF", "123456", "#abcdef"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", s, err)
		}
		got := Hex(c)
		want := "#" + strings.TrimPrefix(s, "#")
		if !strings.EqualFold(got, want) {
			t.Errorf("Hex(ParseHex(%q)) = %q", s, got)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, s := range []string{"", "#12345", "#GGGGGG", "not a color"} {
		if _, err := ParseHex(s); err == nil {
			t.Errorf("ParseHex(%q) expected error", s)
		}
	}
}
