package calc

import "testing"

func TestFormatGrouping(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"0", "0"},
		{"7", "7"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"1000000", "1,000,000"},
		{"-1234", "-1,234"},
		{"1234.5678", "1,234.5678"},
		{"0.", "0."},
		{"1234.", "1,234."},
		{"-0.5", "-0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Format(tt.raw); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseInvertsFormat(t *testing.T) {
	inputs := []string{
		"", "0", "5", "1234", "9999999999999999",
		"-1234567", "3.14159", "1234.", "0.", "-0.001", "1000000.000001",
	}
	for _, raw := range inputs {
		if got := Parse(Format(raw)); got != raw {
			t.Errorf("Parse(Format(%q)) = %q, want identity", raw, got)
		}
	}
}

func TestFractionNeverGrouped(t *testing.T) {
	if got := Format("1.123456789"); got != "1.123456789" {
		t.Errorf("Format grouped the fractional part: %q", got)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{3, "3"},
		{3.75, "3.75"},
		{-42, "-42"},
		{1000000, "1,000,000"},
		{0.1, "0.1"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.v); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		formatted string
		want      float64
	}{
		{"", 0},
		{"0.", 0},
		{"1,234", 1234},
		{"-1,234.5", -1234.5},
		{"255", 255},
	}
	for _, tt := range tests {
		if got := Value(tt.formatted); got != tt.want {
			t.Errorf("Value(%q) = %v, want %v", tt.formatted, got, tt.want)
		}
	}
}

func TestHexString(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{255, "0xFF"},
		{0, "0x0"},
		{16.9, "0x10"},
		{-255, "-0xFF"},
		{4096, "0x1000"},
	}
	for _, tt := range tests {
		if got := HexString(tt.v); got != tt.want {
			t.Errorf("HexString(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
