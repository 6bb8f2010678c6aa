package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
	}{
		{"blue", ColorBlue},
		{"Magenta", ColorMagenta},
		{"bright-cyan", ColorBrightCyan},
		{"bright_white", ColorBrightWhite},
		{" orange ", ColorOrange},
		{"grey", ColorGray},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.name)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.name, err)
			}
			if c != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, c, tc.expected)
			}
		})
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", c.String(), parsed, c)
		}
	}
}
