package core

import "testing"

func TestActionNames(t *testing.T) {
	tests := []struct {
		a           Action
		name        string
		directional bool
	}{
		{ActionNone, "None", false},
		{ActionLeft, "Left", true},
		{ActionUp, "Up", true},
		{ActionDown, "Down", true},
		{ActionRestart, "Restart", false},
		{ActionPause, "Pause", false},
		{Action(-1), "Unknown", false},
		{Action(99), "Unknown", false},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.name {
			t.Errorf("Action(%d).String() = %q, want %q", int(tt.a), got, tt.name)
		}
		if got := tt.a.Directional(); got != tt.directional {
			t.Errorf("%s.Directional() = %v", tt.name, got)
		}
	}
}
