package variants

import (
	"testing"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id     string
		title  string
		shapes int
	}{
		{"tetris", "Tetris", 7},
		{"tetris_plus", "Tetris Plus", 9},
		{"tetris_easy", "Tetris (Lines Only)", 1},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create(%q): %v", tt.id, err)
			}
			if g.ID() != tt.id {
				t.Errorf("ID() = %q, want %q", g.ID(), tt.id)
			}
			if g.Title() != tt.title {
				t.Errorf("Title() = %q, want %q", g.Title(), tt.title)
			}
			if n := len(g.Shapes()); n != tt.shapes {
				t.Errorf("len(Shapes()) = %d, want %d", n, tt.shapes)
			}
		})
	}
}

func TestEasyVariantOnlySpawnsLines(t *testing.T) {
	s, err := registry.NewSession("tetris_easy", config.DefaultTetrisConfig(), 3)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	for i := 0; i < 500; i++ {
		if name := s.Active().Shape.Name; name != "I" {
			t.Fatalf("tick %d: spawned %q, want I", i, name)
		}
		s.Tick()
	}
}
