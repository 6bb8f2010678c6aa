package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)
	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, want blank", x, y, s.GetCell(x, y))
			}
		}
	}

	if empty := NewScreen(-3, 2); empty.Width() != 0 || empty.String() != "" {
		t.Errorf("negative width screen = %dx%d %q", empty.Width(), empty.Height(), empty.String())
	}
}

func TestScreenCellsClip(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, '█', ColorBlue)
	if got := s.GetCell(5, 5); got != (Cell{'█', ColorBlue}) {
		t.Errorf("GetCell(5, 5) = %+v, want blue block", got)
	}

	for _, p := range []Pos{P(-1, 0), P(10, 0), P(0, -1), P(0, 10)} {
		s.SetCell(p.X, p.Y, 'A', ColorRed)
		if got := s.GetCell(p.X, p.Y); got != blankCell {
			t.Errorf("GetCell(%v) = %+v, want blank", p, got)
		}
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("off-screen write leaked onto the screen")
	}

	s.Clear()
	if s.GetCell(5, 5) != blankCell {
		t.Error("Clear left a cell behind")
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorYellow)
	for i, ch := range "Hello" {
		if got := s.GetCell(2+i, 1); got.Rune != ch || got.Color != ColorYellow {
			t.Errorf("cell %d = %+v, want yellow %q", 2+i, got, ch)
		}
	}

	s.DrawTextColor(18, 0, "Hello", ColorDefault)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' || s.GetCell(0, 1).Rune != ' ' {
		t.Error("text should clip at the right edge without wrapping")
	}

	s.DrawTextCentered(3, "Hi")
	if s.GetCell(9, 3).Rune != 'H' || s.GetCell(10, 3).Rune != 'i' {
		t.Errorf("centered row = %q", strings.Split(s.String(), "\n")[3])
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	want := strings.Join([]string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("box =\n%s\nwant\n%s", got, want)
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("box color not applied")
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(0, 0, "Hello", ColorCyan)
	s.DrawTextColor(0, 2, "World", ColorDefault)

	s.Resize(4, 2)
	if got := s.String(); got != "Hell\n    " {
		t.Errorf("after shrink = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("color lost across resize")
	}

	s.Resize(6, 3)
	if got := s.String(); got != "Hell  \n      \n      " {
		t.Errorf("after grow = %q", got)
	}
}
