package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenSetKeepsColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 4, '█', ColorGreen)

	c := s.GetCell(3, 4)
	if c.Rune != '█' || c.Color != ColorGreen {
		t.Errorf("GetCell(3, 4) = %+v", c)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(5, 0, "Score: 12", ColorWhite)

	if got := s.Row(0); got != "     Sco" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi", ColorDefault)

	if s.GetCell(9, 1).Rune != 'H' || s.GetCell(10, 1).Rune != 'i' {
		t.Errorf("centered text misplaced: %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	if s.GetCell(1, 1).Rune != '┌' || s.GetCell(5, 1).Rune != '┐' || s.GetCell(1, 4).Rune != '└' || s.GetCell(5, 4).Rune != '┘' {
		t.Errorf("corners wrong:\n%s", s.String())
	}
	if s.GetCell(3, 1).Rune != '─' || s.GetCell(1, 2).Rune != '│' {
		t.Errorf("edges wrong:\n%s", s.String())
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(0, 0, "Hello", ColorDefault)
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("resize should clear, got %q", s.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawHLine(0, 0, 3, '=', ColorGray)
	s.DrawText(0, 1, "abc", ColorDefault)

	if got := s.String(); got != "===\nabc" {
		t.Errorf("String() = %q", got)
	}
}
