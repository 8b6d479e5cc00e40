package core

import (
	"strings"
	"testing"
)

// rows renders the screen as plain lines for compact comparisons.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("NewScreen(6, 3) size = %dx%d", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "text clips at the right edge",
			draw: func(s *Screen) { s.DrawText(4, 0, "Score") },
			want: []string{"    Sc", "      ", "      "},
		},
		{
			name: "text left of the screen is dropped",
			draw: func(s *Screen) { s.DrawText(-2, 1, "ready") },
			want: []string{"      ", "ady   ", "      "},
		},
		{
			name: "centered uses rune width",
			draw: func(s *Screen) { s.DrawTextCentered(2, "·●") },
			want: []string{"      ", "      ", "  ·●  "},
		},
		{
			name: "rect fill",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 3, 2), '█') },
			want: []string{"      ", " ███  ", " ███  "},
		},
		{
			name: "box outline",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3)) },
			want: []string{"┌──┐  ", "│  │  ", "└──┘  "},
		},
		{
			name: "out of bounds writes are ignored",
			draw: func(s *Screen) {
				s.Set(-1, 0, 'x')
				s.Set(6, 0, 'x')
				s.Set(0, 3, 'x')
			},
			want: []string{"      ", "      ", "      "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 3)
			tt.draw(s)
			got := rows(s)
			for y := range tt.want {
				if got[y] != tt.want[y] {
					t.Errorf("row %d = %q, expected %q", y, got[y], tt.want[y])
				}
			}
		})
	}
}

func TestScreenCellsKeepColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(0, 0, 'ᗧ', ColorYellow)
	s.DrawTextColored(1, 1, "██", ColorNavy)

	if c := s.GetCell(0, 0); c != (Cell{Rune: 'ᗧ', Color: ColorYellow}) {
		t.Errorf("GetCell(0, 0) = %+v, expected yellow player glyph", c)
	}
	if c := s.GetCell(2, 1); c.Color != ColorNavy {
		t.Errorf("GetCell(2, 1).Color = %v, expected navy", c.Color)
	}
	if c := s.GetCell(9, 9); c != blankCell {
		t.Errorf("GetCell out of range = %+v, expected blank", c)
	}

	s.Clear()
	if c := s.GetCell(0, 0); c != blankCell {
		t.Errorf("GetCell(0, 0) after Clear = %+v, expected blank", c)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.DrawText(4, 2, "zz")

	s.Resize(3, 2)
	if got := s.String(); got != "ab \n   " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(4, 3)
	if got := s.Row(0); got != "ab  " {
		t.Errorf("after grow Row(0) = %q, expected %q", got, "ab  ")
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("after grow Row(2) = %q, expected blanks", got)
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected blanks", got)
	}
}
