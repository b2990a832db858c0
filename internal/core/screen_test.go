package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3, 2) = %q, expected %q", got, 'x')
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'y')
	s.Set(10, 0, 'y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10, 0) = %q, expected space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, 'a', ColorBrightGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != 'a' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected {a BrightGreen}", cell)
	}

	// Clear resets color
	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(1, 1) = %+v, expected blank default", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello   ")
	}

	// Text is clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q, expected %q", got, "        ab")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '#')

	s.Resize(8, 6)
	if got := s.Get(2, 2); got != '#' {
		t.Errorf("after grow, Get(2, 2) = %q, expected '#'", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != '#' {
		t.Errorf("after shrink, Get(2, 2) = %q, expected '#'", got)
	}
	if s.Width() != 3 || s.Height() != 3 {
		t.Errorf("size = (%d, %d), expected (3, 3)", s.Width(), s.Height())
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionCatch)
	f.SetClick(5, 7)

	if !f.Has(ActionCatch) {
		t.Error("expected ActionCatch to be set")
	}
	if f.Click == nil || f.Click.X != 5 || f.Click.Y != 7 {
		t.Errorf("Click = %+v, expected (5, 7)", f.Click)
	}

	f.Clear()
	if f.Has(ActionCatch) {
		t.Error("expected ActionCatch to be cleared")
	}
	if f.Click != nil {
		t.Error("expected Click to be cleared")
	}
}
