package frame

import (
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("Expected 4x3 buffer, got %dx%d", b.Width(), b.Height())
	}
	if got := b.String(); got != "    \n    \n    " {
		t.Errorf("Expected blank buffer, got %q", got)
	}

	empty := NewBuffer(-1, 5)
	if empty.Width() != 0 || empty.String() != "\n\n\n\n" {
		t.Errorf("Expected zero-width buffer, got width %d and %q", empty.Width(), empty.String())
	}
}

func TestBuffer_SetAt(t *testing.T) {
	b := NewBuffer(3, 2)

	if err := b.Set(2, 1, 'x'); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if r, err := b.At(2, 1); err != nil || r != 'x' {
		t.Errorf("Expected 'x' at (2,1), got %q (err %v)", r, err)
	}

	for _, pos := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		if err := b.Set(pos[0], pos[1], 'x'); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d): expected ErrOutOfBounds, got %v", pos[0], pos[1], err)
		}
		if _, err := b.At(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d, %d): expected ErrOutOfBounds, got %v", pos[0], pos[1], err)
		}
	}

	b.Put(10, 10, 'z') // dropped silently
	if got := b.String(); got != "   \n  x" {
		t.Errorf("Unexpected buffer contents %q", got)
	}
}

func TestBuffer_SetColumn(t *testing.T) {
	b := NewBuffer(2, 3)

	if err := b.SetColumn(1, []rune{'a', 'b', 'c', 'd'}); err != nil {
		t.Fatalf("SetColumn: %v", err)
	}
	if got := b.String(); got != " a\n b\n c" {
		t.Errorf("Unexpected buffer contents %q", got)
	}
	if err := b.SetColumn(2, []rune{'a'}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}

func TestBuffer_WriteString(t *testing.T) {
	b := NewBuffer(5, 1)

	n := b.WriteString(2, 0, "hello")
	if n != 3 {
		t.Errorf("Expected 3 glyphs written, got %d", n)
	}
	if got := b.String(); got != "  hel" {
		t.Errorf("Expected clipped text, got %q", got)
	}

	if n := b.WriteString(0, 4, "x"); n != 0 {
		t.Errorf("Expected nothing written off-buffer, got %d", n)
	}
}

func TestBuffer_RowAndCopy(t *testing.T) {
	b := NewBuffer(3, 2)
	b.WriteString(0, 1, "abc")

	row := b.Row(1)
	row[0] = 'z'
	if r, _ := b.At(0, 1); r != 'a' {
		t.Error("Row should return a copy")
	}
	if b.Row(5) != nil {
		t.Error("Row outside the buffer should be nil")
	}

	dst := NewBuffer(1, 1)
	dst.CopyFrom(b)
	if dst.Width() != 3 || dst.Height() != 2 || dst.String() != b.String() {
		t.Errorf("CopyFrom mismatch: %q vs %q", dst.String(), b.String())
	}

	b.Clear()
	if dst.String() == b.String() {
		t.Error("CopyFrom should not alias the source")
	}
}

func TestBuffer_OverlayFlags(t *testing.T) {
	b := NewBuffer(3, 2)

	b.SetColumn(0, []rune{'#', '#'})
	b.Put(1, 0, '#')
	b.WriteString(0, 1, ".")

	if b.IsOverlay(0, 0) {
		t.Error("Scene glyph from SetColumn should not be overlay")
	}
	if !b.IsOverlay(1, 0) || !b.IsOverlay(0, 1) {
		t.Error("Put and WriteString should mark overlay cells")
	}
	if b.IsOverlay(9, 9) {
		t.Error("Cells outside the buffer are never overlay")
	}

	dst := NewBuffer(1, 1)
	dst.CopyFrom(b)
	if !dst.IsOverlay(1, 0) || dst.IsOverlay(0, 0) {
		t.Error("CopyFrom should carry overlay flags")
	}

	// Next frame's scene column replaces the overlay flag
	b.SetColumn(1, []rune{'x', 'x'})
	if b.IsOverlay(1, 0) {
		t.Error("SetColumn should clear the overlay flag")
	}
	b.Put(2, 1, 'P')
	b.Clear()
	if b.IsOverlay(2, 1) {
		t.Error("Clear should reset overlay flags")
	}
}
