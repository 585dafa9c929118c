package text

import "testing"

func TestCursorAdvanceAcrossLines(t *testing.T) {
	src := NewSource("ab\ncd")
	c := src.Cursor()
	var got []byte
	for c.Valid() {
		got = append(got, c.Byte())
		c.Advance()
	}
	if string(got) != "ab\ncd" {
		t.Errorf("walk = %q", got)
	}
	// invalidation is terminal
	if c.Advance() {
		t.Error("Advance on invalid cursor should fail")
	}
	if c.Byte() != 0 {
		t.Error("Byte on invalid cursor should be 0")
	}
}

func TestCursorLinePositions(t *testing.T) {
	src := NewSource("ab\ncd\n")
	c := src.Cursor()
	c.AdvanceN(3) // 'c'
	if c.LineIdx() != 1 || c.Col() != 0 || c.Byte() != 'c' {
		t.Errorf("after AdvanceN(3): line=%d col=%d byte=%q", c.LineIdx(), c.Col(), c.Byte())
	}
	if got := c.String(); got != "line:2:1" {
		t.Errorf("String = %q, want line:2:1", got)
	}
}

func TestAdvanceInLineStopsAtBoundary(t *testing.T) {
	src := NewSource("ab\ncd")
	c := src.Cursor()
	if !c.AdvanceInLine() || c.Byte() != 'b' {
		t.Fatal("expected to reach 'b'")
	}
	// 'b' is not the last byte, '\n' is
	if !c.AdvanceInLine() || c.Byte() != '\n' {
		t.Fatal("expected to reach the line break")
	}
	if c.AdvanceInLine() {
		t.Error("AdvanceInLine must not cross the line boundary")
	}
	if !c.AtLineEnd() {
		t.Error("cursor on the break byte should be at line end")
	}
	if c.Byte() != '\n' || !c.Valid() {
		t.Error("failed AdvanceInLine must not move the cursor")
	}
}

func TestAdvanceInLineN(t *testing.T) {
	src := NewSource("abcdef")
	c := src.Cursor()
	if !c.AdvanceInLineN(5) || c.Byte() != 'f' {
		t.Errorf("AdvanceInLineN(5): byte=%q", c.Byte())
	}
	d := src.Cursor()
	if d.AdvanceInLineN(6) {
		t.Error("AdvanceInLineN past the line end should fail")
	}
	if d.Byte() != 'a' {
		t.Error("failed AdvanceInLineN must not move the cursor")
	}
}

func TestLineJumps(t *testing.T) {
	src := NewSource("abc\ndefg\n")
	c := src.Cursor()
	c.ToNextLine()
	c.AdvanceInLineN(2) // 'f'
	if !c.ToLineStart() || c.Byte() != 'd' {
		t.Errorf("ToLineStart: byte=%q", c.Byte())
	}
	if !c.ToLineEnd() || c.Byte() != '\n' {
		t.Errorf("ToLineEnd: byte=%q", c.Byte())
	}
	if !c.ToContentEnd() || c.Byte() != 'g' {
		t.Errorf("ToContentEnd: byte=%q", c.Byte())
	}
	if c.ToNextLine() {
		t.Error("ToNextLine on the last line should fail")
	}
	if c.Valid() {
		t.Error("failed ToNextLine invalidates the cursor")
	}
}

func TestToContentEndOnBlankLine(t *testing.T) {
	src := NewSource("\nx")
	c := src.Cursor()
	if !c.ToContentEnd() || c.Col() != 0 || c.Byte() != '\n' {
		t.Errorf("blank line ToContentEnd: col=%d byte=%q", c.Col(), c.Byte())
	}
}

func TestEmptySourceCursorInvalid(t *testing.T) {
	src := NewSource("")
	c := src.Cursor()
	if c.Valid() {
		t.Error("cursor over empty text should be invalid")
	}
	if c.Advance() || c.AdvanceInLine() || c.ToNextLine() || c.ToLineStart() {
		t.Error("movement on an invalid cursor should fail")
	}
}

func TestAtLineEndOnUnterminatedLastLine(t *testing.T) {
	src := NewSource("k=v")
	c := src.Cursor()
	c.AdvanceInLineN(2) // 'v'
	if !c.AtLineEnd() {
		t.Error("last content byte of an unterminated line is the line end")
	}
}
