package pcomb

import "testing"

func TestInitial(t *testing.T) {
	pos := Initial("")
	if pos.Filename != DefaultFilename || pos.Line != 1 || pos.Column != 1 || pos.Offset != 0 {
		t.Errorf("unexpected initial position %#v", pos)
	}
	if pos.Pretty() != "<input>:1:1" {
		t.Errorf("expected pretty position to be <input>:1:1, is %s", pos.Pretty())
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		consumed string
		line     int
		col      int
		offset   int
	}{
		{"empty", "", 1, 1, 0},
		{"plain", "abc", 1, 4, 3},
		{"newline", "ab\nc", 2, 2, 4},
		{"carriage return", "a\rb", 2, 2, 3},
		{"two tabs", "\t\t", 1, 9, 2},
		{"tab after text", "ab\t", 1, 5, 3},
		{"tab on stop", "abcd\t", 1, 9, 5},
		{"multibyte", "äö", 1, 3, 4},
	}
	for _, tt := range tests {
		pos := Initial("test").Advance(tt.consumed)
		if pos.Line != tt.line || pos.Column != tt.col || pos.Offset != tt.offset {
			t.Errorf("%s: expected %d:%d@%d, got %d:%d@%d", tt.name, tt.line, tt.col, tt.offset,
				pos.Line, pos.Column, pos.Offset)
		}
	}
}

func TestAdvanceIsImmutable(t *testing.T) {
	pos := Initial("x")
	next := pos.Advance("hello")
	if pos.Column != 1 || next.Column != 6 {
		t.Errorf("Advance must not modify the receiver")
	}
	if !pos.Before(next) {
		t.Errorf("expected %s to be before %s", pos, next)
	}
}
