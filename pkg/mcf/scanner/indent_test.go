package scanner

import "testing"

func TestLineIndent(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   int
	}{
		{"first line unindented", "abc", 1, 0},
		{"first line indented", "    abc", 5, 4},
		{"second line", "a\n  bc", 4, 2},
		{"tab indentation", "\t\tx", 2, 2},
		{"position at line start", "a\n    b", 2, 4},
		{"deeper line after shallow", "a\n  b\n      c", 7, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.text)
			c.Advance(tt.offset)
			if got := LineIndent(c); got != tt.want {
				t.Errorf("LineIndent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLineIndent_DoesNotMoveCursor(t *testing.T) {
	c := New("a\n    bcd")
	c.Advance(7)

	before := c.Offset()
	LineIndent(c)
	if got := c.Offset(); got != before {
		t.Errorf("LineIndent moved the cursor: offset %d, want %d", got, before)
	}
}
