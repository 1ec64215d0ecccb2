package source

import "testing"

func TestNewFileLineStarts(t *testing.T) {
	f := NewFile("a.adl", "model M {\n  x: string;\n}\n")

	cases := []struct {
		pos  Pos
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{10, LineCol{2, 1}},
		{25, LineCol{4, 1}},
	}
	for _, c := range cases {
		if got := f.LineCol(c.pos); got != c.want {
			t.Errorf("LineCol(%d) = %+v, want %+v", c.pos, got, c.want)
		}
	}
}

func TestFileLineText(t *testing.T) {
	f := NewFile("a.adl", "one\r\ntwo\nthree")
	if got := f.LineText(1); got != "one" {
		t.Errorf("LineText(1) = %q, want %q", got, "one")
	}
	if got := f.LineText(2); got != "two" {
		t.Errorf("LineText(2) = %q, want %q", got, "two")
	}
	if got := f.LineText(3); got != "three" {
		t.Errorf("LineText(3) = %q, want %q", got, "three")
	}
	if got := f.LineText(4); got != "" {
		t.Errorf("LineText(4) = %q, want empty", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: 5, End: 10}
	if !r.Contains(5) || !r.Contains(10) || !r.Contains(7) {
		t.Errorf("expected range to contain its endpoints and interior")
	}
	if r.Contains(4) || r.Contains(11) {
		t.Errorf("expected range to reject points outside [start, end]")
	}
}

func TestFileSliceClampsToBounds(t *testing.T) {
	f := NewFile("a.adl", "abc")
	if got := f.Slice(Range{Start: 0, End: 100}); got != "abc" {
		t.Errorf("Slice clamped = %q, want %q", got, "abc")
	}
	if got := f.Slice(Range{Start: 2, End: 1}); got != "" {
		t.Errorf("Slice with start>end = %q, want empty", got)
	}
}
