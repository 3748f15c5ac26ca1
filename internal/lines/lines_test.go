package lines

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "empty", text: "", expected: nil},
		{name: "single line no terminator", text: "alpha", expected: []string{"alpha"}},
		{name: "trailing newline", text: "alpha\n", expected: []string{"alpha"}},
		{name: "lf", text: "alpha\nbeta\ngamma", expected: []string{"alpha", "beta", "gamma"}},
		{name: "crlf", text: "alpha\r\nbeta\r\n", expected: []string{"alpha", "beta"}},
		{name: "lone cr", text: "alpha\rbeta\r", expected: []string{"alpha", "beta"}},
		{name: "mixed", text: "a\r\nb\nc\rd", expected: []string{"a", "b", "c", "d"}},
		{name: "blank lines kept", text: "a\n\n\nb\n", expected: []string{"a", "", "", "b"}},
		{name: "only newline", text: "\n", expected: []string{""}},
		{name: "cr then crlf", text: "a\r\r\nb", expected: []string{"a", "", "b"}},
		{name: "whitespace preserved", text: "  x  \t\n", expected: []string{"  x  \t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestRangeClamp(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		total    int
		expected Range
		empty    bool
		length   int
	}{
		{name: "inside", r: NewRange(2, 3), total: 5, expected: Range{2, 3}, length: 2},
		{name: "end clamped", r: NewRange(2, 10), total: 3, expected: Range{2, 3}, length: 2},
		{name: "start past total", r: NewRange(5, 10), total: 3, expected: Range{5, 3}, empty: true},
		{name: "start after end", r: NewRange(3, 2), total: 5, expected: Range{3, 2}, empty: true},
		{name: "empty file", r: NewRange(1, 10), total: 0, expected: Range{1, 0}, empty: true},
		{name: "start raised", r: NewRange(0, 2), total: 5, expected: Range{1, 2}, length: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Clamp(tt.total)
			if got != tt.expected {
				t.Errorf("Clamp(%d) = %v, expected %v", tt.total, got, tt.expected)
			}
			if got.Empty() != tt.empty {
				t.Errorf("Empty() = %v, expected %v", got.Empty(), tt.empty)
			}
			if got.Len() != tt.length {
				t.Errorf("Len() = %d, expected %d", got.Len(), tt.length)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	all := []string{"alpha", "beta", "gamma"}

	tests := []struct {
		name     string
		r        Range
		expected []Line
	}{
		{
			name:     "middle to end",
			r:        NewRange(2, 3),
			expected: []Line{{2, "beta"}, {3, "gamma"}},
		},
		{
			name:     "end beyond total",
			r:        NewRange(3, 99),
			expected: []Line{{3, "gamma"}},
		},
		{
			name:     "single line",
			r:        NewRange(1, 1),
			expected: []Line{{1, "alpha"}},
		},
		{
			name:     "start beyond total",
			r:        NewRange(4, 10),
			expected: nil,
		},
		{
			name:     "start after end",
			r:        NewRange(3, 2),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(all, tt.r)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Select(%v) mismatch (-want +got):\n%s", tt.r, diff)
			}
		})
	}
}

func TestSelectCountAndNumbering(t *testing.T) {
	all := Split("l1\nl2\nl3\nl4\nl5\nl6\nl7\n")
	total := len(all)

	for start := 1; start <= total; start++ {
		for end := start; end <= total; end++ {
			got := Select(all, NewRange(start, end))
			if len(got) != end-start+1 {
				t.Fatalf("[%d,%d]: expected %d lines, got %d", start, end, end-start+1, len(got))
			}
			for i, line := range got {
				if line.Number != start+i {
					t.Fatalf("[%d,%d]: line %d numbered %d", start, end, i, line.Number)
				}
				if line.Text != all[line.Number-1] {
					t.Fatalf("[%d,%d]: line %d text %q", start, end, line.Number, line.Text)
				}
			}
		}
	}
}

func TestSelectRoundTrip(t *testing.T) {
	all := Split("one\ntwo\nthree\nfour\nfive")
	total := len(all)
	full := Select(all, NewRange(1, total))

	for k := 1; k < total; k++ {
		joined := append(Select(all, NewRange(1, k)), Select(all, NewRange(k+1, total))...)
		if diff := cmp.Diff(full, joined); diff != "" {
			t.Errorf("k=%d round trip mismatch (-want +got):\n%s", k, diff)
		}
	}
}
