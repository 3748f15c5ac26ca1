// Package lines splits decoded text into lines and selects 1-based
// inclusive ranges from them.
package lines

import (
	"fmt"
	"strings"
)

// Line is a single line of text with its 1-based position in the file.
type Line struct {
	Number int
	Text   string
}

// Range is a requested 1-based inclusive line range.
type Range struct {
	Start int
	End   int
}

// NewRange creates a Range from the given bounds. It performs no validation.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Clamp returns the effective range for a file of total lines: End is
// reduced to total when it exceeds it. A start below 1 is raised to 1.
func (r Range) Clamp(total int) Range {
	c := r
	if c.End > total {
		c.End = total
	}
	if c.Start < 1 {
		c.Start = 1
	}
	return c
}

// Empty reports whether the range selects no lines.
func (r Range) Empty() bool {
	return r.Start > r.End
}

// Len returns the number of lines in the range, never negative.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Split breaks text into lines. "\n", "\r\n" and a lone "\r" all end a
// line. A final line without a terminator is kept, a trailing terminator
// does not produce an empty last line, and empty text yields no lines.
func Split(text string) []string {
	if text == "" {
		return nil
	}

	out := make([]string, 0, strings.Count(text, "\n")+1)
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			out = append(out, text)
			break
		}
		out = append(out, text[:i])
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		text = text[i+1:]
	}
	return out
}

// Select returns the lines covered by r after clamping it to len(all).
// Line numbers refer to positions in all.
func Select(all []string, r Range) []Line {
	eff := r.Clamp(len(all))
	if eff.Empty() {
		return nil
	}

	selected := make([]Line, 0, eff.Len())
	for n := eff.Start; n <= eff.End; n++ {
		selected = append(selected, Line{Number: n, Text: all[n-1]})
	}
	return selected
}
