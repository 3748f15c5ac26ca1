// Package output writes selected lines in the "<N>: <text>" format.
package output

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"

	"viewseg/internal/config"
	"viewseg/internal/errors"
	"viewseg/internal/lines"
)

const separator = ": "

// Printer buffers numbered lines and flushes them to the underlying writer.
// Only the line number is ever coloured; separator and text stay raw.
type Printer struct {
	w       *bufio.Writer
	number  *color.Color
	written int
}

// NewPrinter creates a Printer writing to w. Colour is resolved from mode
// and whether w is a terminal.
func NewPrinter(w io.Writer, mode config.ColorMode) *Printer {
	p := &Printer{w: bufio.NewWriter(w)}
	if UseColor(mode, w) {
		p.number = color.New(color.FgGreen)
		p.number.EnableColor()
	}
	return p
}

// UseColor reports whether a Printer over w should colour line numbers.
func UseColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Print writes one line. Errors are reported by Flush.
func (p *Printer) Print(line lines.Line) error {
	num := strconv.Itoa(line.Number)
	if p.number != nil {
		num = p.number.Sprint(num)
	}
	if _, err := p.w.WriteString(num); err != nil {
		return errors.NewOutputError("write failed", err)
	}
	if _, err := p.w.WriteString(separator); err != nil {
		return errors.NewOutputError("write failed", err)
	}
	if _, err := p.w.WriteString(line.Text); err != nil {
		return errors.NewOutputError("write failed", err)
	}
	if err := p.w.WriteByte('\n'); err != nil {
		return errors.NewOutputError("write failed", err)
	}
	p.written++
	return nil
}

// PrintAll writes every line in order.
func (p *Printer) PrintAll(selected []lines.Line) error {
	for _, line := range selected {
		if err := p.Print(line); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered output.
func (p *Printer) Flush() error {
	if err := p.w.Flush(); err != nil {
		return errors.NewOutputError("flush failed", err)
	}
	return nil
}

// Written returns the number of lines printed so far.
func (p *Printer) Written() int {
	return p.written
}
