package output

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"viewseg/internal/config"
	"viewseg/internal/errors"
	"viewseg/internal/lines"
)

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.ColorAuto)

	err := p.PrintAll([]lines.Line{
		{Number: 2, Text: "beta"},
		{Number: 3, Text: "gamma"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("expected output to stay buffered until Flush")
	}
	if err := p.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	expected := "2: beta\n3: gamma\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
	if p.Written() != 2 {
		t.Errorf("expected 2 written lines, got %d", p.Written())
	}
}

func TestPrinterRawContent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.ColorNever)

	if err := p.Print(lines.Line{Number: 10, Text: "  tabs\tand ☃ trailing  "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	expected := "10:   tabs\tand ☃ trailing  \n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestPrinterColorAlways(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.ColorAlways)

	if err := p.Print(lines.Line{Number: 7, Text: "seven"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escape in %q", out)
	}
	if !strings.HasSuffix(out, ": seven\n") {
		t.Errorf("expected separator and text to stay raw, got %q", out)
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name     string
		mode     config.ColorMode
		expected bool
	}{
		{"always", config.ColorAlways, true},
		{"never", config.ColorNever, false},
		{"auto on buffer", config.ColorAuto, false},
		{"empty mode on buffer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UseColor(tt.mode, &buf); got != tt.expected {
				t.Errorf("UseColor(%q) = %v, expected %v", tt.mode, got, tt.expected)
			}
		})
	}
}

func TestUseColorAutoOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if UseColor(config.ColorAuto, f) {
		t.Error("a regular file is not a terminal")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("disk full")
}

func TestPrinterWriteFailure(t *testing.T) {
	p := NewPrinter(failingWriter{}, config.ColorNever)

	if err := p.Print(lines.Line{Number: 1, Text: "x"}); err != nil {
		t.Fatalf("print should buffer, got %v", err)
	}

	err := p.Flush()
	var oe *errors.OutputError
	if !stderrors.As(err, &oe) {
		t.Fatalf("expected OutputError, got %T: %v", err, err)
	}
}
