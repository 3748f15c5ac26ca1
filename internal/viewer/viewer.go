// Package viewer implements the read, decode, split, select and print
// pipeline behind the viewseg command.
package viewer

import (
	"context"
	"io"
	"time"

	"viewseg/internal/config"
	"viewseg/internal/decode"
	"viewseg/internal/lines"
	"viewseg/internal/log"
	"viewseg/internal/output"
	"viewseg/internal/source"
)

// Viewer prints a numbered line range of one file.
type Viewer struct {
	config  *config.Config
	decoder *decode.Decoder
	logger  *log.Logger
	stdout  io.Writer
}

// New creates a Viewer for a validated cfg. Diagnostics are written to
// stderr, selected lines to stdout.
func New(cfg *config.Config, stdout, stderr io.Writer) (*Viewer, error) {
	decoder, err := decode.NewDecoder(cfg.Encoding, cfg.Invalid)
	if err != nil {
		return nil, err
	}

	return &Viewer{
		config:  cfg,
		decoder: decoder,
		logger:  log.NewLogger(cfg, stderr),
		stdout:  stdout,
	}, nil
}

// Run executes the pipeline once. Cancellation of ctx is checked between
// stages; lines already flushed stay flushed.
func (v *Viewer) Run(ctx context.Context) error {
	startTime := time.Now()
	cfg := v.config

	v.logger.Stage("reading file", "path", cfg.Path)
	file, err := source.Read(cfg.Path)
	if err != nil {
		return err
	}
	v.logger.RecordFile(file.Size)
	if err := ctx.Err(); err != nil {
		return err
	}

	v.logger.Stage("decoding", "encoding", v.decoder.Name(), "policy", string(cfg.Invalid))
	decoded, err := v.decoder.Decode(file.Path, file.Content)
	if err != nil {
		return err
	}
	v.logger.RecordDecode(decoded.Encoding, decoded.Dropped)
	if decoded.Dropped > 0 {
		v.logger.Slog().Info("dropped invalid bytes", "count", decoded.Dropped)
	}

	all := lines.Split(decoded.Text)
	requested := lines.NewRange(cfg.Start, cfg.End)
	effective := requested.Clamp(len(all))
	v.logger.Stage("selecting", "total_lines", len(all), "requested", requested.String(), "effective", effective.String())
	selected := lines.Select(all, requested)
	if err := ctx.Err(); err != nil {
		return err
	}

	printer := output.NewPrinter(v.stdout, cfg.Color)
	if err := printer.PrintAll(selected); err != nil {
		return err
	}
	if err := printer.Flush(); err != nil {
		return err
	}

	v.logger.RecordSelection(len(all), requested.String(), effective.String(), printer.Written())
	v.logger.SetProcessingTime(time.Since(startTime))
	v.logger.WriteReport()
	return nil
}

// Summary returns the statistics gathered by the last Run.
func (v *Viewer) Summary() log.Summary {
	return v.logger.Summary()
}
