// Package log provides diagnostics and run reporting for viewseg.
// Diagnostics go through log/slog to stderr so standard output carries
// nothing but the selected lines.
package log

import (
	"io"
	"log/slog"
	"time"

	"viewseg/internal/config"
)

// Summary provides aggregate statistics for a single run.
type Summary struct {
	Path           string        `json:"path"`
	Encoding       string        `json:"encoding"`
	Bytes          int64         `json:"bytes"`
	DroppedBytes   int           `json:"dropped_bytes"`
	TotalLines     int           `json:"total_lines"`
	Requested      string        `json:"requested"`
	Effective      string        `json:"effective"`
	PrintedLines   int           `json:"printed_lines"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// Logger wraps a slog.Logger configured from Config and accumulates the
// run Summary.
type Logger struct {
	config  *config.Config
	logger  *slog.Logger
	summary Summary
}

// NewLogger creates a Logger writing to w. Level and handler follow the
// verbosity flags and log format in cfg.
func NewLogger(cfg *config.Config, w io.Writer) *Logger {
	return &Logger{
		config:  cfg,
		logger:  newSlogLogger(cfg, w),
		summary: Summary{Path: cfg.Path},
	}
}

func newSlogLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch {
	case !cfg.ShouldLog():
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	case cfg.IsDebug():
		level = slog.LevelDebug
	case cfg.IsVerbose():
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// Slog exposes the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// Stage logs a pipeline stage at debug level.
func (l *Logger) Stage(name string, args ...any) {
	l.logger.Debug(name, args...)
}

// RecordFile records the loaded file size.
func (l *Logger) RecordFile(size int64) {
	l.summary.Bytes = size
}

// RecordDecode records the decoding outcome.
func (l *Logger) RecordDecode(encoding string, dropped int) {
	l.summary.Encoding = encoding
	l.summary.DroppedBytes = dropped
}

// RecordSelection records line counts and both ranges.
func (l *Logger) RecordSelection(total int, requested, effective string, printed int) {
	l.summary.TotalLines = total
	l.summary.Requested = requested
	l.summary.Effective = effective
	l.summary.PrintedLines = printed
}

// SetProcessingTime records the total run duration.
func (l *Logger) SetProcessingTime(duration time.Duration) {
	l.summary.ProcessingTime = duration
}

// Summary returns a copy of the accumulated summary.
func (l *Logger) Summary() Summary {
	return l.summary
}

// WriteReport logs the run summary at info level. Nothing is written
// unless verbose output is enabled.
func (l *Logger) WriteReport() {
	if !l.config.IsVerbose() {
		return
	}

	s := l.summary
	l.logger.Info("segment printed",
		slog.String("path", s.Path),
		slog.String("encoding", s.Encoding),
		slog.Int64("bytes", s.Bytes),
		slog.Int("dropped_bytes", s.DroppedBytes),
		slog.Int("total_lines", s.TotalLines),
		slog.String("requested", s.Requested),
		slog.String("effective", s.Effective),
		slog.Int("printed_lines", s.PrintedLines),
		slog.Duration("processing_time", s.ProcessingTime),
	)
}
