// Package config provides configuration management and validation for viewseg.
// It centralizes the positional arguments and command-line options, providing
// validation logic to catch bad input before the target file is touched.
package config

import (
	"strconv"
	"strings"

	"viewseg/internal/errors"
)

// LogFormat represents the supported diagnostic output formats.
type LogFormat string

// Supported diagnostic formats.
const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// InvalidPolicy selects what decoding does with byte sequences that are not
// valid in the source charset.
type InvalidPolicy string

// Supported invalid-byte policies. PolicyIgnore drops malformed sequences,
// PolicyReplace substitutes U+FFFD for each of them.
const (
	PolicyIgnore  InvalidPolicy = "ignore"
	PolicyReplace InvalidPolicy = "replace"
)

// ColorMode controls colouring of the line-number prefix.
type ColorMode string

// Supported colour modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// DefaultEncoding is the input charset used when none is given.
const DefaultEncoding = "utf-8"

// Config holds all runtime configuration for a single viewseg invocation.
type Config struct {
	Path      string
	Start     int
	End       int
	Encoding  string
	Invalid   InvalidPolicy
	Color     ColorMode
	Verbose   bool
	Debug     bool
	Quiet     bool
	LogFormat LogFormat
}

// ParseBounds parses the textual start and end arguments into c.Start and
// c.End. Surrounding whitespace is tolerated, anything else that is not a
// base-10 integer is a ParsingError.
func (c *Config) ParseBounds(start, end string) error {
	s, err := parseBound("start", start)
	if err != nil {
		return err
	}
	e, err := parseBound("end", end)
	if err != nil {
		return err
	}
	c.Start, c.End = s, e
	return nil
}

func parseBound(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.NewParsingError(name, value, err)
	}
	return n, nil
}

// Validate checks the configuration and fills in defaults. It must be
// called after ParseBounds.
func (c *Config) Validate() error {
	if err := c.validatePath(); err != nil {
		return err
	}

	if err := c.validateBounds(); err != nil {
		return err
	}

	if err := c.validateInvalidPolicy(); err != nil {
		return err
	}

	if err := c.validateColor(); err != nil {
		return err
	}

	if err := c.validateLogFormat(); err != nil {
		return err
	}

	c.normalizeConfig()
	return nil
}

func (c *Config) validatePath() error {
	if c.Path == "" {
		return errors.NewConfigError("path is required", nil)
	}
	return nil
}

// validateBounds rejects non-positive bounds. An end below start is fine
// and simply selects nothing.
func (c *Config) validateBounds() error {
	if c.Start < 1 {
		return errors.NewRangeError("start must be at least 1, got " + strconv.Itoa(c.Start))
	}
	if c.End < 1 {
		return errors.NewRangeError("end must be at least 1, got " + strconv.Itoa(c.End))
	}
	return nil
}

func (c *Config) validateInvalidPolicy() error {
	switch c.Invalid {
	case "", PolicyIgnore, PolicyReplace:
		return nil
	default:
		return errors.NewConfigError("invalid policy must be 'ignore' or 'replace'", nil)
	}
}

func (c *Config) validateColor() error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return errors.NewConfigError("color must be 'auto', 'always' or 'never'", nil)
	}
}

func (c *Config) validateLogFormat() error {
	if c.LogFormat != "" && c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return errors.NewConfigError("log format must be 'text' or 'json'", nil)
	}
	return nil
}

func (c *Config) normalizeConfig() {
	c.Encoding = strings.ToLower(strings.TrimSpace(c.Encoding))
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
	if c.Invalid == "" {
		c.Invalid = PolicyIgnore
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
}

// IsVerbose reports whether the run summary should be logged.
// Quiet overrides Verbose.
func (c *Config) IsVerbose() bool {
	return (c.Verbose || c.Debug) && !c.Quiet
}

// IsDebug reports whether per-stage diagnostics should be logged.
func (c *Config) IsDebug() bool {
	return c.Debug && !c.Quiet
}

// ShouldLog determines if any diagnostics should be written.
func (c *Config) ShouldLog() bool {
	return !c.Quiet
}
