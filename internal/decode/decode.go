// Package decode turns raw file bytes into UTF-8 text without ever failing
// on malformed input. Charsets are looked up by their WHATWG label and a
// leading byte order mark overrides the requested charset.
package decode

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"viewseg/internal/config"
	"viewseg/internal/errors"
)

const canonicalUTF8 = "utf-8"

// Result is decoded text plus what the decoder did to produce it.
type Result struct {
	Text     string
	Encoding string
	// Dropped counts bytes removed under the ignore policy.
	Dropped int
}

// Decoder converts bytes in a fixed charset to UTF-8.
type Decoder struct {
	encoding encoding.Encoding
	name     string
	policy   config.InvalidPolicy
}

// NewDecoder resolves label to a charset. An unknown label is a ConfigError.
func NewDecoder(label string, policy config.InvalidPolicy) (*Decoder, error) {
	if label == "" {
		label = config.DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.NewConfigError("unknown encoding "+label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	if policy == "" {
		policy = config.PolicyIgnore
	}
	return &Decoder{encoding: enc, name: name, policy: policy}, nil
}

// Name returns the canonical WHATWG name of the decoder's charset.
func (d *Decoder) Name() string {
	return d.name
}

// Decode converts raw to UTF-8 text. Invalid sequences are dropped or
// replaced according to the policy; the returned text is always valid UTF-8.
func (d *Decoder) Decode(path string, raw []byte) (*Result, error) {
	if len(raw) == 0 {
		return &Result{Encoding: d.name}, nil
	}

	out, _, err := transform.Bytes(d.transformer(), raw)
	if err != nil {
		return nil, errors.NewDecodeError(path, "decoding as "+d.name+" failed", err)
	}

	text := string(out)
	result := &Result{Encoding: d.name}
	if d.policy == config.PolicyIgnore && !utf8.ValidString(text) {
		valid := strings.ToValidUTF8(text, "")
		result.Dropped = len(text) - len(valid)
		text = valid
	}
	result.Text = text
	return result, nil
}

// transformer builds the decoding chain. For UTF-8 input the bytes pass
// through untouched under ignore so the final sweep can drop bad runs, or
// through runes.ReplaceIllFormed under replace. Other charsets use their
// own decoder, which always substitutes U+FFFD for invalid input.
func (d *Decoder) transformer() transform.Transformer {
	var fallback transform.Transformer
	switch {
	case d.name != canonicalUTF8:
		fallback = d.encoding.NewDecoder()
	case d.policy == config.PolicyReplace:
		fallback = runes.ReplaceIllFormed()
	default:
		fallback = transform.Nop
	}
	return unicode.BOMOverride(fallback)
}

// Decode is a convenience wrapper for one-shot decoding.
func Decode(path string, raw []byte, label string, policy config.InvalidPolicy) (*Result, error) {
	d, err := NewDecoder(label, policy)
	if err != nil {
		return nil, err
	}
	return d.Decode(path, raw)
}
