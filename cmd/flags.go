package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// enumFlag is a string flag restricted to a fixed set of values.
type enumFlag struct {
	target  *string
	allowed []string
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag(target *string, def string, allowed ...string) *enumFlag {
	*target = def
	return &enumFlag{target: target, allowed: allowed}
}

func (f *enumFlag) String() string {
	if f.target == nil {
		return ""
	}
	return *f.target
}

func (f *enumFlag) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range f.allowed {
		if v == a {
			*f.target = v
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(f.allowed, ", "))
}

func (f *enumFlag) Type() string {
	return "string"
}
