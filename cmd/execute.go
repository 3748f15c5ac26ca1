// Package cmd implements the command-line interface for viewseg.
// It turns positional arguments and flags into a validated config and
// hands it to the viewer, mapping the outcome to an exit status.
package cmd

import (
	"context"
	"io"

	"viewseg/internal/config"
	"viewseg/internal/viewer"
)

func executeView(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	v, err := viewer.New(cfg, stdout, stderr)
	if err != nil {
		return err
	}

	return v.Run(ctx)
}
