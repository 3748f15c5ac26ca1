package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"viewseg/internal/config"
	"viewseg/internal/errors"

	"github.com/spf13/cobra"
)

const programName = "viewseg"

var usageLine = fmt.Sprintf("Usage: %s <path> <start> <end>", programName)

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   programName + " [flags] <path> <start> <end>",
		Short: "Print a numbered range of lines from a text file",
		Long: `viewseg prints lines start through end (1-based, inclusive) of a text
file, each prefixed with its line number. The end is clamped to the
length of the file; a start past the end prints nothing.`,
		Args: func(cmd *cobra.Command, args []string) error {
			// Extra positional arguments are ignored.
			if len(args) < 3 {
				return errors.NewUsageError(usageLine)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, cfg, args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.Encoding, "encoding", config.DefaultEncoding, "Input charset, WHATWG label (utf-8, latin1, shift_jis, utf-16le, ...)")
	flags.Var(newEnumFlag((*string)(&cfg.Invalid), string(config.PolicyIgnore), "ignore", "replace"), "invalid", "Invalid byte policy (ignore, replace)")
	flags.Var(newEnumFlag((*string)(&cfg.Color), string(config.ColorAuto), "auto", "always", "never"), "color", "Colour line numbers (auto, always, never)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log a run summary to stderr")
	flags.BoolVar(&cfg.Debug, "debug", false, "Log every pipeline stage to stderr")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress diagnostics")
	flags.Var(newEnumFlag((*string)(&cfg.LogFormat), string(config.LogFormatText), "text", "json"), "log-format", "Diagnostics format (text, json)")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("debug", "quiet")

	return rootCmd
}

func runView(cmd *cobra.Command, cfg *config.Config, args []string) error {
	cfg.Path = args[0]

	if err := cfg.ParseBounds(args[1], args[2]); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return executeView(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Execute runs the root command and exits the process with the resulting
// status. Interrupts cancel the run.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command against args and reports errors. A usage error
// goes to stdout as the bare usage line; everything else goes to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(&config.Config{})
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return errors.ExitOK
	}

	if ue, ok := errors.AsUsage(err); ok {
		fmt.Fprintln(stdout, ue.Usage())
	} else {
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
	}
	return errors.ExitCode(err)
}
