package main

import (
	"errors"
	"io"
	"os"

	"github.com/IgorBayerl/fdiff/internal/compare"
	"github.com/IgorBayerl/fdiff/internal/comparisonconfig"
	"github.com/IgorBayerl/fdiff/internal/filesystem"
	"github.com/IgorBayerl/fdiff/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes seen by calling scripts.
const (
	exitMatch             = 0
	exitThresholdExceeded = 1
	exitFailure           = 2
)

var errThresholdExceeded = errors.New("mismatch threshold exceeded")

// newRootCommand fills in the file names of cfg from the two arguments.
func newRootCommand(cfg *comparisonconfig.ComparisonConfiguration, fsys filesystem.Filesystem, stdout io.Writer, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "fdiff <fileA> <fileB>",
		Short: "Compare two text files, allowing numeric lines to differ slightly",
		Long: `fdiff compares two text files line by line.

Lines that differ textually are parsed as decimal numbers and accepted when
they are within an absolute tolerance of each other. Every other difference
is reported as "line <N> : <textA> != <textB>". The run stops with exit code 1
as soon as more than 10 differences have been reported, and exits with 0 when
both files end (or reach a blank line) together.

fdiff takes no options. Every argument is a path, including ones that start
with "-".`,
		Args:               cobra.ExactArgs(2),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is printed for argument errors only.
			cmd.SilenceUsage = true

			cfg.LFile, cfg.RFile = args[0], args[1]
			comparator, err := compare.NewComparator(cfg, fsys, stdout, logger)
			if err != nil {
				return err
			}
			result, err := comparator.CompareFiles(cfg.LeftFile(), cfg.RightFile())
			if err != nil {
				return err
			}
			if result.Status == compare.StatusThresholdExceeded {
				return errThresholdExceeded
			}
			return nil
		},
	}
}

// execute runs the command line in args and returns the process exit code.
func execute(args []string, fsys filesystem.Filesystem, stdout, stderr io.Writer) int {
	cfg := comparisonconfig.NewDefaultConfiguration("", "")
	logger := logging.New(stderr, cfg.VerbosityLevel())
	defer func() { _ = logger.Sync() }()

	// cobra falls back to os.Args when handed a nil slice.
	if args == nil {
		args = []string{}
	}
	cmd := newRootCommand(cfg, fsys, stdout, logger)
	cmd.SetArgs(args)
	// stdout carries the mismatch report and nothing else.
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.SilenceErrors = true

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitMatch
	case errors.Is(err, errThresholdExceeded):
		return exitThresholdExceeded
	}
	logger.Error("comparison failed", zap.Error(err))
	return exitFailure
}

func main() {
	os.Exit(execute(os.Args[1:], filesystem.DefaultFS(), os.Stdout, os.Stderr))
}
