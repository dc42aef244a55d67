// Package cli is the command invocation layer: it declares the
// argument schema, routes a run to exactly one operation, applies the
// output policy and maps every outcome to a process exit code.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dotenv-linter/dotenv-linter/internal/config"
	"github.com/dotenv-linter/dotenv-linter/internal/lint"
)

const Version = "3.3.0"

// Linter is the contract the router invokes. The production
// implementation lives in internal/lint; tests inject fakes.
type Linter interface {
	Check(opts *lint.Options) (int, error)
	Fix(opts *lint.Options) error
	Compare(opts *lint.Options) ([]lint.CompareWarning, error)
	CheckNames() []string
}

// CLI represents the command-line interface
type CLI struct {
	rootCmd          *cobra.Command
	fs               afero.Fs
	linter           Linter // nil means build a lint.Linter per run
	terminalDetector TerminalDetector
	workDir          string
}

// NewCLI creates a new CLI instance with the full command tree.
func NewCLI() *CLI {
	slog.Debug("creating new CLI instance")

	workDir, err := os.Getwd()
	if err != nil {
		slog.Warn("failed to resolve working directory, using \".\"", "error", err)
		workDir = "."
	}

	c := &CLI{
		fs:               afero.NewOsFs(),
		terminalDetector: &DefaultTerminalDetector{},
		workDir:          workDir,
	}

	rootCmd := &cobra.Command{
		Use:           "dotenv-linter [files]...",
		Short:         "Lightning-fast linter for .env files",
		Long:          "dotenv-linter checks .env files for problems, fixes them automatically and compares files for missing keys.",
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runCheckE,
	}
	registerCommonFlags(rootCmd.Flags())

	// Flag parse failures become UsageErrors so the exit code decider
	// can print the failing command's usage along with the message.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Command: cmd, Err: err}
	})

	rootCmd.AddCommand(newFixCommand(c))
	rootCmd.AddCommand(newListCommand(c))
	rootCmd.AddCommand(newCompareCommand(c))

	c.rootCmd = rootCmd
	return c
}

// registerCommonFlags declares the flag set shared by the root (check)
// path and the fix subcommand. Declaring both through this one helper
// keeps the two schemas identical by construction.
func registerCommonFlags(flags *pflag.FlagSet) {
	flags.StringArrayP("exclude", "e", nil, "Excludes files from check")
	flags.StringArrayP("skip", "s", nil, "Skips checks")
	flags.BoolP("recursive", "r", false, "Recursively searches and checks .env files")
	flags.Bool("no-color", false, "Turns off the colored output")
	flags.BoolP("quiet", "q", false, "Doesn't display additional information")
}

// buildOptions constructs the invocation context for the check and fix
// paths from the command's resolved flags and positional arguments.
// Inputs default to the working directory when none are supplied.
func (c *CLI) buildOptions(cmd *cobra.Command, args []string) *lint.Options {
	excludes, _ := cmd.Flags().GetStringArray("exclude")
	skips, _ := cmd.Flags().GetStringArray("skip")
	recursive, _ := cmd.Flags().GetBool("recursive")
	quiet, _ := cmd.Flags().GetBool("quiet")

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{c.workDir}
	}

	return &lint.Options{
		Inputs:    inputs,
		Excludes:  excludes,
		Skips:     skips,
		Recursive: recursive,
		Quiet:     quiet,
	}
}

// engine returns the injected linter, or a production lint.Linter
// writing to the command's output stream.
func (c *CLI) engine(cmd *cobra.Command) Linter {
	if c.linter != nil {
		return c.linter
	}
	return lint.New(c.fs, cmd.OutOrStdout())
}

// runCheckE handles the default path: no subcommand means check.
func (c *CLI) runCheckE(cmd *cobra.Command, args []string) error {
	if name, ok := c.mistypedSubcommand(args); ok {
		return &UnknownCommandError{Name: name}
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	applyOutputPolicy(noColor)

	opts := c.buildOptions(cmd, args)
	slog.Debug("check started", "inputs", opts.Inputs, "recursive", opts.Recursive, "quiet", opts.Quiet)

	count, err := c.engine(cmd).Check(opts)
	if err != nil {
		return err
	}
	if count > 0 {
		return &WarningsError{Count: count}
	}
	return nil
}

// mistypedSubcommand reports whether the first root positional looks
// like an attempted subcommand rather than an input path: it names no
// existing path and contains no path-looking characters.
func (c *CLI) mistypedSubcommand(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	first := args[0]
	if containsPathRunes(first) {
		return "", false
	}
	if _, err := c.fs.Stat(first); err == nil {
		return "", false
	}
	return first, true
}

func containsPathRunes(s string) bool {
	for _, r := range s {
		if r == '.' || r == '/' || r == '\\' {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and I/O streams and
// returns the process exit code. It is the single place outcomes are
// translated into exit codes.
func (c *CLI) Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	slog.Debug("CLI run started", "args", args)

	c.setupLogging(stderr)

	// Platform default: no colorized output when stdout is not an
	// interactive terminal. An explicit --no-color is applied later by
	// the active path itself.
	if f, ok := stdout.(*os.File); ok && !c.terminalDetector.IsTerminal(int(f.Fd())) {
		DisableColor()
	}

	if len(args) > 0 {
		c.rootCmd.SetArgs(args[1:])
	}
	c.rootCmd.SetIn(stdin)
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)

	err := c.rootCmd.Execute()
	if err == nil {
		return 0
	}

	// Warnings are a semantic outcome, not a failure: exit 1 with no
	// extra message, everything was already reported.
	var warnings *WarningsError
	if errors.As(err, &warnings) {
		return warnings.ExitCode()
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(stderr, "error: %v\n\n%s", usage.Err, usage.Command.UsageString())
		return usage.ExitCode()
	}

	fmt.Fprintln(stderr, err)
	return ExitCodeFromError(err)
}

// setupLogging configures slog from the ambient configuration.
func (c *CLI) setupLogging(stderr io.Writer) {
	manager := config.NewManager(c.fs)
	cfg, err := manager.Load()
	if err != nil {
		cfg = manager.Defaults()
		slog.Warn("failed to load config, using defaults", "error", err)
	}
	configureLogging(cfg, stderr)
}
