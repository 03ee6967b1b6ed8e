package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/divvun/kbdgen/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// Parse processes command-line arguments against the declared schema.
// validTargets is the registry's key set, used both to validate --target and
// to render the valid-targets list in help and error text. It returns a
// populated app.Config, a boolean indicating the program should exit
// cleanly (help or version), or an ExitError.
func Parse(args []string, output io.Writer, validTargets []string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("kbdgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
kbdgen - a keyboard layout project build tool.

Usage:
  kbdgen [options] -t TARGET PROJECT

Arguments:
  PROJECT
    Path to a keyboard generation bundle (.kbdgen).

Valid targets: %s

Options:
`, strings.Join(validTargets, ", "))
		flagSet.PrintDefaults()
	}

	var keys stringList
	var flags stringList
	flagSet.Var(&keys, "key", "Key-value override (eg -K target.thing.foo=42). Repeatable.")
	flagSet.Var(&keys, "K", "Key-value override (shorthand).")
	flagSet.Var(&flags, "flag", "Generator-specific flag, passed through verbatim. Repeatable.")
	flagSet.Var(&flags, "f", "Generator-specific flag (shorthand).")

	targetFlag := flagSet.String("target", "", "Target output.")
	tFlag := flagSet.String("t", "", "Target output (shorthand).")
	outputFlag := flagSet.String("output", ".", "Output directory.")
	oFlag := flagSet.String("o", "", "Output directory (shorthand).")
	dryRunFlag := flagSet.Bool("dry-run", false, "Don't build, just do sanity checks.")
	dFlag := flagSet.Bool("D", false, "Don't build, just do sanity checks (shorthand).")
	releaseFlag := flagSet.Bool("release", false, "Compile in 'release' mode (where necessary).")
	rFlag := flagSet.Bool("R", false, "Compile in 'release' mode (shorthand).")
	layoutFlag := flagSet.String("layout", "", "Apply target to the named layout only.")
	lFlag := flagSet.String("l", "", "Apply target to the named layout only (shorthand).")
	commandFlag := flagSet.String("command", "", "Command to run for a given generator.")
	cFlag := flagSet.String("c", "", "Command to run for a given generator (shorthand).")
	ciFlag := flagSet.Bool("ci", false, "Continuous integration build.")
	loggingFlag := flagSet.String("logging", "info", "Logging level. Options: 'critical', 'error', 'warning', 'info', 'debug', 'trace'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintf(output, "kbdgen %s\n", app.Version)
		return nil, true, nil
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 1, Message: "missing required PROJECT argument"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("unexpected extra arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	project := flagSet.Arg(0)

	target := *targetFlag
	if target == "" {
		target = *tFlag
	}
	if target == "" {
		return nil, false, &ExitError{Code: 1, Message: "the --target flag is required"}
	}
	if !slices.Contains(validTargets, target) {
		return nil, false, &ExitError{
			Code:    1,
			Message: fmt.Sprintf("'%s' is not a valid target.\nValid targets: %s", target, strings.Join(validTargets, ", ")),
		}
	}

	outputDir := *outputFlag
	if *oFlag != "" {
		outputDir = *oFlag
	}

	level, err := app.ParseLevel(*loggingFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 1, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProjectPath: project,
		Target:      target,
		Overrides:   keys,
		OutputDir:   outputDir,
		DryRun:      *dryRunFlag || *dFlag,
		Release:     *releaseFlag || *rFlag,
		Layout:      firstNonEmpty(*layoutFlag, *lFlag),
		Command:     firstNonEmpty(*commandFlag, *cFlag),
		CI:          *ciFlag,
		Flags:       flags,
		LogLevel:    level,
		LogFormat:   logFormat,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "project", project, "target", target)
	return config, false, nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
