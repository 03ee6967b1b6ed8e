package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/divvun/kbdgen/internal/app"
	"github.com/divvun/kbdgen/internal/cli"
)

// main is the entrypoint for the kbdgen binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		// Dispatch failures have already been logged at critical severity.
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	// Registry population panics on programmer error (duplicate targets);
	// recover here to provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	registry := app.DefaultRegistry()

	config, shouldExit, err := cli.Parse(args, outW, registry.Keys())
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	kbdgenApp := app.NewApp(outW, config, registry)
	return kbdgenApp.Run(context.Background())
}
