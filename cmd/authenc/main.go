// Package main provides the entry point for the authenc CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/vaultsandbox/authenc-go/internal/cli"
)

// Set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

// Config holds the streams and dotenv file used by run.
type Config struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	EnvFile string
}

// DefaultConfig returns the default configuration using standard streams.
func DefaultConfig() Config {
	return Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: cli.DefaultEnvFile,
	}
}

// run executes the CLI and returns the process exit code.
func run(args []string, cfg Config) int {
	if cfg.EnvFile != "" {
		if err := cli.LoadEnvFile(cfg.EnvFile); err != nil {
			fmt.Fprintf(cfg.Stderr, "Error: load %s: %v\n", cfg.EnvFile, err)
			return cli.ExitError
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	streams := cli.Streams{In: cfg.Stdin, Out: cfg.Stdout, Err: cfg.Stderr}
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}

	err := cli.Execute(ctx, args, streams, info)
	if err != nil && !errors.Is(err, cli.ErrVerificationFailed) {
		fmt.Fprintf(cfg.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCodeForError(err)
}
