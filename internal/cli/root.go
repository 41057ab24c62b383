// Package cli provides the command-line interface for authenc.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// Streams are the standard streams a command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStreams returns the process standard streams.
func DefaultStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// commandEnv is the state shared by all subcommands of one invocation.
// The logger is set in PersistentPreRunE, before any subcommand runs.
type commandEnv struct {
	flags  *GlobalFlags
	v      *viper.Viper
	logger zerolog.Logger
}

// newRootCmd creates the root command for the authenc CLI.
func newRootCmd(flags *GlobalFlags, streams Streams, info BuildInfo) *cobra.Command {
	env := &commandEnv{
		flags:  flags,
		v:      viper.New(),
		logger: zerolog.Nop(),
	}

	cmd := &cobra.Command{
		Use:   "authenc",
		Short: "Sender-authenticated encryption and signatures over P-256",
		Long: `authenc signs, verifies, encrypts and decrypts with static P-256 keys.

Encryption signs the message with your key and encrypts message and signature
to the peer's key. Decryption reverses this and checks the signature against
the peer's key.

Keys are hex: a 32-byte scalar for --key, a SEC1 point for --peer. They can
also be set with AUTHENC_KEY and AUTHENC_PEER.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(env.v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			output := env.v.GetString(keyOutput)
			if !IsValidOutputFormat(output) {
				return fmt.Errorf("%w: %q must be one of %v", ErrInvalidOutputFormat, output, ValidOutputFormats())
			}

			env.logger = InitLogger(env.v.GetBool(keyVerbose), env.v.GetBool(keyQuiet), cmd.ErrOrStderr())
			env.logger.Debug().Str("command", cmd.Name()).Msg("starting")
			return nil
		},
		// Errors are reported by the caller, which also maps them to exit codes.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	AddGlobalFlags(cmd, flags)

	addSignCommand(cmd, env)
	addVerifyCommand(cmd, env)
	addEncryptCommand(cmd, env)
	addDecryptCommand(cmd, env)
	addPubkeyCommand(cmd, env)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the CLI with args (without the program name).
func Execute(ctx context.Context, args []string, streams Streams, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, streams, info)
	if args == nil {
		// Cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
