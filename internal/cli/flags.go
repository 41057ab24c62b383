package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	authenc "github.com/vaultsandbox/authenc-go"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
	// ExitVerificationFailed indicates a signature that did not verify.
	ExitVerificationFailed = 3
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
)

// Viper keys. With the AUTHENC prefix each one is also read from the
// environment, e.g. AUTHENC_KEY.
const (
	keyOutput  = "output"
	keyVerbose = "verbose"
	keyQuiet   = "quiet"
	keyKey     = "key"
	keyPeer    = "peer"
	keyCipher  = "cipher"
	keyHex     = "hex"
)

// EnvPrefix is the prefix of environment variables read by the CLI.
const EnvPrefix = "AUTHENC"

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Output specifies the output format (text or json).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
	// Key is the local private key as hex.
	Key string
	// Peer is the remote public key as hex.
	Peer string
	// Cipher selects the public-key cipher (ecies or hpke).
	Cipher string
	// Hex treats messages and decrypted plaintexts as hex encoded bytes.
	Hex bool
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.Output, keyOutput, "o", OutputText, "output format (text|json)")
	pf.BoolVarP(&flags.Verbose, keyVerbose, "v", false, "enable verbose output")
	pf.BoolVarP(&flags.Quiet, keyQuiet, "q", false, "suppress non-essential output")
	pf.StringVarP(&flags.Key, keyKey, "k", "", "local private key, hex scalar (env AUTHENC_KEY)")
	pf.StringVarP(&flags.Peer, keyPeer, "p", "", "peer public key, hex SEC1 point (env AUTHENC_PEER)")
	pf.StringVar(&flags.Cipher, keyCipher, "ecies", "public-key cipher: ecies or hpke (env AUTHENC_CIPHER)")
	pf.BoolVar(&flags.Hex, keyHex, false, "read messages and write plaintexts as hex")
	cmd.MarkFlagsMutuallyExclusive(keyVerbose, keyQuiet)
}

// BindGlobalFlags binds global flags to Viper for environment variable
// support. The AUTHENC_ prefix is used (e.g., AUTHENC_KEY, AUTHENC_OUTPUT).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	// Use Root().PersistentFlags() to find flags defined on the root command,
	// even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	for _, name := range []string{keyOutput, keyVerbose, keyQuiet, keyKey, keyPeer, keyCipher, keyHex} {
		if err := v.BindPFlag(name, rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return nil
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitVerificationFailed (3) for a
// signature that did not verify, ExitInvalidInput (2) for user input errors
// (bad flags, keys, signatures or ciphertext encoding), and ExitError (1)
// for all other errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrVerificationFailed) {
		return ExitVerificationFailed
	}

	for _, target := range invalidInputErrors {
		if errors.Is(err, target) {
			return ExitInvalidInput
		}
	}

	// Check for Cobra flag parsing errors (mutually exclusive flags, unknown flags, etc.)
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

var invalidInputErrors = []error{
	ErrInvalidOutputFormat,
	ErrMissingKey,
	ErrMissingPeer,
	ErrMissingSignature,
	ErrUnknownCipher,
	ErrInvalidHex,
	authenc.ErrInvalidKey,
	authenc.ErrMalformedSignature,
	authenc.ErrMalformedInput,
}

// isInvalidInputError checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag validation errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
		"accepts at most",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
