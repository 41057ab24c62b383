package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authenc "github.com/vaultsandbox/authenc-go"
)

func TestAddGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "authenc"}
	flags := &GlobalFlags{}
	AddGlobalFlags(cmd, flags)

	for _, name := range []string{"output", "verbose", "quiet", "key", "peer", "cipher", "hex"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %s", name)
	}

	assert.Equal(t, OutputText, flags.Output)
	assert.Equal(t, "ecies", flags.Cipher)
	assert.False(t, flags.Hex)
}

func TestBindGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "authenc"}
	AddGlobalFlags(cmd, &GlobalFlags{})
	require.NoError(t, cmd.PersistentFlags().Set("cipher", "hpke"))

	v := viper.New()
	require.NoError(t, BindGlobalFlags(v, cmd))
	assert.Equal(t, "hpke", v.GetString(keyCipher))
	assert.Equal(t, OutputText, v.GetString(keyOutput))
}

func TestBindGlobalFlags_FromSubcommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "authenc"}
	AddGlobalFlags(root, &GlobalFlags{})
	sub := &cobra.Command{Use: "sign"}
	root.AddCommand(sub)

	v := viper.New()
	require.NoError(t, BindGlobalFlags(v, sub))
	assert.Equal(t, "ecies", v.GetString(keyCipher))
}

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat("text"))
	assert.True(t, IsValidOutputFormat("json"))
	assert.False(t, IsValidOutputFormat("JSON"))
	assert.False(t, IsValidOutputFormat(""))
	assert.Equal(t, []string{"text", "json"}, ValidOutputFormats())
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("disk on fire"), ExitError},
		{"verification", ErrVerificationFailed, ExitVerificationFailed},
		{"wrapped verification", fmt.Errorf("verify: %w", ErrVerificationFailed), ExitVerificationFailed},
		{"output format", fmt.Errorf("%w: yaml", ErrInvalidOutputFormat), ExitInvalidInput},
		{"missing key", ErrMissingKey, ExitInvalidInput},
		{"missing peer", ErrMissingPeer, ExitInvalidInput},
		{"missing signature", ErrMissingSignature, ExitInvalidInput},
		{"unknown cipher", ErrUnknownCipher, ExitInvalidInput},
		{"invalid hex", ErrInvalidHex, ExitInvalidInput},
		{"invalid key", &authenc.KeyError{Role: "private key"}, ExitInvalidInput},
		{"malformed signature", &authenc.SignatureFormatError{Length: 3}, ExitInvalidInput},
		{"malformed input", fmt.Errorf("%w: bad char", authenc.ErrMalformedInput), ExitInvalidInput},
		{"decryption failed", &authenc.DecryptionError{Stage: "ecies"}, ExitError},
		{"malformed payload", &authenc.PayloadError{Length: 12}, ExitError},
		{"cobra unknown flag", errors.New("unknown flag: --nope"), ExitInvalidInput},
		{"cobra arg count", errors.New("accepts at most 1 arg(s), received 2"), ExitInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeForError(tt.err))
		})
	}
}

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dev (commit: none, built: unknown)", formatVersion(BuildInfo{}))
	assert.Equal(t, "1.0.0 (commit: abc123, built: 2026-01-02)",
		formatVersion(BuildInfo{Version: "1.0.0", Commit: "abc123", Date: "2026-01-02"}))
}
