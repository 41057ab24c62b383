package cli

import (
	"crypto/ecdsa"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	authenc "github.com/vaultsandbox/authenc-go"
)

// stdinArg marks an argument that is read from standard input.
const stdinArg = "-"

// readArg returns args[0], or standard input when it is absent or "-".
// Standard input is taken byte for byte.
func readArg(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != stdinArg {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// readMessage reads the message argument, hex decoding it with --hex.
func (e *commandEnv) readMessage(cmd *cobra.Command, args []string) (authenc.Plaintext, error) {
	data, err := readArg(cmd, args)
	if err != nil {
		return nil, err
	}
	if !e.v.GetBool(keyHex) {
		return authenc.Raw(data), nil
	}

	decoded, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return authenc.Raw(decoded), nil
}

// privateKey parses --key / AUTHENC_KEY.
func (e *commandEnv) privateKey() (*ecdsa.PrivateKey, error) {
	s := e.v.GetString(keyKey)
	if s == "" {
		return nil, ErrMissingKey
	}
	return authenc.ParsePrivateKey(s)
}

// peerKey parses --peer / AUTHENC_PEER.
func (e *commandEnv) peerKey() (*ecdsa.PublicKey, error) {
	s := e.v.GetString(keyPeer)
	if s == "" {
		return nil, ErrMissingPeer
	}
	return authenc.ParsePublicKey(s)
}

// scheme builds a Scheme for --cipher / AUTHENC_CIPHER that logs through
// the command logger.
func (e *commandEnv) scheme() (*authenc.Scheme, error) {
	name := e.v.GetString(keyCipher)
	c, ok := authenc.CipherByName(strings.ToLower(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q must be ecies or hpke", ErrUnknownCipher, name)
	}
	return authenc.New(authenc.WithCipher(c), authenc.WithLogger(e.logger)), nil
}

// writeResult writes text as a line in text mode and value as JSON in json
// mode.
func (e *commandEnv) writeResult(cmd *cobra.Command, text string, value any) error {
	out := cmd.OutOrStdout()

	if e.v.GetString(keyOutput) == OutputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
