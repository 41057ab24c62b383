package cli

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"
)

// DecryptResult is the JSON output of the decrypt command.
type DecryptResult struct {
	Valid     bool   `json:"valid"`
	Plaintext string `json:"plaintext,omitempty"`
	Encoding  string `json:"encoding,omitempty"`
}

// Plaintext encodings reported in DecryptResult.
const (
	encodingUTF8 = "utf8"
	encodingHex  = "hex"
)

func addDecryptCommand(root *cobra.Command, env *commandEnv) {
	cmd := &cobra.Command{
		Use:   "decrypt [CIPHERTEXT|-]",
		Short: "Decrypt a message and check it was signed by the peer",
		Long: `Decrypt a ciphertext with --key and verify the embedded signature against
--peer. Prints the plaintext, or hex with --hex.

A signature that does not match the peer exits with status 3 and prints
nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runDecrypt(cmd, args)
		},
	}
	root.AddCommand(cmd)
}

func (e *commandEnv) runDecrypt(cmd *cobra.Command, args []string) error {
	priv, err := e.privateKey()
	if err != nil {
		return err
	}
	pub, err := e.peerKey()
	if err != nil {
		return err
	}
	data, err := readArg(cmd, args)
	if err != nil {
		return err
	}
	s, err := e.scheme()
	if err != nil {
		return err
	}

	plain, ok, err := s.Decrypt(priv, pub, strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}
	if !ok {
		if e.v.GetString(keyOutput) == OutputJSON {
			if err := e.writeResult(cmd, "", DecryptResult{Valid: false}); err != nil {
				return err
			}
		}
		return ErrVerificationFailed
	}

	result := DecryptResult{Valid: true, Plaintext: string(plain), Encoding: encodingUTF8}
	if e.v.GetBool(keyHex) {
		result.Plaintext = hex.EncodeToString(plain)
		result.Encoding = encodingHex
	}
	return e.writeResult(cmd, result.Plaintext, result)
}
