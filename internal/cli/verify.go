package cli

import (
	"github.com/spf13/cobra"
)

// VerifyResult is the JSON output of the verify command.
type VerifyResult struct {
	Valid bool `json:"valid"`
}

func addVerifyCommand(root *cobra.Command, env *commandEnv) {
	var signature string

	cmd := &cobra.Command{
		Use:   "verify --signature HEX [MESSAGE|-]",
		Short: "Verify a signature against the peer's public key",
		Long: `Verify a 128 hex character signature over a message with --peer.

Prints "valid" or "invalid". An invalid signature exits with status 3.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runVerify(cmd, args, signature)
		},
	}
	cmd.Flags().StringVarP(&signature, "signature", "s", "", "signature to check, 128 hex characters")
	root.AddCommand(cmd)
}

func (e *commandEnv) runVerify(cmd *cobra.Command, args []string, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	pub, err := e.peerKey()
	if err != nil {
		return err
	}
	msg, err := e.readMessage(cmd, args)
	if err != nil {
		return err
	}
	s, err := e.scheme()
	if err != nil {
		return err
	}

	ok, err := s.Verify(pub, msg, signature)
	if err != nil {
		return err
	}

	text := "valid"
	if !ok {
		text = "invalid"
	}
	if err := e.writeResult(cmd, text, VerifyResult{Valid: ok}); err != nil {
		return err
	}
	if !ok {
		return ErrVerificationFailed
	}
	return nil
}
