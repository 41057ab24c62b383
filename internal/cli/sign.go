package cli

import (
	"github.com/spf13/cobra"
)

// SignResult is the JSON output of the sign command.
type SignResult struct {
	Signature string `json:"signature"`
}

func addSignCommand(root *cobra.Command, env *commandEnv) {
	cmd := &cobra.Command{
		Use:   "sign [MESSAGE|-]",
		Short: "Sign a message with your private key",
		Long: `Sign a message with --key and print the 128 hex character signature.

The message is read from standard input when absent or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runSign(cmd, args)
		},
	}
	root.AddCommand(cmd)
}

func (e *commandEnv) runSign(cmd *cobra.Command, args []string) error {
	priv, err := e.privateKey()
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

	sig, err := s.Sign(priv, msg)
	if err != nil {
		return err
	}
	return e.writeResult(cmd, sig, SignResult{Signature: sig})
}
