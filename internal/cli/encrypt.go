package cli

import (
	"github.com/spf13/cobra"
)

// EncryptResult is the JSON output of the encrypt command.
type EncryptResult struct {
	Ciphertext string `json:"ciphertext"`
	Cipher     string `json:"cipher"`
}

func addEncryptCommand(root *cobra.Command, env *commandEnv) {
	cmd := &cobra.Command{
		Use:   "encrypt [MESSAGE|-]",
		Short: "Sign a message and encrypt it to the peer",
		Long: `Sign a message with --key, encrypt message and signature to --peer and
print the result as URL-safe base64.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runEncrypt(cmd, args)
		},
	}
	root.AddCommand(cmd)
}

func (e *commandEnv) runEncrypt(cmd *cobra.Command, args []string) error {
	priv, err := e.privateKey()
	if err != nil {
		return err
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

	cypher, err := s.Encrypt(cmd.Context(), priv, pub, msg)
	if err != nil {
		return err
	}
	return e.writeResult(cmd, cypher, EncryptResult{Ciphertext: cypher, Cipher: s.Cipher().Name()})
}
