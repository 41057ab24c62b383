package cli

import (
	"github.com/spf13/cobra"

	authenc "github.com/vaultsandbox/authenc-go"
)

// PubkeyResult is the JSON output of the pubkey command.
type PubkeyResult struct {
	PublicKey string `json:"public_key"`
}

func addPubkeyCommand(root *cobra.Command, env *commandEnv) {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of --key",
		Long:  `Print the uncompressed SEC1 public key of --key as hex, for use as --peer.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priv, err := env.privateKey()
			if err != nil {
				return err
			}
			h, err := authenc.PublicKeyHex(&priv.PublicKey)
			if err != nil {
				return err
			}
			return env.writeResult(cmd, h, PubkeyResult{PublicKey: h})
		},
	}
	root.AddCommand(cmd)
}
