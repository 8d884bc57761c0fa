package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockberries/querykit/signer"
)

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 signing seed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := signer.GenerateEd25519(nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "QUERYKIT_SIGNER_SEED=%s\n", hex.EncodeToString(key.Seed()))
			fmt.Fprintf(out, "public key: %s\n", hex.EncodeToString(key.PublicKey()))
			return nil
		},
	}
}
