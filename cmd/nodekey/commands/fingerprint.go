package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nodekey/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print public key fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := appCtx.LoadKeypair(cmd.Context())
			if err != nil {
				return err
			}
			pub, _, err := crypto.DecodeKeyPair(*kp)
			if err != nil {
				return err
			}
			fp := crypto.Fingerprint(pub)
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	return cmd
}
