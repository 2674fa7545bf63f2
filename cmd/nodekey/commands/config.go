package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Resolve the keypair and save keyring and settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := appCtx.LoadKeypair(cmd.Context())
			if err != nil {
				return err
			}
			if err := appCtx.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved.\nPublic key: %s\n", kp.Pub)
			return nil
		},
	}
}
