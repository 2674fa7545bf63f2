package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func pubCmd() *cobra.Command {
	var copyToClipboard bool
	cmd := &cobra.Command{
		Use:   "pub",
		Short: "Print the public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := appCtx.LoadKeypair(cmd.Context())
			if err != nil {
				return err
			}
			if copyToClipboard {
				if err := clipboard.WriteAll(kp.Pub); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), kp.Pub)
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "also copy the public key to the clipboard")
	return cmd
}
