package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"nodekey/internal/crypto"
)

func deriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive",
		Short: "Print the keypair derived from --salt and --passwd",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := appCtx.Config.Params
			if !params.HasSecret() {
				return errors.New("derive needs --salt or --passwd")
			}
			kp, err := crypto.Derive(params.SaltOrEmpty(), params.PasswordOrEmpty(), params.KdfParams())
			if err != nil {
				return err
			}
			out, err := appCtx.Codec.Encode(kp)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
