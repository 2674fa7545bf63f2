package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func wizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Interactive configuration",
	}
	cmd.AddCommand(wizardKeyCmd())
	return cmd
}

func wizardKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Choose a new keypair from a salt and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			params := appCtx.Config.Params
			if params.ForcePrompt || params.ForceFile != "" {
				return errors.New("wizard key saves its keypair and cannot be combined with --keyprompt or --keyfile")
			}
			if _, err := appCtx.LoadKeypair(ctx); err != nil {
				return err
			}
			if err := appCtx.Keypair.PromptKey(ctx, appCtx.Session, params, false); err != nil {
				return err
			}
			// The wizard keypair replaces the stored one.
			kp := appCtx.Session.Effective
			if err := appCtx.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\n", kp.Pub)
			return nil
		},
	}
}
