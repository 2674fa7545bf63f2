package commands

import (
	"context"

	"github.com/spf13/cobra"

	"nodekey/internal/app"
	"nodekey/internal/config"
	"nodekey/internal/logging"
)

var appCtx *app.App

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "nodekey",
		Short:        "Node signing keypair manager",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loc, err := config.LoadLocation(cmd.Flags())
			if err != nil {
				return err
			}
			logging.SetDebug(loc.Verbose)
			logging.Debugf("home %s, store %s", loc.Home, loc.Store)

			a, err := app.New(cmd.Context(), app.Config{
				Home:  loc.Home,
				Store: loc.Store,
				In:    cmd.InOrStdin(),
				Out:   cmd.ErrOrStderr(),
			}, cmd.Flags())
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			err := appCtx.Close()
			appCtx = nil
			return err
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	config.RegisterKeyFlags(root.PersistentFlags())

	root.AddCommand(configCmd(), wizardCmd(), pubCmd(), fingerprintCmd(), deriveCmd())
	return root
}
