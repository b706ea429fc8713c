package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vg-ms-user/internal"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	rootCmd := &cobra.Command{
		Use:           "vgmsuser",
		Short:         "User and site assignment service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	rootCmd.AddCommand(serve, newMigratePermissionsCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	var withConsumer bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the event publisher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmdContext(cmd)

			app, err := internal.NewApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			app.InitServices()
			app.InitControllers()
			if withConsumer {
				if err = app.InitConsumer(); err != nil {
					return err
				}
			}

			return app.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&withConsumer, "audit-consumer", true, "print every published event to stdout")

	return cmd
}

func newMigratePermissionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-permissions",
		Short: "Give every user without permissions the defaults of its role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmdContext(cmd)

			app, err := internal.NewApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			app.InitServices()

			users, err := app.MigratePermissions(ctx)
			if err != nil {
				return err
			}
			app.Logger().Info("permission migration finished", zap.Int("users", len(users)))

			return nil
		},
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
