package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertwitch/gogadget/internal/gadget"
	"github.com/desertwitch/gogadget/internal/ui"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var digest bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the gadget tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.Discover()
			if err != nil {
				return err
			}

			if digest {
				fmt.Fprintln(cmd.OutOrStdout(), s.Digest())

				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), ui.RenderTree(s))

			return nil
		},
	}

	cmd.Flags().BoolVar(&digest, "digest", false, "print only the fingerprint of the tree")

	return cmd
}

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the gadget tree interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.Discover(); err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			loader := func() (*gadget.State, error) {
				return app.gadgetHandler.Init(app.settings.ConfigfsPath)
			}

			uiHandler := ui.NewHandler(ctx, cancel, loader)

			restore := app.routeLogsTo(uiHandler.LogWriter)
			defer restore()

			if err := uiHandler.Launch(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			return nil
		},
	}
}

func newUDCsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "udcs",
		Short: "List the available device controllers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			udcs, err := app.gadgetHandler.ListUDCs()
			if err != nil {
				return err
			}

			for _, udc := range udcs {
				fmt.Fprintln(cmd.OutOrStdout(), udc)
			}

			return nil
		},
	}
}
