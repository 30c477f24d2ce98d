package main

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
	"github.com/spf13/cobra"
)

func newBindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "bind GADGET CONFIG NAME FUNCTION",
		Short:   "Bind a function into a configuration",
		Example: `  gogadget bind g1 c.1 acm.GS0 acm.GS0`,
		Args:    cobra.ExactArgs(4), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.lookupGadget(args[0])
			if err != nil {
				return err
			}

			c, err := lookupConfig(g, args[1])
			if err != nil {
				return err
			}

			f, err := lookupFunction(g, args[3])
			if err != nil {
				return err
			}

			b, err := c.AddFunction(args[2], f)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatBinding(b))

			return nil
		},
	}
}

func newUnbindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unbind GADGET CONFIG NAME",
		Short: "Remove a binding from a configuration",
		Args:  cobra.ExactArgs(3), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := app.lookupGadget(args[0])
			if err != nil {
				return err
			}

			c, err := lookupConfig(g, args[1])
			if err != nil {
				return err
			}

			b, ok := c.Binding(args[2])
			if !ok {
				return fmt.Errorf("binding %s of config %s: %w", args[2], c.Name(), gadgeterr.ErrNotFound)
			}

			if err := b.Remove(); err != nil {
				return err
			}

			slog.Info("Binding removed.", "gadget", g.Name(), "config", c.Name(), "binding", args[2])

			return nil
		},
	}
}

func newEnableCmd(app *App) *cobra.Command {
	var udc string

	cmd := &cobra.Command{
		Use:   "enable GADGET",
		Short: "Enable a gadget on a device controller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.lookupGadget(args[0])
			if err != nil {
				return err
			}

			if err := g.Enable(udc); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), g.UDC())

			return nil
		},
	}

	cmd.Flags().StringVar(&udc, "udc", "", "device controller (default: the first available)")

	return cmd
}

func newDisableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disable GADGET",
		Short: "Disable a gadget",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := app.lookupGadget(args[0])
			if err != nil {
				return err
			}

			return g.Disable()
		},
	}
}

func newRmCmd(app *App) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "rm GADGET [FUNCTION|CONFIG]",
		Short: "Remove a gadget, or one of its functions or configurations",
		Long: `Remove a gadget, or one of its functions or configurations. Without
--recursive only empty entities can be removed, bound functions and
configurations with bindings or strings are refused.`,
		Args: cobra.RangeArgs(1, 2), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := app.lookupGadget(args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return g.Remove(recursive)
			}

			if f, err := lookupFunction(g, args[1]); err == nil {
				return f.Remove(recursive)
			}

			if c, err := lookupConfig(g, args[1]); err == nil {
				return c.Remove(recursive)
			}

			return fmt.Errorf("%s of gadget %s: %w: %w", args[1], g.Name(), ErrNoSuchEntity, gadgeterr.ErrNotFound)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove contained entities first")

	return cmd
}
