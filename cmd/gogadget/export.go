package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
	"github.com/desertwitch/gogadget/internal/layout"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export GADGET",
		Short: "Write the layout of a gadget as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.lookupGadget(args[0])
			if err != nil {
				return err
			}

			doc, err := layout.Export(g)
			if err != nil {
				return err
			}

			data, err := layout.Marshal(doc)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)

				return err //nolint:wrapcheck
			}

			if err := os.WriteFile(output, data, 0o644); err != nil { //nolint:gosec,mnd
				return fmt.Errorf("(export) %w", gadgeterr.FromOS(err))
			}

			slog.Info("Gadget exported.", "gadget", g.Name(), "path", output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default: standard output)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var enable bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Create a gadget from a YAML layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := app.Discover()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("(import) %w", gadgeterr.FromOS(err))
			}

			doc, err := layout.Unmarshal(data)
			if err != nil {
				return err
			}

			_, err = layout.Import(s, doc, enable)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().BoolVar(&enable, "enable", false, "enable the gadget on the controller named in the layout")

	return cmd
}
