package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile   string
	configfsPath string
	udcPath      string
	logLevel     string
}

func newRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gogadget",
		Short: "Inspect and manipulate USB gadgets through configfs",
		Long: `gogadget manages USB gadgets of the Linux gadget subsystem through
configfs: gadgets, their functions and configurations, the bindings between
them, and the device controller a gadget is enabled on.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.Setup(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "settings file (KEY=value)")
	flags.StringVar(&opts.configfsPath, "configfs", "", "configfs mount point (default /sys/kernel/config)")
	flags.StringVar(&opts.udcPath, "udc-path", "", "device controller directory (default /sys/class/udc)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newShowCmd(app),
		newBrowseCmd(app),
		newUDCsCmd(app),
		newCreateCmd(app),
		newBindCmd(app),
		newUnbindCmd(app),
		newEnableCmd(app),
		newDisableCmd(app),
		newRmCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return cmd
}
