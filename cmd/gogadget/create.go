package main

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/gogadget/internal/gadget"
	"github.com/desertwitch/gogadget/internal/layout"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// serialAuto requests a random serial number for a new gadget.
const serialAuto = "auto"

func newCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a gadget, function or configuration",
	}

	cmd.AddCommand(
		newCreateGadgetCmd(app),
		newCreateFunctionCmd(app),
		newCreateConfigCmd(app),
	)

	return cmd
}

func newCreateGadgetCmd(app *App) *cobra.Command {
	attrs := gadget.GadgetAttrs{}
	strs := gadget.GadgetStrings{}

	cmd := &cobra.Command{
		Use:   "gadget NAME",
		Short: "Create a gadget",
		Example: `  gogadget create gadget g1 --vid 0x1d6b --pid 0x0104 --product Widget
  gogadget create gadget g2 --serial auto`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Discover()
			if err != nil {
				return err
			}

			if strs.SerialNumber == serialAuto {
				strs.SerialNumber = uuid.NewString()
			}

			var strsArg *gadget.GadgetStrings
			if strs != (gadget.GadgetStrings{}) {
				strsArg = &strs
			}

			g, err := s.CreateGadget(args[0], &attrs, strsArg)
			if err != nil {
				return err
			}

			slog.Info("Gadget created.", "gadget", g.Name(), "path", g.Path())

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Uint16Var(&attrs.IDVendor, "vid", 0, "idVendor")
	flags.Uint16Var(&attrs.IDProduct, "pid", 0, "idProduct")
	flags.Uint16Var(&attrs.BcdDevice, "bcd-device", 0, "bcdDevice")
	flags.Uint16Var(&attrs.BcdUSB, "bcd-usb", 0x0200, "bcdUSB") //nolint:mnd
	flags.Uint8Var(&attrs.BDeviceClass, "class", 0, "bDeviceClass")
	flags.Uint8Var(&attrs.BDeviceSubClass, "subclass", 0, "bDeviceSubClass")
	flags.Uint8Var(&attrs.BDeviceProtocol, "protocol", 0, "bDeviceProtocol")
	flags.Uint8Var(&attrs.BMaxPacketSize0, "max-packet-size", 64, "bMaxPacketSize0") //nolint:mnd
	flags.StringVar(&strs.Manufacturer, "manufacturer", "", "manufacturer string (US English)")
	flags.StringVar(&strs.Product, "product", "", "product string (US English)")
	flags.StringVar(&strs.SerialNumber, "serial", "", `serial number string (US English), "auto" for a random one`)

	return cmd
}

func newCreateFunctionCmd(app *App) *cobra.Command {
	var (
		portNum  int
		devAddr  string
		hostAddr string
		ifName   string
		qmult    int
	)

	cmd := &cobra.Command{
		Use:   "function GADGET TYPE.INSTANCE",
		Short: "Create a function",
		Long: `Create a function of a gadget. Attributes are only written when given,
network functions then need both addresses.`,
		Example: `  gogadget create function g1 acm.GS0 --port-num 0
  gogadget create function g1 ecm.usb0 --dev-addr 02:00:00:00:00:01 --host-addr 02:00:00:00:00:02`,
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.lookupGadget(args[0])
			if err != nil {
				return err
			}

			typ, instance, err := gadget.SplitFunctionName(args[1])
			if err != nil {
				return err
			}

			var attrs gadget.FunctionAttrs

			flags := cmd.Flags()
			if flags.Changed("port-num") || flags.Changed("dev-addr") || flags.Changed("host-addr") ||
				flags.Changed("ifname") || flags.Changed("qmult") {
				requested := &layout.FunctionAttrs{DevAddr: devAddr, HostAddr: hostAddr, IfName: ifName}
				if flags.Changed("port-num") {
					requested.PortNum = &portNum
				}
				if flags.Changed("qmult") {
					requested.Qmult = &qmult
				}

				if attrs, err = requested.Convert(typ); err != nil {
					return err
				}
			}

			f, err := g.CreateFunction(typ, instance, attrs)
			if err != nil {
				return err
			}

			slog.Info("Function created.", "gadget", g.Name(), "function", f.Name())

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&portNum, "port-num", 0, "port_num (serial functions)")
	flags.StringVar(&devAddr, "dev-addr", "", "dev_addr MAC address (network functions)")
	flags.StringVar(&hostAddr, "host-addr", "", "host_addr MAC address (network functions)")
	flags.StringVar(&ifName, "ifname", "", "interface name (network and phonet functions)")
	flags.IntVar(&qmult, "qmult", 0, "qmult (network functions)")

	return cmd
}

func newCreateConfigCmd(app *App) *cobra.Command {
	attrs := gadget.ConfigAttrs{}
	var configuration string

	cmd := &cobra.Command{
		Use:     "config GADGET LABEL.ID",
		Short:   "Create a configuration",
		Example: `  gogadget create config g1 c.1 --max-power 250 --configuration CDC`,
		Args:    cobra.ExactArgs(2), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := app.lookupGadget(args[0])
			if err != nil {
				return err
			}

			label, id, err := gadget.SplitConfigName(args[1])
			if err != nil {
				return err
			}

			var strs *gadget.ConfigStrings
			if configuration != "" {
				strs = &gadget.ConfigStrings{Configuration: configuration}
			}

			c, err := g.CreateConfig(id, label, &attrs, strs)
			if err != nil {
				return err
			}

			slog.Info("Config created.", "gadget", g.Name(), "config", c.Name())

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&attrs.MaxPower, "max-power", 2, "MaxPower in mA") //nolint:mnd
	flags.Uint8Var(&attrs.BmAttributes, "bm-attributes", 0x80, "bmAttributes") //nolint:mnd
	flags.StringVar(&configuration, "configuration", "", "configuration string (US English)")

	return cmd
}

func formatBinding(b gadget.Binding) string {
	return fmt.Sprintf("%s/%s -> %s", b.Config().Name(), b.Name(), b.Target().Name())
}
