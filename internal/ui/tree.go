package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/desertwitch/gogadget/internal/gadget"
	"github.com/desertwitch/gogadget/internal/gadgeterr"
	"github.com/dustin/go-humanize"
)

// RenderTree renders the gadget tree of a [gadget.State] as indented text.
// Attributes that cannot be read are rendered with their error in place of
// the value, so that one broken entity does not hide the rest of the tree.
func RenderTree(s *gadget.State) string {
	var b strings.Builder

	gadgets := s.Gadgets()
	if len(gadgets) == 0 {
		fmt.Fprintf(&b, "No gadgets in %s\n", s.Path())

		return b.String()
	}

	for _, g := range gadgets {
		renderGadget(&b, g)
	}

	return b.String()
}

// MaxPowerString renders a MaxPower value (in mA) in SI units.
func MaxPowerString(milliamps int) string {
	return humanize.SI(float64(milliamps)/1000, "A") //nolint:mnd
}

func renderGadget(b *strings.Builder, g gadget.Gadget) {
	udc := g.UDC()
	if udc == "" {
		udc = "(disabled)"
	}
	fmt.Fprintf(b, "Gadget %s [%s]\n", g.Name(), udc)

	if attrs, err := g.Attrs(); err != nil {
		fmt.Fprintf(b, "  attrs: %v\n", err)
	} else {
		fmt.Fprintf(b, "  idVendor=0x%04x idProduct=0x%04x bcdDevice=0x%04x bcdUSB=0x%04x\n",
			attrs.IDVendor, attrs.IDProduct, attrs.BcdDevice, attrs.BcdUSB)
		fmt.Fprintf(b, "  class=0x%02x subclass=0x%02x protocol=0x%02x maxpacket0=%d\n",
			attrs.BDeviceClass, attrs.BDeviceSubClass, attrs.BDeviceProtocol, attrs.BMaxPacketSize0)
	}

	renderGadgetStrings(b, g)

	for _, f := range g.Functions() {
		renderFunction(b, f)
	}

	for _, c := range g.Configs() {
		renderConfig(b, c)
	}
}

func renderGadgetStrings(b *strings.Builder, g gadget.Gadget) {
	langs, err := g.StringLangs()
	if err != nil {
		fmt.Fprintf(b, "  strings: %v\n", err)

		return
	}

	for _, lang := range langs {
		strs, err := g.Strings(lang)
		if err != nil {
			fmt.Fprintf(b, "  strings 0x%x: %v\n", lang, err)

			continue
		}
		fmt.Fprintf(b, "  strings 0x%x: manufacturer=%q product=%q serial=%q\n",
			lang, strs.Manufacturer, strs.Product, strs.SerialNumber)
	}
}

func renderFunction(b *strings.Builder, f gadget.Function) {
	fmt.Fprintf(b, "  Function %s\n", f.Name())

	attrs, err := f.Attrs()
	if err != nil {
		if !errors.Is(err, gadgeterr.ErrNotSupported) {
			fmt.Fprintf(b, "    attrs: %v\n", err)
		}

		return
	}

	switch a := attrs.(type) {
	case *gadget.SerialAttrs:
		fmt.Fprintf(b, "    port_num=%d\n", a.PortNum)
	case *gadget.NetAttrs:
		fmt.Fprintf(b, "    ifname=%s dev_addr=%s host_addr=%s qmult=%d\n",
			a.IfName, a.DevAddr, a.HostAddr, a.Qmult)
	case *gadget.PhonetAttrs:
		fmt.Fprintf(b, "    ifname=%s\n", a.IfName)
	}
}

func renderConfig(b *strings.Builder, c gadget.Config) {
	fmt.Fprintf(b, "  Config %s\n", c.Name())

	if attrs, err := c.Attrs(); err != nil {
		fmt.Fprintf(b, "    attrs: %v\n", err)
	} else {
		fmt.Fprintf(b, "    MaxPower=%s bmAttributes=0x%02x\n", MaxPowerString(attrs.MaxPower), attrs.BmAttributes)
	}

	if langs, err := c.StringLangs(); err != nil {
		fmt.Fprintf(b, "    strings: %v\n", err)
	} else {
		for _, lang := range langs {
			strs, err := c.Strings(lang)
			if err != nil {
				fmt.Fprintf(b, "    strings 0x%x: %v\n", lang, err)

				continue
			}
			fmt.Fprintf(b, "    strings 0x%x: configuration=%q\n", lang, strs.Configuration)
		}
	}

	for _, bd := range c.Bindings() {
		fmt.Fprintf(b, "    %s -> %s\n", bd.Name(), bd.Target().Name())
	}
}
