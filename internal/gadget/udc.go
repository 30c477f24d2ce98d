package gadget

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

// ListUDCs returns the names of the available device controllers in
// ascending order.
func (h *Handler) ListUDCs() ([]string, error) {
	entries, err := h.osHandler.ReadDir(h.udcPath)
	if err != nil {
		return nil, fmt.Errorf("(gadget-udc) failed to readdir %s: %w", h.udcPath, gadgeterr.FromOS(err))
	}

	udcs := make([]string, 0, len(entries))
	for _, e := range entries {
		udcs = append(udcs, e.Name())
	}
	slices.Sort(udcs)

	return udcs, nil
}

// ListUDCs returns the names of the available device controllers.
func (s *State) ListUDCs() ([]string, error) {
	return s.h.ListUDCs()
}

// Enable binds the gadget to a device controller. With an empty udc the
// first available controller is used. The mirror is only updated once the
// controller was written successfully.
func (g Gadget) Enable(udc string) error {
	n := g.node()
	if n == nil {
		return errStale("gadget")
	}

	if udc == "" {
		udcs, err := g.s.h.ListUDCs()
		if err != nil {
			return err
		}

		if len(udcs) == 0 {
			return fmt.Errorf("(gadget-udc) no controllers available: %w", gadgeterr.ErrNoDevice)
		}

		udc = udcs[0]
	}

	if err := g.s.h.attrHandler.WriteString(n.path, n.name, udcFile, udc); err != nil {
		return fmt.Errorf("(gadget-udc) failed to enable %s on %s: %w", n.name, udc, err)
	}

	n.udc = udc

	slog.Debug("Gadget enabled.", "gadget", n.name, "udc", udc)

	return nil
}

// Disable unbinds the gadget from its device controller.
func (g Gadget) Disable() error {
	n := g.node()
	if n == nil {
		return errStale("gadget")
	}

	if err := g.s.h.attrHandler.WriteString(n.path, n.name, udcFile, "\n"); err != nil {
		return fmt.Errorf("(gadget-udc) failed to disable %s: %w", n.name, err)
	}

	n.udc = ""

	slog.Debug("Gadget disabled.", "gadget", n.name)

	return nil
}
