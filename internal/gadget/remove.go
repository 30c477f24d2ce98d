package gadget

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

// Remove removes the function directory and the function. A function still
// bound into a configuration is busy, unless recursive is set, in which
// case its bindings are removed first.
func (f Function) Remove(recursive bool) error {
	n := f.node()
	if n == nil {
		return errStale("function")
	}

	var bound []Binding
	for _, c := range f.Gadget().Configs() {
		if b, ok := c.BindingFor(f); ok {
			bound = append(bound, b)
		}
	}

	if len(bound) > 0 && !recursive {
		return fmt.Errorf("(gadget-rm) function %s is bound %d time(s): %w", n.name, len(bound), gadgeterr.ErrBusy)
	}

	for _, b := range bound {
		if err := b.Remove(); err != nil {
			return fmt.Errorf("(gadget-rm) %w", err)
		}
	}

	fdir := f.Dir()
	if err := f.s.h.unixHandler.Rmdir(fdir); err != nil {
		return fmt.Errorf("(gadget-rm) failed to rmdir %s: %w", fdir, gadgeterr.FromOS(err))
	}

	g := f.s.gadgetArena.get(n.parent)
	g.functions = detach(g.functions, f.id)
	f.s.functionArena.free(f.id)

	slog.Debug("Function removed.", "gadget", g.name, "function", n.name)

	return nil
}

// Remove removes the configuration directory and the configuration. A
// configuration holding bindings or strings is busy, unless recursive is
// set, in which case those are removed first.
func (c Config) Remove(recursive bool) error {
	n := c.node()
	if n == nil {
		return errStale("config")
	}

	langs, err := c.StringLangs()
	if err != nil {
		return fmt.Errorf("(gadget-rm) %w", err)
	}

	if !recursive && (len(n.bindings) > 0 || len(langs) > 0) {
		return fmt.Errorf("(gadget-rm) config %s is not empty: %w", n.name, gadgeterr.ErrBusy)
	}

	for _, b := range c.Bindings() {
		if err := b.Remove(); err != nil {
			return fmt.Errorf("(gadget-rm) %w", err)
		}
	}

	for _, lang := range langs {
		if err := c.RemoveStrings(lang); err != nil {
			return fmt.Errorf("(gadget-rm) %w", err)
		}
	}

	cdir := c.Dir()
	if err := c.s.h.unixHandler.Rmdir(cdir); err != nil {
		return fmt.Errorf("(gadget-rm) failed to rmdir %s: %w", cdir, gadgeterr.FromOS(err))
	}

	g := c.s.gadgetArena.get(n.parent)
	g.configs = detach(g.configs, c.id)
	c.s.releaseConfig(c.id)

	slog.Debug("Config removed.", "gadget", g.name, "config", n.name)

	return nil
}

// Remove removes the gadget directory and the gadget. An enabled gadget or
// one holding functions, configurations or strings is busy, unless
// recursive is set, in which case the gadget is disabled and emptied first.
func (g Gadget) Remove(recursive bool) error {
	n := g.node()
	if n == nil {
		return errStale("gadget")
	}

	langs, err := g.StringLangs()
	if err != nil {
		return fmt.Errorf("(gadget-rm) %w", err)
	}

	if !recursive && (n.udc != "" || len(n.functions) > 0 || len(n.configs) > 0 || len(langs) > 0) {
		return fmt.Errorf("(gadget-rm) gadget %s is enabled or not empty: %w", n.name, gadgeterr.ErrBusy)
	}

	if n.udc != "" {
		if err := g.Disable(); err != nil {
			return fmt.Errorf("(gadget-rm) %w", err)
		}
	}

	for _, c := range g.Configs() {
		if err := c.Remove(true); err != nil {
			return err
		}
	}

	for _, f := range g.Functions() {
		if err := f.Remove(true); err != nil {
			return err
		}
	}

	for _, lang := range langs {
		if err := g.RemoveStrings(lang); err != nil {
			return fmt.Errorf("(gadget-rm) %w", err)
		}
	}

	gdir := g.Dir()
	if err := g.s.h.unixHandler.Rmdir(gdir); err != nil {
		return fmt.Errorf("(gadget-rm) failed to rmdir %s: %w", gdir, gadgeterr.FromOS(err))
	}

	g.s.gadgets = detach(g.s.gadgets, g.id)
	g.s.releaseGadget(g.id)

	slog.Debug("Gadget removed.", "gadget", n.name)

	return nil
}
