package gadget

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/gogadget/internal/attrio"
	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

// AddFunction binds a function of the same gadget into the configuration,
// by creating a symbolic link called name pointing to the function
// directory. Both the name and the target must be unique in the
// configuration.
func (c Config) AddFunction(name string, f Function) (Binding, error) {
	n := c.node()
	if n == nil {
		return Binding{}, errStale("config")
	}

	fn := f.node()
	if fn == nil || f.s != c.s || fn.parent != n.parent {
		return Binding{}, fmt.Errorf("(gadget-bind) function is not part of gadget: %w", gadgeterr.ErrInvalidParam)
	}

	if err := validateName("binding", name); err != nil {
		return Binding{}, err
	}

	if _, exists := c.Binding(name); exists {
		return Binding{}, fmt.Errorf("(gadget-bind) binding %s: %w", name, gadgeterr.ErrExists)
	}

	if b, exists := c.BindingFor(f); exists {
		return Binding{}, fmt.Errorf("(gadget-bind) %s already bound as %s: %w", fn.name, b.Name(), gadgeterr.ErrExists)
	}

	cdir, err := attrio.JoinPath(n.path, n.name)
	if err != nil {
		return Binding{}, fmt.Errorf("(gadget-bind) %w", err)
	}

	bpath, err := attrio.JoinPath(cdir, name)
	if err != nil {
		return Binding{}, fmt.Errorf("(gadget-bind) %w", err)
	}

	fdir, err := attrio.JoinPath(fn.path, fn.name)
	if err != nil {
		return Binding{}, fmt.Errorf("(gadget-bind) %w", err)
	}

	bid := c.s.bindingArena.alloc(&bindingNode{
		name:   name,
		path:   cdir,
		target: f.id,
		parent: c.id,
	})

	if err := c.s.h.unixHandler.Symlink(fdir, bpath); err != nil {
		c.s.bindingArena.free(bid)

		return Binding{}, fmt.Errorf("(gadget-bind) failed to symlink %s: %w", bpath, gadgeterr.FromOS(err))
	}

	n.bindings = insertOrdered(n.bindings, bid, c.s.bindingNameOf)

	slog.Debug("Function bound.", "config", n.name, "binding", name, "function", fn.name)

	return Binding{c.s, bid}, nil
}

// Remove removes the binding link and, once that succeeded, the binding
// itself. The handle becomes stale.
func (b Binding) Remove() error {
	n := b.node()
	if n == nil {
		return errStale("binding")
	}

	bpath, err := attrio.JoinPath(n.path, n.name)
	if err != nil {
		return fmt.Errorf("(gadget-unbind) %w", err)
	}

	if err := b.s.h.unixHandler.Unlink(bpath); err != nil {
		return fmt.Errorf("(gadget-unbind) failed to unlink %s: %w", bpath, gadgeterr.FromOS(err))
	}

	c := b.s.configArena.get(n.parent)
	c.bindings = detach(c.bindings, b.id)
	b.s.bindingArena.free(b.id)

	slog.Debug("Function unbound.", "config", c.name, "binding", n.name)

	return nil
}
