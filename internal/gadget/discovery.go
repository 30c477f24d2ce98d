package gadget

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/desertwitch/gogadget/internal/attrio"
	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

// Init discovers the gadget tree below <configfsPath>/usb_gadget and returns
// its mirror. Discovery is all-or-nothing: on the first failure nothing is
// returned but the (wrapped) error.
func (h *Handler) Init(configfsPath string) (*State, error) {
	root, err := attrio.JoinPath(configfsPath, GadgetDir)
	if err != nil {
		return nil, err
	}

	if _, err := h.osHandler.Stat(root); err != nil {
		return nil, fmt.Errorf("(gadget-init) failed to stat %s: %w", root, gadgeterr.FromOS(err))
	}

	s := &State{h: h, path: root}

	if err := h.establishGadgets(s); err != nil {
		s.Cleanup()

		return nil, fmt.Errorf("(gadget-init) %w", err)
	}

	slog.Debug("Gadget tree discovered.",
		"path", root,
		"gadgets", s.gadgetArena.len(),
		"functions", s.functionArena.len(),
		"configs", s.configArena.len(),
		"bindings", s.bindingArena.len(),
	)

	return s, nil
}

func (h *Handler) readDirs(dir string) ([]string, error) {
	entries, err := h.osHandler.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to readdir %s: %w", dir, gadgeterr.FromOS(err))
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}

	return names, nil
}

func (h *Handler) establishGadgets(s *State) error {
	names, err := h.readDirs(s.path)
	if err != nil {
		return err
	}

	for _, name := range names {
		gid, err := h.establishGadget(s, name)
		if err != nil {
			return fmt.Errorf("gadget %s: %w", name, err)
		}

		s.gadgets = insertOrdered(s.gadgets, gid, s.gadgetNameOf)
	}

	return nil
}

func (h *Handler) establishGadget(s *State, name string) (uint32, error) {
	udc, err := h.attrHandler.ReadString(s.path, name, udcFile)
	if err != nil {
		return 0, err
	}

	gid := s.gadgetArena.alloc(&gadgetNode{
		name: name,
		path: s.path,
		udc:  udc,
	})

	gdir, err := attrio.JoinPath(s.path, name)
	if err != nil {
		s.releaseGadget(gid)

		return 0, err
	}

	if err := h.establishFunctions(s, gid, gdir); err != nil {
		s.releaseGadget(gid)

		return 0, err
	}

	if err := h.establishConfigs(s, gid, gdir); err != nil {
		s.releaseGadget(gid)

		return 0, err
	}

	return gid, nil
}

func (h *Handler) establishFunctions(s *State, gid uint32, gdir string) error {
	fpath, err := attrio.JoinPath(gdir, functionsDir)
	if err != nil {
		return err
	}

	names, err := h.readDirs(fpath)
	if err != nil {
		return err
	}

	g := s.gadgetArena.get(gid)

	for _, name := range names {
		typ, instance, err := SplitFunctionName(name)
		if err != nil {
			return err
		}

		fid := s.functionArena.alloc(&functionNode{
			typ:      typ,
			instance: instance,
			name:     name,
			path:     fpath,
			parent:   gid,
		})

		g.functions = insertOrdered(g.functions, fid, s.functionNameOf)
	}

	return nil
}

func (h *Handler) establishConfigs(s *State, gid uint32, gdir string) error {
	cpath, err := attrio.JoinPath(gdir, configsDir)
	if err != nil {
		return err
	}

	names, err := h.readDirs(cpath)
	if err != nil {
		return err
	}

	g := s.gadgetArena.get(gid)

	for _, name := range names {
		label, id, err := SplitConfigName(name)
		if err != nil {
			return err
		}

		if id == 0 {
			return fmt.Errorf("config %s has reserved id 0: %w", name, gadgeterr.ErrInvalidParam)
		}

		cid := s.configArena.alloc(&configNode{
			id:     id,
			label:  label,
			name:   name,
			path:   cpath,
			parent: gid,
		})

		if err := h.establishBindings(s, cid); err != nil {
			s.releaseConfig(cid)

			return fmt.Errorf("config %s: %w", name, err)
		}

		g.configs = insertOrdered(g.configs, cid, s.configNameOf)
	}

	return nil
}

func (h *Handler) establishBindings(s *State, cid uint32) error {
	c := s.configArena.get(cid)

	cdir, err := attrio.JoinPath(c.path, c.name)
	if err != nil {
		return err
	}

	entries, err := h.osHandler.ReadDir(cdir)
	if err != nil {
		return fmt.Errorf("failed to readdir %s: %w", cdir, gadgeterr.FromOS(err))
	}

	for _, e := range entries {
		if e.Type()&os.ModeSymlink == 0 {
			continue
		}

		bpath, err := attrio.JoinPath(cdir, e.Name())
		if err != nil {
			return err
		}

		target, err := h.osHandler.Readlink(bpath)
		if err != nil {
			return fmt.Errorf("failed to readlink %s: %w", bpath, gadgeterr.FromOS(err))
		}

		typ, instance, err := SplitFunctionName(path.Base(target))
		if err != nil {
			return err
		}

		f, ok := Gadget{s, c.parent}.Function(typ, instance)
		if !ok {
			return fmt.Errorf("binding %s targets unknown function %s: %w", e.Name(), target, gadgeterr.ErrOther)
		}

		bid := s.bindingArena.alloc(&bindingNode{
			name:   e.Name(),
			path:   cdir,
			target: f.id,
			parent: cid,
		})

		c.bindings = insertOrdered(c.bindings, bid, s.bindingNameOf)
	}

	return nil
}
