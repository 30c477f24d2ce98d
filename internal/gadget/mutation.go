package gadget

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/gogadget/internal/attrio"
	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

// creationReport records the directories created by a single operation, so
// they can be removed again should a later step of that operation fail.
type creationReport struct {
	dirsCreated []string
}

func (h *Handler) mkdir(dir string, report *creationReport) error {
	if err := h.unixHandler.Mkdir(dir, dirMode); err != nil {
		return fmt.Errorf("failed to mkdir %s: %w", dir, gadgeterr.FromOS(err))
	}

	if report != nil {
		report.dirsCreated = append(report.dirsCreated, dir)
	}

	return nil
}

// ensureDir creates dir unless it already exists.
func (h *Handler) ensureDir(dir string, report *creationReport) error {
	_, err := h.osHandler.Stat(dir)
	if err == nil {
		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", dir, gadgeterr.FromOS(err))
	}

	return h.mkdir(dir, report)
}

// cleanDirectoriesAfterFailure removes the recorded directories, the most
// recently created first. Failures are logged and skipped.
func (h *Handler) cleanDirectoriesAfterFailure(report *creationReport) {
	for i := len(report.dirsCreated) - 1; i >= 0; i-- {
		dir := report.dirsCreated[i]

		if err := h.unixHandler.Rmdir(dir); err != nil {
			slog.Warn("Warning (rollback): failure removing created directory (skipped)",
				"path", dir,
				"err", err,
			)

			continue
		}

		slog.Debug("Rolled back created directory.", "path", dir)
	}
}

// CreateGadget creates a new gadget directory, applies the optional
// attributes and US English strings, and adds the gadget to the mirror.
func (s *State) CreateGadget(name string, attrs *GadgetAttrs, strs *GadgetStrings) (Gadget, error) {
	return s.createGadget(name, func(gdir string, report *creationReport) error {
		if attrs != nil {
			if err := s.h.writeGadgetAttrs(gdir, attrs); err != nil {
				return err
			}
		}

		if strs != nil {
			langDir, err := attrio.JoinPath(gdir, stringsDir, langDirName(LangUSEng))
			if err != nil {
				return err
			}

			if err := s.h.ensureDir(langDir, report); err != nil {
				return err
			}

			if err := s.h.writeGadgetStrings(langDir, strs); err != nil {
				return err
			}
		}

		return nil
	})
}

// CreateGadgetVidPid creates a new gadget with only the vendor and product
// identifiers set.
func (s *State) CreateGadgetVidPid(name string, vendorID, productID uint16) (Gadget, error) {
	return s.createGadget(name, func(gdir string, _ *creationReport) error {
		if err := s.h.attrHandler.WriteHex16(gdir, "", AttrVendorID.String(), vendorID); err != nil {
			return err
		}

		return s.h.attrHandler.WriteHex16(gdir, "", AttrProductID.String(), productID)
	})
}

func (s *State) createGadget(name string, apply func(gdir string, report *creationReport) error) (Gadget, error) {
	if err := validateName("gadget", name); err != nil {
		return Gadget{}, err
	}

	if _, exists := s.Gadget(name); exists {
		return Gadget{}, fmt.Errorf("(gadget-create) gadget %s: %w", name, gadgeterr.ErrExists)
	}

	gdir, err := attrio.JoinPath(s.path, name)
	if err != nil {
		return Gadget{}, fmt.Errorf("(gadget-create) %w", err)
	}

	gid := s.gadgetArena.alloc(&gadgetNode{name: name, path: s.path})

	var report creationReport
	var jobComplete bool

	defer func() {
		if !jobComplete {
			s.h.cleanDirectoriesAfterFailure(&report)
			s.gadgetArena.free(gid)
		}
	}()

	if err := s.h.mkdir(gdir, &report); err != nil {
		return Gadget{}, fmt.Errorf("(gadget-create) %w", err)
	}

	udc, err := s.h.attrHandler.ReadString(s.path, name, udcFile)
	if err != nil {
		return Gadget{}, fmt.Errorf("(gadget-create) failed to read default udc: %w", err)
	}
	s.gadgetArena.get(gid).udc = udc

	if err := apply(gdir, &report); err != nil {
		return Gadget{}, fmt.Errorf("(gadget-create) failed to apply settings: %w", err)
	}

	s.gadgets = insertOrdered(s.gadgets, gid, s.gadgetNameOf)
	jobComplete = true

	slog.Debug("Gadget created.", "gadget", name, "path", gdir)

	return Gadget{s, gid}, nil
}

// CreateFunction creates a new function of the given type and instance,
// applying the optional attributes.
func (g Gadget) CreateFunction(typ FunctionType, instance string, attrs FunctionAttrs) (Function, error) {
	n := g.node()
	if n == nil {
		return Function{}, errStale("gadget")
	}

	if !typ.Valid() {
		return Function{}, fmt.Errorf("(gadget-create) function type %d: %w", typ, gadgeterr.ErrInvalidParam)
	}

	if err := validateName("function instance", instance); err != nil {
		return Function{}, err
	}

	if _, exists := g.Function(typ, instance); exists {
		return Function{}, fmt.Errorf("(gadget-create) function %s: %w", FunctionName(typ, instance), gadgeterr.ErrExists)
	}

	if attrs != nil {
		if err := checkFunctionAttrs(typ, attrs); err != nil {
			return Function{}, fmt.Errorf("(gadget-create) %w", err)
		}
	}

	name := FunctionName(typ, instance)

	fpath, err := attrio.JoinPath(n.path, n.name, functionsDir)
	if err != nil {
		return Function{}, fmt.Errorf("(gadget-create) %w", err)
	}

	fdir, err := attrio.JoinPath(fpath, name)
	if err != nil {
		return Function{}, fmt.Errorf("(gadget-create) %w", err)
	}

	fid := g.s.functionArena.alloc(&functionNode{
		typ:      typ,
		instance: instance,
		name:     name,
		path:     fpath,
		parent:   g.id,
	})

	var report creationReport
	var jobComplete bool

	defer func() {
		if !jobComplete {
			g.s.h.cleanDirectoriesAfterFailure(&report)
			g.s.functionArena.free(fid)
		}
	}()

	if err := g.s.h.mkdir(fdir, &report); err != nil {
		return Function{}, fmt.Errorf("(gadget-create) %w", err)
	}

	if attrs != nil {
		if err := g.s.h.writeFunctionAttrs(fpath, name, attrs); err != nil {
			return Function{}, fmt.Errorf("(gadget-create) failed to apply attributes: %w", err)
		}
	}

	n.functions = insertOrdered(n.functions, fid, g.s.functionNameOf)
	jobComplete = true

	slog.Debug("Function created.", "gadget", n.name, "function", name)

	return Function{g.s, fid}, nil
}

// CreateConfig creates a new configuration with the given identifier and
// label (an empty label selects [DefaultConfigLabel]), applying the
// optional attributes and US English strings.
func (g Gadget) CreateConfig(id int, label string, attrs *ConfigAttrs, strs *ConfigStrings) (Config, error) {
	n := g.node()
	if n == nil {
		return Config{}, errStale("gadget")
	}

	if id < 1 || id > MaxConfigID {
		return Config{}, fmt.Errorf("(gadget-create) config id %d: %w", id, gadgeterr.ErrInvalidParam)
	}

	if label == "" {
		label = DefaultConfigLabel
	}

	if err := validateName("config label", label); err != nil {
		return Config{}, err
	}

	if _, exists := g.Config(id, ""); exists {
		return Config{}, fmt.Errorf("(gadget-create) config id %d: %w", id, gadgeterr.ErrExists)
	}

	name := ConfigName(label, id)

	cpath, err := attrio.JoinPath(n.path, n.name, configsDir)
	if err != nil {
		return Config{}, fmt.Errorf("(gadget-create) %w", err)
	}

	cdir, err := attrio.JoinPath(cpath, name)
	if err != nil {
		return Config{}, fmt.Errorf("(gadget-create) %w", err)
	}

	cid := g.s.configArena.alloc(&configNode{
		id:     id,
		label:  label,
		name:   name,
		path:   cpath,
		parent: g.id,
	})

	var report creationReport
	var jobComplete bool

	defer func() {
		if !jobComplete {
			g.s.h.cleanDirectoriesAfterFailure(&report)
			g.s.configArena.free(cid)
		}
	}()

	if err := g.s.h.mkdir(cdir, &report); err != nil {
		return Config{}, fmt.Errorf("(gadget-create) %w", err)
	}

	if attrs != nil {
		if err := g.s.h.writeConfigAttrs(cdir, attrs); err != nil {
			return Config{}, fmt.Errorf("(gadget-create) failed to apply attributes: %w", err)
		}
	}

	if strs != nil {
		langDir, err := attrio.JoinPath(cdir, stringsDir, langDirName(LangUSEng))
		if err != nil {
			return Config{}, fmt.Errorf("(gadget-create) %w", err)
		}

		if err := g.s.h.ensureDir(langDir, &report); err != nil {
			return Config{}, fmt.Errorf("(gadget-create) %w", err)
		}

		if err := g.s.h.attrHandler.WriteString(langDir, "", configurationFile, strs.Configuration); err != nil {
			return Config{}, fmt.Errorf("(gadget-create) failed to apply strings: %w", err)
		}
	}

	n.configs = insertOrdered(n.configs, cid, g.s.configNameOf)
	jobComplete = true

	slog.Debug("Config created.", "gadget", n.name, "config", name)

	return Config{g.s, cid}, nil
}
