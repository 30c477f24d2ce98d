package gadget

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/zeebo/blake3"
)

type gadgetNode struct {
	name      string
	path      string
	udc       string
	functions []uint32
	configs   []uint32
}

type functionNode struct {
	typ      FunctionType
	instance string
	name     string
	path     string
	parent   uint32
}

type configNode struct {
	id       int
	label    string
	name     string
	path     string
	bindings []uint32
	parent   uint32
}

type bindingNode struct {
	name   string
	path   string
	target uint32
	parent uint32
}

// State is the in-memory mirror of a configfs gadget tree. It owns every
// node reachable from it; the handles handed out to callers only refer to
// those nodes.
type State struct {
	h    *Handler
	path string

	gadgets []uint32

	gadgetArena   arena[gadgetNode]
	functionArena arena[functionNode]
	configArena   arena[configNode]
	bindingArena  arena[bindingNode]
}

// Path returns the root directory of the mirrored tree.
func (s *State) Path() string {
	return s.path
}

// Cleanup releases the whole mirror. All handles obtained from the [State]
// become stale. The filesystem is not touched.
func (s *State) Cleanup() {
	s.gadgets = nil
	s.gadgetArena.reset()
	s.functionArena.reset()
	s.configArena.reset()
	s.bindingArena.reset()

	slog.Debug("Gadget state released.", "path", s.path)
}

// Gadgets returns all gadgets in ascending name order.
func (s *State) Gadgets() []Gadget {
	out := make([]Gadget, 0, len(s.gadgets))
	for _, id := range s.gadgets {
		out = append(out, Gadget{s, id})
	}

	return out
}

// FirstGadget returns the first gadget, or an invalid handle if none exist.
func (s *State) FirstGadget() Gadget {
	if len(s.gadgets) == 0 {
		return Gadget{}
	}

	return Gadget{s, s.gadgets[0]}
}

// Gadget looks up a gadget by name.
func (s *State) Gadget(name string) (Gadget, bool) {
	for _, id := range s.gadgets {
		if s.gadgetArena.get(id).name == name {
			return Gadget{s, id}, true
		}
	}

	return Gadget{}, false
}

// Digest returns a stable fingerprint of the mirrored graph, covering names,
// bound controllers and bindings in their collection order.
func (s *State) Digest() string {
	var b strings.Builder

	for _, g := range s.Gadgets() {
		fmt.Fprintf(&b, "G %s %s\n", g.Name(), g.UDC())

		for _, f := range g.Functions() {
			fmt.Fprintf(&b, " F %s\n", f.Name())
		}

		for _, c := range g.Configs() {
			fmt.Fprintf(&b, " C %s\n", c.Name())

			for _, bnd := range c.Bindings() {
				fmt.Fprintf(&b, "  B %s %s\n", bnd.Name(), bnd.Target().Name())
			}
		}
	}

	sum := blake3.Sum256([]byte(b.String()))

	return fmt.Sprintf("%x", sum)
}

func (s *State) gadgetNameOf(id uint32) string {
	return s.gadgetArena.get(id).name
}

func (s *State) functionNameOf(id uint32) string {
	return s.functionArena.get(id).name
}

func (s *State) configNameOf(id uint32) string {
	return s.configArena.get(id).name
}

func (s *State) bindingNameOf(id uint32) string {
	return s.bindingArena.get(id).name
}

// releaseGadget frees a gadget and every node it owns.
func (s *State) releaseGadget(id uint32) {
	g := s.gadgetArena.get(id)
	if g == nil {
		return
	}

	for _, cid := range g.configs {
		s.releaseConfig(cid)
	}

	for _, fid := range g.functions {
		s.functionArena.free(fid)
	}

	s.gadgetArena.free(id)
}

// releaseConfig frees a configuration and its bindings.
func (s *State) releaseConfig(id uint32) {
	c := s.configArena.get(id)
	if c == nil {
		return
	}

	for _, bid := range c.bindings {
		s.bindingArena.free(bid)
	}

	s.configArena.free(id)
}
