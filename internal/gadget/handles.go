package gadget

import (
	"fmt"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

// Gadget is a handle to a gadget node of a [State]. The zero value, as well
// as a handle to a removed gadget, is invalid.
type Gadget struct {
	s  *State
	id uint32
}

// Function is a handle to a function node of a [State].
type Function struct {
	s  *State
	id uint32
}

// Config is a handle to a configuration node of a [State].
type Config struct {
	s  *State
	id uint32
}

// Binding is a handle to a binding node of a [State].
type Binding struct {
	s  *State
	id uint32
}

func errStale(kind string) error {
	return fmt.Errorf("(gadget) stale %s handle: %w", kind, gadgeterr.ErrInvalidParam)
}

func (g Gadget) node() *gadgetNode {
	if g.s == nil {
		return nil
	}

	return g.s.gadgetArena.get(g.id)
}

// Valid reports whether the handle refers to a live gadget.
func (g Gadget) Valid() bool {
	return g.node() != nil
}

// State returns the owning [State].
func (g Gadget) State() *State {
	return g.s
}

// Name returns the name of the gadget.
func (g Gadget) Name() string {
	if n := g.node(); n != nil {
		return n.name
	}

	return ""
}

// Path returns the directory containing the gadget directory.
func (g Gadget) Path() string {
	if n := g.node(); n != nil {
		return n.path
	}

	return ""
}

// Dir returns the full path of the gadget directory.
func (g Gadget) Dir() string {
	if n := g.node(); n != nil {
		return n.path + "/" + n.name
	}

	return ""
}

// UDC returns the name of the bound device controller, or an empty string
// for an unbound gadget.
func (g Gadget) UDC() string {
	if n := g.node(); n != nil {
		return n.udc
	}

	return ""
}

// Next returns the following gadget, or an invalid handle at the end.
func (g Gadget) Next() Gadget {
	if g.node() == nil {
		return Gadget{}
	}

	if id := following(g.s.gadgets, g.id); id != 0 {
		return Gadget{g.s, id}
	}

	return Gadget{}
}

// Functions returns all functions of the gadget in ascending name order.
func (g Gadget) Functions() []Function {
	n := g.node()
	if n == nil {
		return nil
	}

	out := make([]Function, 0, len(n.functions))
	for _, id := range n.functions {
		out = append(out, Function{g.s, id})
	}

	return out
}

// FirstFunction returns the first function, or an invalid handle.
func (g Gadget) FirstFunction() Function {
	n := g.node()
	if n == nil || len(n.functions) == 0 {
		return Function{}
	}

	return Function{g.s, n.functions[0]}
}

// Function looks up a function by type and instance.
func (g Gadget) Function(typ FunctionType, instance string) (Function, bool) {
	n := g.node()
	if n == nil {
		return Function{}, false
	}

	for _, id := range n.functions {
		f := g.s.functionArena.get(id)
		if f.typ == typ && f.instance == instance {
			return Function{g.s, id}, true
		}
	}

	return Function{}, false
}

// Configs returns all configurations of the gadget in ascending name order.
func (g Gadget) Configs() []Config {
	n := g.node()
	if n == nil {
		return nil
	}

	out := make([]Config, 0, len(n.configs))
	for _, id := range n.configs {
		out = append(out, Config{g.s, id})
	}

	return out
}

// FirstConfig returns the first configuration, or an invalid handle.
func (g Gadget) FirstConfig() Config {
	n := g.node()
	if n == nil || len(n.configs) == 0 {
		return Config{}
	}

	return Config{g.s, n.configs[0]}
}

// Config looks up a configuration by identifier. An empty label matches
// any label, otherwise the label must match as well.
func (g Gadget) Config(id int, label string) (Config, bool) {
	n := g.node()
	if n == nil {
		return Config{}, false
	}

	for _, cid := range n.configs {
		c := g.s.configArena.get(cid)
		if c.id == id && (label == "" || c.label == label) {
			return Config{g.s, cid}, true
		}
	}

	return Config{}, false
}

func (f Function) node() *functionNode {
	if f.s == nil {
		return nil
	}

	return f.s.functionArena.get(f.id)
}

// Valid reports whether the handle refers to a live function.
func (f Function) Valid() bool {
	return f.node() != nil
}

// Type returns the [FunctionType] of the function.
func (f Function) Type() FunctionType {
	if n := f.node(); n != nil {
		return n.typ
	}

	return -1
}

// Instance returns the instance part of the function name.
func (f Function) Instance() string {
	if n := f.node(); n != nil {
		return n.instance
	}

	return ""
}

// Name returns the directory name of the function ("<type>.<instance>").
func (f Function) Name() string {
	if n := f.node(); n != nil {
		return n.name
	}

	return ""
}

// Path returns the directory containing the function directory.
func (f Function) Path() string {
	if n := f.node(); n != nil {
		return n.path
	}

	return ""
}

// Dir returns the full path of the function directory.
func (f Function) Dir() string {
	if n := f.node(); n != nil {
		return n.path + "/" + n.name
	}

	return ""
}

// Gadget returns the owning gadget.
func (f Function) Gadget() Gadget {
	if n := f.node(); n != nil {
		return Gadget{f.s, n.parent}
	}

	return Gadget{}
}

// Next returns the following function of the same gadget.
func (f Function) Next() Function {
	n := f.node()
	if n == nil {
		return Function{}
	}

	if id := following(f.s.gadgetArena.get(n.parent).functions, f.id); id != 0 {
		return Function{f.s, id}
	}

	return Function{}
}

func (c Config) node() *configNode {
	if c.s == nil {
		return nil
	}

	return c.s.configArena.get(c.id)
}

// Valid reports whether the handle refers to a live configuration.
func (c Config) Valid() bool {
	return c.node() != nil
}

// ID returns the identifier of the configuration.
func (c Config) ID() int {
	if n := c.node(); n != nil {
		return n.id
	}

	return 0
}

// Label returns the label of the configuration.
func (c Config) Label() string {
	if n := c.node(); n != nil {
		return n.label
	}

	return ""
}

// Name returns the directory name of the configuration ("<label>.<id>").
func (c Config) Name() string {
	if n := c.node(); n != nil {
		return n.name
	}

	return ""
}

// Path returns the directory containing the configuration directory.
func (c Config) Path() string {
	if n := c.node(); n != nil {
		return n.path
	}

	return ""
}

// Dir returns the full path of the configuration directory.
func (c Config) Dir() string {
	if n := c.node(); n != nil {
		return n.path + "/" + n.name
	}

	return ""
}

// Gadget returns the owning gadget.
func (c Config) Gadget() Gadget {
	if n := c.node(); n != nil {
		return Gadget{c.s, n.parent}
	}

	return Gadget{}
}

// Next returns the following configuration of the same gadget.
func (c Config) Next() Config {
	n := c.node()
	if n == nil {
		return Config{}
	}

	if id := following(c.s.gadgetArena.get(n.parent).configs, c.id); id != 0 {
		return Config{c.s, id}
	}

	return Config{}
}

// Bindings returns all bindings of the configuration in ascending order.
func (c Config) Bindings() []Binding {
	n := c.node()
	if n == nil {
		return nil
	}

	out := make([]Binding, 0, len(n.bindings))
	for _, id := range n.bindings {
		out = append(out, Binding{c.s, id})
	}

	return out
}

// FirstBinding returns the first binding, or an invalid handle.
func (c Config) FirstBinding() Binding {
	n := c.node()
	if n == nil || len(n.bindings) == 0 {
		return Binding{}
	}

	return Binding{c.s, n.bindings[0]}
}

// Binding looks up a binding by name.
func (c Config) Binding(name string) (Binding, bool) {
	n := c.node()
	if n == nil {
		return Binding{}, false
	}

	for _, id := range n.bindings {
		if c.s.bindingArena.get(id).name == name {
			return Binding{c.s, id}, true
		}
	}

	return Binding{}, false
}

// BindingFor looks up the binding targeting the given function.
func (c Config) BindingFor(f Function) (Binding, bool) {
	n := c.node()
	if n == nil || f.s != c.s {
		return Binding{}, false
	}

	for _, id := range n.bindings {
		if c.s.bindingArena.get(id).target == f.id {
			return Binding{c.s, id}, true
		}
	}

	return Binding{}, false
}

func (b Binding) node() *bindingNode {
	if b.s == nil {
		return nil
	}

	return b.s.bindingArena.get(b.id)
}

// Valid reports whether the handle refers to a live binding.
func (b Binding) Valid() bool {
	return b.node() != nil
}

// Name returns the name of the binding (the link name).
func (b Binding) Name() string {
	if n := b.node(); n != nil {
		return n.name
	}

	return ""
}

// Path returns the configuration directory holding the link.
func (b Binding) Path() string {
	if n := b.node(); n != nil {
		return n.path
	}

	return ""
}

// Config returns the owning configuration.
func (b Binding) Config() Config {
	if n := b.node(); n != nil {
		return Config{b.s, n.parent}
	}

	return Config{}
}

// Target returns the bound function.
func (b Binding) Target() Function {
	if n := b.node(); n != nil {
		return Function{b.s, n.target}
	}

	return Function{}
}

// Next returns the following binding of the same configuration.
func (b Binding) Next() Binding {
	n := b.node()
	if n == nil {
		return Binding{}
	}

	if id := following(b.s.configArena.get(n.parent).bindings, b.id); id != 0 {
		return Binding{b.s, id}
	}

	return Binding{}
}
