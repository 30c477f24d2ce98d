// Package layout implements the export of a live gadget into a declarative
// YAML document, and the recreation of a gadget from such a document.
package layout

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"github.com/desertwitch/gogadget/internal/gadget"
	"github.com/desertwitch/gogadget/internal/gadgeterr"
	"gopkg.in/yaml.v3"
)

// Document is the declarative description of a gadget.
type Document struct {
	Name      string                          `yaml:"name"`
	UDC       string                          `yaml:"udc,omitempty"`
	Attrs     gadget.GadgetAttrs              `yaml:"attrs"`
	Strings   map[string]gadget.GadgetStrings `yaml:"strings,omitempty"`
	Functions []Function                      `yaml:"functions,omitempty"`
	Configs   []Config                        `yaml:"configs,omitempty"`
}

// Function describes a function of a gadget.
type Function struct {
	Type     string         `yaml:"type"`
	Instance string         `yaml:"instance"`
	Attrs    *FunctionAttrs `yaml:"attrs,omitempty"`
}

// FunctionAttrs holds the attributes of any function type, only the fields
// belonging to the type are set.
type FunctionAttrs struct {
	PortNum  *int   `yaml:"port_num,omitempty"`
	DevAddr  string `yaml:"dev_addr,omitempty"`
	HostAddr string `yaml:"host_addr,omitempty"`
	IfName   string `yaml:"ifname,omitempty"`
	Qmult    *int   `yaml:"qmult,omitempty"`
}

// Config describes a configuration of a gadget.
type Config struct {
	ID       int                             `yaml:"id"`
	Label    string                          `yaml:"label"`
	Attrs    gadget.ConfigAttrs              `yaml:"attrs"`
	Strings  map[string]gadget.ConfigStrings `yaml:"strings,omitempty"`
	Bindings []Binding                       `yaml:"bindings,omitempty"`
}

// Binding describes a function bound into a configuration.
type Binding struct {
	Name     string `yaml:"name"`
	Function string `yaml:"function"`
}

// Marshal encodes a [Document] as YAML.
func Marshal(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("(layout-marshal) %w", err)
	}

	return data, nil
}

// Unmarshal decodes a [Document] from YAML.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("(layout-unmarshal) %w", err)
	}

	if doc.Name == "" {
		return nil, fmt.Errorf("(layout-unmarshal) document without name: %w", gadgeterr.ErrInvalidParam)
	}

	return &doc, nil
}

func langKey(lang int) string {
	return fmt.Sprintf("0x%x", lang)
}

func parseLangKey(key string) (int, error) {
	lang, err := strconv.ParseInt(strings.TrimPrefix(key, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("language %q: %w", key, gadgeterr.ErrInvalidParam)
	}

	return int(lang), nil
}

// Export reads a live gadget, including all attributes and strings, into a
// [Document].
func Export(g gadget.Gadget) (*Document, error) {
	attrs, err := g.Attrs()
	if err != nil {
		return nil, fmt.Errorf("(layout-export) %w", err)
	}

	doc := &Document{
		Name:  g.Name(),
		UDC:   g.UDC(),
		Attrs: attrs,
	}

	langs, err := g.StringLangs()
	if err != nil {
		return nil, fmt.Errorf("(layout-export) %w", err)
	}

	for _, lang := range langs {
		strs, err := g.Strings(lang)
		if err != nil {
			return nil, fmt.Errorf("(layout-export) %w", err)
		}

		if doc.Strings == nil {
			doc.Strings = make(map[string]gadget.GadgetStrings)
		}
		doc.Strings[langKey(lang)] = strs
	}

	for _, f := range g.Functions() {
		fn, err := exportFunction(f)
		if err != nil {
			return nil, fmt.Errorf("(layout-export) %w", err)
		}
		doc.Functions = append(doc.Functions, fn)
	}

	for _, c := range g.Configs() {
		cfg, err := exportConfig(c)
		if err != nil {
			return nil, fmt.Errorf("(layout-export) %w", err)
		}
		doc.Configs = append(doc.Configs, cfg)
	}

	return doc, nil
}

func exportFunction(f gadget.Function) (Function, error) {
	fn := Function{Type: f.Type().String(), Instance: f.Instance()}

	attrs, err := f.Attrs()
	if errors.Is(err, gadgeterr.ErrNotSupported) {
		return fn, nil
	}
	if err != nil {
		return Function{}, err
	}

	switch a := attrs.(type) {
	case *gadget.SerialAttrs:
		port := a.PortNum
		fn.Attrs = &FunctionAttrs{PortNum: &port}
	case *gadget.NetAttrs:
		qmult := a.Qmult
		fn.Attrs = &FunctionAttrs{
			DevAddr:  a.DevAddr.String(),
			HostAddr: a.HostAddr.String(),
			IfName:   a.IfName,
			Qmult:    &qmult,
		}
	case *gadget.PhonetAttrs:
		fn.Attrs = &FunctionAttrs{IfName: a.IfName}
	}

	return fn, nil
}

func exportConfig(c gadget.Config) (Config, error) {
	attrs, err := c.Attrs()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{ID: c.ID(), Label: c.Label(), Attrs: attrs}

	langs, err := c.StringLangs()
	if err != nil {
		return Config{}, err
	}

	for _, lang := range langs {
		strs, err := c.Strings(lang)
		if err != nil {
			return Config{}, err
		}

		if cfg.Strings == nil {
			cfg.Strings = make(map[string]gadget.ConfigStrings)
		}
		cfg.Strings[langKey(lang)] = strs
	}

	for _, b := range c.Bindings() {
		cfg.Bindings = append(cfg.Bindings, Binding{Name: b.Name(), Function: b.Target().Name()})
	}

	return cfg, nil
}

// Import creates a gadget as described by the [Document]. When enable is
// set and the document names a controller, the gadget is bound to it. On
// failure the partially created gadget is removed again.
func Import(s *gadget.State, doc *Document, enable bool) (gadget.Gadget, error) {
	attrs := doc.Attrs

	g, err := s.CreateGadget(doc.Name, &attrs, nil)
	if err != nil {
		return gadget.Gadget{}, fmt.Errorf("(layout-import) %w", err)
	}

	if err := populate(g, doc, enable); err != nil {
		if rmErr := g.Remove(true); rmErr != nil {
			slog.Warn("Warning (rollback): failure removing partially imported gadget (skipped)",
				"gadget", doc.Name,
				"err", rmErr,
			)
		}

		return gadget.Gadget{}, fmt.Errorf("(layout-import) %w", err)
	}

	slog.Info("Gadget imported.", "gadget", doc.Name)

	return g, nil
}

func populate(g gadget.Gadget, doc *Document, enable bool) error {
	for key, strs := range doc.Strings {
		lang, err := parseLangKey(key)
		if err != nil {
			return err
		}

		if err := g.SetStrings(lang, strs); err != nil {
			return err
		}
	}

	for _, fn := range doc.Functions {
		if err := importFunction(g, fn); err != nil {
			return err
		}
	}

	for _, cfg := range doc.Configs {
		if err := importConfig(g, cfg); err != nil {
			return err
		}
	}

	if enable && doc.UDC != "" {
		if err := g.Enable(doc.UDC); err != nil {
			return err
		}
	}

	return nil
}

func importFunction(g gadget.Gadget, fn Function) error {
	typ, err := gadget.ParseFunctionType(fn.Type)
	if err != nil {
		return err
	}

	var attrs gadget.FunctionAttrs

	if fn.Attrs != nil {
		attrs, err = fn.Attrs.Convert(typ)
		if err != nil {
			return err
		}
	}

	_, err = g.CreateFunction(typ, fn.Instance, attrs)

	return err
}

// Convert returns the [gadget.FunctionAttrs] for a function of the given
// type. A serial function without port number yields nil attributes.
func (a *FunctionAttrs) Convert(typ gadget.FunctionType) (gadget.FunctionAttrs, error) {
	switch typ {
	case gadget.FunctionSerial, gadget.FunctionACM, gadget.FunctionOBEX:
		if a.PortNum == nil {
			return nil, nil //nolint:nilnil
		}

		return &gadget.SerialAttrs{PortNum: *a.PortNum}, nil

	case gadget.FunctionECM, gadget.FunctionSubset, gadget.FunctionNCM, gadget.FunctionEEM, gadget.FunctionRNDIS:
		dev, err := net.ParseMAC(a.DevAddr)
		if err != nil {
			return nil, fmt.Errorf("dev_addr %q: %w", a.DevAddr, gadgeterr.ErrInvalidParam)
		}

		host, err := net.ParseMAC(a.HostAddr)
		if err != nil {
			return nil, fmt.Errorf("host_addr %q: %w", a.HostAddr, gadgeterr.ErrInvalidParam)
		}

		attrs := &gadget.NetAttrs{DevAddr: dev, HostAddr: host, IfName: a.IfName}
		if a.Qmult != nil {
			attrs.Qmult = *a.Qmult
		}

		return attrs, nil

	case gadget.FunctionPhonet:
		return &gadget.PhonetAttrs{IfName: a.IfName}, nil

	case gadget.FunctionFFS:
	}

	return nil, fmt.Errorf("function type %s has no attributes: %w", typ, gadgeterr.ErrNotSupported)
}

func importConfig(g gadget.Gadget, cfg Config) error {
	attrs := cfg.Attrs

	c, err := g.CreateConfig(cfg.ID, cfg.Label, &attrs, nil)
	if err != nil {
		return err
	}

	for key, strs := range cfg.Strings {
		lang, err := parseLangKey(key)
		if err != nil {
			return err
		}

		if err := c.SetStrings(lang, strs); err != nil {
			return err
		}
	}

	for _, b := range cfg.Bindings {
		typ, instance, err := gadget.SplitFunctionName(b.Function)
		if err != nil {
			return err
		}

		f, ok := g.Function(typ, instance)
		if !ok {
			return fmt.Errorf("binding %s targets unknown function %s: %w", b.Name, b.Function, gadgeterr.ErrNotFound)
		}

		if _, err := c.AddFunction(b.Name, f); err != nil {
			return err
		}
	}

	return nil
}
