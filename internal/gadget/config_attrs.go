package gadget

import (
	"fmt"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

const (
	maxPowerFile      = "MaxPower"
	bmAttributesFile  = "bmAttributes"
	configurationFile = "configuration"
)

func (h *Handler) writeConfigAttrs(cdir string, attrs *ConfigAttrs) error {
	if err := h.attrHandler.WriteDec(cdir, "", maxPowerFile, attrs.MaxPower); err != nil {
		return err
	}

	return h.attrHandler.WriteHex8(cdir, "", bmAttributesFile, attrs.BmAttributes)
}

// Attrs reads the attributes of the configuration.
func (c Config) Attrs() (ConfigAttrs, error) {
	if !c.Valid() {
		return ConfigAttrs{}, errStale("config")
	}

	cdir := c.Dir()

	maxPower, err := c.s.h.attrHandler.ReadDec(cdir, "", maxPowerFile)
	if err != nil {
		return ConfigAttrs{}, fmt.Errorf("(gadget-cattrs) %w", err)
	}

	bmAttrs, err := c.s.h.attrHandler.ReadHex(cdir, "", bmAttributesFile)
	if err != nil {
		return ConfigAttrs{}, fmt.Errorf("(gadget-cattrs) %w", err)
	}

	return ConfigAttrs{MaxPower: maxPower, BmAttributes: uint8(bmAttrs)}, nil
}

// SetAttrs writes the attributes of the configuration.
func (c Config) SetAttrs(attrs ConfigAttrs) error {
	if !c.Valid() {
		return errStale("config")
	}

	if err := c.s.h.writeConfigAttrs(c.Dir(), &attrs); err != nil {
		return fmt.Errorf("(gadget-cattrs) %w", err)
	}

	return nil
}

// SetMaxPower writes the MaxPower attribute (in mA).
func (c Config) SetMaxPower(maxPower int) error {
	if !c.Valid() {
		return errStale("config")
	}

	if err := c.s.h.attrHandler.WriteDec(c.Dir(), "", maxPowerFile, maxPower); err != nil {
		return fmt.Errorf("(gadget-cattrs) %w", err)
	}

	return nil
}

// SetBmAttrs writes the bmAttributes attribute.
func (c Config) SetBmAttrs(bmAttrs uint8) error {
	if !c.Valid() {
		return errStale("config")
	}

	if err := c.s.h.attrHandler.WriteHex8(c.Dir(), "", bmAttributesFile, bmAttrs); err != nil {
		return fmt.Errorf("(gadget-cattrs) %w", err)
	}

	return nil
}

// Strings reads the strings of the configuration for a language.
func (c Config) Strings(lang int) (ConfigStrings, error) {
	if !c.Valid() {
		return ConfigStrings{}, errStale("config")
	}

	dir, err := langDir(c.Dir(), lang)
	if err != nil {
		return ConfigStrings{}, err
	}

	v, err := c.s.h.attrHandler.ReadString(dir, "", configurationFile)
	if err != nil {
		return ConfigStrings{}, fmt.Errorf("(gadget-cstrings) %w", err)
	}

	return ConfigStrings{Configuration: v}, nil
}

// SetStrings writes the strings of the configuration for a language.
func (c Config) SetStrings(lang int, strs ConfigStrings) error {
	return c.SetString(lang, strs.Configuration)
}

// SetString writes the configuration string for a language, creating the
// language directory when needed.
func (c Config) SetString(lang int, value string) error {
	if !c.Valid() {
		return errStale("config")
	}

	dir, err := langDir(c.Dir(), lang)
	if err != nil {
		return err
	}

	if err := c.s.h.ensureDir(dir, nil); err != nil {
		return fmt.Errorf("(gadget-cstrings) %w", err)
	}

	if err := c.s.h.attrHandler.WriteString(dir, "", configurationFile, value); err != nil {
		return fmt.Errorf("(gadget-cstrings) %w", err)
	}

	return nil
}

// RemoveStrings removes the strings directory of a language.
func (c Config) RemoveStrings(lang int) error {
	if !c.Valid() {
		return errStale("config")
	}

	dir, err := langDir(c.Dir(), lang)
	if err != nil {
		return err
	}

	if err := c.s.h.unixHandler.Rmdir(dir); err != nil {
		return fmt.Errorf("(gadget-cstrings) failed to rmdir %s: %w", dir, gadgeterr.FromOS(err))
	}

	return nil
}

// StringLangs lists the languages the configuration has strings for.
func (c Config) StringLangs() ([]int, error) {
	if !c.Valid() {
		return nil, errStale("config")
	}

	return c.s.h.listLangs(c.Dir())
}
