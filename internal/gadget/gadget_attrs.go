package gadget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/desertwitch/gogadget/internal/attrio"
	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

const (
	serialNumberFile = "serialnumber"
	manufacturerFile = "manufacturer"
	productFile      = "product"
)

func (h *Handler) writeGadgetAttrs(gdir string, attrs *GadgetAttrs) error {
	for _, def := range gadgetAttrTable {
		if err := h.writeGadgetAttr(gdir, def, def.get(attrs)); err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) writeGadgetAttr(gdir string, def gadgetAttrDef, value int) error {
	if def.wide {
		return h.attrHandler.WriteHex16(gdir, "", def.file, uint16(value))
	}

	return h.attrHandler.WriteHex8(gdir, "", def.file, uint8(value))
}

func (h *Handler) readGadgetAttrs(gdir string) (GadgetAttrs, error) {
	var attrs GadgetAttrs

	for _, def := range gadgetAttrTable {
		v, err := h.attrHandler.ReadHex(gdir, "", def.file)
		if err != nil {
			return GadgetAttrs{}, err
		}
		def.set(&attrs, v)
	}

	return attrs, nil
}

func (h *Handler) writeGadgetStrings(langDir string, strs *GadgetStrings) error {
	if err := h.attrHandler.WriteString(langDir, "", serialNumberFile, strs.SerialNumber); err != nil {
		return err
	}

	if err := h.attrHandler.WriteString(langDir, "", manufacturerFile, strs.Manufacturer); err != nil {
		return err
	}

	return h.attrHandler.WriteString(langDir, "", productFile, strs.Product)
}

// langDir composes the language directory below the strings directory of
// an entity directory.
func langDir(dir string, lang int) (string, error) {
	if lang < 0 || lang > 0xffff {
		return "", fmt.Errorf("(gadget-strings) language 0x%x: %w", lang, gadgeterr.ErrInvalidParam)
	}

	return attrio.JoinPath(dir, stringsDir, langDirName(lang))
}

// listLangs returns the languages with a strings directory below dir.
func (h *Handler) listLangs(dir string) ([]int, error) {
	sdir, err := attrio.JoinPath(dir, stringsDir)
	if err != nil {
		return nil, err
	}

	names, err := h.readDirs(sdir)
	if err != nil {
		return nil, fmt.Errorf("(gadget-strings) %w", err)
	}

	langs := make([]int, 0, len(names))
	for _, name := range names {
		lang, err := strconv.ParseInt(strings.TrimPrefix(name, "0x"), 16, 32)
		if err != nil {
			continue
		}
		langs = append(langs, int(lang))
	}

	return langs, nil
}

// Attrs reads all device descriptor attributes of the gadget.
func (g Gadget) Attrs() (GadgetAttrs, error) {
	if !g.Valid() {
		return GadgetAttrs{}, errStale("gadget")
	}

	attrs, err := g.s.h.readGadgetAttrs(g.Dir())
	if err != nil {
		return GadgetAttrs{}, fmt.Errorf("(gadget-attrs) %w", err)
	}

	return attrs, nil
}

// SetAttrs writes all device descriptor attributes of the gadget.
func (g Gadget) SetAttrs(attrs GadgetAttrs) error {
	if !g.Valid() {
		return errStale("gadget")
	}

	if err := g.s.h.writeGadgetAttrs(g.Dir(), &attrs); err != nil {
		return fmt.Errorf("(gadget-attrs) %w", err)
	}

	return nil
}

// Attr reads a single device descriptor attribute.
func (g Gadget) Attr(attr GadgetAttr) (int, error) {
	if !g.Valid() {
		return 0, errStale("gadget")
	}

	if attr.String() == "" {
		return 0, fmt.Errorf("(gadget-attrs) attribute %d: %w", attr, gadgeterr.ErrInvalidParam)
	}

	v, err := g.s.h.attrHandler.ReadHex(g.Dir(), "", attr.String())
	if err != nil {
		return 0, fmt.Errorf("(gadget-attrs) %w", err)
	}

	return v, nil
}

// SetAttr writes a single device descriptor attribute. The value must fit
// into the width of the attribute.
func (g Gadget) SetAttr(attr GadgetAttr, value int) error {
	if !g.Valid() {
		return errStale("gadget")
	}

	if attr.String() == "" {
		return fmt.Errorf("(gadget-attrs) attribute %d: %w", attr, gadgeterr.ErrInvalidParam)
	}

	def := gadgetAttrTable[attr]

	limit := 0xff
	if def.wide {
		limit = 0xffff
	}

	if value < 0 || value > limit {
		return fmt.Errorf("(gadget-attrs) %s value %d: %w", def.file, value, gadgeterr.ErrInvalidParam)
	}

	if err := g.s.h.writeGadgetAttr(g.Dir(), def, value); err != nil {
		return fmt.Errorf("(gadget-attrs) %w", err)
	}

	return nil
}

// SetVendorID writes the idVendor attribute.
func (g Gadget) SetVendorID(v uint16) error { return g.SetAttr(AttrVendorID, int(v)) }

// SetProductID writes the idProduct attribute.
func (g Gadget) SetProductID(v uint16) error { return g.SetAttr(AttrProductID, int(v)) }

// SetDeviceClass writes the bDeviceClass attribute.
func (g Gadget) SetDeviceClass(v uint8) error { return g.SetAttr(AttrDeviceClass, int(v)) }

// SetDeviceSubClass writes the bDeviceSubClass attribute.
func (g Gadget) SetDeviceSubClass(v uint8) error { return g.SetAttr(AttrDeviceSubClass, int(v)) }

// SetDeviceProtocol writes the bDeviceProtocol attribute.
func (g Gadget) SetDeviceProtocol(v uint8) error { return g.SetAttr(AttrDeviceProtocol, int(v)) }

// SetMaxPacketSize0 writes the bMaxPacketSize0 attribute.
func (g Gadget) SetMaxPacketSize0(v uint8) error { return g.SetAttr(AttrMaxPacketSize0, int(v)) }

// SetBcdDevice writes the bcdDevice attribute.
func (g Gadget) SetBcdDevice(v uint16) error { return g.SetAttr(AttrBcdDevice, int(v)) }

// SetBcdUSB writes the bcdUSB attribute.
func (g Gadget) SetBcdUSB(v uint16) error { return g.SetAttr(AttrBcdUSB, int(v)) }

// Strings reads the strings of the gadget for a language.
func (g Gadget) Strings(lang int) (GadgetStrings, error) {
	if !g.Valid() {
		return GadgetStrings{}, errStale("gadget")
	}

	dir, err := langDir(g.Dir(), lang)
	if err != nil {
		return GadgetStrings{}, err
	}

	var strs GadgetStrings

	fields := []struct {
		file string
		dst  *string
	}{
		{serialNumberFile, &strs.SerialNumber},
		{manufacturerFile, &strs.Manufacturer},
		{productFile, &strs.Product},
	}

	for _, field := range fields {
		v, err := g.s.h.attrHandler.ReadString(dir, "", field.file)
		if err != nil {
			return GadgetStrings{}, fmt.Errorf("(gadget-strings) %w", err)
		}
		*field.dst = v
	}

	return strs, nil
}

// SetStrings writes all strings of the gadget for a language, creating the
// language directory when needed.
func (g Gadget) SetStrings(lang int, strs GadgetStrings) error {
	dir, err := g.prepareLang(lang)
	if err != nil {
		return err
	}

	if err := g.s.h.writeGadgetStrings(dir, &strs); err != nil {
		return fmt.Errorf("(gadget-strings) %w", err)
	}

	return nil
}

// SetSerialNumber writes the serial number string for a language.
func (g Gadget) SetSerialNumber(lang int, value string) error {
	return g.setString(lang, serialNumberFile, value)
}

// SetManufacturer writes the manufacturer string for a language.
func (g Gadget) SetManufacturer(lang int, value string) error {
	return g.setString(lang, manufacturerFile, value)
}

// SetProduct writes the product string for a language.
func (g Gadget) SetProduct(lang int, value string) error {
	return g.setString(lang, productFile, value)
}

func (g Gadget) setString(lang int, file, value string) error {
	dir, err := g.prepareLang(lang)
	if err != nil {
		return err
	}

	if err := g.s.h.attrHandler.WriteString(dir, "", file, value); err != nil {
		return fmt.Errorf("(gadget-strings) %w", err)
	}

	return nil
}

func (g Gadget) prepareLang(lang int) (string, error) {
	if !g.Valid() {
		return "", errStale("gadget")
	}

	dir, err := langDir(g.Dir(), lang)
	if err != nil {
		return "", err
	}

	if err := g.s.h.ensureDir(dir, nil); err != nil {
		return "", fmt.Errorf("(gadget-strings) %w", err)
	}

	return dir, nil
}

// RemoveStrings removes the strings directory of a language.
func (g Gadget) RemoveStrings(lang int) error {
	if !g.Valid() {
		return errStale("gadget")
	}

	dir, err := langDir(g.Dir(), lang)
	if err != nil {
		return err
	}

	if err := g.s.h.unixHandler.Rmdir(dir); err != nil {
		return fmt.Errorf("(gadget-strings) failed to rmdir %s: %w", dir, gadgeterr.FromOS(err))
	}

	return nil
}

// StringLangs lists the languages the gadget has strings for.
func (g Gadget) StringLangs() ([]int, error) {
	if !g.Valid() {
		return nil, errStale("gadget")
	}

	return g.s.h.listLangs(g.Dir())
}
