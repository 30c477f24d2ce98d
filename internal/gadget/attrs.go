package gadget

import (
	"fmt"
	"net"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

// GadgetAttrs holds the device descriptor attributes of a gadget.
type GadgetAttrs struct {
	BcdUSB          uint16 `yaml:"bcdUSB"`
	BDeviceClass    uint8  `yaml:"bDeviceClass"`
	BDeviceSubClass uint8  `yaml:"bDeviceSubClass"`
	BDeviceProtocol uint8  `yaml:"bDeviceProtocol"`
	BMaxPacketSize0 uint8  `yaml:"bMaxPacketSize0"`
	IDVendor        uint16 `yaml:"idVendor"`
	IDProduct       uint16 `yaml:"idProduct"`
	BcdDevice       uint16 `yaml:"bcdDevice"`
}

// GadgetAttr identifies a single device descriptor attribute.
type GadgetAttr int

const (
	AttrBcdUSB GadgetAttr = iota
	AttrDeviceClass
	AttrDeviceSubClass
	AttrDeviceProtocol
	AttrMaxPacketSize0
	AttrVendorID
	AttrProductID
	AttrBcdDevice
)

type gadgetAttrDef struct {
	file string
	wide bool
	get  func(*GadgetAttrs) int
	set  func(*GadgetAttrs, int)
}

// gadgetAttrTable is indexed by [GadgetAttr] and lists the attributes in
// the order they are written.
//
//nolint:gochecknoglobals
var gadgetAttrTable = [...]gadgetAttrDef{
	AttrBcdUSB: {"bcdUSB", true,
		func(a *GadgetAttrs) int { return int(a.BcdUSB) },
		func(a *GadgetAttrs, v int) { a.BcdUSB = uint16(v) }},
	AttrDeviceClass: {"bDeviceClass", false,
		func(a *GadgetAttrs) int { return int(a.BDeviceClass) },
		func(a *GadgetAttrs, v int) { a.BDeviceClass = uint8(v) }},
	AttrDeviceSubClass: {"bDeviceSubClass", false,
		func(a *GadgetAttrs) int { return int(a.BDeviceSubClass) },
		func(a *GadgetAttrs, v int) { a.BDeviceSubClass = uint8(v) }},
	AttrDeviceProtocol: {"bDeviceProtocol", false,
		func(a *GadgetAttrs) int { return int(a.BDeviceProtocol) },
		func(a *GadgetAttrs, v int) { a.BDeviceProtocol = uint8(v) }},
	AttrMaxPacketSize0: {"bMaxPacketSize0", false,
		func(a *GadgetAttrs) int { return int(a.BMaxPacketSize0) },
		func(a *GadgetAttrs, v int) { a.BMaxPacketSize0 = uint8(v) }},
	AttrVendorID: {"idVendor", true,
		func(a *GadgetAttrs) int { return int(a.IDVendor) },
		func(a *GadgetAttrs, v int) { a.IDVendor = uint16(v) }},
	AttrProductID: {"idProduct", true,
		func(a *GadgetAttrs) int { return int(a.IDProduct) },
		func(a *GadgetAttrs, v int) { a.IDProduct = uint16(v) }},
	AttrBcdDevice: {"bcdDevice", true,
		func(a *GadgetAttrs) int { return int(a.BcdDevice) },
		func(a *GadgetAttrs, v int) { a.BcdDevice = uint16(v) }},
}

// String returns the attribute file name of the [GadgetAttr].
func (a GadgetAttr) String() string {
	if a < 0 || int(a) >= len(gadgetAttrTable) {
		return ""
	}

	return gadgetAttrTable[a].file
}

// ParseGadgetAttr looks up a [GadgetAttr] by its attribute file name.
func ParseGadgetAttr(name string) (GadgetAttr, error) {
	for i, def := range gadgetAttrTable {
		if def.file == name {
			return GadgetAttr(i), nil
		}
	}

	return -1, fmt.Errorf("(gadget-attr) %q: %w", name, gadgeterr.ErrNotFound)
}

// GadgetStrings holds the per-language strings of a gadget.
type GadgetStrings struct {
	SerialNumber string `yaml:"serialnumber,omitempty"`
	Manufacturer string `yaml:"manufacturer,omitempty"`
	Product      string `yaml:"product,omitempty"`
}

// ConfigAttrs holds the attributes of a configuration.
type ConfigAttrs struct {
	MaxPower     int   `yaml:"maxPower"`
	BmAttributes uint8 `yaml:"bmAttributes"`
}

// ConfigStrings holds the per-language strings of a configuration.
type ConfigStrings struct {
	Configuration string `yaml:"configuration"`
}

// FunctionAttrs is the attribute set of a function. Its concrete type
// depends on the [FunctionType]: [*SerialAttrs], [*NetAttrs] or
// [*PhonetAttrs].
type FunctionAttrs interface {
	kind() attrKind
}

// SerialAttrs are the attributes of serial, ACM and OBEX functions.
type SerialAttrs struct {
	PortNum int
}

// NetAttrs are the attributes of the ethernet-like functions.
type NetAttrs struct {
	DevAddr  net.HardwareAddr
	HostAddr net.HardwareAddr
	IfName   string
	Qmult    int
}

// PhonetAttrs are the attributes of phonet functions.
type PhonetAttrs struct {
	IfName string
}

func (*SerialAttrs) kind() attrKind { return attrKindSerial }
func (*NetAttrs) kind() attrKind    { return attrKindNet }
func (*PhonetAttrs) kind() attrKind { return attrKindPhonet }
