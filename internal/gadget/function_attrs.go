package gadget

import (
	"fmt"
	"net"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

const (
	portNumFile  = "port_num"
	devAddrFile  = "dev_addr"
	hostAddrFile = "host_addr"
	ifNameFile   = "ifname"
	qmultFile    = "qmult"
)

func checkFunctionAttrs(typ FunctionType, attrs FunctionAttrs) error {
	want := typ.attrKind()
	if want == attrKindNone {
		return fmt.Errorf("function type %s has no attributes: %w", typ, gadgeterr.ErrNotSupported)
	}

	if nilAttrs(attrs) || attrs.kind() != want {
		return fmt.Errorf("attributes %T do not fit function type %s: %w", attrs, typ, gadgeterr.ErrInvalidParam)
	}

	return nil
}

// nilAttrs reports whether attrs is nil or a nil pointer of a concrete
// attributes type.
func nilAttrs(attrs FunctionAttrs) bool {
	switch a := attrs.(type) {
	case nil:
		return true
	case *SerialAttrs:
		return a == nil
	case *NetAttrs:
		return a == nil
	case *PhonetAttrs:
		return a == nil
	}

	return false
}

func (h *Handler) writeFunctionAttrs(fpath, name string, attrs FunctionAttrs) error {
	switch a := attrs.(type) {
	case *SerialAttrs:
		return h.attrHandler.WriteDec(fpath, name, portNumFile, a.PortNum)

	case *NetAttrs:
		if err := h.attrHandler.WriteString(fpath, name, devAddrFile, a.DevAddr.String()); err != nil {
			return err
		}

		if err := h.attrHandler.WriteString(fpath, name, hostAddrFile, a.HostAddr.String()); err != nil {
			return err
		}

		if err := h.attrHandler.WriteString(fpath, name, ifNameFile, a.IfName); err != nil {
			return err
		}

		return h.attrHandler.WriteDec(fpath, name, qmultFile, a.Qmult)

	case *PhonetAttrs:
		return h.attrHandler.WriteString(fpath, name, ifNameFile, a.IfName)
	}

	return fmt.Errorf("attributes %T: %w", attrs, gadgeterr.ErrInvalidParam)
}

func (h *Handler) readMAC(fpath, name, file string) (net.HardwareAddr, error) {
	text, err := h.attrHandler.ReadString(fpath, name, file)
	if err != nil {
		return nil, err
	}

	mac, err := net.ParseMAC(text)
	if err != nil {
		return nil, fmt.Errorf("%s holds %q: %w", file, text, gadgeterr.ErrIO)
	}

	return mac, nil
}

// Attrs reads the attributes of the function. Functions without attributes
// fail with [gadgeterr.ErrNotSupported].
func (f Function) Attrs() (FunctionAttrs, error) {
	n := f.node()
	if n == nil {
		return nil, errStale("function")
	}

	h := f.s.h

	switch n.typ.attrKind() {
	case attrKindSerial:
		port, err := h.attrHandler.ReadDec(n.path, n.name, portNumFile)
		if err != nil {
			return nil, fmt.Errorf("(gadget-fattrs) %w", err)
		}

		return &SerialAttrs{PortNum: port}, nil

	case attrKindNet:
		dev, err := h.readMAC(n.path, n.name, devAddrFile)
		if err != nil {
			return nil, fmt.Errorf("(gadget-fattrs) %w", err)
		}

		host, err := h.readMAC(n.path, n.name, hostAddrFile)
		if err != nil {
			return nil, fmt.Errorf("(gadget-fattrs) %w", err)
		}

		ifname, err := h.attrHandler.ReadString(n.path, n.name, ifNameFile)
		if err != nil {
			return nil, fmt.Errorf("(gadget-fattrs) %w", err)
		}

		qmult, err := h.attrHandler.ReadDec(n.path, n.name, qmultFile)
		if err != nil {
			return nil, fmt.Errorf("(gadget-fattrs) %w", err)
		}

		return &NetAttrs{DevAddr: dev, HostAddr: host, IfName: ifname, Qmult: qmult}, nil

	case attrKindPhonet:
		ifname, err := h.attrHandler.ReadString(n.path, n.name, ifNameFile)
		if err != nil {
			return nil, fmt.Errorf("(gadget-fattrs) %w", err)
		}

		return &PhonetAttrs{IfName: ifname}, nil

	case attrKindNone:
	}

	return nil, fmt.Errorf("(gadget-fattrs) function type %s: %w", n.typ, gadgeterr.ErrNotSupported)
}

// SetAttrs writes the attributes of the function. The concrete type of
// attrs must match the [FunctionType].
func (f Function) SetAttrs(attrs FunctionAttrs) error {
	n := f.node()
	if n == nil {
		return errStale("function")
	}

	if err := checkFunctionAttrs(n.typ, attrs); err != nil {
		return fmt.Errorf("(gadget-fattrs) %w", err)
	}

	if err := f.s.h.writeFunctionAttrs(n.path, n.name, attrs); err != nil {
		return fmt.Errorf("(gadget-fattrs) %w", err)
	}

	return nil
}

// SetDevAddr writes the device side MAC address of a network function.
func (f Function) SetDevAddr(mac net.HardwareAddr) error {
	return f.setNetString(devAddrFile, mac.String())
}

// SetHostAddr writes the host side MAC address of a network function.
func (f Function) SetHostAddr(mac net.HardwareAddr) error {
	return f.setNetString(hostAddrFile, mac.String())
}

// SetQmult writes the queue length multiplier of a network function.
func (f Function) SetQmult(qmult int) error {
	n, err := f.netNode()
	if err != nil {
		return err
	}

	if err := f.s.h.attrHandler.WriteDec(n.path, n.name, qmultFile, qmult); err != nil {
		return fmt.Errorf("(gadget-fattrs) %w", err)
	}

	return nil
}

func (f Function) setNetString(file, value string) error {
	n, err := f.netNode()
	if err != nil {
		return err
	}

	if err := f.s.h.attrHandler.WriteString(n.path, n.name, file, value); err != nil {
		return fmt.Errorf("(gadget-fattrs) %w", err)
	}

	return nil
}

func (f Function) netNode() (*functionNode, error) {
	n := f.node()
	if n == nil {
		return nil, errStale("function")
	}

	switch n.typ.attrKind() {
	case attrKindNet:
		return n, nil
	case attrKindNone:
		return nil, fmt.Errorf("(gadget-fattrs) function type %s: %w", n.typ, gadgeterr.ErrNotSupported)
	case attrKindSerial, attrKindPhonet:
	}

	return nil, fmt.Errorf("(gadget-fattrs) %s is no network function: %w", n.name, gadgeterr.ErrInvalidParam)
}
