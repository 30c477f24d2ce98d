// Package gadget implements an in-memory mirror of the configfs USB gadget
// tree, its discovery from disk and all mutations, which are applied to
// disk and mirror in lockstep.
//
// Gadgets, functions, configurations and bindings are owned by a [State]
// and handed out as small value handles. Operations are synchronous and
// not safe for concurrent use; callers serialize access to a [State].
package gadget

import (
	"os"
)

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Readlink(name string) (string, error)
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Mkdir(path string, mode uint32) error
	Rmdir(path string) error
	Symlink(oldpath, newpath string) error
	Unlink(path string) error
}

type attrProvider interface {
	ReadString(path, name, file string) (string, error)
	ReadDec(path, name, file string) (int, error)
	ReadHex(path, name, file string) (int, error)
	WriteString(path, name, file, value string) error
	WriteDec(path, name, file string, value int) error
	WriteHex8(path, name, file string, value uint8) error
	WriteHex16(path, name, file string, value uint16) error
}

// Handler is the principal implementation for the gadget services.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
	attrHandler attrProvider
	udcPath     string
}

// NewHandler returns a pointer to a new gadget [Handler]. An empty udcPath
// selects [DefaultUDCPath].
func NewHandler(osHandler osProvider, unixHandler unixProvider, attrHandler attrProvider, udcPath string) *Handler {
	if udcPath == "" {
		udcPath = DefaultUDCPath
	}

	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
		attrHandler: attrHandler,
		udcPath:     udcPath,
	}
}
