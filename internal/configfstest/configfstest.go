// Package configfstest provides a stand-in for the configfs gadget
// subsystem, operating on a temporary directory. It reproduces the side
// effects of the kernel that the gadget package relies upon: directories
// created by mkdir come pre-populated with their attribute files and
// default subdirectories, and rmdir removes those again.
package configfstest

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

// UDCs are the device controllers present in every [Kernel].
//
//nolint:gochecknoglobals
var UDCs = []string{"UDC1", "UDC2"}

//nolint:gochecknoglobals
var gadgetFiles = map[string]string{
	"UDC":             "\n",
	"bcdUSB":          "0x0200\n",
	"bDeviceClass":    "0x00\n",
	"bDeviceSubClass": "0x00\n",
	"bDeviceProtocol": "0x00\n",
	"bMaxPacketSize0": "0x40\n",
	"idVendor":        "0x0000\n",
	"idProduct":       "0x0000\n",
	"bcdDevice":       "0x0000\n",
}

//nolint:gochecknoglobals
var (
	serialFiles = map[string]string{"port_num": "0\n"}
	netFiles    = map[string]string{
		"dev_addr":  "02:00:00:00:00:01\n",
		"host_addr": "02:00:00:00:00:02\n",
		"ifname":    "usb0\n",
		"qmult":     "5\n",
	}
	phonetFiles = map[string]string{"ifname": "upnlink0\n"}
)

//nolint:gochecknoglobals
var functionFiles = map[string]map[string]string{
	"gser":   serialFiles,
	"acm":    serialFiles,
	"obex":   serialFiles,
	"ecm":    netFiles,
	"geth":   netFiles,
	"ncm":    netFiles,
	"eem":    netFiles,
	"rndis":  netFiles,
	"phonet": phonetFiles,
	"ffs":    {},
}

//nolint:gochecknoglobals
var (
	gadgetStringFiles = map[string]string{"serialnumber": "", "manufacturer": "", "product": ""}
	configFiles       = map[string]string{"MaxPower": "2\n", "bmAttributes": "0x80\n"}
	configStringFiles = map[string]string{"configuration": ""}
)

// Kernel is the configfs stand-in. It implements the Unix operations
// consumed by the gadget package.
type Kernel struct {
	// ConfigfsPath is the directory standing in for the configfs mount.
	ConfigfsPath string

	// UDCPath is the directory standing in for the controller class.
	UDCPath string

	faults map[string]error
	calls  []string
}

// New returns a [Kernel] with an empty gadget tree and the [UDCs].
func New(t testing.TB) *Kernel {
	t.Helper()

	base := t.TempDir()

	k := &Kernel{
		ConfigfsPath: filepath.Join(base, "config"),
		UDCPath:      filepath.Join(base, "udc"),
		faults:       make(map[string]error),
	}

	if err := os.MkdirAll(k.GadgetRoot(), 0o755); err != nil {
		t.Fatalf("configfstest: %v", err)
	}

	if err := os.MkdirAll(k.UDCPath, 0o755); err != nil {
		t.Fatalf("configfstest: %v", err)
	}

	for _, udc := range UDCs {
		if err := os.Mkdir(filepath.Join(k.UDCPath, udc), 0o755); err != nil {
			t.Fatalf("configfstest: %v", err)
		}
	}

	return k
}

// GadgetRoot returns the usb_gadget directory.
func (k *Kernel) GadgetRoot() string {
	return filepath.Join(k.ConfigfsPath, "usb_gadget")
}

// Fail makes the next call of op ("mkdir", "rmdir", "symlink", "unlink")
// on path fail with err.
func (k *Kernel) Fail(op, path string, err error) {
	k.faults[op+" "+path] = err
}

// Calls returns all operations performed so far, as "<op> <path>".
func (k *Kernel) Calls() []string {
	return k.calls
}

func (k *Kernel) record(op, path string) error {
	key := op + " " + path
	k.calls = append(k.calls, key)

	if err, ok := k.faults[key]; ok {
		delete(k.faults, key)

		return err
	}

	return nil
}

// locate classifies a path below the gadget root into the kind of configfs
// item it is, along with the name of that item.
func (k *Kernel) locate(path string) (kind, name string) {
	rel, err := filepath.Rel(k.GadgetRoot(), path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", ""
	}

	parts := strings.Split(rel, "/")

	switch {
	case len(parts) == 1:
		return "gadget", parts[0]
	case len(parts) == 3 && parts[1] == "functions":
		return "function", parts[2]
	case len(parts) == 3 && parts[1] == "configs":
		return "config", parts[2]
	case len(parts) == 3 && parts[1] == "strings":
		return "gadget-strings", parts[2]
	case len(parts) == 5 && parts[1] == "configs" && parts[3] == "strings":
		return "config-strings", parts[4]
	}

	return "", ""
}

// layout returns the attribute files and default subdirectories configfs
// populates a new directory of the given kind with.
func layout(kind, name string) (map[string]string, []string, error) {
	switch kind {
	case "gadget":
		return gadgetFiles, []string{"functions", "configs", "strings"}, nil

	case "function":
		typ, instance, ok := strings.Cut(name, ".")
		if !ok || typ == "" || instance == "" {
			return nil, nil, unix.EINVAL
		}

		files, known := functionFiles[typ]
		if !known {
			return nil, nil, unix.ENOENT
		}

		return files, nil, nil

	case "config":
		dot := strings.LastIndexByte(name, '.')
		if dot <= 0 {
			return nil, nil, unix.EINVAL
		}

		if id, err := strconv.Atoi(name[dot+1:]); err != nil || id < 1 || id > 255 {
			return nil, nil, unix.EINVAL
		}

		return configFiles, []string{"strings"}, nil

	case "gadget-strings":
		return gadgetStringFiles, nil, nil

	case "config-strings":
		return configStringFiles, nil, nil
	}

	return nil, nil, unix.EPERM
}

// Mkdir creates a configfs item directory, populated like the kernel does.
func (k *Kernel) Mkdir(path string, mode uint32) error {
	if err := k.record("mkdir", path); err != nil {
		return err
	}

	files, dirs, err := layout(k.locate(path))
	if err != nil {
		return err
	}

	if err := unix.Mkdir(path, mode); err != nil {
		return err
	}

	for file, content := range files {
		if err := os.WriteFile(filepath.Join(path, file), []byte(content), 0o644); err != nil {
			return unix.EIO
		}
	}

	for _, dir := range dirs {
		if err := os.Mkdir(filepath.Join(path, dir), 0o755); err != nil {
			return unix.EIO
		}
	}

	return nil
}

// Rmdir removes a configfs item directory. Like configfs, it refuses when
// the item still holds child items or links.
func (k *Kernel) Rmdir(path string) error {
	if err := k.record("rmdir", path); err != nil {
		return err
	}

	kind, name := k.locate(path)
	if kind == "" {
		return unix.EPERM
	}

	_, dirs, _ := layout(kind, name)

	entries, err := os.ReadDir(path)
	if err != nil {
		var errno unix.Errno
		if errors.As(err, &errno) {
			return errno
		}

		return unix.ENOENT
	}

	for _, e := range entries {
		p := filepath.Join(path, e.Name())

		switch {
		case e.Type().IsRegular():
			continue
		case e.IsDir() && slices.Contains(dirs, e.Name()):
			if sub, _ := os.ReadDir(p); len(sub) > 0 {
				return unix.ENOTEMPTY
			}
		default:
			return unix.ENOTEMPTY
		}
	}

	for _, e := range entries {
		if err := os.Remove(filepath.Join(path, e.Name())); err != nil {
			return unix.EIO
		}
	}

	return unix.Rmdir(path)
}

// Symlink creates a link from a configuration to a function item.
func (k *Kernel) Symlink(oldpath, newpath string) error {
	if err := k.record("symlink", newpath); err != nil {
		return err
	}

	if kind, _ := k.locate(oldpath); kind != "function" {
		return unix.EINVAL
	}

	if fi, err := os.Stat(oldpath); err != nil || !fi.IsDir() {
		return unix.ENOENT
	}

	return unix.Symlink(oldpath, newpath)
}

// Unlink removes a link.
func (k *Kernel) Unlink(path string) error {
	if err := k.record("unlink", path); err != nil {
		return err
	}

	return unix.Unlink(path)
}
