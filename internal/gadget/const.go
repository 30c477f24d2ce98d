package gadget

const (
	// GadgetDir is the name of the gadget subtree below the configfs mount.
	GadgetDir = "usb_gadget"

	// DefaultConfigfsPath is the usual mount point of configfs.
	DefaultConfigfsPath = "/sys/kernel/config"

	// DefaultUDCPath is the directory listing the available device
	// controllers.
	DefaultUDCPath = "/sys/class/udc"

	// DefaultConfigLabel is the label used for configurations created
	// without one.
	DefaultConfigLabel = "config"

	// LangUSEng is the USB language identifier for US English.
	LangUSEng = 0x409

	// MaxConfigID is the highest valid configuration identifier.
	MaxConfigID = 255

	functionsDir = "functions"
	configsDir   = "configs"
	stringsDir   = "strings"

	udcFile = "UDC"

	dirMode = 0o777
)
