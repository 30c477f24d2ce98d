package gadget

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

// SplitFunctionName splits a function directory name ("acm.usb0") into its
// type and instance at the first dot. The instance may itself contain dots.
func SplitFunctionName(name string) (FunctionType, string, error) {
	dot := strings.IndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return -1, "", fmt.Errorf("(gadget-split) function %q: %w", name, gadgeterr.ErrInvalidParam)
	}

	typ, err := ParseFunctionType(name[:dot])
	if err != nil {
		return -1, "", err
	}

	return typ, name[dot+1:], nil
}

// SplitConfigName splits a configuration directory name ("c.1") into its
// label and identifier at the last dot.
func SplitConfigName(name string) (string, int, error) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return "", 0, fmt.Errorf("(gadget-split) config %q: %w", name, gadgeterr.ErrInvalidParam)
	}

	idText := name[dot+1:]
	if idText == "" || unicode.IsSpace(rune(idText[0])) {
		return "", 0, fmt.Errorf("(gadget-split) config %q: %w", name, gadgeterr.ErrInvalidParam)
	}

	id, err := strconv.Atoi(idText)
	if err != nil || id < 0 || id > MaxConfigID {
		return "", 0, fmt.Errorf("(gadget-split) config %q has bad id: %w", name, gadgeterr.ErrInvalidParam)
	}

	return name[:dot], id, nil
}

// FunctionName composes the directory name of a function.
func FunctionName(typ FunctionType, instance string) string {
	return typ.String() + "." + instance
}

// ConfigName composes the directory name of a configuration.
func ConfigName(label string, id int) string {
	return label + "." + strconv.Itoa(id)
}

func langDirName(lang int) string {
	return fmt.Sprintf("0x%x", lang)
}

// validateName ensures a name can serve as a single directory entry.
func validateName(kind, name string) error {
	if name == "" || strings.ContainsRune(name, '/') || name == "." || name == ".." {
		return fmt.Errorf("(gadget-name) %s %q: %w", kind, name, gadgeterr.ErrInvalidParam)
	}

	return nil
}
