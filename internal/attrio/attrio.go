// Package attrio implements reading and writing of single-value attribute
// files, as exposed by configfs and sysfs.
package attrio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

const (
	// MaxPathLength is the size limit of any composed path, including the
	// terminating byte expected by the kernel.
	MaxPathLength = 4096

	// MaxStrLength is the size limit of a single attribute value, including
	// the terminating byte expected by the kernel.
	MaxStrLength = 256
)

type osProvider interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// Handler is the principal implementation for the attribute I/O services.
type Handler struct {
	osHandler osProvider
}

// NewHandler returns a pointer to a new attribute I/O [Handler].
func NewHandler(osHandler osProvider) *Handler {
	return &Handler{
		osHandler: osHandler,
	}
}

// JoinPath joins all non-empty parts with a forward slash. It fails with
// [gadgeterr.ErrPathTooLong] when the result would not fit into
// [MaxPathLength], without touching the filesystem.
func JoinPath(parts ...string) (string, error) {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	joined := strings.Join(nonEmpty, "/")
	if len(joined) >= MaxPathLength {
		return "", fmt.Errorf("(attrio-join) %d bytes: %w", len(joined), gadgeterr.ErrPathTooLong)
	}

	return joined, nil
}

// ReadString reads the first line of an attribute file, without the line
// terminator. An empty file yields an empty string.
func (h *Handler) ReadString(path, name, file string) (string, error) {
	p, err := JoinPath(path, name, file)
	if err != nil {
		return "", err
	}

	line, err := h.readLine(p)
	if err != nil {
		return "", err
	}

	return line, nil
}

// ReadDec reads an attribute file holding a base 10 integer.
func (h *Handler) ReadDec(path, name, file string) (int, error) {
	return h.readInt(path, name, file, 10) //nolint:mnd
}

// ReadHex reads an attribute file holding a base 16 integer, with or
// without the "0x" prefix.
func (h *Handler) ReadHex(path, name, file string) (int, error) {
	return h.readInt(path, name, file, 16) //nolint:mnd
}

// WriteString writes a string value verbatim into an attribute file.
func (h *Handler) WriteString(path, name, file, value string) error {
	return h.write(path, name, file, value)
}

// WriteDec writes a base 10 integer into an attribute file.
func (h *Handler) WriteDec(path, name, file string, value int) error {
	return h.write(path, name, file, fmt.Sprintf("%d\n", value))
}

// WriteHex8 writes an 8-bit value in its two-digit hexadecimal form.
func (h *Handler) WriteHex8(path, name, file string, value uint8) error {
	return h.write(path, name, file, fmt.Sprintf("0x%02x\n", value))
}

// WriteHex16 writes a 16-bit value in its four-digit hexadecimal form.
func (h *Handler) WriteHex16(path, name, file string, value uint16) error {
	return h.write(path, name, file, fmt.Sprintf("0x%04x\n", value))
}

func (h *Handler) readInt(path, name, file string, base int) (int, error) {
	p, err := JoinPath(path, name, file)
	if err != nil {
		return 0, err
	}

	line, err := h.readLine(p)
	if err != nil {
		return 0, err
	}

	text := strings.TrimSpace(line)
	if base == 16 { //nolint:mnd
		text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	}

	value, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return 0, fmt.Errorf("(attrio-read) %s: %q: %w", p, line, gadgeterr.ErrIO)
	}

	return int(value), nil
}

func (h *Handler) readLine(p string) (string, error) {
	f, err := h.osHandler.OpenFile(p, os.O_RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("(attrio-read) failed to open: %w", gadgeterr.FromOS(err))
	}
	defer f.Close()

	buf := make([]byte, MaxStrLength-1)

	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("(attrio-read) failed to read %s: %w", p, gadgeterr.FromOS(err))
	}

	line, _, _ := strings.Cut(string(buf[:n]), "\n")

	return line, nil
}

func (h *Handler) write(path, name, file, value string) error {
	p, err := JoinPath(path, name, file)
	if err != nil {
		return err
	}

	if len(value) >= MaxStrLength {
		return fmt.Errorf("(attrio-write) value for %s has %d bytes: %w", p, len(value), gadgeterr.ErrInvalidParam)
	}

	f, err := h.osHandler.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:mnd
	if err != nil {
		return fmt.Errorf("(attrio-write) failed to open: %w", gadgeterr.FromOS(err))
	}

	if _, err := f.WriteString(value); err != nil {
		f.Close()

		return fmt.Errorf("(attrio-write) failed to write %s: %w", p, gadgeterr.FromOS(err))
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("(attrio-write) failed to close %s: %w", p, gadgeterr.FromOS(err))
	}

	slog.Debug("Attribute written.", "path", p, "value", strings.TrimSuffix(value, "\n"))

	return nil
}
