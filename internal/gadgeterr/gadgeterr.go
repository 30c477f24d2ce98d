// Package gadgeterr implements the error taxonomy shared by all gadget
// operations, along with the translation of operating system faults into it.
package gadgeterr

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// Code is the numeric identifier of an error kind. The values are part of
// the external contract and must never change.
type Code int

const (
	Success      Code = 0
	NoMemory     Code = -1
	NoAccess     Code = -2
	InvalidParam Code = -3
	NotFound     Code = -4
	IO           Code = -5
	Exists       Code = -6
	NoDevice     Code = -7
	Busy         Code = -8
	NotSupported Code = -9
	PathTooLong  Code = -10
	Other        Code = -99
)

type codeInfo struct {
	name string
	text string
}

//nolint:gochecknoglobals
var codeTable = map[Code]codeInfo{
	Success:      {"USBG_SUCCESS", "Success (no error)"},
	NoMemory:     {"USBG_ERROR_NO_MEM", "Insufficient memory"},
	NoAccess:     {"USBG_ERROR_NO_ACCESS", "Access denied (insufficient permissions)"},
	InvalidParam: {"USBG_ERROR_INVALID_PARAM", "Invalid parameter"},
	NotFound:     {"USBG_ERROR_NOT_FOUND", "Not found (file or directory removed)"},
	IO:           {"USBG_ERROR_IO", "Input/output error"},
	Exists:       {"USBG_ERROR_EXIST", "Already exist"},
	NoDevice:     {"USBG_ERROR_NO_DEV", "No such device (illegal device name)"},
	Busy:         {"USBG_ERROR_BUSY", "Busy (gadget enabled)"},
	NotSupported: {"USBG_ERROR_NOT_SUPPORTED", "Function not supported"},
	PathTooLong:  {"USBG_ERROR_PATH_TOO_LONG", "Created path was too long to process it"},
	Other:        {"USBG_ERROR_OTHER_ERROR", "Other error"},
}

// Name returns the symbolic name of the [Code], e.g. "USBG_ERROR_NOT_FOUND".
func (c Code) Name() string {
	if info, ok := codeTable[c]; ok {
		return info.name
	}

	return "UNKNOWN"
}

// String returns the human readable description of the [Code].
func (c Code) String() string {
	if info, ok := codeTable[c]; ok {
		return info.text
	}

	return "Unknown error"
}

// Error is an error of a specific kind. Only the package-level sentinels are
// ever returned, usually wrapped with further context.
type Error struct {
	code Code
}

// Code returns the [Code] of the [Error].
func (e *Error) Code() Code {
	return e.code
}

func (e *Error) Error() string {
	return e.code.String()
}

// Translate maps an operating system error number into the taxonomy. It is
// total: any number without a dedicated kind becomes [ErrOther].
func Translate(errno unix.Errno) error {
	switch errno {
	case 0:
		return nil
	case unix.ENOMEM:
		return ErrNoMemory
	case unix.EACCES, unix.EROFS, unix.EPERM:
		return ErrNoAccess
	case unix.ENOENT, unix.ENOTDIR:
		return ErrNotFound
	case unix.EINVAL:
		return ErrInvalidParam
	case unix.EIO:
		return ErrIO
	case unix.EEXIST:
		return ErrExists
	case unix.ENODEV:
		return ErrNoDevice
	case unix.EBUSY:
		return ErrBusy
	default:
		return ErrOther
	}
}

// FromOS classifies an error returned by an operating system call. The
// original error stays in the chain, so both [errors.Is] against the
// sentinel and against the underlying [syscall.Errno] succeed.
func FromOS(err error) error {
	if err == nil {
		return nil
	}

	var kind *Error
	if errors.As(err, &kind) {
		return err
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return fmt.Errorf("%w: %w", Translate(errno), err)
	}

	return fmt.Errorf("%w: %w", ErrOther, err)
}

// CodeOf returns the [Code] of the kind contained in the error chain. A nil
// error is [Success], an error outside the taxonomy is [Other].
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}

	var kind *Error
	if errors.As(err, &kind) {
		return kind.code
	}

	return Other
}
