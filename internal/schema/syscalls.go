// Package schema holds the implementations wrapping the operating system,
// as consumed by the provider interfaces of the other packages.
package schema

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Readlink wraps around [os.Readlink].
func (*OS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// ReadDir wraps around [os.ReadDir].
func (*OS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// OpenFile wraps around [os.OpenFile].
func (*OS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Mkdir wraps around [unix.Mkdir].
func (*Unix) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}

// Rmdir wraps around [unix.Rmdir].
func (*Unix) Rmdir(path string) error {
	return unix.Rmdir(path)
}

// Symlink wraps around [unix.Symlink].
func (*Unix) Symlink(oldpath, newpath string) error {
	return unix.Symlink(oldpath, newpath)
}

// Unlink wraps around [unix.Unlink].
func (*Unix) Unlink(path string) error {
	return unix.Unlink(path)
}
