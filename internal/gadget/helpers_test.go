package gadget

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/gogadget/internal/attrio"
	"github.com/desertwitch/gogadget/internal/configfstest"
	"github.com/desertwitch/gogadget/internal/schema"
	"github.com/stretchr/testify/require"
)

// newKernelHandler returns a [Handler] operating on a fresh configfs
// stand-in.
func newKernelHandler(t *testing.T) (*configfstest.Kernel, *Handler) {
	t.Helper()

	k := configfstest.New(t)
	h := NewHandler(&schema.OS{}, k, attrio.NewHandler(&schema.OS{}), k.UDCPath)

	return k, h
}

// newKernelState returns an initialized [State] on a fresh configfs
// stand-in.
func newKernelState(t *testing.T) (*configfstest.Kernel, *State) {
	t.Helper()

	k, h := newKernelHandler(t)

	s, err := h.Init(k.ConfigfsPath)
	require.NoError(t, err)

	return k, s
}

// reinit discovers the tree of a [State] anew from disk.
func reinit(t *testing.T, s *State) *State {
	t.Helper()

	s2, err := s.h.Init(filepath.Dir(s.Path()))
	require.NoError(t, err)

	return s2
}

// mkTree creates the reference tree: gadget g1 bound to UDC1 with the
// functions ecm.0 and acm.0, and configuration c.1 binding both.
func mkTree(t *testing.T, k *configfstest.Kernel) {
	t.Helper()

	gdir := filepath.Join(k.GadgetRoot(), "g1")
	cdir := filepath.Join(gdir, "configs", "c.1")

	require.NoError(t, k.Mkdir(gdir, dirMode))
	require.NoError(t, k.Mkdir(filepath.Join(gdir, "functions", "ecm.0"), dirMode))
	require.NoError(t, k.Mkdir(filepath.Join(gdir, "functions", "acm.0"), dirMode))
	require.NoError(t, k.Mkdir(cdir, dirMode))
	require.NoError(t, k.Symlink(filepath.Join(gdir, "functions", "acm.0"), filepath.Join(cdir, "b1")))
	require.NoError(t, k.Symlink(filepath.Join(gdir, "functions", "ecm.0"), filepath.Join(cdir, "b2")))
	require.NoError(t, os.WriteFile(filepath.Join(gdir, "UDC"), []byte("UDC1\n"), 0o644))
}

func names[T interface{ Name() string }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name())
	}

	return out
}

func exists(t *testing.T, path string) bool {
	t.Helper()

	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false
	}
	require.NoError(t, err)

	return true
}
