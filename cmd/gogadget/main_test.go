package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertwitch/gogadget/internal/configfstest"
	"github.com/desertwitch/gogadget/internal/gadgeterr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the program with the given arguments against the configfs
// stand-in and returns its standard output.
func run(t *testing.T, k *configfstest.Kernel, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	app := NewApp(&out, io.Discard, k)
	defer app.Close()

	cmd := newRootCmd(app)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--configfs", k.ConfigfsPath, "--udc-path", k.UDCPath}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func mustRun(t *testing.T, k *configfstest.Kernel, args ...string) string {
	t.Helper()

	out, err := run(t, k, args...)
	require.NoError(t, err, "gogadget %s", strings.Join(args, " "))

	return out
}

func mkGadget(t *testing.T, k *configfstest.Kernel) {
	t.Helper()

	mustRun(t, k, "create", "gadget", "g1", "--vid", "0x1d6b", "--pid", "0x0104", "--product", "Widget", "--serial", "auto")
	mustRun(t, k, "create", "function", "g1", "acm.GS0", "--port-num", "1")
	mustRun(t, k, "create", "function", "g1", "ecm.usb0",
		"--dev-addr", "02:00:00:00:00:01", "--host-addr", "02:00:00:00:00:02", "--ifname", "usb0", "--qmult", "5")
	mustRun(t, k, "create", "config", "g1", "c.1", "--max-power", "250", "--configuration", "CDC")
}

func TestCLI_Success_Lifecycle(t *testing.T) {
	k := configfstest.New(t)
	mkGadget(t, k)

	out := mustRun(t, k, "bind", "g1", "c.1", "serial", "acm.GS0")
	assert.Equal(t, "c.1/serial -> acm.GS0\n", out)

	out = mustRun(t, k, "enable", "g1", "--udc", "UDC2")
	assert.Equal(t, "UDC2\n", out)

	out = mustRun(t, k, "show")
	assert.Contains(t, out, "Gadget g1 [UDC2]")
	assert.Contains(t, out, "idVendor=0x1d6b idProduct=0x0104")
	assert.Contains(t, out, `product="Widget"`)
	assert.Contains(t, out, "port_num=1")
	assert.Contains(t, out, "ifname=usb0 dev_addr=02:00:00:00:00:01 host_addr=02:00:00:00:00:02 qmult=5")
	assert.Contains(t, out, "MaxPower=250 mA bmAttributes=0x80")
	assert.Contains(t, out, "serial -> acm.GS0")

	serial, err := os.ReadFile(filepath.Join(k.GadgetRoot(), "g1", "strings", "0x409", "serialnumber"))
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(string(serial)), 36)

	mustRun(t, k, "disable", "g1")
	out = mustRun(t, k, "show")
	assert.Contains(t, out, "Gadget g1 [(disabled)]")

	mustRun(t, k, "unbind", "g1", "c.1", "serial")
	out = mustRun(t, k, "show")
	assert.NotContains(t, out, "serial -> acm.GS0")

	mustRun(t, k, "rm", "g1", "acm.GS0")
	mustRun(t, k, "rm", "g1", "c.1", "-r")
	mustRun(t, k, "rm", "g1", "-r")

	out = mustRun(t, k, "show")
	assert.Equal(t, "No gadgets in "+k.GadgetRoot()+"\n", out)
}

func TestCLI_Success_ExportImport(t *testing.T) {
	k := configfstest.New(t)
	mkGadget(t, k)
	mustRun(t, k, "bind", "g1", "c.1", "serial", "acm.GS0")

	digest := mustRun(t, k, "show", "--digest")
	assert.Len(t, strings.TrimSpace(digest), 64)

	file := filepath.Join(t.TempDir(), "g1.yaml")
	mustRun(t, k, "export", "g1", "-o", file)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: g1")

	out := mustRun(t, k, "export", "g1")
	assert.Equal(t, string(data), out)

	mustRun(t, k, "rm", "g1", "-r")
	assert.NotEqual(t, digest, mustRun(t, k, "show", "--digest"))

	mustRun(t, k, "import", file)
	assert.Equal(t, digest, mustRun(t, k, "show", "--digest"))
	assert.Equal(t, string(data), mustRun(t, k, "export", "g1"))
}

func TestCLI_Success_UDCs(t *testing.T) {
	k := configfstest.New(t)

	out := mustRun(t, k, "udcs")
	assert.Equal(t, strings.Join(configfstest.UDCs, "\n")+"\n", out)
}

func TestCLI_Success_ConfigFile(t *testing.T) {
	k := configfstest.New(t)

	file := filepath.Join(t.TempDir(), "gogadget.conf")
	require.NoError(t, os.WriteFile(file, []byte("GOGADGET_CONFIGFS_PATH="+k.ConfigfsPath+"\nGOGADGET_LOG_LEVEL=debug\n"), 0o600))

	var out bytes.Buffer
	app := NewApp(&out, io.Discard, k)
	defer app.Close()

	cmd := newRootCmd(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", file, "--udc-path", k.UDCPath, "create", "gadget", "g1"})
	require.NoError(t, cmd.Execute())

	assert.DirExists(t, filepath.Join(k.GadgetRoot(), "g1"))
}

func TestCLI_Fail_ExitCodes(t *testing.T) {
	k := configfstest.New(t)
	mkGadget(t, k)

	tests := []struct {
		name string
		args []string
		err  error
		code int
	}{
		{"NotFound_Gadget", []string{"enable", "nope"}, gadgeterr.ErrNotFound, 4},
		{"NotFound_Entity", []string{"rm", "g1", "acm.x"}, ErrNoSuchEntity, 4},
		{"Exists_Gadget", []string{"create", "gadget", "g1"}, gadgeterr.ErrExists, 6},
		{"Busy_NonRecursive", []string{"rm", "g1"}, gadgeterr.ErrBusy, 8},
		{"NotSupported_Type", []string{"create", "function", "g1", "xyz.0"}, gadgeterr.ErrNotSupported, 9},
		{"InvalidParam_Attrs", []string{"create", "function", "g1", "ecm.usb1", "--ifname", "usb1"}, gadgeterr.ErrInvalidParam, 3},
		{"InvalidParam_Config", []string{"create", "config", "g1", "c.256"}, gadgeterr.ErrInvalidParam, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, k, tt.args...)
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.code, exitCode(err))
		})
	}
}

func TestCLI_Fail_Usage(t *testing.T) {
	k := configfstest.New(t)

	_, err := run(t, k, "enable")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	_, err = run(t, k, "--log-level", "loud", "show")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("usage")))
	assert.Equal(t, 99, exitCode(gadgeterr.ErrOther))
	assert.Equal(t, 5, exitCode(gadgeterr.ErrIO))
}
