// Package main implements the gogadget command-line program, which inspects
// and manipulates USB gadgets through configfs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
	"github.com/desertwitch/gogadget/internal/schema"
)

const (
	stackTraceBufMax = 1 << 24
)

//nolint:gochecknoglobals
var Version string

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

// exitCode maps an error to the exit status of the program. Errors of the
// gadget taxonomy exit with the magnitude of their code, anything else
// (e.g. a usage error) with 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var kind *gadgeterr.Error
	if errors.As(err, &kind) {
		return -int(kind.Code())
	}

	return 1
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	setupSignalHandlers(cancel)

	app := NewApp(os.Stdout, os.Stderr, &schema.Unix{})

	err := newRootCmd(app).ExecuteContext(ctx)
	app.Close()
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	os.Exit(exitCode(err))
}
