// Package ui implements an interactive browser for the gadget tree using
// [tea].
package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	program *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler], which
// browses the gadget tree discovered by loader.
func NewHandler(ctx context.Context, cancel context.CancelFunc, loader TreeLoader, opts ...tea.ProgramOption) *Handler {
	handler := &Handler{}

	model := NewTeaModel(handler, loader, cancel)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	handler.program = tea.NewProgram(model, opts...)
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Send forwards a [tea.Msg] to the running [tea.Program].
func (uiHandler *Handler) Send(msg tea.Msg) {
	uiHandler.program.Send(msg)
}

// Launch starts the command-line user interface (the [tea.Program]) and
// blocks until it has exited.
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}
