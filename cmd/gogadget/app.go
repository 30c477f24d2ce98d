package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/desertwitch/gogadget/internal/attrio"
	"github.com/desertwitch/gogadget/internal/configuration"
	"github.com/desertwitch/gogadget/internal/gadget"
	"github.com/desertwitch/gogadget/internal/gadgeterr"
	"github.com/desertwitch/gogadget/internal/schema"
	"github.com/lmittmann/tint"
)

const (
	terminalHandler = "terminal"
	browserHandler  = "ui"
)

type unixProvider interface {
	Mkdir(path string, mode uint32) error
	Rmdir(path string) error
	Symlink(oldpath, newpath string) error
	Unlink(path string) error
}

// App holds the program wiring shared by all commands.
type App struct {
	out    io.Writer
	errOut io.Writer

	unixHandler unixProvider
	logs        *SlogManager

	settings      *configuration.Settings
	gadgetHandler *gadget.Handler
	state         *gadget.State
}

func NewApp(out io.Writer, errOut io.Writer, unixHandler unixProvider) *App {
	return &App{
		out:         out,
		errOut:      errOut,
		unixHandler: unixHandler,
		logs:        NewSlogManager(),
	}
}

// Setup loads the settings, applies the command-line overrides and installs
// the logging. It does not touch configfs yet.
func (app *App) Setup(opts *rootOptions) error {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	var files []string
	if opts.configFile != "" {
		files = append(files, opts.configFile)
	}

	settings, err := configHandler.LoadSettings(files...)
	if err != nil {
		return fmt.Errorf("(app-setup) %w", err)
	}

	if opts.configfsPath != "" {
		settings.ConfigfsPath = opts.configfsPath
	}

	if opts.udcPath != "" {
		settings.UDCPath = opts.udcPath
	}

	if opts.logLevel != "" {
		if err := settings.LogLevel.UnmarshalText([]byte(strings.ToUpper(opts.logLevel))); err != nil {
			return fmt.Errorf("(app-setup) --log-level: %w", err)
		}
	}

	app.settings = settings

	app.logs.AddHandler(terminalHandler, tint.NewHandler(app.errOut, &tint.Options{
		Level:      settings.LogLevel,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(slog.New(app.logs))

	app.gadgetHandler = gadget.NewHandler(&schema.OS{}, app.unixHandler, attrio.NewHandler(&schema.OS{}), settings.UDCPath)

	return nil
}

// Discover returns the gadget tree, discovering it from configfs on first
// use.
func (app *App) Discover() (*gadget.State, error) {
	if app.state != nil {
		return app.state, nil
	}

	if app.gadgetHandler == nil {
		return nil, ErrNoState
	}

	s, err := app.gadgetHandler.Init(app.settings.ConfigfsPath)
	if err != nil {
		return nil, fmt.Errorf("(app-discover) %w", err)
	}

	app.state = s

	return s, nil
}

// routeLogsTo hands the logging over from the terminal to w, e.g. the log
// panel of the browser. The returned function hands it back.
func (app *App) routeLogsTo(w io.Writer) func() {
	terminal, hadTerminal := app.logs.GetHandler(terminalHandler)
	app.logs.RemoveHandler(terminalHandler)

	app.logs.AddHandler(browserHandler, slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: app.settings.LogLevel,
	}))

	return func() {
		app.logs.RemoveHandler(browserHandler)

		if hadTerminal {
			app.logs.AddHandler(terminalHandler, terminal)
		}
	}
}

// Close releases the gadget tree.
func (app *App) Close() {
	if app.state != nil {
		app.state.Cleanup()
		app.state = nil
	}
}

func (app *App) lookupGadget(name string) (gadget.Gadget, error) {
	s, err := app.Discover()
	if err != nil {
		return gadget.Gadget{}, err
	}

	g, ok := s.Gadget(name)
	if !ok {
		return gadget.Gadget{}, fmt.Errorf("gadget %s: %w", name, gadgeterr.ErrNotFound)
	}

	return g, nil
}

func lookupFunction(g gadget.Gadget, name string) (gadget.Function, error) {
	typ, instance, err := gadget.SplitFunctionName(name)
	if err != nil {
		return gadget.Function{}, err
	}

	f, ok := g.Function(typ, instance)
	if !ok {
		return gadget.Function{}, fmt.Errorf("function %s of gadget %s: %w", name, g.Name(), gadgeterr.ErrNotFound)
	}

	return f, nil
}

func lookupConfig(g gadget.Gadget, name string) (gadget.Config, error) {
	label, id, err := gadget.SplitConfigName(name)
	if err != nil {
		return gadget.Config{}, err
	}

	c, ok := g.Config(id, label)
	if !ok {
		return gadget.Config{}, fmt.Errorf("config %s of gadget %s: %w", name, g.Name(), gadgeterr.ErrNotFound)
	}

	return c, nil
}
