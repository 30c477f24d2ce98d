package main

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// SlogManager is a [slog.Handler] fanning every record out to a set of named
// handlers, which can be exchanged at runtime (e.g. the terminal for the
// interactive browser and back).
type SlogManager struct {
	sync.RWMutex
	handlers map[string]slog.Handler
	attrs    []slog.Attr
	groups   []string
}

func NewSlogManager() *SlogManager {
	return &SlogManager{
		handlers: make(map[string]slog.Handler),
	}
}

func (m *SlogManager) Enabled(ctx context.Context, level slog.Level) bool {
	m.RLock()
	defer m.RUnlock()

	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (m *SlogManager) Handle(ctx context.Context, r slog.Record) error {
	m.RLock()
	defer m.RUnlock()

	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}

	return nil
}

func (m *SlogManager) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.derive(slices.Concat(m.attrs, attrs), m.groups, func(h slog.Handler) slog.Handler {
		return h.WithAttrs(attrs)
	})
}

func (m *SlogManager) WithGroup(name string) slog.Handler {
	return m.derive(m.attrs, slices.Concat(m.groups, []string{name}), func(h slog.Handler) slog.Handler {
		return h.WithGroup(name)
	})
}

func (m *SlogManager) derive(attrs []slog.Attr, groups []string, wrap func(slog.Handler) slog.Handler) *SlogManager {
	m.RLock()
	defer m.RUnlock()

	derived := &SlogManager{
		handlers: make(map[string]slog.Handler, len(m.handlers)),
		attrs:    slices.Clone(attrs),
		groups:   slices.Clone(groups),
	}

	for name, h := range m.handlers {
		derived.handlers[name] = wrap(h)
	}

	return derived
}

func (m *SlogManager) GetHandler(name string) (slog.Handler, bool) {
	m.RLock()
	defer m.RUnlock()

	h, ok := m.handlers[name]

	return h, ok
}

// Names returns the names of the installed handlers in ascending order.
func (m *SlogManager) Names() []string {
	m.RLock()
	defer m.RUnlock()

	return slices.Sorted(maps.Keys(m.handlers))
}

// AddHandler installs a handler under the given name, replacing any handler
// of the same name. Attributes and groups of the manager are applied to it.
func (m *SlogManager) AddHandler(name string, handler slog.Handler) {
	m.Lock()
	defer m.Unlock()

	h := handler
	if len(m.attrs) > 0 {
		h = h.WithAttrs(m.attrs)
	}

	for _, group := range m.groups {
		h = h.WithGroup(group)
	}

	m.handlers[name] = h
}

func (m *SlogManager) RemoveHandler(name string) {
	m.Lock()
	defer m.Unlock()

	delete(m.handlers, name)
}
