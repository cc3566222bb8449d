// Package view implements the view stack: loading through a pluggable
// Loader, render order and focus assignment, close-time caching, and the
// open/close facade that ties them together.
//
// The Manager is driven from a single host loop. Nothing in it locks.
package view

import (
	"log/slog"
	"slices"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/internal"
)

// Options configures a Manager.
type Options struct {
	Logger *slog.Logger
	// MaxCached bounds the cache pool. Zero means unbounded.
	MaxCached int
}

// Manager owns the open stack, the cache pool and the focus map.
type Manager struct {
	loader  Loader
	opened  []View // index 0 is the back, the last entry the front
	cache   *pool
	focused map[View]bool
	logger  *slog.Logger
	trace   tracer
}

// New creates a Manager. A nil loader is a configuration error.
func New(loader Loader, opts Options) (*Manager, error) {
	if loader == nil {
		return nil, internal.NewConfigurationError("view.New", internal.ErrNoLoader)
	}
	logger := internal.LoggerOr(opts.Logger)
	return &Manager{
		loader:  loader,
		cache:   newPool(opts.MaxCached),
		focused: make(map[View]bool),
		logger:  logger,
		trace:   tracer{logger: logger},
	}, nil
}

// Find returns the lowest open view whose path matches d, or nil.
func (m *Manager) Find(d *Descriptor) View {
	if d == nil {
		return nil
	}
	for _, v := range m.opened {
		if d.Same(v.Descriptor()) {
			return v
		}
	}
	return nil
}

// Views returns the open stack, back to front.
func (m *Manager) Views() []View {
	return slices.Clone(m.opened)
}

// Top returns the frontmost open view, or nil.
func (m *Manager) Top() View {
	if len(m.opened) == 0 {
		return nil
	}
	return m.opened[len(m.opened)-1]
}

// Cached returns the cache pool, oldest first.
func (m *Manager) Cached() []View {
	return m.cache.snapshot()
}

// Focused reports the focus flag last applied to v.
func (m *Manager) Focused(v View) bool {
	return m.focused[v]
}

// IsOpen reports whether v is on the open stack.
func (m *Manager) IsOpen(v View) bool {
	return m.indexOf(v) >= 0
}

func (m *Manager) indexOf(v View) int {
	if v == nil {
		return -1
	}
	return slices.Index(m.opened, v)
}

// WatchScenes subscribes the manager to host scene unloads.
func (m *Manager) WatchScenes(n UnloadNotifier) {
	if n == nil {
		return
	}
	n.OnUnload(m.HandleSceneUnload)
}

// HandleSceneUnload disposes every Scene-cached view. Sub-scene unloads are
// ignored, as are Shared-cached views.
func (m *Manager) HandleSceneUnload(token any, sub bool) {
	if sub {
		return
	}
	for _, v := range m.cache.purge(CacheScene) {
		m.dispose(v)
		m.trace.Purge(v.Descriptor())
	}
}

// dispose destroys v's panel and drops its subscriptions.
func (m *Manager) dispose(v View) {
	if p := v.Panel(); p != nil {
		p.SetActive(false)
		p.Dispose()
	}
	v.SetPanel(nil)
	v.Events().Clear()
	delete(m.focused, v)
}

func (m *Manager) guard(op string, fn func(), d *Descriptor) bool {
	return internal.Guard(m.logger, op, fn, "view", d.String())
}
