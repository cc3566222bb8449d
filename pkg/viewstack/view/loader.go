package view

import "github.com/BrandonKowalski/viewstack/pkg/viewstack/event"

// Panel is the visual handle a Loader attaches to a view.
type Panel interface {
	Active() bool
	SetActive(active bool)
	// Alive is false once the panel has been disposed, by the manager or
	// by the host.
	Alive() bool
	Dispose()
	// Persist marks the panel to survive scene unloads.
	Persist()
}

// Loader materializes views and applies render order and focus. It is the
// only rendering-aware collaborator.
type Loader interface {
	Load(d *Descriptor, parent any) (View, Panel, error)
	// LoadAsync must eventually call done exactly once, on the host loop.
	LoadAsync(d *Descriptor, parent any, done func(View, Panel, error))
	IsLoading(d *Descriptor) bool
	SetOrder(v View, order int)
	SetFocus(v View, focus bool)
}

// UnloadNotifier delivers host scene unloads. Sub-scene unloads carry sub=true.
type UnloadNotifier interface {
	OnUnload(fn func(token any, sub bool)) *event.Listener
}

// Placement positions an opening view relative to open views and passes
// the parent through to the Loader.
type Placement struct {
	Below  *Descriptor // insert directly beneath the open view with this path
	Above  *Descriptor // otherwise directly above it
	Parent any
}
