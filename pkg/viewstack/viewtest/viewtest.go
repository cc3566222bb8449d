// Package viewtest provides deterministic in-memory doubles for the view
// Loader, Panel and View contracts. Asynchronous loads are queued and only
// complete when the test calls Complete, which keeps every test on a single
// goroutine the way a host loop would run them.
package viewtest

import (
	"fmt"
	"slices"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/view"
)

// Panel is an in-memory view.Panel.
type Panel struct {
	active    bool
	disposed  bool
	persisted bool
}

// NewPanel returns an inactive, live panel.
func NewPanel() *Panel {
	return &Panel{}
}

func (p *Panel) Active() bool          { return p.active && !p.disposed }
func (p *Panel) SetActive(active bool) { p.active = active }
func (p *Panel) Alive() bool           { return !p.disposed }
func (p *Panel) Persist()              { p.persisted = true }
func (p *Panel) Persisted() bool       { return p.persisted }

func (p *Panel) Dispose() {
	p.disposed = true
	p.active = false
}

// View records every hook call by name.
type View struct {
	view.Base

	Calls    []string
	OpenArgs []any

	// CloseFunc replaces the immediate done call in OnClose, for example
	// to hold done until a test releases it.
	CloseFunc func(done func())
	// PanicOn makes the named hook panic after it is recorded.
	PanicOn string
}

func (v *View) record(name string) {
	v.Calls = append(v.Calls, name)
	if v.PanicOn == name {
		panic(fmt.Sprintf("viewtest: %s fault", name))
	}
}

// Count reports how many times the named hook ran.
func (v *View) Count(name string) int {
	n := 0
	for _, c := range v.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (v *View) OnOpen(args ...any) {
	v.OpenArgs = args
	v.record("open")
}

func (v *View) OnFocus() { v.record("focus") }
func (v *View) OnBlur()  { v.record("blur") }

func (v *View) OnClose(done func()) {
	v.record("close")
	if v.CloseFunc != nil {
		v.CloseFunc(done)
		return
	}
	done()
}

type pendingLoad struct {
	d    *view.Descriptor
	done func(view.View, view.Panel, error)
}

// Loader is an in-memory view.Loader.
type Loader struct {
	// Factory builds the instance for a descriptor. Nil builds a *View.
	Factory func(d *view.Descriptor) view.View
	// Fail maps a path to the error its loads return.
	Fail map[string]error

	Loads      atomic.Int64
	AsyncLoads atomic.Int64
	FocusCalls atomic.Int64

	created []view.View
	orders  map[view.View]int
	focus   map[view.View]bool
	pending []pendingLoad
	loading map[string]int
}

// NewLoader returns a loader that builds *View instances.
func NewLoader() *Loader {
	return &Loader{
		Fail:    make(map[string]error),
		orders:  make(map[view.View]int),
		focus:   make(map[view.View]bool),
		loading: make(map[string]int),
	}
}

func (l *Loader) build(d *view.Descriptor) (view.View, view.Panel, error) {
	if err := l.Fail[d.Path]; err != nil {
		return nil, nil, err
	}
	var v view.View
	if l.Factory != nil {
		v = l.Factory(d)
	} else {
		v = &View{}
	}
	l.created = append(l.created, v)
	return v, NewPanel(), nil
}

func (l *Loader) Load(d *view.Descriptor, _ any) (view.View, view.Panel, error) {
	l.Loads.Inc()
	return l.build(d)
}

func (l *Loader) LoadAsync(d *view.Descriptor, _ any, done func(view.View, view.Panel, error)) {
	l.AsyncLoads.Inc()
	l.loading[d.Path]++
	l.pending = append(l.pending, pendingLoad{d: d, done: done})
}

// Complete finishes every queued asynchronous load in request order and
// returns how many ran.
func (l *Loader) Complete() int {
	n := 0
	for len(l.pending) > 0 {
		next := l.pending[0]
		l.pending = slices.Delete(l.pending, 0, 1)
		l.loading[next.d.Path]--
		v, p, err := l.build(next.d)
		next.done(v, p, err)
		n++
	}
	return n
}

// Pending reports queued asynchronous loads.
func (l *Loader) Pending() int {
	return len(l.pending)
}

func (l *Loader) IsLoading(d *view.Descriptor) bool {
	return l.loading[d.Path] > 0
}

func (l *Loader) SetOrder(v view.View, order int) {
	l.orders[v] = order
}

func (l *Loader) SetFocus(v view.View, focus bool) {
	l.FocusCalls.Inc()
	l.focus[v] = focus
}

// Order returns the last render order pushed for v.
func (l *Loader) Order(v view.View) int {
	return l.orders[v]
}

// Focus returns the last focus flag pushed for v.
func (l *Loader) Focus(v view.View) bool {
	return l.focus[v]
}

// Created returns every instance built so far, oldest first.
func (l *Loader) Created() []view.View {
	return slices.Clone(l.created)
}
