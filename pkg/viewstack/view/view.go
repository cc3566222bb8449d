package view

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/event"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/internal"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/module"
)

// View is a loaded view instance managed by the Manager. Implementations
// must be pointer types; the manager keys its focus map by View.
type View interface {
	Descriptor() *Descriptor
	SetDescriptor(d *Descriptor)
	Panel() Panel
	SetPanel(p Panel)
	// Events returns the proxy holding the view's subscriptions. The
	// manager clears it when the view is deactivated.
	Events() *event.Proxy

	OnOpen(args ...any)
	OnFocus()
	OnBlur()
	// OnClose must call done exactly once, immediately or after a close
	// animation.
	OnClose(done func())
}

// Base is an embeddable View implementation with no-op hooks.
type Base struct {
	id         uuid.UUID
	descriptor *Descriptor
	panel      Panel
	proxy      *event.Proxy
	module     module.Module
	logger     *slog.Logger

	manager *Manager
	self    View
}

// binder is satisfied by views embedding Base. The manager binds every
// instance it loads so the view can close or focus itself.
type binder interface {
	bind(m *Manager, self View)
}

func (b *Base) bind(m *Manager, self View) {
	b.manager = m
	b.self = self
	if b.logger == nil {
		b.SetLogger(m.logger)
	}
}

// Manager returns the manager that loaded the view, or nil.
func (b *Base) Manager() *Manager {
	return b.manager
}

// Close closes the view through its manager. It does nothing for a view
// no manager has loaded.
func (b *Base) Close(resume bool) {
	if b.manager != nil {
		b.manager.CloseView(b.self, resume)
	}
}

// Focus forces focus onto the view if it is open.
func (b *Base) Focus() {
	if b.manager != nil {
		b.manager.FocusView(b.self)
	}
}

// Attach scopes the view's event proxy to m's hub. It must be called before
// the first call to Events.
func (b *Base) Attach(m module.Module) {
	b.module = m
}

// Module returns the attached module, if any.
func (b *Base) Module() module.Module {
	return b.module
}

// SetLogger replaces the logger used by Logger and the event proxy.
func (b *Base) SetLogger(l *slog.Logger) {
	b.logger = l
}

// ID returns a stable identity for log correlation.
func (b *Base) ID() uuid.UUID {
	if b.id == uuid.Nil {
		b.id = uuid.New()
	}
	return b.id
}

func (b *Base) Descriptor() *Descriptor     { return b.descriptor }
func (b *Base) SetDescriptor(d *Descriptor) { b.descriptor = d }
func (b *Base) Panel() Panel                { return b.panel }
func (b *Base) SetPanel(p Panel)            { b.panel = p }

func (b *Base) Events() *event.Proxy {
	if b.proxy == nil {
		var ctx event.Bus
		if b.module != nil {
			ctx = b.module.Events()
		}
		b.proxy = event.NewProxy(ctx, b.logger)
	}
	return b.proxy
}

// Logger returns a logger tagged with the view path, id and module.
func (b *Base) Logger() *slog.Logger {
	attrs := []any{"view", b.descriptor.String(), "id", b.ID().String()}
	if b.module != nil {
		attrs = append(attrs, "module", b.module.Name())
	}
	return internal.LoggerOr(b.logger).With(attrs...)
}

func (b *Base) OnOpen(args ...any) {}
func (b *Base) OnFocus()           {}
func (b *Base) OnBlur()            {}

func (b *Base) OnClose(done func()) {
	done()
}
