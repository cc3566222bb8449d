// Package module provides named, long-lived life-cycle objects that own an
// event hub, and a registry that constructs them on first access.
//
// Life cycle: Awake (once, on first access) → Start → Reset → Stop.
// Stop clears the enabled flag and the owned hub; use the package-level
// Stop driver so that an overriding Reset also runs.
package module

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/event"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/internal"
)

// Module is the contract shared by modules and scenes.
type Module interface {
	Name() string
	Enabled() bool
	Events() *event.Hub
	Awake()
	Start(args ...any)
	Reset()
	Stop()
}

// Base implements Module. Embed it and override the hooks you need.
type Base struct {
	name    string
	enabled atomic.Bool
	hub     *event.Hub
	logger  *slog.Logger
}

// NewBase returns a Base with the given name and logger.
func NewBase(name string, logger *slog.Logger) Base {
	return Base{name: name, logger: logger}
}

// SetName replaces the module name. Intended for use before registration.
func (b *Base) SetName(name string) {
	b.name = name
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) Enabled() bool {
	return b.enabled.Load()
}

// Events returns the module's hub, creating it on first use.
func (b *Base) Events() *event.Hub {
	if b.hub == nil {
		b.hub = event.NewHub(b.logger)
	}
	return b.hub
}

// Logger returns a logger tagged with the module name.
func (b *Base) Logger() *slog.Logger {
	return internal.LoggerOr(b.logger).With("module", b.name)
}

func (b *Base) Awake() {
	b.Logger().Debug("Module has been awakened.")
}

// Start marks the module enabled.
func (b *Base) Start(args ...any) {
	b.enabled.Store(true)
	b.Logger().Debug("Module has been started.", "args", len(args))
}

func (b *Base) Reset() {
	b.Logger().Debug("Module has been reset.")
}

// Stop clears the enabled flag and every registration on the module hub.
func (b *Base) Stop() {
	b.enabled.Store(false)
	if b.hub != nil {
		b.hub.Clear()
	}
	b.Logger().Debug("Module has been stopped.")
}

// Stop runs the full stop sequence on m: Stop, then Reset.
func Stop(m Module) {
	if m == nil {
		return
	}
	m.Stop()
	m.Reset()
}
