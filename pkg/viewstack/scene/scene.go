// Package scene provides scenes, modules with a per-tick Update, and the
// Scheduler that swaps the current scene on the host's tick.
package scene

import (
	"log/slog"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/module"
)

// Scene is a module that is updated once per tick while current.
type Scene interface {
	module.Module
	Update()
}

// Base implements Scene with a no-op Update.
type Base struct {
	module.Base
}

// NewBase returns a Base with the given name and logger.
func NewBase(name string, logger *slog.Logger) Base {
	return Base{Base: module.NewBase(name, logger)}
}

func (b *Base) Update() {}
