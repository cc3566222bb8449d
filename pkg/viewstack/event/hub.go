package event

import (
	"log/slog"
	"slices"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/internal"
)

// Bus is the contract every event context satisfies.
type Bus interface {
	// Reg adds l under id. It fails only for a nil listener.
	Reg(id int, l *Listener, once bool) bool
	// Unreg removes one registration of l under id, or every registration
	// under id when l is nil. It reports whether anything was removed.
	Unreg(id int, l *Listener) bool
	// Notify invokes the listeners registered under id.
	Notify(id int, args ...any)
	// Clear drops every registration.
	Clear()
}

type entry struct {
	listener *Listener
	once     bool
	removed  bool
}

// Hub is the leaf Bus implementation. It is not safe for concurrent use;
// all calls are expected on the host's update loop.
type Hub struct {
	entries map[int][]*entry
	logger  *slog.Logger
}

// NewHub creates an empty hub. A nil logger uses the shared logger.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		entries: make(map[int][]*entry),
		logger:  logger,
	}
}

// Reg appends l under id. Each call adds an independent registration.
func (h *Hub) Reg(id int, l *Listener, once bool) bool {
	if l == nil {
		return false
	}
	if h.entries == nil {
		h.entries = make(map[int][]*entry)
	}
	h.entries[id] = append(h.entries[id], &entry{listener: l, once: once})
	return true
}

// Unreg removes the first registration of l under id, or all of them
// when l is nil.
func (h *Hub) Unreg(id int, l *Listener) bool {
	list, ok := h.entries[id]
	if !ok {
		return false
	}
	if l == nil {
		for _, e := range list {
			e.removed = true
		}
		delete(h.entries, id)
		return len(list) > 0
	}
	for i, e := range list {
		if e.listener == l {
			h.remove(id, i)
			return true
		}
	}
	return false
}

func (h *Hub) remove(id, i int) {
	list := h.entries[id]
	list[i].removed = true
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(h.entries, id)
		return
	}
	h.entries[id] = list
}

// Notify calls every listener registered under id in registration order.
// Once-listeners are removed before they run. Listeners removed while the
// notification is in flight are skipped. A panicking listener is logged and
// the remaining listeners still run.
func (h *Hub) Notify(id int, args ...any) {
	list := h.entries[id]
	if len(list) == 0 {
		return
	}
	snapshot := slices.Clone(list)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		if e.once {
			h.detach(id, e)
		}
		internal.Guard(h.logger, "event.Notify", func() { e.listener.invoke(args) }, "event", id)
	}
}

func (h *Hub) detach(id int, target *entry) {
	for i, e := range h.entries[id] {
		if e == target {
			h.remove(id, i)
			return
		}
	}
}

// Clear drops every registration. Listeners of an in-flight Notify that
// have not run yet are skipped.
func (h *Hub) Clear() {
	for _, list := range h.entries {
		for _, e := range list {
			e.removed = true
		}
	}
	h.entries = make(map[int][]*entry)
}

// Len returns the number of live registrations under id.
func (h *Hub) Len(id int) int {
	return len(h.entries[id])
}
