package event

import (
	"log/slog"
	"slices"
)

// binding records one registration. listener is the caller's key; handle
// is the proxy-owned Listener actually placed on context, so cleanup never
// touches another owner's registration of the same listener.
type binding struct {
	listener *Listener
	handle   *Listener
	context  Bus
}

// Proxy registers listeners on any Bus and remembers each registration so
// that Unreg and Clear can remove them from the bus they were placed on.
// Notification always goes through the real bus; the bookkeeping exists
// only for cleanup.
type Proxy struct {
	context  Bus
	bindings map[int][]binding
}

// NewProxy creates a proxy whose default context is ctx, or a private Hub
// when ctx is nil.
func NewProxy(ctx Bus, logger *slog.Logger) *Proxy {
	if ctx == nil {
		ctx = NewHub(logger)
	}
	return &Proxy{
		context:  ctx,
		bindings: make(map[int][]binding),
	}
}

// Context returns the bus used when a call passes a nil context.
func (p *Proxy) Context() Bus {
	return p.context
}

// Reg registers l under id on ctx (the default context when nil) and tracks
// the registration. Registering the same listener twice yields two
// independent registrations. A once registration forgets its record when
// it fires.
func (p *Proxy) Reg(id int, l *Listener, ctx Bus, once bool) bool {
	if l == nil {
		return false
	}
	if ctx == nil {
		ctx = p.context
	}
	handle := &Listener{}
	handle.fn = func(args ...any) {
		if once {
			p.forget(id, handle)
		}
		l.invoke(args)
	}
	if !ctx.Reg(id, handle, once) {
		return false
	}
	p.bindings[id] = append(p.bindings[id], binding{listener: l, handle: handle, context: ctx})
	return true
}

func (p *Proxy) forget(id int, handle *Listener) {
	list := p.bindings[id]
	for i, b := range list {
		if b.handle == handle {
			list = slices.Delete(list, i, i+1)
			break
		}
	}
	if len(list) == 0 {
		delete(p.bindings, id)
		return
	}
	p.bindings[id] = list
}

// Unreg removes tracked registrations under id: only those of l when l is
// non-nil, otherwise all of them regardless of context. Local records are
// dropped even if the bus no longer knows the registration. It reports
// whether at least one bus-level unregistration succeeded.
func (p *Proxy) Unreg(id int, l *Listener) bool {
	list, ok := p.bindings[id]
	if !ok {
		return false
	}

	ret := false
	kept := list[:0]
	for _, b := range list {
		if l != nil && b.listener != l {
			kept = append(kept, b)
			continue
		}
		if b.context.Unreg(id, b.handle) {
			ret = true
		}
	}

	if len(kept) == 0 {
		delete(p.bindings, id)
	} else {
		p.bindings[id] = kept
	}
	return ret
}

// Notify delegates to ctx, or the default context when ctx is nil.
func (p *Proxy) Notify(id int, ctx Bus, args ...any) {
	if ctx == nil {
		ctx = p.context
	}
	ctx.Notify(id, args...)
}

// Clear unregisters every tracked registration and forgets them. It is safe
// to call repeatedly.
func (p *Proxy) Clear() {
	for id, list := range p.bindings {
		for _, b := range list {
			b.context.Unreg(id, b.handle)
		}
	}
	p.bindings = make(map[int][]binding)
}

// Len returns the number of tracked registrations across all ids.
func (p *Proxy) Len() int {
	n := 0
	for _, list := range p.bindings {
		n += len(list)
	}
	return n
}
