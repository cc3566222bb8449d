package view

import (
	"slices"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

// Sort inserts v beneath below, or above above when below is not open, or
// at the top otherwise, then recomputes render order and focus for the
// whole stack in one sweep from the top down. A nil v only re-evaluates.
//
// A view already on the stack is moved; a cached view leaves the pool.
func (m *Manager) Sort(v, below, above View) {
	if v != nil {
		m.insert(v, below, above)
	}

	rq := len(m.opened) - 1
	claimed := false
	for i := len(m.opened) - 1; i >= 0; i-- {
		cur := m.opened[i]
		d := cur.Descriptor()
		if d == nil || !alive(cur) {
			m.logger.Error("Disposed view purged from stack.", "view", d.String())
			m.opened = slices.Delete(m.opened, i, i+1)
			delete(m.focused, cur)
			continue
		}

		order := d.FixedOrder
		if order <= 0 {
			order = constants.OrderBase + (rq-1)*constants.OrderStep
			rq--
		}
		m.loader.SetOrder(cur, order)
		m.trace.Order(d, order)

		switch {
		case d.Focus == Silent:
			m.blur(cur)
		case d.Focus == Static || !claimed:
			m.focus(cur)
			claimed = true
		default:
			m.blur(cur)
		}
	}
}

// Resume re-evaluates order and focus without inserting anything.
func (m *Manager) Resume() {
	m.Sort(nil, nil, nil)
}

// Focus forces focus onto the lowest open view matching d, without a sweep.
func (m *Manager) Focus(d *Descriptor) {
	if v := m.Find(d); v != nil {
		m.forceFocus(v)
	}
}

// FocusView forces focus onto v if it is open.
func (m *Manager) FocusView(v View) {
	if m.IsOpen(v) {
		m.forceFocus(v)
	}
}

func (m *Manager) forceFocus(v View) {
	m.focused[v] = true
	m.loader.SetFocus(v, true)
	m.guard("view.OnFocus", v.OnFocus, v.Descriptor())
	m.trace.Focus(v.Descriptor())
}

func (m *Manager) insert(v, below, above View) {
	if i := m.indexOf(v); i >= 0 {
		m.opened = slices.Delete(m.opened, i, i+1)
	}
	m.cache.remove(v)

	if i := m.indexOf(below); below != nil && i >= 0 {
		m.opened = slices.Insert(m.opened, i, v)
		return
	}
	if i := m.indexOf(above); above != nil && i >= 0 {
		m.opened = slices.Insert(m.opened, i+1, v)
		return
	}
	m.opened = append(m.opened, v)
}

func (m *Manager) focus(v View) {
	if m.focused[v] {
		return
	}
	m.focused[v] = true
	m.loader.SetFocus(v, true)
	m.guard("view.OnFocus", v.OnFocus, v.Descriptor())
	m.trace.Focus(v.Descriptor())
}

func (m *Manager) blur(v View) {
	if !m.focused[v] {
		return
	}
	m.focused[v] = false
	m.loader.SetFocus(v, false)
	m.guard("view.OnBlur", v.OnBlur, v.Descriptor())
	m.trace.Blur(v.Descriptor())
}

func alive(v View) bool {
	p := v.Panel()
	return p != nil && p.Alive()
}
