package view

import "slices"

// Load returns an instance for d without opening it. Unless d allows
// multiple instances, an open instance is returned as is, or closed first
// when closeIfOpened is set. A cached instance is reused, deactivated,
// before the Loader is asked for a new one. Load failures are logged and
// yield nil.
func (m *Manager) Load(d *Descriptor, parent any, closeIfOpened bool) View {
	if d == nil {
		return nil
	}
	if err := d.Validate(); err != nil {
		m.logger.Error("Invalid view descriptor.", "view", d.String(), "error", err)
		return nil
	}

	if !d.Multiple {
		if v := m.Find(d); v != nil {
			if !closeIfOpened {
				return v
			}
			m.closeAt(m.indexOf(v))
		}
	}

	if v := m.reuse(d); v != nil {
		return v
	}

	v, p, err := m.loader.Load(d, parent)
	return m.stamp(d, v, p, err)
}

// Open loads d on top of the stack and opens it with args.
func (m *Manager) Open(d *Descriptor, args ...any) View {
	return m.OpenAt(d, Placement{}, args...)
}

// OpenAt loads d and opens it at the given placement. A failed load is
// logged, the stack is re-evaluated and nil is returned.
func (m *Manager) OpenAt(d *Descriptor, at Placement, args ...any) View {
	v := m.Load(d, at.Parent, true)
	if v == nil {
		m.logger.Error("Failed to open view: no instance.", "view", d.String())
		m.Resume()
		return nil
	}
	m.show(v, at, args)
	return v
}

// OpenAsync opens d, loading it through the Loader's asynchronous path when
// no open or cached instance exists. It returns false without loading when
// d is single-instance and already being loaded; done then receives nil.
// done always runs exactly once and may receive nil on failure.
func (m *Manager) OpenAsync(d *Descriptor, at Placement, done func(View), args ...any) bool {
	if d == nil {
		m.callback(d, done, nil)
		return false
	}
	if err := d.Validate(); err != nil {
		m.logger.Error("Invalid view descriptor.", "view", d.String(), "error", err)
		m.callback(d, done, nil)
		return false
	}

	if !d.Multiple {
		if v := m.Find(d); v != nil {
			m.closeAt(m.indexOf(v))
		}
	}

	if v := m.reuse(d); v != nil {
		m.show(v, at, args)
		m.callback(d, done, v)
		return true
	}

	if !d.Multiple && m.loader.IsLoading(d) {
		m.logger.Debug("View is already loading.", "view", d.String())
		m.callback(d, done, nil)
		return false
	}

	m.loader.LoadAsync(d, at.Parent, func(v View, p Panel, err error) {
		v = m.stamp(d, v, p, err)
		if v == nil {
			m.Resume()
		} else {
			m.show(v, at, args)
		}
		m.callback(d, done, v)
	})
	return true
}

// Close closes the topmost open instance of d. Nothing happens when none
// is open. With resume set the stack is re-evaluated afterwards.
func (m *Manager) Close(d *Descriptor, resume bool) {
	if d == nil {
		return
	}
	for i := len(m.opened) - 1; i >= 0; i-- {
		if d.Same(m.opened[i].Descriptor()) {
			m.closeAt(i)
			break
		}
	}
	if resume {
		m.Resume()
	}
}

// CloseView closes v if it is open.
func (m *Manager) CloseView(v View, resume bool) {
	if v == nil {
		return
	}
	if i := m.indexOf(v); i >= 0 {
		m.closeAt(i)
	}
	if resume {
		m.Resume()
	}
}

// CloseAll closes every open view whose path is not excluded, front to
// back, and re-evaluates the stack once at the end.
func (m *Manager) CloseAll(exclude ...*Descriptor) {
	views := slices.Clone(m.opened)
	for i := len(views) - 1; i >= 0; i-- {
		v := views[i]
		if slices.ContainsFunc(exclude, func(d *Descriptor) bool { return d.Same(v.Descriptor()) }) {
			continue
		}
		m.CloseView(v, false)
	}
	m.Resume()
}

func (m *Manager) reuse(d *Descriptor) View {
	v := m.cache.take(d.Path)
	if v == nil {
		return nil
	}
	if p := v.Panel(); p != nil && p.Active() {
		p.SetActive(false)
	}
	m.trace.Reuse(d)
	return v
}

// stamp binds a freshly loaded instance to its descriptor and panel and
// pre-focuses it so the first sweep sees a consistent state.
func (m *Manager) stamp(d *Descriptor, v View, p Panel, err error) View {
	switch {
	case err != nil:
		m.logger.Error("Failed to load view.", "view", d.String(), "error", err)
		return nil
	case v == nil || p == nil:
		m.logger.Error("Loader returned no view instance.", "view", d.String())
		return nil
	}
	v.SetDescriptor(d)
	v.SetPanel(p)
	if b, ok := v.(binder); ok {
		b.bind(m, v)
	}
	m.loader.SetFocus(v, true)
	return v
}

func (m *Manager) show(v View, at Placement, args []any) {
	if p := v.Panel(); p != nil {
		p.SetActive(true)
	}
	m.Sort(v, m.Find(at.Below), m.Find(at.Above))
	m.guard("view.OnOpen", func() { v.OnOpen(args...) }, v.Descriptor())
	m.trace.Open(v.Descriptor(), m.indexOf(v))
}

func (m *Manager) callback(d *Descriptor, done func(View), v View) {
	if done == nil {
		return
	}
	m.guard("view.OpenAsync callback", func() { done(v) }, d)
}

// closeAt removes the instance at index i, retains it per its cache
// policy and hands the deferred cleanup to its OnClose hook.
func (m *Manager) closeAt(i int) {
	if i < 0 || i >= len(m.opened) {
		return
	}
	v := m.opened[i]
	m.opened = slices.Delete(m.opened, i, i+1)

	d := v.Descriptor()
	policy := CacheNone
	if d != nil {
		policy = d.Cache
	}
	if policy.Retained() {
		if evicted := m.cache.add(v); evicted != nil {
			m.dispose(evicted)
			m.trace.Evict(evicted.Descriptor())
		}
		if p := v.Panel(); policy == CacheShared && p != nil {
			p.Persist()
		}
	}
	m.trace.Close(d, policy.Retained())

	finished := false
	done := func() {
		if finished {
			return
		}
		finished = true
		if m.IsOpen(v) {
			// reopened before the close completed
			return
		}
		delete(m.focused, v)
		p := v.Panel()
		if p != nil {
			p.SetActive(false)
		}
		v.Events().Clear()
		if policy == CacheNone {
			if p != nil {
				p.Dispose()
			}
			v.SetPanel(nil)
		}
	}
	if !m.guard("view.OnClose", func() { v.OnClose(done) }, d) {
		done()
	}
}
