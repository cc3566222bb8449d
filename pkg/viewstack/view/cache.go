package view

import "slices"

// pool holds closed views kept for reuse, oldest first. A non-zero maxSize
// bounds it; adding past the bound evicts the oldest entry.
type pool struct {
	views   []View
	maxSize int
}

func newPool(maxSize int) *pool {
	return &pool{
		views:   make([]View, 0, max(maxSize, 0)),
		maxSize: maxSize,
	}
}

// add appends v and returns the entry evicted to make room, if any.
func (c *pool) add(v View) (evicted View) {
	if c.contains(v) {
		return nil
	}
	if c.maxSize > 0 && len(c.views) >= c.maxSize {
		evicted = c.evictOldest()
	}
	c.views = append(c.views, v)
	return evicted
}

// take removes and returns the oldest cached view for path.
func (c *pool) take(path string) View {
	for i, v := range c.views {
		if d := v.Descriptor(); d != nil && d.Path == path {
			c.views = slices.Delete(c.views, i, i+1)
			return v
		}
	}
	return nil
}

func (c *pool) remove(v View) bool {
	for i, cached := range c.views {
		if cached == v {
			c.views = slices.Delete(c.views, i, i+1)
			return true
		}
	}
	return false
}

func (c *pool) contains(v View) bool {
	return slices.Contains(c.views, v)
}

func (c *pool) evictOldest() View {
	if len(c.views) == 0 {
		return nil
	}
	oldest := c.views[0]
	c.views = slices.Delete(c.views, 0, 1)
	return oldest
}

// purge removes and returns every entry with the given cache policy.
func (c *pool) purge(policy CachePolicy) []View {
	var purged []View
	kept := c.views[:0]
	for _, v := range c.views {
		if d := v.Descriptor(); d != nil && d.Cache == policy {
			purged = append(purged, v)
			continue
		}
		kept = append(kept, v)
	}
	clear(c.views[len(kept):])
	c.views = kept
	return purged
}

func (c *pool) snapshot() []View {
	return slices.Clone(c.views)
}

func (c *pool) size() int {
	return len(c.views)
}
