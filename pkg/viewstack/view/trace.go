package view

import "log/slog"

// tracer emits the manager's debug trail.
type tracer struct {
	logger *slog.Logger
}

func (t tracer) Open(d *Descriptor, order int) {
	t.logger.Debug("View opened.", "view", d.String(), "stack", order)
}

func (t tracer) Close(d *Descriptor, cached bool) {
	t.logger.Debug("View closed.", "view", d.String(), "cached", cached)
}

func (t tracer) Order(d *Descriptor, order int) {
	t.logger.Debug("View order assigned.", "view", d.String(), "order", order)
}

func (t tracer) Focus(d *Descriptor) {
	t.logger.Debug("View focused.", "view", d.String())
}

func (t tracer) Blur(d *Descriptor) {
	t.logger.Debug("View blurred.", "view", d.String())
}

func (t tracer) Reuse(d *Descriptor) {
	t.logger.Debug("Cached view reused.", "view", d.String())
}

func (t tracer) Evict(d *Descriptor) {
	t.logger.Info("Cached view evicted.", "view", d.String())
}

func (t tracer) Purge(d *Descriptor) {
	t.logger.Info("Scene-cached view purged.", "view", d.String(), "cache", CacheScene.String())
}
