package scene

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/event"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/internal"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/module"
)

// Event ids notified on the scheduler hub.
const (
	// EventSwap fires after a new scene has started. Args: current, last.
	EventSwap = iota + 1
	// EventUnload fires after the outgoing scene stopped. Args: scene, sub.
	EventUnload
)

// ProxyFunc coerces an arbitrary target into a Scene.
type ProxyFunc func(target any) (Scene, error)

type transition struct {
	next Scene
	args []any
}

// Scheduler owns the current scene and a single pending transition slot.
// Goto may be called any number of times between ticks; the last call wins.
type Scheduler struct {
	current Scene
	last    Scene
	pending chan transition
	proxy   ProxyFunc
	hub     *event.Hub
	logger  *slog.Logger
}

// NewScheduler creates a scheduler with no current scene.
func NewScheduler(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pending: make(chan transition, 1),
		hub:     event.NewHub(logger),
		logger:  internal.LoggerOr(logger),
	}
}

// SetProxy installs the coercion used by GotoAny.
func (s *Scheduler) SetProxy(fn ProxyFunc) {
	s.proxy = fn
}

// Goto schedules next to become current on the following tick, replacing
// any transition that has not run yet.
func (s *Scheduler) Goto(next Scene, args ...any) {
	if next == nil {
		return
	}
	t := transition{next: next, args: args}
	for {
		select {
		case s.pending <- t:
			return
		default:
		}
		select {
		case dropped := <-s.pending:
			s.logger.Debug("Scene transition replaced.", "dropped", dropped.next.Name(), "next", next.Name())
		default:
		}
	}
}

// GotoAny schedules a transition to target. A Scene is used directly;
// anything else goes through the proxy. A missing proxy is a configuration
// error and is returned immediately.
func (s *Scheduler) GotoAny(target any, args ...any) error {
	if sc, ok := target.(Scene); ok {
		s.Goto(sc, args...)
		return nil
	}
	if s.proxy == nil {
		return internal.NewConfigurationError("scene.GotoAny", internal.ErrNoProxy)
	}
	sc, err := s.proxy(target)
	if err != nil {
		return err
	}
	s.Goto(sc, args...)
	return nil
}

// Pending reports whether a transition is waiting for the next tick.
func (s *Scheduler) Pending() bool {
	return len(s.pending) > 0
}

// Current returns the active scene, or nil before the first swap.
func (s *Scheduler) Current() Scene {
	return s.current
}

// Last returns the scene that was current before the latest swap.
func (s *Scheduler) Last() Scene {
	return s.last
}

// Events returns the hub carrying EventSwap and EventUnload.
func (s *Scheduler) Events() *event.Hub {
	return s.hub
}

// OnUnload subscribes fn to scene unload notifications.
func (s *Scheduler) OnUnload(fn func(token any, sub bool)) *event.Listener {
	l := event.Listen2(func(token Scene, sub bool) { fn(token, sub) })
	s.hub.Reg(EventUnload, l, false)
	return l
}

// Tick updates the current scene, then performs a pending swap: the old
// scene is reset and stopped, the new one started with the stored args.
func (s *Scheduler) Tick() {
	if s.current != nil {
		internal.Guard(s.logger, "scene.Update", s.current.Update, "scene", s.current.Name())
	}

	var t transition
	select {
	case t = <-s.pending:
	default:
		return
	}

	outgoing := s.current
	if outgoing != nil {
		outgoing.Reset()
		module.Stop(outgoing)
		s.hub.Notify(EventUnload, outgoing, false)
	}

	s.last = outgoing
	s.current = t.next
	s.current.Start(t.args...)
	s.logger.Info("Scene swapped.", "current", s.current.Name(), "last", nameOf(outgoing))
	s.hub.Notify(EventSwap, s.current, s.last)
}

// Run ticks every interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

func nameOf(sc Scene) string {
	if sc == nil {
		return ""
	}
	return sc.Name()
}
