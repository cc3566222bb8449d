package module

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/internal"
)

// Constructor builds a module on first access.
type Constructor func() Module

type slot struct {
	ctor     Constructor
	instance Module
}

// Registry is an arena of modules keyed by name. A module is constructed
// and awakened exactly once, the first time it is requested.
type Registry struct {
	slots  map[string]*slot
	order  []string // construction order, used by StopAll
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		slots:  make(map[string]*slot),
		logger: internal.LoggerOr(logger),
	}
}

// Provide registers a lazy constructor under name.
func (r *Registry) Provide(name string, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("module %q: nil constructor", name)
	}
	if _, exists := r.slots[name]; exists {
		return fmt.Errorf("module %q: %w", name, internal.ErrDuplicateModule)
	}
	r.logger.Debug("Providing module.", "name", name)
	r.slots[name] = &slot{ctor: ctor}
	return nil
}

// Register adds an already constructed module and awakens it.
func (r *Registry) Register(m Module) error {
	if m == nil {
		return fmt.Errorf("module: nil module")
	}
	name := m.Name()
	if _, exists := r.slots[name]; exists {
		return fmt.Errorf("module %q: %w", name, internal.ErrDuplicateModule)
	}
	r.slots[name] = &slot{instance: m}
	r.awake(name, m)
	return nil
}

// Get returns the module registered under name, constructing and awakening
// it on first access.
func (r *Registry) Get(name string) (Module, error) {
	s, ok := r.slots[name]
	if !ok {
		return nil, fmt.Errorf("module %q: %w", name, internal.ErrUnknownModule)
	}
	if s.instance == nil {
		m := s.ctor()
		if m == nil {
			return nil, fmt.Errorf("module %q: constructor returned nil", name)
		}
		s.instance = m
		r.awake(name, m)
	}
	return s.instance, nil
}

// MustGet is Get for wiring code where a missing module is a programming error.
func (r *Registry) MustGet(name string) Module {
	m, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return m
}

func (r *Registry) awake(name string, m Module) {
	m.Awake()
	r.order = append(r.order, name)
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.slots))
	for name := range r.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Constructed reports whether the module under name has been built.
func (r *Registry) Constructed(name string) bool {
	s, ok := r.slots[name]
	return ok && s.instance != nil
}

// StopAll stops every constructed module in reverse construction order.
func (r *Registry) StopAll() {
	for i := len(r.order) - 1; i >= 0; i-- {
		Stop(r.slots[r.order[i]].instance)
	}
}

// Lookup returns the first constructed module, in construction order,
// whose dynamic type is T.
func Lookup[T Module](r *Registry) (T, bool) {
	for _, name := range r.order {
		if m, ok := r.slots[name].instance.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}
