package view

import (
	"errors"
	"fmt"
	"strings"
)

// FocusPolicy decides how a view takes part in the focus sweep.
type FocusPolicy int

const (
	// Dynamic views hold focus only while nothing above them has claimed it.
	Dynamic FocusPolicy = iota
	// Static views are always focused, whatever is stacked above them.
	Static
	// Silent views never hold focus.
	Silent
)

func (f FocusPolicy) String() string {
	switch f {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	case Silent:
		return "silent"
	default:
		return fmt.Sprintf("FocusPolicy(%d)", int(f))
	}
}

// MarshalText encodes the policy by name.
func (f FocusPolicy) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText accepts dynamic, static or silent, case-insensitively.
// Empty text decodes to Dynamic.
func (f *FocusPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "dynamic":
		*f = Dynamic
	case "static":
		*f = Static
	case "silent":
		*f = Silent
	default:
		return fmt.Errorf("unknown focus policy %q", string(text))
	}
	return nil
}

// CachePolicy decides what happens to a view when it closes.
type CachePolicy int

const (
	// CacheScene keeps the view until the owning scene unloads.
	CacheScene CachePolicy = iota
	// CacheShared keeps the view across scene unloads.
	CacheShared
	// CacheNone disposes the view on close.
	CacheNone
)

func (c CachePolicy) String() string {
	switch c {
	case CacheScene:
		return "scene"
	case CacheShared:
		return "shared"
	case CacheNone:
		return "none"
	default:
		return fmt.Sprintf("CachePolicy(%d)", int(c))
	}
}

// MarshalText encodes the policy by name.
func (c CachePolicy) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts scene, shared or none, case-insensitively.
// Empty text decodes to CacheScene.
func (c *CachePolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "scene":
		*c = CacheScene
	case "shared":
		*c = CacheShared
	case "none":
		*c = CacheNone
	default:
		return fmt.Errorf("unknown cache policy %q", string(text))
	}
	return nil
}

// Retained reports whether closed views go to the cache pool.
func (c CachePolicy) Retained() bool {
	return c == CacheScene || c == CacheShared
}

// Descriptor is the immutable configuration of a loadable view. Path is the
// load key and the identity used by Find, Close and CloseAll.
type Descriptor struct {
	Path       string
	FixedOrder int // 0 assigns the order from the stack position
	Focus      FocusPolicy
	Cache      CachePolicy
	Multiple   bool
}

// Option configures a Descriptor at construction.
type Option func(*Descriptor)

// WithFixedOrder pins the render order. Zero keeps automatic ordering.
func WithFixedOrder(order int) Option {
	return func(d *Descriptor) { d.FixedOrder = order }
}

// WithFocus sets the focus policy.
func WithFocus(f FocusPolicy) Option {
	return func(d *Descriptor) { d.Focus = f }
}

// WithCache sets the close-time cache policy.
func WithCache(c CachePolicy) Option {
	return func(d *Descriptor) { d.Cache = c }
}

// Multiple allows more than one open instance per path.
func Multiple() Option {
	return func(d *Descriptor) { d.Multiple = true }
}

// NewDescriptor creates a descriptor for path. Defaults: automatic order,
// Dynamic focus, Scene cache, single instance.
func NewDescriptor(path string, opts ...Option) *Descriptor {
	d := &Descriptor{Path: path}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Validate reports configuration mistakes.
func (d *Descriptor) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Path) == "" {
		errs = append(errs, errors.New("path is required"))
	}
	if d.FixedOrder < 0 {
		errs = append(errs, fmt.Errorf("fixed order must be >= 0 (got %d)", d.FixedOrder))
	}
	if d.Focus < Dynamic || d.Focus > Silent {
		errs = append(errs, fmt.Errorf("invalid focus policy %d", int(d.Focus)))
	}
	if d.Cache < CacheScene || d.Cache > CacheNone {
		errs = append(errs, fmt.Errorf("invalid cache policy %d", int(d.Cache)))
	}
	return errors.Join(errs...)
}

// Same reports whether two descriptors name the same view.
func (d *Descriptor) Same(other *Descriptor) bool {
	return d != nil && other != nil && d.Path == other.Path
}

func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.Path
}
