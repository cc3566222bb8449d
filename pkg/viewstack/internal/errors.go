package internal

import (
	"errors"
	"fmt"
)

// Sentinel errors for missing collaborators and registry misuse.
var (
	// ErrNoLoader indicates the view manager was created without a Loader.
	ErrNoLoader = errors.New("no loader configured")

	// ErrNoProxy indicates a non-scene target was passed to the scheduler
	// without a proxy function to coerce it.
	ErrNoProxy = errors.New("no scene proxy configured")

	// ErrDuplicateModule indicates a module name was registered twice.
	ErrDuplicateModule = errors.New("module already registered")

	// ErrUnknownModule indicates a lookup for a module that was never provided.
	ErrUnknownModule = errors.New("module not registered")
)

// ConfigurationError is raised synchronously when a required collaborator
// is missing at a call site. It is never deferred or logged-and-ignored.
type ConfigurationError struct {
	Op  string // Operation that failed (e.g., "view.New", "scene.GotoAny")
	Err error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("viewstack: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("viewstack: %s", e.Op)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
