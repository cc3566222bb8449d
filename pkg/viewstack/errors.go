package viewstack

import (
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/internal"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/manifest"
)

// Sentinel errors for missing collaborators, registry misuse and bad
// manifests. Not-found conditions are never errors.
var (
	// ErrNoLoader indicates Init or view.New was called without a Loader.
	ErrNoLoader = internal.ErrNoLoader

	// ErrNoProxy indicates a non-scene Goto target without a scene proxy.
	ErrNoProxy = internal.ErrNoProxy

	ErrDuplicateModule = internal.ErrDuplicateModule
	ErrUnknownModule   = internal.ErrUnknownModule

	// ErrManifest wraps every manifest parse and validation failure.
	ErrManifest = manifest.ErrManifest
)

// ConfigurationError represents a missing required collaborator. It is
// returned synchronously from the call that needed the collaborator.
type ConfigurationError = internal.ConfigurationError

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	return internal.IsConfigurationError(err)
}
