// Package viewstack is a view stack and focus engine for hosts that run a
// single update loop: games, kiosk UIs and terminal front ends.
//
// Init wires the pieces together. The view manager keeps the open stack,
// assigns render order and focus, and retains closed views according to
// their cache policy. The scene scheduler swaps scenes on the host tick and
// tells the view manager when a scene unloads so scene-cached views are
// disposed. Modules are named long-lived objects that own an event hub.
// An optional manifest declares view descriptors by name.
//
// Rendering stays with the host: it supplies a view.Loader that builds
// instances and applies order and focus.
package viewstack

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/internal"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/manifest"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/module"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/scene"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/view"
)

// Options configures Init.
type Options struct {
	Loader       view.Loader  // Required. Builds view instances and applies order and focus
	Logger       *slog.Logger // Replaces the shared JSON logger for every component
	LogPath      string       // Full path for log file including filename (creates parent directories)
	LogToFile    bool         // Also log to viewstack.log in the working directory when LogPath is empty
	LogLevel     string       // "debug", "info", "warn" or "error"; overridden by VIEWSTACK_LOG_LEVEL
	MaxCached    int          // Upper bound on retained closed views, 0 for no bound
	ManifestPath string       // Optional .toml or .hcl view manifest
}

// Engine bundles the view manager, module registry, scene scheduler and
// view catalog created by Init.
type Engine struct {
	Views   *view.Manager
	Modules *module.Registry
	Scenes  *scene.Scheduler
	Catalog *manifest.Catalog

	logger *slog.Logger
}

// Init configures logging and builds an Engine. A missing Loader is a
// ConfigurationError. If VIEWSTACK_DEBUG is set, or ENVIRONMENT=DEV,
// debug logging is forced.
func Init(options Options) (*Engine, error) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	} else if options.LogToFile {
		internal.EnableFileLogging()
	}

	if os.Getenv(constants.DebugEnvVar) != "" || constants.IsDevMode() {
		internal.SetLogLevel(slog.LevelDebug)
	} else if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
		internal.SetRawLogLevel(raw)
	} else if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	logger := internal.LoggerOr(options.Logger)

	views, err := view.New(options.Loader, view.Options{Logger: logger, MaxCached: options.MaxCached})
	if err != nil {
		return nil, err
	}

	scenes := scene.NewScheduler(logger)
	views.WatchScenes(scenes)

	catalog := manifest.New()
	if options.ManifestPath != "" {
		catalog, err = manifest.Load(options.ManifestPath)
		if err != nil {
			return nil, fmt.Errorf("load view manifest: %w", err)
		}
		logger.Info("View manifest loaded.", "path", options.ManifestPath, "views", catalog.Len())
	}

	return &Engine{
		Views:   views,
		Modules: module.NewRegistry(logger),
		Scenes:  scenes,
		Catalog: catalog,
		logger:  logger,
	}, nil
}

// Open opens the catalog view registered under name. An unknown name is
// logged and yields nil.
func (e *Engine) Open(name string, args ...any) view.View {
	d, ok := e.Catalog.Get(name)
	if !ok {
		e.logger.Warn("Unknown view name.", "name", name)
		return nil
	}
	return e.Views.Open(d, args...)
}

// Close closes the catalog view registered under name.
func (e *Engine) Close(name string) {
	if d, ok := e.Catalog.Get(name); ok {
		e.Views.Close(d, true)
	}
}

// Shutdown closes every open view, stops every constructed module and
// releases the log file.
func (e *Engine) Shutdown() {
	e.Views.CloseAll()
	e.Modules.StopAll()
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the shared logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the shared logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
