package notesapi

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/codecraf8/notesapi/pkg/logger"
	"github.com/codecraf8/notesapi/pkg/store"
	"github.com/codecraf8/notesapi/pkg/store/memory"
	"github.com/codecraf8/notesapi/pkg/store/postgres"
	"github.com/codecraf8/notesapi/pkg/store/surreal"
)

// Store backends selectable with the -store flag.
const (
	BackendPostgres = "postgres"
	BackendSurreal  = "surreal"
	BackendMemory   = "memory"
)

// Config holds application configuration. Environment variables supply the
// connection defaults; flags override them.
type Config struct {
	// Store selection and connection settings
	StoreBackend  string
	PostgresDSN   string
	SurrealDBURL  string
	SurrealDBNS   string
	SurrealDBDB   string
	SurrealDBUser string
	SurrealDBPass string

	// When true, all write operations are rejected
	ReadOnly bool

	// Server configuration
	ServerPort string
	LogPath    string
}

// App holds the application state: the store behind the notes resource and
// the logger everything reports through.
type App struct {
	store    store.Store
	config   *Config
	log      zerolog.Logger
	logBuild *logger.Builder
	readOnly atomic.Bool
}

// New creates a new application instance, connecting the configured store
// backend and wrapping it with read-only protection.
func New(config *Config) (*App, error) {
	logBuild := logger.New()
	if config.LogPath != "" {
		logBuild.ToPath(config.LogPath)
	}
	log, err := logBuild.Make()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	var appStore store.Store
	switch config.StoreBackend {
	case BackendPostgres:
		appStore, err = postgres.NewStore(config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		log.Info().Msg("connected to PostgreSQL")
	case BackendSurreal:
		appStore, err = surreal.NewStore(
			config.SurrealDBURL,
			config.SurrealDBNS,
			config.SurrealDBDB,
			config.SurrealDBUser,
			config.SurrealDBPass,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
		}
		log.Info().Msg("connected to SurrealDB")
	case BackendMemory:
		appStore = memory.NewStore()
		log.Info().Msg("using in-memory store")
	default:
		return nil, fmt.Errorf("unknown store backend: %s", config.StoreBackend)
	}

	app := &App{
		config:   config,
		log:      log,
		logBuild: logBuild,
	}
	app.readOnly.Store(config.ReadOnly)
	app.store = store.NewReadOnlyStore(appStore, app.IsReadOnly)

	return app, nil
}

// Close closes the application and its resources.
func (a *App) Close() error {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			return err
		}
	}
	return a.logBuild.Close()
}

// Store returns the underlying store (useful for testing).
func (a *App) Store() store.Store {
	return a.store
}

// SetReadOnly toggles the application's read-only mode. While enabled,
// write operations are rejected at the store wrapper and reads continue to
// work. Safe to call while the server handles requests.
func (a *App) SetReadOnly(readOnly bool) {
	a.readOnly.Store(readOnly)
	a.log.Info().Bool("read_only", readOnly).Msg("read-only mode changed")
}

// IsReadOnly reports whether writes are currently rejected. Checked by the
// store wrapper on every write, so it stays cheap.
func (a *App) IsReadOnly() bool {
	return a.readOnly.Load()
}

// getEnv retrieves an environment variable with a fallback default. Empty
// values count as unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
