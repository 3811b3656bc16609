// Package database owns the connection to the MongoDB document store.
//
// It exposes a single process-scoped handle with an explicit lifecycle:
//   - Initialize connects (exactly once) and verifies the connection
//   - Handle returns the active *mongo.Database or ErrUninitialized
//   - Close releases the connection (best-effort, idempotent)
//
// It also wires store command logging (zerolog) and optional
// New Relic instrumentation (nrmongo) into the driver.
package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/deppfellow/go-contacts/internal/config"
	loggerConfig "github.com/deppfellow/go-contacts/internal/logger"
	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DatabasePingTimeout defines the number of seconds to wait for a ping
// before considering the database "unreachable".
const DatabasePingTimeout = 10

// ErrUninitialized is returned by Handle (and everything built on it) when
// Initialize has not completed successfully. Hitting it at request time is
// a wiring bug, not a runtime condition.
var ErrUninitialized = errors.New("database: connection not initialized")

// ConnectionError reports a failed connect or ping during Initialize.
// The bootstrap treats it as fatal.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "database: connection failed: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// dialFunc opens a client and verifies it is usable.
type dialFunc func(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error)

// Database wraps the Mongo client and the selected database.
//
// The driver pools connections and is safe for concurrent use; the mutex
// only guards the lifecycle fields.
type Database struct {
	cfg  *config.Config
	log  *zerolog.Logger
	opts *options.ClientOptions
	dial dialFunc

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
}

// New builds the connection manager. It does not connect.
//
// Inputs:
//   - cfg: application config (URL, database name, timeouts)
//   - logger: main app logger
//   - loggerService: optional New Relic service (nil if not configured)
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) *Database {
	opts := options.Client().
		ApplyURI(cfg.Database.URL).
		SetConnectTimeout(cfg.Database.ConnectTimeout).
		SetAppName(cfg.Observability.ServiceName)

	if cfg.Database.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.Database.MaxPoolSize)
	}

	if monitor := newMonitor(cfg, logger, loggerService); monitor != nil {
		opts.SetMonitor(monitor)
	}

	return &Database{
		cfg:  cfg,
		log:  logger,
		opts: opts,
		dial: connectAndPing,
	}
}

// newMonitor chains the zerolog command monitor with New Relic's.
//
// The driver accepts a single monitor; nrmongo wraps the original one and
// forwards every event to it, so both run.
func newMonitor(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) *event.CommandMonitor {
	monitor := loggerConfig.NewCommandMonitor(logger, cfg.IsLocal(), cfg.Observability.Logging.SlowQueryThreshold)

	if loggerService.GetApplication() != nil {
		monitor = nrmongo.NewCommandMonitor(monitor)
	}

	return monitor
}

func connectAndPing(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return client, nil
}

// Initialize establishes the connection exactly once.
//
// If the connection already exists the existing handle is returned without
// reconnecting. Concurrent callers wait for the first one to finish.
func (d *Database) Initialize(ctx context.Context) (*mongo.Database, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		d.log.Info().Msg("database is already initialized")
		return d.db, nil
	}

	client, err := d.dial(ctx, d.opts)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	d.client = client
	d.db = client.Database(d.cfg.Database.Name)

	d.log.Info().
		Str("database", d.cfg.Database.Name).
		Msg("connected to the database")

	return d.db, nil
}

// Handle returns the active database handle.
func (d *Database) Handle() (*mongo.Database, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.db == nil {
		return nil, ErrUninitialized
	}
	return d.db, nil
}

// Collection returns a handle to the named collection.
func (d *Database) Collection(name string) (*mongo.Collection, error) {
	db, err := d.Handle()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping verifies the connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	db, err := d.Handle()
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

// Close releases the connection.
//
// It is a no-op if the connection was never initialized (or is already
// closed). Disconnect failures are logged, not returned: there is nothing
// the caller can do about them during shutdown.
func (d *Database) Close(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client == nil {
		return
	}

	d.log.Info().Msg("closing database connection")

	if err := d.client.Disconnect(ctx); err != nil {
		d.log.Error().Err(err).Msg("error closing database connection")
	} else {
		d.log.Info().Msg("database connection closed")
	}

	d.client = nil
	d.db = nil
}
