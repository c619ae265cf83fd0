package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// Client strategies selectable through configuration.
const (
	StrategyManaged = "managed"
	StrategyDirect  = "direct"
)

// Pool sizing used by the managed strategy.
const (
	managedMaxPoolSize = 50
	managedMinPoolSize = 1
)

// ConnectionError is returned when a MongoDB client cannot be established.
type ConnectionError struct {
	Strategy string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("mongo %s connection failed: %v", e.Strategy, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ConnectionOptions describes how to reach the database.
type ConnectionOptions struct {
	URI      string
	Database string
	// Managed selects the managed client (stable API, retries, pool sizing)
	// over a plain client built from the URI alone.
	Managed bool
	Timeout time.Duration
	AppName string
}

func (o ConnectionOptions) strategy() string {
	if o.Managed {
		return StrategyManaged
	}
	return StrategyDirect
}

func (o ConnectionOptions) timeout() time.Duration {
	if o.Timeout <= 0 {
		return defaultTimeout
	}
	return o.Timeout
}

// clientOptions builds the driver options for the selected strategy.
func (o ConnectionOptions) clientOptions() *options.ClientOptions {
	clientOptions := options.Client().ApplyURI(o.URI)
	if !o.Managed {
		return clientOptions
	}

	clientOptions.
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetMaxPoolSize(managedMaxPoolSize).
		SetMinPoolSize(managedMinPoolSize).
		SetConnectTimeout(o.timeout()).
		SetServerSelectionTimeout(o.timeout())
	if o.AppName != "" {
		clientOptions.SetAppName(o.AppName)
	}
	return clientOptions
}

// ConnectDB establishes a connection to MongoDB and verifies it with a ping.
// Failures are reported as *ConnectionError.
func ConnectDB(ctx context.Context, opts ConnectionOptions) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.timeout())
	defer cancel()

	client, err := mongo.Connect(ctx, opts.clientOptions())
	if err != nil {
		return nil, &ConnectionError{Strategy: opts.strategy(), Err: err}
	}

	if err := ping(ctx, client); err != nil {
		// If ping fails, disconnect the client before returning the error
		_ = DisconnectDB(client)
		return nil, &ConnectionError{Strategy: opts.strategy(), Err: err}
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

func ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return client.Ping(pingCtx, readpref.Primary())
}

// ConnectionManager owns the process MongoDB client. The first Connect dials
// the server; later calls reuse the client while it still answers a ping and
// reconnect otherwise. It is safe for concurrent use.
type ConnectionManager struct {
	opts ConnectionOptions

	mu     sync.Mutex
	client *mongo.Client
}

// NewConnectionManager creates a manager. No connection is made until Connect.
func NewConnectionManager(opts ConnectionOptions) *ConnectionManager {
	return &ConnectionManager{opts: opts}
}

// Connect returns a handle to the configured database.
func (m *ConnectionManager) Connect(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		err := ping(ctx, m.client)
		if err == nil {
			log.Debug().Str("strategy", m.opts.strategy()).Msg("MongoDB client already connected")
			return m.client.Database(m.opts.Database), nil
		}
		log.Warn().Err(err).Msg("MongoDB client no longer reachable, reconnecting")
		_ = DisconnectDB(m.client)
		m.client = nil
	}

	client, err := ConnectDB(ctx, m.opts)
	if err != nil {
		log.Error().Err(err).Str("strategy", m.opts.strategy()).Msg("Error connecting to MongoDB")
		return nil, err
	}
	m.client = client
	log.Info().Str("strategy", m.opts.strategy()).Str("database", m.opts.Database).Msg("Connected to MongoDB")

	return client.Database(m.opts.Database), nil
}

// Close disconnects the client, if any. The manager may be reused afterwards.
func (m *ConnectionManager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}

// insertManySkippingDuplicates inserts docs unordered. Documents rejected by a
// unique index are skipped; any other write error is returned.
func insertManySkippingDuplicates(ctx context.Context, collection *mongo.Collection, docs []interface{}) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	_, err := collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err == nil {
		return len(docs), nil
	}

	var bulkErr mongo.BulkWriteException
	if !errors.As(err, &bulkErr) || bulkErr.WriteConcernError != nil {
		return 0, err
	}
	for _, writeErr := range bulkErr.WriteErrors {
		if !isDuplicateKeyCode(writeErr.Code) {
			return 0, err
		}
	}
	return len(docs) - len(bulkErr.WriteErrors), nil
}

func isDuplicateKeyCode(code int) bool {
	return code == 11000 || code == 11001 || code == 12582
}

// EnsureIndexes creates the indexes of every collection used by the service.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	steps := []struct {
		collection string
		ensure     func(context.Context, *mongo.Collection) error
	}{
		{userCollectionName, EnsureUserIndexes},
		{userSessionCollectionName, EnsureUserSessionIndexes},
		{videoCollectionName, EnsureVideoIndexes},
		{userLikeCollectionName, EnsureUserLikeIndexes},
	}

	for _, step := range steps {
		if err := step.ensure(ctx, db.Collection(step.collection)); err != nil {
			return fmt.Errorf("create indexes for %s: %w", step.collection, err)
		}
		log.Debug().Str("collection", step.collection).Msg("Indexes ensured")
	}
	return nil
}
