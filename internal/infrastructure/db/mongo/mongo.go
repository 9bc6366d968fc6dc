// Package mongo implements the store ports on MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

// defaultTimeout bounds single repository calls.
const defaultTimeout = 10 * time.Second

type Config struct {
	URI      string
	Database string
	AppName  string
	// ConnectTimeout bounds connect plus the startup ping. Zero means defaultTimeout.
	ConnectTimeout time.Duration
}

// Connect dials MongoDB, pings the primary and returns the client together
// with the configured database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(cfg.AppName).
		SetRetryWrites(true)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := Ping(client)(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, client.Database(cfg.Database), nil
}

// Ping returns a readiness check against the primary.
func Ping(client *mongo.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("mongo ping: %w", err)
		}
		return nil
	}
}

// TxManager runs callbacks inside a multi-document transaction. Requires a
// replica set or sharded cluster.
type TxManager struct {
	client *mongo.Client
}

var _ ports.TxManager = (*TxManager)(nil)

func NewTxManager(client *mongo.Client) *TxManager {
	return &TxManager{client: client}
}

// WithTransaction starts a session and runs fn in a transaction bound to it.
// The driver retries fn on transient errors, so fn must be safe to re-run.
func (m *TxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
