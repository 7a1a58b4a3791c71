package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrStoreUnavailable indicates the backing store could not be reached
// within the connector's retry budget.
var ErrStoreUnavailable = errors.New("store unavailable")

const (
	defaultInitialInterval = 1 * time.Second
	defaultMaxInterval     = 10 * time.Second
	defaultMaxElapsedTime  = 300 * time.Second

	// defaultMaxRetries bounds retries after the first attempt,
	// giving 5 connection attempts in total.
	defaultMaxRetries = 4
)

// openFunc establishes a database session from a DSN.
type openFunc func(dsn string) (*gorm.DB, error)

// Connector opens a database connection, retrying with exponential backoff
// while the store is still starting up. Intervals double from the initial
// value up to the cap; the connection that finally succeeds is the one
// returned, so no extra dial happens after the retry loop.
//
// Example:
//
//	db, err := NewConnector().Connect(ctx, dsn)
//	if errors.Is(err, ErrStoreUnavailable) {
//	    // store never came up within the retry budget
//	}
type Connector struct {
	open            openFunc
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	maxRetries      uint64
}

// ConnectorOption customizes connector behavior.
type ConnectorOption func(*Connector)

// WithOpenFunc replaces the session opener. Used by tests to substitute
// a fake store.
func WithOpenFunc(open openFunc) ConnectorOption {
	return func(c *Connector) { c.open = open }
}

// WithInitialInterval sets the delay before the second attempt.
func WithInitialInterval(interval time.Duration) ConnectorOption {
	return func(c *Connector) { c.initialInterval = interval }
}

// WithMaxInterval caps the delay between attempts.
func WithMaxInterval(interval time.Duration) ConnectorOption {
	return func(c *Connector) { c.maxInterval = interval }
}

// WithMaxElapsedTime bounds the total time spent retrying.
func WithMaxElapsedTime(elapsed time.Duration) ConnectorOption {
	return func(c *Connector) { c.maxElapsedTime = elapsed }
}

// WithMaxRetries bounds the number of retries after the first attempt.
func WithMaxRetries(retries uint64) ConnectorOption {
	return func(c *Connector) { c.maxRetries = retries }
}

// NewConnector creates a connector with production retry settings:
// 1s initial interval doubling up to 10s, at most 5 attempts.
func NewConnector(opts ...ConnectorOption) *Connector {
	connector := &Connector{
		open: func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
		},
		initialInterval: defaultInitialInterval,
		maxInterval:     defaultMaxInterval,
		maxElapsedTime:  defaultMaxElapsedTime,
		maxRetries:      defaultMaxRetries,
	}

	for _, opt := range opts {
		opt(connector)
	}

	return connector
}

// Connect opens a database session, retrying while the store is unavailable.
// Returns ErrStoreUnavailable once the retry budget is exhausted; the cause
// of the last failed attempt is wrapped alongside it.
func (c *Connector) Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxInterval = c.maxInterval
	policy.MaxElapsedTime = c.maxElapsedTime
	policy.Reset()

	db, err := backoff.RetryNotifyWithData(
		func() (*gorm.DB, error) {
			return c.open(dsn)
		},
		backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx),
		func(err error, next time.Duration) {
			log.Warnf("store connection failed, retrying in %s: %v", next, err)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return db, nil
}
