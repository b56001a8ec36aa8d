package learninglogs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learninglogs/learninglogs/retry"
)

// Conn is a single live connection handle obtained from a ConnectionProvider.
// It must be released with ConnectionProvider.Close.
type Conn struct {
	db      *sql.DB
	dialect string
}

// DB returns the underlying database handle. It is capped at one open
// connection, so every statement run through it shares the same session.
func (c *Conn) DB() *sql.DB {
	return c.db
}

// Dialect returns the SQL dialect of the connection (mysql, postgres, sqlite3).
func (c *Conn) Dialect() string {
	return c.dialect
}

// ConnectionProvider opens and releases database connections for one
// configured target. It does not pool: every Open creates a new
// connection and every Close tears it down.
//
// Thread safety: Safe for concurrent use; callers never share a Conn.
type ConnectionProvider struct {
	cfg    DatabaseConfig
	logger Logger
	retry  retry.Strategy
}

// ProviderOption is a function that configures a ConnectionProvider.
type ProviderOption func(*ConnectionProvider) error

// NewConnectionProvider creates a ConnectionProvider for cfg.
//
// Optional options:
//   - WithProviderLogger: where close failures are reported (default: NoopLogger)
//   - WithConnectRetry: backoff for the initial ping (default: a single attempt)
func NewConnectionProvider(cfg DatabaseConfig, opts ...ProviderOption) (*ConnectionProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewErrorWithCause(ErrCodeConfiguration, "invalid database configuration", err)
	}

	p := &ConnectionProvider{
		cfg:    cfg,
		logger: &NoopLogger{},
		retry:  retry.NoRetry(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply connection provider option", err)
		}
	}

	return p, nil
}

// WithProviderLogger sets the logger used for diagnostics.
// Logger must not be nil.
func WithProviderLogger(logger Logger) ProviderOption {
	return func(p *ConnectionProvider) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		p.logger = logger
		return nil
	}
}

// WithConnectRetry sets the backoff applied while the database does not
// answer the initial ping. MaxAttempts must be > 0.
func WithConnectRetry(strategy retry.Strategy) ProviderOption {
	return func(p *ConnectionProvider) error {
		if strategy.MaxAttempts <= 0 {
			return fmt.Errorf("connect retry attempts must be > 0, got %d", strategy.MaxAttempts)
		}
		p.retry = strategy
		return nil
	}
}

// Config returns the database configuration of the provider.
func (p *ConnectionProvider) Config() DatabaseConfig {
	return p.cfg
}

// Open returns a live connection to the configured database.
//
// Returns an error with code ErrCodeConnection if the driver is unknown,
// the backend is unreachable, credentials are rejected or the database
// does not exist.
func (p *ConnectionProvider) Open(ctx context.Context) (*Conn, error) {
	db, err := sql.Open(p.cfg.Driver, p.cfg.DSN())
	if err != nil {
		return nil, NewErrorWithCause(ErrCodeConnection, fmt.Sprintf("failed to open %s", p.cfg), err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	err = p.retry.Do(ctx, func(attempt int) error {
		pingErr := db.PingContext(ctx)
		if pingErr != nil && p.retry.IsRetryable(attempt) {
			p.logger.Warnf("ping %s failed (attempt %d/%d): %v", p.cfg, attempt, p.retry.MaxAttempts, pingErr)
		}
		return pingErr
	})
	if err != nil {
		p.closeDB(db)
		return nil, NewErrorWithCause(ErrCodeConnection, fmt.Sprintf("failed to connect to %s", p.cfg), err)
	}

	p.logger.Debugf("connection to %s established", p.cfg)
	return &Conn{db: db, dialect: p.cfg.Dialect()}, nil
}

// Close releases conn. A nil handle is a no-op. Failures are logged and
// never returned.
func (p *ConnectionProvider) Close(conn *Conn) {
	if conn == nil || conn.db == nil {
		return
	}
	p.closeDB(conn.db)
	conn.db = nil
}

func (p *ConnectionProvider) closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		p.logger.Errorf("failed to close connection to %s: %v", p.cfg, err)
	}
}
