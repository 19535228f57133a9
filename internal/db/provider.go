package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"foodshare/pkg/types"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"
)

// Provider hands out one store handle per logical operation. Nothing is
// pooled or cached between calls; every handle is closed before the
// operation returns.
type Provider struct {
	driver string
	dsn    string
}

func New(config *types.Config) (*Provider, error) {
	return NewProvider(config.DatabaseDriver, config.DatabaseURL)
}

func NewProvider(driver, dsn string) (*Provider, error) {
	switch driver {
	case DriverSQLite, DriverPgx:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if dsn == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	return &Provider{driver: driver, dsn: dsn}, nil
}

func (p *Provider) Driver() string {
	return p.driver
}

// Placeholder is the bind parameter style the driver expects.
func (p *Provider) Placeholder() sq.PlaceholderFormat {
	if p.driver == DriverPgx {
		return sq.Dollar
	}
	return sq.Question
}

// Builder returns a squirrel statement builder bound to the driver's
// placeholder format.
func (p *Provider) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(p.Placeholder())
}

func (p *Provider) source() string {
	if p.driver != DriverSQLite {
		return p.dsn
	}

	sep := "?"
	if strings.Contains(p.dsn, "?") {
		sep = "&"
	}
	return p.dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Acquire opens and pings a fresh handle. Any failure is reported as
// types.ErrStoreUnavailable.
func (p *Provider) Acquire(ctx context.Context) (*sql.DB, error) {
	handle, err := sql.Open(p.driver, p.source())
	if err != nil {
		return nil, fmt.Errorf("open database: %w: %w", types.ErrStoreUnavailable, err)
	}

	handle.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := handle.PingContext(pingCtx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("ping database: %w: %w", types.ErrStoreUnavailable, err)
	}

	return handle, nil
}

func (p *Provider) Release(handle *sql.DB) error {
	if handle == nil {
		return nil
	}

	if err := handle.Close(); err != nil {
		return fmt.Errorf("close database: %w: %w", types.ErrStoreUnavailable, err)
	}
	return nil
}

// With runs fn against a freshly acquired handle and releases it on every
// exit path, including a panic inside fn.
func (p *Provider) With(ctx context.Context, fn func(conn *sql.DB) error) (err error) {
	handle, err := p.Acquire(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if rerr := p.Release(handle); rerr != nil && err == nil {
			err = rerr
		}
	}()

	return fn(handle)
}

// Ping acquires and releases a handle without running a statement.
func (p *Provider) Ping(ctx context.Context) error {
	return p.With(ctx, func(*sql.DB) error { return nil })
}
