// Package sqlstore implements store.Store on MySQL or SQLite through sqlx,
// with queries built by squirrel. The same schema and queries run on both
// engines; engine differences live in Dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/01moynul/inkwell-api/internal/store"
)

// executor is the query surface shared by *sqlx.DB and *sqlx.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type Store struct {
	db      *sqlx.DB
	tx      *sqlx.Tx
	ext     executor
	dialect Dialect
	obs     *observer
}

var _ store.Store = (*Store)(nil)

type options struct {
	logger *zap.Logger
	tracer trace.Tracer
	meter  metric.Meter
	slow   time.Duration
}

// Option configures a Store.
type Option func(*options)

// WithLogger sets the logger used for failed and slow queries.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithMeter overrides the global OpenTelemetry meter.
func WithMeter(meter metric.Meter) Option {
	return func(o *options) {
		o.meter = meter
	}
}

// WithSlowQueryThreshold sets the duration above which a query is logged as slow.
func WithSlowQueryThreshold(d time.Duration) Option {
	return func(o *options) {
		o.slow = d
	}
}

// New wraps an open database. The dialect is picked from the driver name the
// handle was opened with.
func New(db *sqlx.DB, opts ...Option) (*Store, error) {
	dialect, err := DialectFor(db.DriverName())
	if err != nil {
		return nil, err
	}

	o := options{
		logger: zap.NewNop(),
		tracer: otel.Tracer(instrumentationName),
		meter:  otel.Meter(instrumentationName),
		slow:   200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		db:      db,
		ext:     db,
		dialect: dialect,
		obs:     newObserver(o, dialect.Name()),
	}, nil
}

func (s *Store) Close() error {
	if s.tx != nil {
		return nil
	}
	return s.db.Close()
}

// WithinTx runs fn in a transaction. Calls nested inside fn reuse the
// transaction that is already open.
func (s *Store) WithinTx(ctx context.Context, fn func(tx store.Store) error) (err error) {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	txStore := &Store{
		db:      s.db,
		tx:      tx,
		ext:     tx,
		dialect: s.dialect,
		obs:     s.obs,
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(txStore); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, op string, dest any, qb sq.Sqlizer) error {
	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}
	return s.obs.observe(ctx, op, func(ctx context.Context) error {
		err := s.ext.GetContext(ctx, dest, query, args...)
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrNotFound
		}
		return err
	})
}

func (s *Store) selectAll(ctx context.Context, op string, dest any, qb sq.Sqlizer) error {
	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}
	return s.obs.observe(ctx, op, func(ctx context.Context) error {
		return s.ext.SelectContext(ctx, dest, query, args...)
	})
}

// exec runs a write and turns unique violations into *store.DuplicateError.
func (s *Store) exec(ctx context.Context, op string, qb sq.Sqlizer) (sql.Result, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}
	var res sql.Result
	err = s.obs.observe(ctx, op, func(ctx context.Context) error {
		var execErr error
		res, execErr = s.ext.ExecContext(ctx, query, args...)
		if field, ok := s.dialect.DuplicateField(execErr); ok {
			return &store.DuplicateError{Field: field}
		}
		return execErr
	})
	return res, err
}

// execOne is exec for statements that must touch a row.
func (s *Store) execOne(ctx context.Context, op string, qb sq.Sqlizer) error {
	res, err := s.exec(ctx, op, qb)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
