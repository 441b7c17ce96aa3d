// Package database wraps the Supabase Postgrest client behind the small set of
// table operations the repositories need.
package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/km-arc/diaita/framework/config"
	"github.com/km-arc/diaita/framework/metrics"
)

// ErrNotFound is returned by SelectSingle when no row matches.
var ErrNotFound = errors.New("database: no rows")

// Result pairs a value with the error that prevented producing it. Body is
// meaningful only when Err is nil.
type Result[T any] struct {
	Body T
	Err  error
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

func ok[T any](v T) Result[T] { return Result[T]{Body: v} }
func fail[T any](err error) Result[T] { return Result[T]{Err: err} }

// Manager owns the Postgrest client. One Manager is bound per process.
type Manager struct {
	client  *supabase.Client
	log     *zap.Logger
	metrics *metrics.Collector
}

// NewManager connects a Supabase client for cfg. No request is made until the
// first operation.
func NewManager(cfg config.SupabaseConfig, log *zap.Logger, m *metrics.Collector) (*Manager, error) {
	if cfg.URL == "" || cfg.SecretKey == "" {
		return nil, errors.New("database: supabase url and secret key are required")
	}
	client, err := supabase.NewClient(cfg.URL, cfg.SecretKey, &supabase.ClientOptions{Schema: cfg.Schema})
	if err != nil {
		return nil, fmt.Errorf("database: create supabase client: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{client: client, log: log.Named("database"), metrics: m}, nil
}

func (m *Manager) from(table string) *postgrest.QueryBuilder {
	return m.client.From(table)
}

// run executes fb and records the outcome.
func (m *Manager) run(op, table string, fb *postgrest.FilterBuilder) ([]byte, int64, error) {
	start := time.Now()
	body, count, err := fb.Execute()
	m.metrics.ObserveDB(op, table, err, time.Since(start))
	if err != nil {
		m.log.Warn("postgrest call failed", zap.String("op", op), zap.String("table", table), zap.Error(err))
		return nil, 0, fmt.Errorf("%s %s: %w", op, table, err)
	}
	return body, count, nil
}

func decodeRows[T any](body []byte) ([]T, error) {
	rows := []T{}
	if len(body) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("database: decode rows: %w", err)
	}
	return rows, nil
}

func decodeOne[T any](body []byte) (T, error) {
	var zero T
	rows, err := decodeRows[T](body)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNotFound
	}
	return rows[0], nil
}

func str(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
