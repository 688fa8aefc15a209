// Package dbmetrics оборачивает *sql.DB сбором prometheus метрик.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DefaultStatsInterval период опроса статистики пула соединений
const DefaultStatsInterval = 15 * time.Second

// Recorder принимает измерения. *metrics.Metrics его реализует.
type Recorder interface {
	ObserveDBQuery(operation string, duration time.Duration)
	SetDBConnections(open, inUse, idle int)
}

// DB обёртка над *sql.DB, измеряющая длительность запросов
type DB struct {
	db          *sql.DB
	recorder    Recorder
	serviceName string
}

// Wrap оборачивает db и запускает опрос пула с указанным интервалом до закрытия stop
func Wrap(db *sql.DB, recorder Recorder, serviceName string, interval time.Duration, stop <-chan struct{}) *DB {
	w := &DB{db: db, recorder: recorder, serviceName: serviceName}
	if recorder != nil && stop != nil {
		go w.collectPoolStats(interval, stop)
	}
	return w
}

// WrapWithDefault как Wrap с интервалом DefaultStatsInterval
func WrapWithDefault(db *sql.DB, recorder Recorder, serviceName string, stop <-chan struct{}) *DB {
	return Wrap(db, recorder, serviceName, DefaultStatsInterval, stop)
}

// Unwrap возвращает исходный *sql.DB
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// BeginTx открывает транзакцию, запросы в которой тоже измеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) observe(operation string, started time.Time) {
	if d.recorder == nil {
		return
	}
	d.recorder.ObserveDBQuery(operation, time.Since(started))
}

func (d *DB) collectPoolStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s := d.db.Stats()
			d.recorder.SetDBConnections(s.OpenConnections, s.InUse, s.Idle)
		}
	}
}

// Tx транзакция с метриками
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe("tx_exec", time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe("tx_query", time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe("tx_query_row", time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	defer t.parent.observe("commit", time.Now())
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
