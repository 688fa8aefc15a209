package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Truckify-BookingService/pkg/dbmetrics"
)

type stubTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *stubTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *stubTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type stubBeginner struct {
	txs  []*stubTx
	opts []*sql.TxOptions
}

func (b *stubBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &stubTx{}
	b.txs = append(b.txs, tx)
	b.opts = append(b.opts, opts)
	return tx, nil
}

func TestDo_Commit(t *testing.T) {
	b := &stubBeginner{}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.Len(t, b.txs, 1)
	assert.True(t, b.txs[0].committed)
	assert.False(t, b.txs[0].rolledBack)
}

func TestDo_RollbackOnError(t *testing.T) {
	b := &stubBeginner{}
	m := NewTransactionManager(b)
	boom := errors.New("boom")

	err := m.Do(context.Background(), func(ctx context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, b.txs[0].committed)
	assert.True(t, b.txs[0].rolledBack)
}

func TestDo_RollbackOnPanic(t *testing.T) {
	b := &stubBeginner{}
	m := NewTransactionManager(b)

	assert.Panics(t, func() {
		_ = m.Do(context.Background(), func(ctx context.Context) error { panic("boom") })
	})
	assert.True(t, b.txs[0].rolledBack)
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	b := &stubBeginner{}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Len(t, b.txs, 1)
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	b := &stubBeginner{}
	m := NewTransactionManager(b)
	calls := 0

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, sql.LevelSerializable, b.opts[0].Isolation)
}

func TestDoSerializable_GivesUp(t *testing.T) {
	b := &stubBeginner{}
	m := NewTransactionManager(b)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "40001"}
	})

	require.Error(t, err)
	assert.Len(t, b.txs, maxSerializationRetries)
}
