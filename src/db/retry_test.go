package db

import (
	"errors"
	"testing"
	"time"

	"carlink/src/types"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(errors.New("duplicate key value violates unique constraint")))
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "57P01"}))
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "08006"}))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsRetryable(errors.New("read tcp: Connection Reset by peer")))
	assert.True(t, IsRetryable(errors.New("write: broken pipe")))
	assert.True(t, IsRetryable(errors.New("FATAL: terminating connection due to administrator command")))
}

func TestRetrySucceedsWithoutRetry(t *testing.T) {
	calls := 0
	err := retryWithDelay(func() error {
		calls++
		return nil
	}, time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryNonRetryablePropagatesImmediately(t *testing.T) {
	boom := errors.New("syntax error at or near")
	calls := 0
	err := retryWithDelay(func() error {
		calls++
		return boom
	}, time.Millisecond)
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestRetryRecoversFromTransientError(t *testing.T) {
	calls := 0
	err := retryWithDelay(func() error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: "08006"}
		}
		return nil
	}, time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryExhaustsBound(t *testing.T) {
	transient := &pgconn.PgError{Code: "57P01"}
	calls := 0
	err := retryWithDelay(func() error {
		calls++
		return transient
	}, time.Millisecond)
	var storeErr *types.TransientStoreError
	assert.True(t, errors.As(err, &storeErr))
	assert.ErrorIs(t, err, transient)
	// initial attempt plus two retries
	assert.Equal(t, 3, calls)
}
