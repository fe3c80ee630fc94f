package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBreaker(threshold int, timeout time.Duration) (*CircuitBreaker, *time.Time) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker("test", threshold, timeout, time.Minute, nil, zap.NewNop())
	cb.now = func() time.Time { return now }
	return cb, &now
}

func TestCircuitBreakerOpensAtThreshold(t *testing.T) {
	cb, _ := newTestBreaker(3, 30*time.Second)

	cb.RecordFailure(0)
	cb.RecordFailure(0)
	assert.True(t, cb.CanExecute())

	cb.RecordFailure(0)
	assert.False(t, cb.CanExecute())

	status := cb.GetStatus()
	assert.Equal(t, CircuitStateOpen, status.State)
	require.NotNil(t, status.NextRetryTime)
	assert.Equal(t, "test", status.Name)
}

func TestCircuitBreakerRecoversAfterTimeout(t *testing.T) {
	cb, now := newTestBreaker(1, 30*time.Second)

	cb.RecordFailure(0)
	require.False(t, cb.CanExecute())

	*now = now.Add(31 * time.Second)
	assert.Equal(t, CircuitStateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, CircuitStateClosed, cb.GetState())
	assert.Zero(t, cb.GetStatus().FailureCount)
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	cb, now := newTestBreaker(2, 10*time.Second)

	cb.RecordFailure(0)
	cb.RecordFailure(0)
	*now = now.Add(11 * time.Second)
	require.Equal(t, CircuitStateHalfOpen, cb.GetState())

	cb.RecordFailure(time.Hour)
	assert.Equal(t, CircuitStateOpen, cb.GetState())
	assert.Equal(t, now.Add(time.Hour), *cb.GetStatus().NextRetryTime)
}

func TestCircuitBreakerSuccessResetsCount(t *testing.T) {
	cb, _ := newTestBreaker(3, time.Second)

	cb.RecordFailure(0)
	cb.RecordFailure(0)
	cb.RecordSuccess()
	cb.RecordFailure(0)

	assert.True(t, cb.CanExecute())
	assert.Equal(t, 1, cb.GetStatus().FailureCount)
}
