//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"inkslot/internal/pkg/config"
	"inkslot/internal/worker"

	"github.com/stretchr/testify/assert"
)

type countingExpiry struct {
	calls atomic.Int32
	ttl   atomic.Int64
	err   error
}

func (c *countingExpiry) ExpireStalePending(_ context.Context, ttl time.Duration) (int, error) {
	c.calls.Add(1)
	c.ttl.Store(int64(ttl))
	return 2, c.err
}

func testConfig(interval time.Duration) config.Config {
	cfg := config.NewTestConfig()
	cfg.Booking.SweepInterval = interval
	cfg.Booking.PendingTTL = 30 * time.Minute
	return cfg
}

func TestSweeper_RunOnce(t *testing.T) {
	exp := &countingExpiry{}
	s := worker.NewSweeper(exp, testConfig(time.Minute))

	assert.Equal(t, 2, s.RunOnce(context.Background()))
	assert.Equal(t, int64(30*time.Minute), exp.ttl.Load())

	exp.err = errors.New("db down")
	assert.NotPanics(t, func() { s.RunOnce(context.Background()) })
}

func TestSweeper_StartStop(t *testing.T) {
	exp := &countingExpiry{}
	s := worker.NewSweeper(exp, testConfig(10*time.Millisecond))

	s.Start()
	assert.Eventually(t, func() bool { return exp.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := exp.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, exp.calls.Load(), "no sweeps after Stop")
}

func TestSweeper_Disabled(t *testing.T) {
	exp := &countingExpiry{}
	s := worker.NewSweeper(exp, testConfig(0))

	s.Start()
	s.Stop()
	assert.Zero(t, exp.calls.Load())
}
