package database

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyPinger struct {
	failures int
	calls    int
}

func (p *flakyPinger) PingContext(ctx context.Context) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestPingWithRetry_SucceedsAfterFailures(t *testing.T) {
	p := &flakyPinger{failures: 2}

	err := pingWithRetry(context.Background(), p, 5, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 3, p.calls)
}

func TestPingWithRetry_GivesUp(t *testing.T) {
	p := &flakyPinger{failures: 100}

	err := pingWithRetry(context.Background(), p, 2, time.Millisecond)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 3, p.calls) // first attempt + 2 retries
}

func TestPingWithRetry_StopsOnCancel(t *testing.T) {
	p := &flakyPinger{failures: 100}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pingWithRetry(ctx, p, 5, time.Second)

	require.Error(t, err)
	assert.LessOrEqual(t, p.calls, 1)
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 3)

	for _, f := range files {
		body, err := fs.ReadFile(migrationsFS, f)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", f)
		assert.Contains(t, string(body), "-- +goose Down", f)
	}
}
