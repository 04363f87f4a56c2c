package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rektdeckard/tinto/internal/logging"
)

type result struct {
	cmd Command
	err error
}

func collect(n int) (func(Command, error), chan result) {
	ch := make(chan result, n)
	return func(cmd Command, err error) { ch <- result{cmd, err} }, ch
}

func wait(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for command result")
		return result{}
	}
}

func TestDispatcher_RunsInOrder(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	exec := ExecutorFunc(func(ctx context.Context, cmd Command) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, cmd.TargetID)
		return nil
	})

	onResult, results := collect(5)
	d := New(exec, Options{OnResult: onResult})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)
	defer d.Stop()

	ids := []string{"1", "2", "3", "4", "5"}
	for _, id := range ids {
		require.NoError(t, d.Submit(Command{Kind: ToggleLight, TargetID: id}))
	}
	for range ids {
		assert.NoError(t, wait(t, results).err)
	}

	mu.Lock()
	assert.Equal(t, ids, seen)
	mu.Unlock()

	stats := d.Stats()
	assert.Equal(t, int64(5), stats.Submitted)
	assert.Equal(t, int64(5), stats.Succeeded)
	assert.Zero(t, stats.Failed)
}

func TestDispatcher_FailureIsLoggedAndDiscarded(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logging.SetLogger(zap.New(core))
	defer logging.SetLogger(nil)

	exec := ExecutorFunc(func(ctx context.Context, cmd Command) error {
		return errors.New("bridge unreachable")
	})

	onResult, results := collect(2)
	d := New(exec, Options{OnResult: onResult})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)
	defer d.Stop()

	require.NoError(t, d.Submit(Command{Kind: RecallScene, Name: "Relax"}))
	require.NoError(t, d.Submit(Command{Kind: Signal, Name: "Office"}))

	assert.EqualError(t, wait(t, results).err, "bridge unreachable")
	assert.Error(t, wait(t, results).err)
	assert.Equal(t, int64(2), d.Stats().Failed)

	failures := logs.FilterMessage("Device command failed").All()
	require.Len(t, failures, 2)
	assert.Equal(t, "recall-scene", failures[0].ContextMap()["command"])
	assert.Equal(t, "Relax", failures[0].ContextMap()["target"])
}

func TestDispatcher_QueueFullDrops(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logging.SetLogger(zap.New(core))
	defer logging.SetLogger(nil)

	d := New(ExecutorFunc(func(context.Context, Command) error { return nil }), Options{QueueSize: 1})
	defer d.Stop()

	// Not started, so nothing drains the queue
	require.NoError(t, d.Submit(Command{Kind: Dim, Name: "Lamp", Delta: 10}))
	assert.ErrorIs(t, d.Submit(Command{Kind: Dim, Name: "Lamp", Delta: 10}), ErrQueueFull)

	stats := d.Stats()
	assert.Equal(t, int64(1), stats.Submitted)
	assert.Equal(t, int64(1), stats.Dropped)
	assert.Equal(t, 1, logs.FilterMessage("Command dropped, queue full").Len())
}

func TestDispatcher_SubmitDoesNotWaitForExecutor(t *testing.T) {
	release := make(chan struct{})
	exec := ExecutorFunc(func(ctx context.Context, cmd Command) error {
		<-release
		return nil
	})

	onResult, results := collect(1)
	d := New(exec, Options{OnResult: onResult})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)
	defer d.Stop()

	done := make(chan error, 1)
	go func() { done <- d.Submit(Command{Kind: ToggleGroup}) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a slow executor")
	}

	close(release)
	assert.NoError(t, wait(t, results).err)
}

func TestDispatcher_Timeout(t *testing.T) {
	exec := ExecutorFunc(func(ctx context.Context, cmd Command) error {
		<-ctx.Done()
		return ctx.Err()
	})

	onResult, results := collect(1)
	d := New(exec, Options{Timeout: 20 * time.Millisecond, OnResult: onResult})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)
	defer d.Stop()

	require.NoError(t, d.Submit(Command{Kind: ToggleLight}))
	assert.ErrorIs(t, wait(t, results).err, context.DeadlineExceeded)
}

func TestDispatcher_Stop(t *testing.T) {
	d := New(ExecutorFunc(func(context.Context, Command) error { return nil }), Options{})
	d.Start(context.Background())

	d.Stop()
	d.Stop()

	assert.ErrorIs(t, d.Submit(Command{Kind: ToggleLight}), ErrStopped)
}

func TestNew_Defaults(t *testing.T) {
	d := New(nil, Options{})
	assert.Equal(t, DefaultQueueSize, cap(d.queue))
	assert.Equal(t, DefaultTimeout, d.timeout)
}
