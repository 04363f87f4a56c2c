package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu    sync.Mutex
	snaps []*Snapshot
	err   error
	calls int
}

func (f *fakeSource) Fetch(ctx context.Context) (*Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	snap := f.snaps[0]
	if len(f.snaps) > 1 {
		f.snaps = f.snaps[1:]
	}
	return snap, nil
}

func (f *fakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSnapshot_NilSafe(t *testing.T) {
	var snap *Snapshot

	assert.Nil(t, snap.Rooms())
	assert.Equal(t, 0, snap.NRooms())
	assert.Equal(t, 0, snap.NZones())
	assert.Equal(t, 0, snap.NLights())

	_, ok := snap.Room(0)
	assert.False(t, ok)
}

func TestSnapshot_RoomOutOfRange(t *testing.T) {
	snap := NewSnapshot("bridge", []Room{{ID: "1", Name: "Kitchen"}}, nil, nil)

	room, ok := snap.Room(0)
	require.True(t, ok)
	assert.Equal(t, "Kitchen", room.Name)

	_, ok = snap.Room(1)
	assert.False(t, ok)
	_, ok = snap.Room(-1)
	assert.False(t, ok)
	_, ok = snap.Zone(0)
	assert.False(t, ok)
}

func TestStore_Replace(t *testing.T) {
	var store Store
	assert.Nil(t, store.Load())

	first := NewSnapshot("a", nil, nil, nil)
	second := NewSnapshot("b", nil, nil, nil)

	store.Replace(first)
	held := store.Load()
	store.Replace(second)

	// A reader holding the old snapshot keeps seeing it unchanged
	assert.Same(t, first, held)
	assert.Same(t, second, store.Load())
}

func TestRefresher_RefreshNow(t *testing.T) {
	snap := NewSnapshot("bridge", []Room{{ID: "1"}}, nil, nil)
	src := &fakeSource{snaps: []*Snapshot{snap}}
	var store Store

	r := NewRefresher(src, &store, 0)
	require.NoError(t, r.RefreshNow(context.Background()))
	assert.Same(t, snap, store.Load())
	assert.Equal(t, DefaultRefreshInterval, r.interval)
}

func TestRefresher_ErrorKeepsPreviousSnapshot(t *testing.T) {
	snap := NewSnapshot("bridge", nil, nil, nil)
	var store Store
	store.Replace(snap)

	src := &fakeSource{err: errors.New("bridge unreachable")}
	r := NewRefresher(src, &store, time.Second)

	err := r.RefreshNow(context.Background())
	assert.Error(t, err)
	assert.Same(t, snap, store.Load())
	assert.Equal(t, err, r.Err())

	src.mu.Lock()
	src.err = nil
	src.snaps = []*Snapshot{snap}
	src.mu.Unlock()

	require.NoError(t, r.RefreshNow(context.Background()))
	assert.NoError(t, r.Err())
}

func TestRefresher_PokeNeverBlocks(t *testing.T) {
	r := NewRefresher(&fakeSource{}, &Store{}, time.Hour)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			r.Poke()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Poke blocked")
	}
}

func TestRefresher_RunRefreshesOnPoke(t *testing.T) {
	first := NewSnapshot("first", nil, nil, nil)
	second := NewSnapshot("second", nil, nil, nil)
	src := &fakeSource{snaps: []*Snapshot{first, second}}
	var store Store

	r := NewRefresher(src, &store, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(stopped)
	}()

	r.Poke()
	assert.Eventually(t, func() bool { return store.Load() == first }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, src.Calls())

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
