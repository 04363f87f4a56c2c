package inventory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rektdeckard/tinto/internal/logging"
)

// DefaultRefreshInterval is how often the Refresher polls the bridge
const DefaultRefreshInterval = 2 * time.Second

// Source produces fresh inventory snapshots, typically by querying the bridge.
type Source interface {
	Fetch(ctx context.Context) (*Snapshot, error)
}

// Store holds the current snapshot. Readers get whatever snapshot was
// published last; a refresh swaps the pointer rather than editing in place.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// Load returns the current snapshot, or nil before the first refresh.
func (s *Store) Load() *Snapshot {
	return s.current.Load()
}

// Replace publishes snap as the current snapshot.
func (s *Store) Replace(snap *Snapshot) {
	s.current.Store(snap)
}

// Refresher keeps a Store up to date by polling a Source.
type Refresher struct {
	source   Source
	store    *Store
	interval time.Duration
	poke     chan struct{}

	mu      sync.Mutex
	lastErr error
}

// NewRefresher creates a refresher. A non-positive interval selects
// DefaultRefreshInterval.
func NewRefresher(source Source, store *Store, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		source:   source,
		store:    store,
		interval: interval,
		poke:     make(chan struct{}, 1),
	}
}

// RefreshNow fetches once and publishes the result. On error the previous
// snapshot stays in place.
func (r *Refresher) RefreshNow(ctx context.Context) error {
	start := time.Now()
	snap, err := r.source.Fetch(ctx)
	r.setErr(err)
	if err != nil {
		logging.LogRefresh(0, 0, 0, time.Since(start), err)
		return err
	}
	r.store.Replace(snap)
	logging.LogRefresh(snap.NLights(), snap.NRooms(), snap.NZones(), time.Since(start), nil)
	return nil
}

// Err returns the error of the most recent refresh, or nil if it succeeded.
func (r *Refresher) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *Refresher) setErr(err error) {
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
}

// Poke requests an early refresh. It never blocks; pokes that arrive while
// one is already pending are merged.
func (r *Refresher) Poke() {
	select {
	case r.poke <- struct{}{}:
	default:
	}
}

// Run polls until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-r.poke:
		}
		_ = r.RefreshNow(ctx)
	}
}
