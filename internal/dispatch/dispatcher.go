package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/rektdeckard/tinto/internal/logging"
)

const (
	// DefaultQueueSize is the number of commands that may wait for the worker
	DefaultQueueSize = 32

	// DefaultTimeout bounds a single command
	DefaultTimeout = 5 * time.Second
)

var (
	// ErrQueueFull is returned by Submit when the queue has no room. The
	// command is dropped.
	ErrQueueFull = errors.New("dispatch queue full")

	// ErrStopped is returned by Submit after Stop.
	ErrStopped = errors.New("dispatcher stopped")
)

// Options configures a Dispatcher.
type Options struct {
	QueueSize int
	Timeout   time.Duration

	// OnResult is called from the worker after each command completes.
	// It must not block.
	OnResult func(cmd Command, err error)
}

// Stats is a point-in-time copy of the dispatcher counters.
type Stats struct {
	Submitted int64
	Dropped   int64
	Succeeded int64
	Failed    int64
}

// Dispatcher runs device commands on a single worker goroutine so that the
// input loop never waits on the network. Commands run in submission order;
// failures are logged and otherwise discarded.
type Dispatcher struct {
	exec     Executor
	queue    chan Command
	timeout  time.Duration
	onResult func(Command, error)

	mu      sync.Mutex
	started bool
	stopped bool
	stop    chan struct{}

	submitted atomic.Int64
	dropped   atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
}

// New creates a dispatcher. Call Start before submitting.
func New(exec Executor, opts Options) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Dispatcher{
		exec:     exec,
		queue:    make(chan Command, opts.QueueSize),
		timeout:  opts.Timeout,
		onResult: opts.OnResult,
		stop:     make(chan struct{}),
	}
}

// Start launches the worker. It runs until ctx is done or Stop is called.
// Calling Start more than once has no effect.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true
	go d.run(ctx)
}

// Submit queues cmd without blocking. When the queue is full the command is
// dropped and ErrQueueFull is returned.
func (d *Dispatcher) Submit(cmd Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- cmd:
		d.submitted.Add(1)
		logging.Debug("Command queued", zap.Stringer("command", cmd))
		return nil
	default:
		d.dropped.Add(1)
		logging.Warn("Command dropped, queue full",
			zap.Stringer("command", cmd),
			zap.Int("queue_size", cap(d.queue)),
		)
		return ErrQueueFull
	}
}

// Stop rejects further submissions and stops the worker after its current
// command. Queued commands are discarded and the in-flight command is not
// waited for.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	close(d.stop)
}

// Stats returns the current counters.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Submitted: d.submitted.Load(),
		Dropped:   d.dropped.Load(),
		Succeeded: d.succeeded.Load(),
		Failed:    d.failed.Load(),
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			return
		case cmd := <-d.queue:
			d.execute(ctx, cmd)
		}
	}
}

func (d *Dispatcher) execute(ctx context.Context, cmd Command) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	err := d.exec.Execute(ctx, cmd)
	logging.LogCommand(cmd.Kind.String(), cmd.Name, time.Since(start), err)

	if err != nil {
		d.failed.Add(1)
	} else {
		d.succeeded.Add(1)
	}

	if d.onResult != nil {
		d.onResult(cmd, err)
	}
}
