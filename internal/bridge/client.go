package bridge

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/amimof/huego"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rektdeckard/tinto/internal/dispatch"
	"github.com/rektdeckard/tinto/internal/inventory"
	"github.com/rektdeckard/tinto/internal/logging"
)

const (
	// DefaultTimeout bounds one inventory fetch
	DefaultTimeout = 5 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for a failed fetch
	DefaultMaxRetries = 2

	// DefaultRetryDelay is the default delay between retry attempts
	DefaultRetryDelay = 250 * time.Millisecond

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 2 * time.Second
)

// alertSelect makes a group breathe for about 15 seconds
const alertSelect = "lselect"

// hueAPI is the subset of *huego.Bridge used by Client
type hueAPI interface {
	GetConfigContext(ctx context.Context) (*huego.Config, error)
	GetLightsContext(ctx context.Context) ([]huego.Light, error)
	GetGroupsContext(ctx context.Context) ([]huego.Group, error)
	GetScenesContext(ctx context.Context) ([]huego.Scene, error)
	SetLightStateContext(ctx context.Context, id int, s huego.State) (*huego.Response, error)
	SetGroupStateContext(ctx context.Context, id int, s huego.State) (*huego.Response, error)
	RecallSceneContext(ctx context.Context, id string, gid int) (*huego.Response, error)
}

// Client talks to a Hue bridge. It is an inventory.Source for the refresher
// and a dispatch.Executor for the command worker.
type Client struct {
	// Addr is the bridge host, e.g. "192.168.1.20"
	Addr string

	// Timeout bounds a single fetch attempt
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts for a failed fetch
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts
	RetryDelay time.Duration

	// MaxRetryDelay is the maximum delay for exponential backoff
	MaxRetryDelay time.Duration

	// UseExponentialBackoff enables exponential backoff for retries
	UseExponentialBackoff bool

	api hueAPI
}

// NewClient creates a client for the bridge at addr using the given
// application key.
func NewClient(addr, key string) *Client {
	return newClient(addr, huego.New(addr, key))
}

func newClient(addr string, api hueAPI) *Client {
	return &Client{
		Addr:                  addr,
		Timeout:               DefaultTimeout,
		MaxRetries:            DefaultMaxRetries,
		RetryDelay:            DefaultRetryDelay,
		MaxRetryDelay:         DefaultMaxRetryDelay,
		UseExponentialBackoff: true,
		api:                   api,
	}
}

// SetRetry configures retry behavior
func (c *Client) SetRetry(maxRetries int, retryDelay time.Duration) {
	c.MaxRetries = maxRetries
	c.RetryDelay = retryDelay
}

// Ping checks that the bridge is reachable and accepts the application key.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	if _, err := c.api.GetLightsContext(ctx); err != nil {
		return Classify(err, c.Addr)
	}
	return nil
}

// Fetch reads the full inventory and assembles a snapshot. Retryable
// failures are retried with backoff.
func (c *Client) Fetch(ctx context.Context) (*inventory.Snapshot, error) {
	var lastErr error
	currentDelay := c.RetryDelay

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			logging.Debug("Retrying inventory fetch",
				zap.Int("attempt", attempt),
				zap.Duration("delay", currentDelay),
				zap.Error(lastErr),
			)
			if err := sleep(ctx, currentDelay); err != nil {
				return nil, Classify(err, c.Addr)
			}

			if c.UseExponentialBackoff {
				currentDelay *= 2
				if currentDelay > c.MaxRetryDelay {
					currentDelay = c.MaxRetryDelay
				}
			}
		}

		snap, err := c.fetchAttempt(ctx)
		if err == nil {
			return snap, nil
		}

		lastErr = err

		// Don't retry non-retryable errors
		if !IsRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *Client) fetchAttempt(ctx context.Context) (*inventory.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	var (
		config *huego.Config
		lights []huego.Light
		groups []huego.Group
		scenes []huego.Scene
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		config, err = c.api.GetConfigContext(ctx)
		return err
	})
	g.Go(func() (err error) {
		lights, err = c.api.GetLightsContext(ctx)
		return err
	})
	g.Go(func() (err error) {
		groups, err = c.api.GetGroupsContext(ctx)
		return err
	})
	g.Go(func() (err error) {
		scenes, err = c.api.GetScenesContext(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, Classify(err, c.Addr)
	}

	bridgeID := ""
	if config != nil {
		bridgeID = config.BridgeID
	}
	return buildSnapshot(bridgeID, lights, groups, scenes), nil
}

// Execute sends cmd to the bridge. The caller bounds it with ctx.
func (c *Client) Execute(ctx context.Context, cmd dispatch.Command) error {
	var err error

	switch cmd.Kind {
	case dispatch.ToggleGroup:
		err = c.setGroup(ctx, cmd.TargetID, huego.State{On: cmd.On})

	case dispatch.ToggleLight:
		err = c.setLight(ctx, cmd.TargetID, huego.State{On: cmd.On})

	case dispatch.Dim:
		err = c.setLight(ctx, cmd.TargetID, huego.State{On: cmd.On, BriInc: briDelta(cmd.Delta)})

	case dispatch.Signal:
		logging.Debug("Signalling group",
			zap.String("group", cmd.Name),
			zap.Duration("duration", cmd.Duration),
			zap.Strings("colors", cmd.Colors),
		)
		err = c.setGroup(ctx, cmd.TargetID, huego.State{On: cmd.On, Alert: alertSelect})

	case dispatch.RecallScene:
		var gid int
		gid, err = parseID(cmd.GroupID)
		if err == nil {
			_, err = c.api.RecallSceneContext(ctx, cmd.TargetID, gid)
		}

	default:
		err = newProtocolError(fmt.Sprintf("unsupported command %s", cmd.Kind), nil)
	}

	return Classify(err, c.Addr).orNil()
}

func (c *Client) setLight(ctx context.Context, target string, state huego.State) error {
	id, err := parseID(target)
	if err != nil {
		return err
	}
	_, err = c.api.SetLightStateContext(ctx, id, state)
	return err
}

func (c *Client) setGroup(ctx context.Context, target string, state huego.State) error {
	id, err := parseID(target)
	if err != nil {
		return err
	}
	_, err = c.api.SetGroupStateContext(ctx, id, state)
	return err
}

// orNil avoids returning a typed nil through the error interface
func (e *BridgeError) orNil() error {
	if e == nil {
		return nil
	}
	return e
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, newProtocolError(fmt.Sprintf("invalid resource id %q", s), err)
	}
	return id, nil
}

// briDelta converts a percentage to the bridge's 0-254 brightness scale
func briDelta(pct int) int {
	return pct * maxBri / 100
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
