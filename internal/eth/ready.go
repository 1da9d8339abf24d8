package eth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// WaitReady probes the node for its chain id until it answers or maxElapsed passes.
// A non-positive maxElapsed probes exactly once.
// It is meant for process startup only; the regular client methods never retry.
func (c *Client) WaitReady(ctx context.Context, maxElapsed time.Duration) (uint64, error) {
	var b backoff.BackOff = newExponentialBackoffConfig(maxElapsed)
	if maxElapsed <= 0 {
		// a zero max elapsed time means retrying forever to the backoff package
		b = backoff.WithMaxRetries(b, 0)
	}
	bk := backoff.WithContext(b, ctx)
	chainID, err := backoff.RetryWithData[uint64](func() (uint64, error) {
		readinessAttempts.Inc()
		id, err := c.ChainID(ctx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, ErrMalformed) {
				return 0, backoff.Permanent(err)
			}
			c.logger.WithField("node_addr", c.nodeAddr).WithError(err).Warn("Eth node not ready yet, retrying...")
			return 0, err
		}
		return id, nil
	}, bk)
	if err != nil {
		return 0, fmt.Errorf("wait for eth node: %w", err)
	}

	return chainID, nil
}

func newExponentialBackoffConfig(maxElapsed time.Duration) *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(maxElapsed),
		backoff.WithMaxInterval(time.Second*5),
		backoff.WithInitialInterval(time.Millisecond*200),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}
