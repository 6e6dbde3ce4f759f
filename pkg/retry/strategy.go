package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/code-payments/metadata-cpi/pkg/retry/backoff"
)

// Strategy decides whether an action should be attempted again. Strategies
// may sleep or cause other side effects.
type Strategy func(attempts uint, err error) bool

// Limit caps the total number of attempts, including the first one.
func Limit(maxAttempts uint) Strategy {
	return func(attempts uint, _ error) bool {
		return attempts < maxAttempts
	}
}

// RetriableErrors only retries errors matching one of the provided errors
// through errors.Is.
func RetriableErrors(retriableErrors ...error) Strategy {
	return func(_ uint, err error) bool {
		for _, e := range retriableErrors {
			if errors.Is(err, e) {
				return true
			}
		}
		return false
	}
}

// RetriableIf only retries errors for which isRetriable returns true.
func RetriableIf(isRetriable func(error) bool) Strategy {
	return func(_ uint, err error) bool {
		return isRetriable(err)
	}
}

// Context stops retrying once ctx is cancelled or past its deadline.
func Context(ctx context.Context) Strategy {
	return func(_ uint, _ error) bool {
		return ctx.Err() == nil
	}
}

// Backoff sleeps for the delay given by strategy, capped at maxBackoff, before
// allowing the next attempt.
func Backoff(strategy backoff.Strategy, maxBackoff time.Duration) Strategy {
	return func(attempts uint, _ error) bool {
		sleeperImpl.Sleep(capDelay(strategy(attempts), maxBackoff))
		return true
	}
}

// BackoffWithJitter behaves like Backoff, but shifts the capped delay by up to
// +/- jitter (a fraction of the capped delay).
func BackoffWithJitter(strategy backoff.Strategy, maxBackoff time.Duration, jitter float64) Strategy {
	return func(attempts uint, _ error) bool {
		delay := capDelay(strategy(attempts), maxBackoff)
		offset := rand.Float64()*jitter*2 - jitter
		sleeperImpl.Sleep(time.Duration(float64(delay) * (1 + offset)))
		return true
	}
}

func capDelay(delay, maxDelay time.Duration) time.Duration {
	return time.Duration(math.Min(float64(maxDelay), float64(delay)))
}

type sleeper interface {
	Sleep(time.Duration)
}

type realSleeper struct{}

func (r *realSleeper) Sleep(d time.Duration) { time.Sleep(d) }

var sleeperImpl sleeper = &realSleeper{}
