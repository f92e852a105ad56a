package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries > 0 bounds the number of retries after the first attempt.
	// Zero means the policy is bounded by MaxElapsedTime only.
	MaxRetries uint64

	// If nil every error is retried, otherwise only those the function
	// returns true for.
	ShouldRetry ShouldRetryFunc
}

// Constant returns a policy with a fixed delay between a bounded number of
// attempts. Used for the push-channel reconnect loop.
func Constant(interval time.Duration, maxRetries uint64) Config {
	return Config{
		InitialInterval: interval,
		MaxInterval:     interval,
		Randomization:   0,
		Multiplier:      1,
		MaxRetries:      maxRetries,
	}
}
