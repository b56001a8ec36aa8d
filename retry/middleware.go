// Package retry provides exponential backoff for establishing database connections.
// A ConnectionProvider uses it to keep pinging a database that is still starting up.
package retry

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Strategy defines how many times an operation is attempted and how long
// to wait between attempts.
//
// The wait before retry n follows: delay = min(BaseDelay * ExponentialBase^(n-1), MaxDelay)
//
// Example with DefaultStrategy (500ms base, 2.0 exponential, 8s max):
//
//	Attempt 1: immediately
//	Attempt 2: after 500ms
//	Attempt 3: after 1s
//	Attempt 4: after 2s
//	Attempt 5: after 4s
type Strategy struct {
	MaxAttempts     int           // Total attempts, including the first one
	BaseDelay       time.Duration // Wait before the first retry
	MaxDelay        time.Duration // Maximum wait cap
	ExponentialBase float64       // Backoff multiplier (e.g., 2.0 for doubling)
}

// NoRetry returns a strategy that attempts exactly once.
func NoRetry() Strategy {
	return Strategy{MaxAttempts: 1}
}

// DefaultStrategy returns the strategy used when connect retries are enabled
// without further tuning: 5 attempts, 500ms→8s exponential backoff.
func DefaultStrategy() Strategy {
	return Strategy{
		MaxAttempts:     5,
		BaseDelay:       500 * time.Millisecond,
		MaxDelay:        8 * time.Second,
		ExponentialBase: 2.0,
	}
}

// WithMaxAttempts returns a copy of the strategy with MaxAttempts replaced.
func (s Strategy) WithMaxAttempts(n int) Strategy {
	s.MaxAttempts = n
	return s
}

// CalculateRetryDelay calculates the wait after a failed attempt using exponential backoff.
// Formula: delay = min(BaseDelay * ExponentialBase^(failedAttempts-1), MaxDelay)
//
// Parameters:
//   - failedAttempts: number of attempts that have failed so far (1-based)
func (s Strategy) CalculateRetryDelay(failedAttempts int) time.Duration {
	if failedAttempts <= 1 {
		return s.capped(float64(s.BaseDelay))
	}

	base := s.ExponentialBase
	if base < 1 {
		base = 1
	}
	delay := float64(s.BaseDelay) * math.Pow(base, float64(failedAttempts-1))

	return s.capped(delay)
}

func (s Strategy) capped(delay float64) time.Duration {
	if s.MaxDelay > 0 && delay > float64(s.MaxDelay) {
		return s.MaxDelay
	}
	return time.Duration(delay)
}

// IsRetryable checks if another attempt is allowed after attemptCount attempts.
func (s Strategy) IsRetryable(attemptCount int) bool {
	return attemptCount < s.MaxAttempts
}

// Do runs fn until it succeeds, the attempts are exhausted or ctx is done.
// fn receives the 1-based attempt number. The last error from fn is returned;
// if ctx ends while waiting, ctx.Err() is returned instead.
func (s Strategy) Do(ctx context.Context, fn func(attempt int) error) error {
	attempt := 0
	for {
		attempt++
		err := fn(attempt)
		if err == nil {
			return nil
		}
		if !s.IsRetryable(attempt) {
			return err
		}

		timer := time.NewTimer(s.CalculateRetryDelay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// GetRetrySchedule returns a human-readable description of the retry schedule.
//
// Example output:
//
//	Retry Schedule:
//	  Attempt 1: immediately
//	  Attempt 2: after 500ms
//	  ...
func (s Strategy) GetRetrySchedule() string {
	schedule := "Retry Schedule:\n"
	for i := 1; i <= s.MaxAttempts; i++ {
		if i == 1 {
			schedule += "  Attempt 1: immediately\n"
			continue
		}
		schedule += fmt.Sprintf("  Attempt %d: after %v\n", i, s.CalculateRetryDelay(i-1))
	}
	return schedule
}
