package backoff

import (
	"math"
	"time"
)

type Config struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64
}

// Exponential returns a delay function for retry loops. Attempt numbers
// start at 1; attempt n sleeps Base*Factor^(n-1), capped at Max.
func Exponential(cfg Config) func(attempt int) time.Duration {
	base := cfg.Base
	max := cfg.Max
	factor := cfg.Factor
	if factor <= 0 {
		factor = 2
	}

	return func(attempt int) time.Duration {
		if attempt <= 0 || base <= 0 {
			return 0
		}
		exponent := float64(attempt - 1)
		delay := float64(base) * math.Pow(factor, exponent)
		if delay < 0 {
			return 0
		}
		if max > 0 && delay > float64(max) {
			return max
		}
		if delay > float64(math.MaxInt64) {
			if max > 0 {
				return max
			}
			return time.Duration(math.MaxInt64)
		}
		return time.Duration(delay)
	}
}
