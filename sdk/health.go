package sdk

import (
	"context"
	"net/http"
	"time"

	"github.com/marover/webpilot/internals/backoff"
	"github.com/marover/webpilot/internals/timeouts"
)

const (
	DefaultPingTimeout = timeouts.Probe
	startInitialDelay  = time.Second
	startAttempts      = 6
)

type InfoLogger interface {
	Info(msg string, args ...any)
}

// IsRunning probes the backend by listing tasks; the contract has no
// dedicated health endpoint.
func IsRunning(baseURL string) bool {
	return IsRunningWithTimeout(baseURL, DefaultPingTimeout)
}

func IsRunningWithTimeout(baseURL string, timeout time.Duration) bool {
	if baseURL == "" {
		return false
	}
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	client := NewClient(
		WithBaseURL(baseURL),
		WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	_, err := client.ListTasks(ctx)
	return err == nil
}

func WaitForStart(baseURL string, logger InfoLogger) bool {
	delay := backoff.Exponential(backoff.Config{
		Base: time.Second,
		Max:  30 * time.Second,
	})

	time.Sleep(startInitialDelay)
	for i := 1; i <= startAttempts; i++ {
		if logger != nil {
			logger.Info("Waiting for backend to start", "attempt", i)
		}
		if IsRunning(baseURL) {
			return true
		}
		time.Sleep(delay(i))
	}

	return false
}
