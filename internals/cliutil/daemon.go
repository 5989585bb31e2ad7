package cliutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/marover/webpilot/internals/backoff"
	"github.com/marover/webpilot/sdk"
)

// EnsureBackendRunning probes the configured backend and, when it is the
// local default and unreachable, starts a webpilotd process. A remote
// backend that is down is an error, not something to launch.
func EnsureBackendRunning(client *sdk.Client, local bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if _, err := client.ListTasks(ctx); err == nil {
		return nil
	}

	if !local {
		return fmt.Errorf("backend at %s is not reachable", client.BaseURL())
	}

	if err := StartBackend(); err != nil {
		return err
	}

	return waitForBackend(client)
}

func StartBackend() error {
	path, err := findBackendBinary()
	if err != nil {
		return err
	}

	cmd := exec.Command(path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Start()
}

func waitForBackend(client *sdk.Client) error {
	delay := backoff.Exponential(backoff.Config{
		Base: 150 * time.Millisecond,
		Max:  2 * time.Second,
	})

	var lastErr error
	for i := 1; i <= 8; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		_, err := client.ListTasks(ctx)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(delay(i))
	}

	if lastErr != nil {
		return lastErr
	}
	return errors.New("failed to reach webpilotd")
}

func findBackendBinary() (string, error) {
	executable, err := os.Executable()
	if err == nil {
		candidate := filepath.Join(filepath.Dir(executable), "webpilotd")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, nil
		}
	}

	path, err := exec.LookPath("webpilotd")
	if err != nil {
		return "", fmt.Errorf("webpilotd not found in PATH")
	}
	return path, nil
}
