package logbuf

import (
	"context"
	"log/slog"
	"testing"
)

func TestLoggerBuffersAndFlushes(t *testing.T) {
	t.Parallel()

	logger := New(slog.String("component", "server"))
	child := logger.With(slog.String("request_id", "r1"))
	child.Info("request started")
	child.Error("request failed", slog.String("reason", "boom"))

	group := child.Flush()
	if group.Value.Kind() != slog.KindGroup {
		t.Fatalf("expected group attr, got %v", group.Value.Kind())
	}

	var entries []map[string]any
	for _, attr := range group.Value.Group() {
		if attr.Key == "entries" {
			entries = attr.Value.Any().([]map[string]any)
		}
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["message"] != "request started" {
		t.Fatalf("unexpected first entry %v", entries[0])
	}
	if entries[1]["reason"] != "boom" {
		t.Fatalf("expected entry attr to survive, got %v", entries[1])
	}

	// Flushing drains the buffer.
	group = child.Flush()
	for _, attr := range group.Value.Group() {
		if attr.Key == "entries" {
			if got := attr.Value.Any().([]map[string]any); len(got) != 0 {
				t.Fatalf("expected empty buffer after flush, got %v", got)
			}
		}
	}
}

func TestWithGivesChildrenIsolatedBuffers(t *testing.T) {
	t.Parallel()

	parent := New(slog.String("component", "server"))
	first := parent.With(slog.String("request_id", "r1"))
	second := parent.With(slog.String("request_id", "r2"))

	first.Info("only on first")

	group := second.Flush()
	for _, attr := range group.Value.Group() {
		if attr.Key == "entries" {
			if got := attr.Value.Any().([]map[string]any); len(got) != 0 {
				t.Fatalf("sibling buffer leaked entries: %v", got)
			}
		}
	}

	group = first.Flush()
	for _, attr := range group.Value.Group() {
		if attr.Key == "entries" {
			if got := attr.Value.Any().([]map[string]any); len(got) != 1 {
				t.Fatalf("expected one entry on first child, got %v", got)
			}
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	if FromContext(context.Background()) != nil {
		t.Fatalf("expected nil logger outside request")
	}

	logger := New()
	ctx := WithContext(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatalf("expected logger from context")
	}
}
