package logbuf

import (
	"log/slog"
	"sync"
	"time"
)

// Logger buffers log entries for the lifetime of one request so the
// middleware can flush them as a single structured payload.
type Logger struct {
	mu     sync.Mutex
	attrs  []slog.Attr
	buffer []Entry
	seq    uint64
}

type Entry struct {
	Level   string
	Message string
	At      time.Time
	Seq     uint64
	Attrs   []slog.Attr
}

func New(attrs ...slog.Attr) *Logger {
	logger := &Logger{}
	if len(attrs) > 0 {
		logger.attrs = append(logger.attrs, attrs...)
	}
	return logger
}

// With returns a child logger carrying this logger's attrs plus the extras.
// The child gets its own buffer so concurrent requests never interleave.
func (l *Logger) With(attrs ...slog.Attr) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	child := &Logger{attrs: append(append([]slog.Attr{}, l.attrs...), attrs...)}
	return child
}

func (l *Logger) Add(attrs ...slog.Attr) {
	if len(attrs) == 0 {
		return
	}
	l.mu.Lock()
	l.attrs = append(l.attrs, attrs...)
	l.mu.Unlock()
}

func (l *Logger) Debug(message string, attrs ...slog.Attr) { l.appendEntry("debug", message, attrs...) }
func (l *Logger) Info(message string, attrs ...slog.Attr)  { l.appendEntry("info", message, attrs...) }
func (l *Logger) Warn(message string, attrs ...slog.Attr)  { l.appendEntry("warn", message, attrs...) }
func (l *Logger) Error(message string, attrs ...slog.Attr) { l.appendEntry("error", message, attrs...) }

func (l *Logger) appendEntry(level string, message string, attrs ...slog.Attr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	entry := Entry{Level: level, Message: message, At: time.Now(), Seq: l.seq}
	if len(attrs) > 0 {
		entry.Attrs = append(entry.Attrs, attrs...)
	}
	l.buffer = append(l.buffer, entry)
}

// Flush drains the buffer and returns one slog group attr carrying the
// accumulated attrs plus every buffered entry.
func (l *Logger) Flush() slog.Attr {
	l.mu.Lock()
	entries := make([]Entry, len(l.buffer))
	copy(entries, l.buffer)
	l.buffer = l.buffer[:0]
	l.seq = 0
	attrs := append([]slog.Attr{}, l.attrs...)
	l.mu.Unlock()

	attrs = append(attrs, slog.Any("entries", entriesToPayload(entries)))
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return slog.Group("request", args...)
}

func entriesToPayload(entries []Entry) []map[string]any {
	payload := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		entryPayload := map[string]any{
			"message": entry.Message,
			"level":   entry.Level,
			"at":      entry.At,
			"seq":     entry.Seq,
		}
		for _, attr := range entry.Attrs {
			if attr.Key == "" {
				continue
			}
			if _, exists := entryPayload[attr.Key]; exists {
				continue
			}
			entryPayload[attr.Key] = attr.Value.Any()
		}
		payload = append(payload, entryPayload)
	}
	return payload
}
