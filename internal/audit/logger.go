package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger appends hook events as JSON lines. A nil logger or empty path is a
// no-op, so callers never guard their Log calls.
type Logger struct {
	path string
	mu   sync.Mutex
}

// Event records one hook invocation outcome.
type Event struct {
	Timestamp    string            `json:"timestamp"`
	EventID      string            `json:"eventId"`
	Operation    string            `json:"operation"`
	Status       string            `json:"status"`
	Agent        string            `json:"agent,omitempty"`
	Confidence   string            `json:"confidence,omitempty"`
	Checkpointed bool              `json:"checkpointed"`
	Message      string            `json:"message,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"`
}

func New(path string) *Logger {
	return &Logger{path: path}
}

func (l *Logger) Log(ev Event) error {
	if l == nil || l.path == "" {
		return nil
	}
	ev.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	blob, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(blob, '\n')); err != nil {
		return err
	}
	return nil
}
