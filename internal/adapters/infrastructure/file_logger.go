package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"coolassistant.app/internal/ports"
)

// FileLoggerAdapter appends one JSON object per line to a file. It is used
// to keep an audit trail of third-party provider calls apart from the
// application log.
type FileLoggerAdapter struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

func NewFileLoggerAdapter(path string) (*FileLoggerAdapter, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLoggerAdapter{file: file, now: time.Now}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) { f.write("DEBUG", msg, fields) }
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field)  { f.write("INFO", msg, fields) }
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field)  { f.write("WARN", msg, fields) }
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) { f.write("ERROR", msg, fields) }

// Close flushes and closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) write(level, msg string, fields []ports.Field) {
	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			entry[field.Key] = err.Error()
			continue
		}
		entry[field.Key] = field.Value
	}
	entry["timestamp"] = f.now().UTC().Format(time.RFC3339)
	entry["level"] = level
	entry["message"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"unencodable log entry: %q"}`, err.Error()))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
