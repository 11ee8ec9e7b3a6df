package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherdash.app/internal/ports"
)

// FileLoggerAdapter appends JSON lines to a dedicated AI request log.
// The file is opened once and stays open until Close.
type FileLoggerAdapter struct {
	mu      sync.Mutex
	file    *os.File
	encoder *json.Encoder
	now     func() time.Time
}

// NewFileLoggerAdapter opens logPath for appending, creating parent directories as needed
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)

	return &FileLoggerAdapter{
		file:    file,
		encoder: encoder,
		now:     time.Now,
	}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.write("DEBUG", msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.write("INFO", msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.write("WARN", msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.write("ERROR", msg, fields)
}

// Close flushes and releases the log file; later writes are dropped
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
	entry["timestamp"] = f.now().Format(time.RFC3339)
	entry["level"] = level
	entry["message"] = msg

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return
	}

	if err := f.encoder.Encode(entry); err != nil {
		// the entry itself could not be encoded, record why instead
		if fallbackErr := f.encoder.Encode(map[string]interface{}{
			"timestamp": entry["timestamp"],
			"level":     "ERROR",
			"message":   "failed to marshal log entry",
			"original":  msg,
			"error":     err.Error(),
		}); fallbackErr != nil {
			fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", fallbackErr)
		}
	}
}
