package log

import (
	"io"
	"path/filepath"
	"testing"
)

func TestFileLoggerRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bus0.blog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}

	events := sampleEvents()
	for _, ev := range events {
		logger.Log(ev)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer reader.Close()

	for i, want := range events {
		got, err := reader.Next()
		if err != nil {
			t.Fatalf("Next (event %d): %v", i, err)
		}
		if got.Category != want.Category || !got.Timestamp.Equal(want.Timestamp) {
			t.Errorf("event %d = (%s, %v), want (%s, %v)",
				i, got.Category, got.Timestamp, want.Category, want.Timestamp)
		}
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Fatalf("Next after last event = %v, want io.EOF", err)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bus0.blog")
	events := sampleEvents()

	for _, ev := range events[:2] {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger: %v", err)
		}
		logger.Log(ev)
		if err := logger.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer reader.Close()

	var count int
	for {
		if _, err := reader.Next(); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Next: %v", err)
		}
		count++
	}
	if count != 2 {
		t.Fatalf("read %d events across reopens, want 2", count)
	}
}

func TestFileLoggerCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bus0.blog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	// Logging after close is silently ignored.
	logger.Log(sampleEvents()[0])
}
