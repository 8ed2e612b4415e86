package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Errorf("debug message should be filtered at INFO level, got %q", buf.String())
	}

	l.Info("shown", nil)
	if buf.Len() == 0 {
		t.Error("info message should be written at INFO level")
	}
}

func TestEntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Error("harvest failed", Fields{"region": "Республика Адыгея"}, errors.New("boom"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if entry.Level != string(LevelError) {
		t.Errorf("expected level ERROR, got %s", entry.Level)
	}
	if entry.Message != "harvest failed" {
		t.Errorf("unexpected message: %s", entry.Message)
	}
	if entry.Fields["region"] != "Республика Адыгея" {
		t.Errorf("expected region field, got %v", entry.Fields)
	}
	if entry.Error != "boom" {
		t.Errorf("expected error field, got %q", entry.Error)
	}
	if entry.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestOneLinePerEntry(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Info("first", nil)
	l.Info("second", Fields{"n": 2})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Errorf("line is not valid JSON: %s", line)
		}
	}
}
