package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/diegok/pong/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.log")
	log, closer, err := New(config.LogConfig{File: path, Level: logrus.InfoLevel, MaxSize: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.WithField("left", 2).Info("point scored")
	log.Debug("dropped at info level")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), data)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON entry: %v", err)
	}
	if entry["msg"] != "point scored" {
		t.Errorf("expected msg 'point scored', got %v", entry["msg"])
	}
	if entry["left"] != float64(2) {
		t.Errorf("expected left=2, got %v", entry["left"])
	}
}

func TestNew_BadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, _, err := New(config.LogConfig{File: filepath.Join(blocker, "pong.log"), MaxSize: 1})
	if err == nil {
		t.Error("expected error when the log directory is a file")
	}
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, logrus.WarnLevel)

	log.Info("quiet")
	log.Warn("loud")

	if strings.Contains(buf.String(), "quiet") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "loud") {
		t.Error("warn entry should be written")
	}
}
