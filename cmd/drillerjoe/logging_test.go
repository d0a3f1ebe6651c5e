package main

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogging_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), logDir)

	log, f := setupLogging(dir, zerolog.InfoLevel)
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	log.Info().Str("mode", "menu").Msg("test entry")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data[:strings.IndexByte(string(data), '\n')], &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", data, err)
	}
	if entry["message"] != "test entry" {
		t.Errorf("Expected message 'test entry', got %v", entry["message"])
	}
	if s, _ := entry["session"].(string); len(s) != 36 {
		t.Errorf("Expected uuid session field, got %v", entry["session"])
	}
}

func TestSetupLogging_LevelFilter(t *testing.T) {
	dir := t.TempDir()

	log, f := setupLogging(dir, zerolog.WarnLevel)
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	rf, err := os.Open(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to open log file: %v", err)
	}
	defer rf.Close()

	lines := 0
	sc := bufio.NewScanner(rf)
	for sc.Scan() {
		lines++
		if strings.Contains(sc.Text(), "dropped") {
			t.Error("Expected info entry to be filtered at warn level")
		}
	}
	if lines != 1 {
		t.Errorf("Expected 1 log line, got %d", lines)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	// Write just over 10MB
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, f := setupLogging(dir, zerolog.InfoLevel)
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected fresh log file after rotation, got size %d", info.Size())
	}

	rotated, err := filepath.Glob(filepath.Join(dir, "drillerjoe_*.log"))
	if err != nil {
		t.Fatalf("Failed to glob: %v", err)
	}
	if len(rotated) != 1 {
		t.Errorf("Expected 1 rotated log file, got %d", len(rotated))
	}
}

func TestSetupLogging_UnwritableDir(t *testing.T) {
	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("Failed to create blocker: %v", err)
	}

	log, f := setupLogging(filepath.Join(blocker, logDir), zerolog.InfoLevel)
	if f != nil {
		f.Close()
		t.Error("Expected nil log file when the directory cannot be created")
	}
	log.Info().Msg("discarded")
}
