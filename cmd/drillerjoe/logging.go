package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "drillerjoe.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging opens dir/drillerjoe.log for JSON logging, rotating an oversized previous file
// The terminal owns stdout, so a log file that cannot be opened silences logging
func setupLogging(dir string, level zerolog.Level) (zerolog.Logger, *os.File) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.New(io.Discard), nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("drillerjoe_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.New(io.Discard), nil
	}

	log := zerolog.New(f).Level(level).With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return log, f
}
