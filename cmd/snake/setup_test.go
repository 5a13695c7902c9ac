package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setLogFlags(t *testing.T, file, level string) {
	t.Helper()
	oldFile, oldLevel := flagLogFile, flagLogLevel
	flagLogFile, flagLogLevel = file, level
	t.Cleanup(func() { flagLogFile, flagLogLevel = oldFile, oldLevel })
}

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	setLogFlags(t, "", "info")

	logger, file, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if logger == nil {
		t.Fatal("newLogger() returned a nil logger")
	}
	if file != nil {
		t.Errorf("file = %v, expected nil without --log-file", file.Name())
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	setLogFlags(t, path, "debug")

	logger, file, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if file == nil {
		t.Fatal("newLogger() returned no file for --log-file")
	}
	logger.Debug("hello", "score", 10)
	if err := file.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	setLogFlags(t, "", "loud")

	if _, _, err := newLogger(); err == nil {
		t.Error("newLogger() accepted an unknown level")
	}
}
