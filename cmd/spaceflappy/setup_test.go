package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}

	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "spaceflappy") {
		t.Errorf("output = %q, want prefixed warn message", out)
	}
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	if _, err := newLogger(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("newLogger() should reject unknown levels")
	}
}

func TestOpenLogFileEmptyDiscards(t *testing.T) {
	w, closeFn, err := openLogFile("")
	if err != nil {
		t.Fatalf("openLogFile() error = %v", err)
	}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Errorf("Write() error = %v", err)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close error = %v", err)
	}
}

func TestOpenLogFile(t *testing.T) {
	path := t.TempDir() + "/flappy.log"
	w, closeFn, err := openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile() error = %v", err)
	}
	logger, err := newLogger(w, "info")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("session started")
	if err := closeFn(); err != nil {
		t.Errorf("close error = %v", err)
	}
}

func TestRuntimeConfigFromFlags(t *testing.T) {
	flagFPS, flagSeed = 30, 42
	t.Cleanup(func() { flagFPS, flagSeed = 60, 0 })

	rc := runtimeConfig()
	if rc.TickRate != 30 || rc.Seed != 42 {
		t.Errorf("runtimeConfig() = %+v, want TickRate 30 Seed 42", rc)
	}
}

func TestWithLogFileClosesOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.log")
	var file *os.File

	err := withLogFile(path, func(w io.Writer) error {
		f, ok := w.(*os.File)
		if !ok {
			t.Fatalf("writer is %T, want *os.File", w)
		}
		file = f
		_, err := newLogger(w, "loud")
		return err
	})
	if err == nil {
		t.Fatal("withLogFile() should return the callback error")
	}
	if _, werr := file.Write([]byte("x")); !errors.Is(werr, os.ErrClosed) {
		t.Errorf("log file should be closed after an error, Write() = %v", werr)
	}
}

func TestPlayTerminalInvalidLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if err := playTerminal(io.Discard); err == nil {
		t.Error("playTerminal() should fail before starting the host")
	}
}

func TestOpenWindowInvalidLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if err := openWindow(false); err == nil {
		t.Error("openWindow() should fail before opening a window")
	}
}
