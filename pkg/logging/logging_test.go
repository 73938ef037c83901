package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToOutputPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vfsh.log")

	if err := Init(Config{Level: "info", Format: "json", OutputPath: out}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() {
		SetLevel("warn")
		InitDefault()
	})

	Debug("hidden message")
	Info("vfs loaded", Int("nodes", 3), String("root", "/data"))
	if err := Sync(); err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	log := string(data)
	if !strings.Contains(log, "vfs loaded") {
		t.Errorf("log output missing info message: %q", log)
	}
	if !strings.Contains(log, `"nodes":3`) {
		t.Errorf("log output missing field: %q", log)
	}
	if strings.Contains(log, "hidden message") {
		t.Errorf("debug message written at info level: %q", log)
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("warn") })

	SetLevel("debug")
	if globalLevel.String() != "debug" {
		t.Errorf("level is %s, expected debug", globalLevel.String())
	}

	// Invalid levels are ignored
	SetLevel("loud")
	if globalLevel.String() != "debug" {
		t.Errorf("level changed to %s on invalid input", globalLevel.String())
	}
}

func TestInvalidLevelFallsBackToWarn(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vfsh.log")
	t.Cleanup(InitDefault)

	if err := Init(Config{Level: "chatty", OutputPath: out}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if globalLevel.String() != "warn" {
		t.Errorf("level is %s, expected warn", globalLevel.String())
	}
}
