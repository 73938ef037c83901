package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vfsh.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Prompt != "$ " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "$ ")
	}
	if cfg.TailLines != 10 {
		t.Errorf("TailLines = %d, want 10", cfg.TailLines)
	}
	if !cfg.Color {
		t.Error("Color should default to true")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
prompt = "vfs> "
tail_lines = 5
color = false

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Prompt != "vfs> " {
		t.Errorf("Prompt = %q", cfg.Prompt)
	}
	if cfg.EchoPrefix != "$ " {
		t.Errorf("EchoPrefix = %q, unset keys should keep defaults", cfg.EchoPrefix)
	}
	if cfg.TailLines != 5 {
		t.Errorf("TailLines = %d, want 5", cfg.TailLines)
	}
	if cfg.Color {
		t.Error("Color should be false")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "tail_lines = 5\nprompt = \"file> \"\n")
	t.Setenv("VFSH_TAIL_LINES", "3")
	t.Setenv("VFSH_PROMPT", "env> ")
	t.Setenv("VFSH_COLOR", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TailLines != 3 {
		t.Errorf("TailLines = %d, want 3", cfg.TailLines)
	}
	if cfg.Prompt != "env> " {
		t.Errorf("Prompt = %q, want env> ", cfg.Prompt)
	}
	if cfg.Color {
		t.Error("Color should be false")
	}
}

func TestInvalidEnvIsIgnored(t *testing.T) {
	t.Setenv("VFSH_TAIL_LINES", "many")
	t.Setenv("VFSH_COLOR", "maybe")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TailLines != 10 || !cfg.Color {
		t.Errorf("invalid env changed config: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "prompt = ")); err == nil {
		t.Error("expected error for malformed file")
	}
	if _, err := Load(writeConfig(t, "tail_lines = 0")); err == nil {
		t.Error("expected error for non-positive tail_lines")
	}
}
