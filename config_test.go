package lazyconf

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Config
	}{
		{"empty", "", DefaultConfig()},
		{"partial", "fuel: 10\n", Config{ExtendThreshold: 100, Fuel: 10, LogLevel: "info"}},
		{"full", "extend_threshold: 0\nfuel: 5\nlog_level: debug\ndebug: true\n",
			Config{ExtendThreshold: 0, Fuel: 5, LogLevel: "debug", Debug: true}},
	}
	for _, tt := range tests {
		got, err := ParseConfig([]byte(tt.src))
		if err != nil {
			t.Errorf("%s: ParseConfig() error: %v", tt.name, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestParseConfigRejects(t *testing.T) {
	for _, src := range []string{
		"extend_threshold: -1\n",
		"log_level: loud\n",
		"threshold: 3\n",
		"fuel: [1]\n",
	} {
		_, err := ParseConfig([]byte(src))
		if kind, _ := KindOf(err); kind != ErrBadConfig {
			t.Errorf("ParseConfig(%q) error = %v, want bad config", src, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lazyconf.yaml")
	if err := os.WriteFile(path, []byte("fuel: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Fuel != 7 {
		t.Errorf("Fuel = %d, want 7", cfg.Fuel)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("log_level: loud\n"), 0o644)
	_, err = LoadConfig(bad)
	if err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestConfigLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for name, want := range tests {
		if got := (Config{LogLevel: name}).Level(); got != want {
			t.Errorf("Level(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestSetConfig(t *testing.T) {
	env := NewEnvironment()
	if err := env.SetConfig(Config{ExtendThreshold: -1}); err == nil {
		t.Fatal("expected invalid config to be rejected")
	}
	if env.Config() != DefaultConfig() {
		t.Error("rejected config should not be applied")
	}

	if err := env.SetConfig(Config{ExtendThreshold: 3, Fuel: 2}); err != nil {
		t.Fatalf("SetConfig() error: %v", err)
	}
	if _, remaining, ok := env.NewState().FuelLevels(); !ok || remaining != 2 {
		t.Errorf("fuel not applied: remaining %d, enabled %v", remaining, ok)
	}
	if err := env.SetConfig(DefaultConfig()); err != nil {
		t.Fatalf("SetConfig() error: %v", err)
	}
	if _, _, ok := env.NewState().FuelLevels(); ok {
		t.Error("zero fuel should disable tracking")
	}
}
