package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/persiancal/jdp/internal/jcal"
)

func TestResolveConfigPath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(ConfigEnv, "/from/env/config.toml")
		if got := ResolveConfigPath("/explicit/config.toml"); got != "/explicit/config.toml" {
			t.Fatalf("expected explicit path, got %q", got)
		}
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv(ConfigEnv, "/from/env/config.toml")
		if got := ResolveConfigPath(""); got != "/from/env/config.toml" {
			t.Fatalf("expected env path, got %q", got)
		}
	})
}

func TestResolveStatePath(t *testing.T) {
	configPath := "/tmp/jdp/config.toml"

	t.Run("explicit state path wins", func(t *testing.T) {
		got := ResolveStatePath("/tmp/custom/state.toml", configPath, &Config{
			StateFile: "state-from-config.toml",
		})
		if got != "/tmp/custom/state.toml" {
			t.Fatalf("expected explicit state path, got %q", got)
		}
	})

	t.Run("config state_file absolute", func(t *testing.T) {
		got := ResolveStatePath("", configPath, &Config{
			StateFile: "/var/tmp/jdp-state.toml",
		})
		if got != "/var/tmp/jdp-state.toml" {
			t.Fatalf("expected absolute state path, got %q", got)
		}
	})

	t.Run("config state_file relative to config dir", func(t *testing.T) {
		got := ResolveStatePath("", "/home/me/.config/jdp/config.toml", &Config{
			StateFile: "runtime/state.toml",
		})
		want := "/home/me/.config/jdp/runtime/state.toml"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("fallback sibling state.toml", func(t *testing.T) {
		got := ResolveStatePath("", "/home/me/.config/jdp/config.toml", nil)
		want := "/home/me/.config/jdp/state.toml"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestLoadStateMissingReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")

	state, err := LoadState(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Version != StateVersion {
		t.Fatalf("expected version %d, got %d", StateVersion, state.Version)
	}
	if state.LastPicked != nil {
		t.Fatalf("expected no last pick, got %v", state.LastPicked)
	}
}

func TestSaveStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.toml")

	state := &State{}
	at := time.Date(2025, 3, 21, 8, 30, 0, 0, time.UTC)
	state.Remember(jcal.MustNew(1404, 1, 15), at)

	if err := SaveState(path, state); err != nil {
		t.Fatalf("save state: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read state: %v", err)
	}
	if !strings.Contains(string(raw), `last_picked = "1404-01-15"`) {
		t.Fatalf("expected last_picked as a date string, got:\n%s", raw)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if loaded.Version != StateVersion {
		t.Fatalf("expected version %d, got %d", StateVersion, loaded.Version)
	}
	if loaded.LastPicked == nil || *loaded.LastPicked != jcal.MustNew(1404, 1, 15) {
		t.Fatalf("expected last pick 1404-01-15, got %v", loaded.LastPicked)
	}
	if !loaded.PickedAt.Equal(at) {
		t.Fatalf("expected picked_at %v, got %v", at, loaded.PickedAt)
	}
}

func TestLoadStateRejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := os.WriteFile(path, []byte("version = 1\nlast_picked = \"1404-02-40\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadState(path); err == nil {
		t.Fatalf("expected parse error for invalid date")
	}
}

func TestSaveStateRequiresPath(t *testing.T) {
	if err := SaveState(" ", &State{}); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
