package cli

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/persiancal/jdp/internal/buildinfo"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	prevRead := readBuildInfo
	t.Cleanup(func() { readBuildInfo = prevRead })
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return bi, bi != nil
	}
}

func TestCurrentVersionInfoFromBuildInfo(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		GoVersion: "go1.23.4",
		Main: debug.Module{
			Path:    "github.com/persiancal/jdp",
			Version: "v0.3.0",
		},
		Deps: []*debug.Module{
			{Path: calendarModule, Version: "v1.2.1"},
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2025-03-21T08:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "GOOS", Value: "windows"},
			{Key: "GOARCH", Value: "amd64"},
		},
	})

	info := currentVersionInfo()

	if info.Version != "v0.3.0" {
		t.Fatalf("Version = %q, want %q", info.Version, "v0.3.0")
	}
	if info.Commit != "abc123" || info.CommitTime != "2025-03-21T08:00:00Z" || !info.Modified {
		t.Fatalf("unexpected vcs info: %+v", info)
	}
	if info.GoVersion != "go1.23.4" {
		t.Fatalf("GoVersion = %q, want %q", info.GoVersion, "go1.23.4")
	}
	if info.Platform != "windows/amd64" {
		t.Fatalf("Platform = %q, want windows/amd64", info.Platform)
	}
	if info.Calendar != "v1.2.1" {
		t.Fatalf("Calendar = %q, want v1.2.1", info.Calendar)
	}
}

func TestCurrentVersionInfoFallsBackToLdflags(t *testing.T) {
	stubBuildInfo(t, nil)

	prevVersion, prevCommit := buildinfo.Version, buildinfo.Commit
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit = prevVersion, prevCommit })
	buildinfo.Version = "v9.9.9"
	buildinfo.Commit = "feedface"

	info := currentVersionInfo()

	if info.Version != "v9.9.9" || info.Commit != "feedface" {
		t.Fatalf("expected ldflags values, got %+v", info)
	}
	if info.ModulePath != defaultModulePath {
		t.Fatalf("ModulePath = %q, want %q", info.ModulePath, defaultModulePath)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Fatalf("Platform = %q, want runtime platform", info.Platform)
	}
}

func TestVersionCommandStructuredOutput(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		GoVersion: "go1.23.4",
		Main:      debug.Module{Path: "github.com/persiancal/jdp", Version: "(devel)"},
		Settings:  []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}},
	})

	t.Run("json", func(t *testing.T) {
		setupCLI(t, "json")
		out := captureStdout(t, func() {
			if err := versionCmd.RunE(versionCmd, nil); err != nil {
				t.Fatalf("versionCmd.RunE: %v", err)
			}
		})

		var resp struct {
			OK   bool        `json:"ok"`
			Data versionInfo `json:"data"`
		}
		if err := json.Unmarshal([]byte(out), &resp); err != nil {
			t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
		}
		if !resp.OK || resp.Data.Commit != "deadbeef" {
			t.Fatalf("unexpected response: %s", out)
		}
		if resp.Data.Version != "devel" {
			t.Fatalf("Version = %q, want devel", resp.Data.Version)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		setupCLI(t, "yaml")
		out := captureStdout(t, func() {
			if err := versionCmd.RunE(versionCmd, nil); err != nil {
				t.Fatalf("versionCmd.RunE: %v", err)
			}
		})

		var resp struct {
			OK   bool        `yaml:"ok"`
			Data versionInfo `yaml:"data"`
		}
		if err := yaml.Unmarshal([]byte(out), &resp); err != nil {
			t.Fatalf("expected YAML output, got parse error: %v; out=%s", err, out)
		}
		if !resp.OK || resp.Data.Commit != "deadbeef" {
			t.Fatalf("unexpected response: %s", out)
		}
	})
}
