package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/persiancal/jdp/internal/buildinfo"
)

const defaultModulePath = "github.com/persiancal/jdp"

type versionInfo struct {
	Version    string `json:"version" yaml:"version"`
	ModulePath string `json:"module_path" yaml:"module_path"`
	Commit     string `json:"commit,omitempty" yaml:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty" yaml:"commit_time,omitempty"`
	Modified   bool   `json:"modified" yaml:"modified"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	Platform   string `json:"platform" yaml:"platform"`
	Calendar   string `json:"calendar" yaml:"calendar"`
}

const calendarModule = "github.com/yaa110/go-persian-calendar"

var (
	readBuildInfo = debug.ReadBuildInfo
	versionShort  bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show jdp version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()

		switch {
		case isStructuredOutput():
			outputSuccess(info)
		case versionShort:
			fmt.Println(info.Version)
		default:
			fmt.Printf("jdp %s (%s)\n", info.Version, info.Platform)
			if info.Commit != "" {
				dirty := ""
				if info.Modified {
					dirty = ", modified"
				}
				fmt.Printf("commit %s %s%s\n", info.Commit, info.CommitTime, dirty)
			}
			fmt.Printf("built with %s, calendar %s\n", info.GoVersion, info.Calendar)
		}
		return nil
	},
}

// currentVersionInfo prefers module build info and falls back to values
// stamped with -ldflags.
func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		Calendar:   "unknown",
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		if bi.Main.Path != "" {
			info.ModulePath = bi.Main.Path
		}
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			info.Version = v
		}
		if bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}
		for _, dep := range bi.Deps {
			if dep.Path == calendarModule {
				info.Calendar = dep.Version
			}
		}

		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
		if goos, goarch := settings["GOOS"], settings["GOARCH"]; goos != "" && goarch != "" {
			info.Platform = goos + "/" + goarch
		}
		info.Commit = settings["vcs.revision"]
		info.CommitTime = settings["vcs.time"]
		info.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	if info.Version == "devel" {
		info.Version = buildinfo.VersionOr("devel")
	}
	if info.Commit == "" {
		info.Commit = buildinfo.Commit
	}
	if info.CommitTime == "" {
		info.CommitTime = buildinfo.Date
	}
	return info
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version")
	rootCmd.AddCommand(versionCmd)
}
