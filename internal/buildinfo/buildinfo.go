// Package buildinfo reports which build of addr is running.
package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// ModulePath is reported when the binary carries no module information.
const ModulePath = "github.com/makery/addressapp"

// Release builds inject these via ldflags. They default to empty for
// local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// Info describes the running binary.
type Info struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
}

var readBuildInfo = debug.ReadBuildInfo

// Current combines the module build info embedded by the Go toolchain with the
// ldflags values. Embedded values win.
func Current() Info {
	info := Info{
		Version:    "devel",
		ModulePath: ModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok || bi == nil {
		applyLdflags(&info)
		return info
	}

	if bi.Main.Path != "" {
		info.ModulePath = bi.Main.Path
	}
	info.Version = normalizeVersion(bi.Main.Version)
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	if val := setting(bi, "GOOS"); val != "" {
		info.GOOS = val
	}
	if val := setting(bi, "GOARCH"); val != "" {
		info.GOARCH = val
	}

	info.Commit = setting(bi, "vcs.revision")
	info.CommitTime = setting(bi, "vcs.time")
	info.Modified = strings.EqualFold(setting(bi, "vcs.modified"), "true")
	applyLdflags(&info)

	return info
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

func setting(bi *debug.BuildInfo, key string) string {
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func applyLdflags(info *Info) {
	if info.Version == "devel" && Version != "" {
		info.Version = normalizeVersion(Version)
	}
	if info.Commit == "" {
		info.Commit = Commit
	}
	if info.CommitTime == "" {
		info.CommitTime = Date
	}
}
