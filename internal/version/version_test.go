package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

// stubBuildInfo replaces the embedded build info for the test.
func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	original := readBuildInfo
	t.Cleanup(func() { readBuildInfo = original })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestString(t *testing.T) {
	stubBuildInfo(t, nil)
	originalCommit, originalDate := Commit, Date
	defer func() { Commit, Date = originalCommit, originalDate }()

	Commit, Date = "unknown", "unknown"
	if got := String(); !strings.HasPrefix(got, "swatch version "+Version+" (") {
		t.Errorf("String() = %q", got)
	}

	Commit, Date = "0123456789abcdef", "2025-01-01T00:00:00Z"
	if got := String(); !strings.Contains(got, "commit: 01234567,") {
		t.Errorf("String() = %q, want the commit shortened to 8 characters", got)
	}

	Commit = "abc"
	if got := String(); !strings.Contains(got, "commit: abc,") {
		t.Errorf("String() = %q", got)
	}
}

func TestGetInfo(t *testing.T) {
	stubBuildInfo(t, nil)
	info := GetInfo()
	if info.Version != Version || info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo() = %+v", info)
	}
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}

func TestGetInfoFromBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := Version, Commit, Date
	defer func() { Version, Commit, Date = originalVersion, originalCommit, originalDate }()
	Version, Commit, Date = "dev", "unknown", "unknown"

	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/jmylchreest/swatch", Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2025-06-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	info := GetInfo()
	if info.Version != "v1.2.3" || info.Commit != "fedcba9876543210" || info.Date != "2025-06-01T12:00:00Z" || !info.Modified {
		t.Errorf("GetInfo() = %+v", info)
	}
	if got := String(); !strings.Contains(got, "commit: fedcba98-dirty,") {
		t.Errorf("String() = %q", got)
	}
	if Short() != "v1.2.3" {
		t.Errorf("Short() = %q, want v1.2.3", Short())
	}
}

func TestLdflagsOverrideBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := Version, Commit, Date
	defer func() { Version, Commit, Date = originalVersion, originalCommit, originalDate }()
	Version, Commit, Date = "1.0.0", "abc", "2025-01-01T00:00:00Z"

	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2025-06-01T12:00:00Z"},
		},
	})

	info := GetInfo()
	if info.Version != "1.0.0" || info.Commit != "abc" || info.Date != "2025-01-01T00:00:00Z" || info.Modified {
		t.Errorf("GetInfo() = %+v", info)
	}
}
