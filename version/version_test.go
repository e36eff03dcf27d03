package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit := Version, GitCommit
	return func() {
		Version = origVersion
		GitCommit = origCommit
	}
}

func TestGetVersionInfoLdflags(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	GitCommit = "abc1234"

	info := GetVersionInfo()
	if info.Version != "1.0.0" {
		t.Errorf("expected '1.0.0', got %q", info.Version)
	}
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected 'abc1234', got %q", info.GitCommit)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected %q, got %q", runtime.Version(), info.GoVersion)
	}
}

func TestGetVersionInfoDirtyVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0-dirty"

	if GetVersionInfo().IsRelease {
		t.Error("dirty version should not be a release")
	}
}

func TestGetShortVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "2.1.0"
	GitCommit = "def5678"

	got := GetShortVersion()
	if !strings.HasPrefix(got, "2.1.0-def5678") {
		t.Errorf("expected prefix '2.1.0-def5678', got %q", got)
	}
}

func TestModuleVersion(t *testing.T) {
	tests := map[string]struct {
		bi   debug.BuildInfo
		want string
	}{
		"main module": {
			bi:   debug.BuildInfo{Main: debug.Module{Path: ModulePath, Version: "v1.4.0"}},
			want: "v1.4.0",
		},
		"devel main": {
			bi:   debug.BuildInfo{Main: debug.Module{Path: ModulePath, Version: "(devel)"}},
			want: "",
		},
		"dependency": {
			bi: debug.BuildInfo{
				Main: debug.Module{Path: "example.com/petstore"},
				Deps: []*debug.Module{{Path: "github.com/rs/zerolog", Version: "v1.34.0"}, {Path: ModulePath, Version: "v0.3.1"}},
			},
			want: "v0.3.1",
		},
		"replaced dependency": {
			bi: debug.BuildInfo{
				Deps: []*debug.Module{{Path: ModulePath, Version: "v0.3.1", Replace: &debug.Module{Version: "v0.3.2"}}},
			},
			want: "v0.3.2",
		},
		"absent": {
			bi:   debug.BuildInfo{Main: debug.Module{Path: "example.com/other"}},
			want: "",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := moduleVersion(&tc.bi); got != tc.want {
				t.Errorf("moduleVersion() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUserAgent(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.3"

	ua := UserAgent()
	if !strings.HasPrefix(ua, "apiruntime/1.2.3 (") {
		t.Errorf("unexpected user agent %q", ua)
	}
	if !strings.Contains(ua, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("expected platform in user agent %q", ua)
	}
}
