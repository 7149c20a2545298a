package config

import (
	"path/filepath"
	"testing"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestAppDataDir(t *testing.T) {
	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{"windows localappdata", "windows",
			map[string]string{"LOCALAPPDATA": `C:\Local`, "APPDATA": `C:\Roaming`},
			filepath.Join(`C:\Local`, AppName)},
		{"windows appdata fallback", "windows",
			map[string]string{"APPDATA": `C:\Roaming`},
			filepath.Join(`C:\Roaming`, AppName)},
		{"windows no env", "windows", nil, "."},
		{"darwin", "darwin",
			map[string]string{"HOME": "/Users/u"},
			filepath.Join("/Users/u", "Library", "Application Support", AppName)},
		{"darwin no home", "darwin", nil, "."},
		{"linux", "linux",
			map[string]string{"HOME": "/home/u"},
			filepath.Join("/home/u", "."+shortName)},
		{"linux no home", "linux", nil, "."},
		{"other unix-like", "freebsd",
			map[string]string{"HOME": "/home/u"},
			filepath.Join("/home/u", "."+shortName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppDataDir(tt.goos, envFrom(tt.env))
			if got != tt.want {
				t.Errorf("AppDataDir(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestAppDataDirStable(t *testing.T) {
	env := envFrom(map[string]string{"HOME": "/home/u"})
	if AppDataDir("linux", env) != AppDataDir("linux", env) {
		t.Error("AppDataDir not stable for identical inputs")
	}
}
