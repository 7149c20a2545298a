package config

import "path/filepath"

const (
	// AppName is the directory name used on platforms with a shared
	// application-data root.
	AppName = "Gowallet"

	// shortName is the dotted directory name used on Unix-like systems.
	shortName = "gowallet"
)

// AppDataDir returns the default application directory for the given
// OS family. It performs no filesystem access: the decision is a pure
// lookup over the supplied environment. When the relevant variable is
// absent it falls back to the current directory rather than failing,
// so directory resolution can never abort the process.
func AppDataDir(goos string, getenv func(string) string) string {
	switch goos {
	case "windows":
		if dir := getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, AppName)
		}
		if dir := getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, AppName)
		}
	case "darwin":
		if home := getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", AppName)
		}
	default:
		if home := getenv("HOME"); home != "" {
			return filepath.Join(home, "."+shortName)
		}
	}
	return "."
}
