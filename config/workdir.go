package config

import (
	"fmt"
	"os"
)

// PrepareWorkdir creates the resolved working directory if needed,
// restricts it to owner-only access and makes it the process's current
// directory, so command handlers can address wallet state relative to
// ".". Safe to call again on the same path.
func PrepareWorkdir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create working directory %s: %w", dir, err)
	}
	if err := os.Chmod(dir, 0o700); err != nil {
		return fmt.Errorf("failed to restrict permissions on %s: %w", dir, err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("failed to enter working directory %s: %w", dir, err)
	}
	return nil
}
