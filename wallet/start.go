package wallet

import (
	"fmt"
	"os"
	"os/exec"

	"gowallet/config"
)

// Start launches the wallet server for the configured network. With
// the detach flag the server is left running in the background,
// otherwise the client waits for it to exit.
func Start(cfg *config.Config, _ []string) error {
	path, err := exec.LookPath(DaemonBin)
	if err != nil {
		return fmt.Errorf("wallet server binary %q not found in PATH: %w", DaemonBin, err)
	}

	args := []string{"--server", cfg.Server, "--dir", cfg.Dir}
	if cfg.Testnet {
		args = append(args, "--testnet")
	}
	cmd := exec.Command(path, args...)

	if cfg.Detach {
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("failed to start wallet server: %w", err)
		}
		logging.Debugf("detached wallet server, pid %d", cmd.Process.Pid)
		fmt.Fprintf(out, "Server started, pid %d\n", cmd.Process.Pid)
		return cmd.Process.Release()
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wallet server exited: %w", err)
	}
	return nil
}
