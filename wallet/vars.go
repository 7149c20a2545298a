package wallet

import (
	"github.com/ipfs/go-log/v2"
)

var (
	// Global logger instance
	logging = log.Logger("wallet")

	// Version information (set via ldflags)
	Version = "0.1.0"
)

// DaemonBin is the wallet server binary launched by the start command.
const DaemonBin = "gowalletd"
