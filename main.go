package main

import (
	"errors"
	"fmt"
	"os"

	"gowallet/config"
	"gowallet/dispatch"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("main")

// errUsage marks an invocation rejected before any command ran; the
// diagnostics were already printed.
var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "gowallet: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	transforms, tokens, diags := config.ParseArgs(args)
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d)
		}
		fmt.Fprintln(os.Stderr)
		dispatch.PrintUsage(os.Stderr, dispatch.Table())
		return errUsage
	}

	cfg, workdir, err := config.Resolve(transforms)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		logging.SetAllLoggers(logging.LevelDebug)
	} else {
		logging.SetAllLoggers(logging.LevelError)
	}
	log.Debugf("resolved working directory %s", workdir)

	if err := config.PrepareWorkdir(workdir); err != nil {
		return err
	}

	return dispatch.Dispatch(cfg, tokens, dispatch.Table(), os.Stdout)
}
