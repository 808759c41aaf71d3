package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

// config defines the configuration options for scriptdebug.
//
// See loadConfig for details on the configuration load process.
type config struct {
	UnlockingScript string `short:"u" long:"unlocking" description:"Hex-encoded unlocking script"`
	LockingScript   string `short:"l" long:"locking" description:"Hex-encoded locking script"`
	ExternalState   string `short:"e" long:"external" description:"Path to a JSON external-state fixture (defaults to all-zero state)"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	cfg := config{}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	if cfg.UnlockingScript == "" || cfg.LockingScript == "" {
		err := fmt.Errorf("loadConfig: both --unlocking and --locking are required")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
