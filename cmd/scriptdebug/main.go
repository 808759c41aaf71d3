// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command scriptdebug runs an unlocking/locking script pair through the bch
// instruction set and prints the step-by-step debug trace: one ASM and
// description line per instruction, following the unlock/lock/P2SH passes
// the program composer runs.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/bchscript/vm/bch"
	"github.com/bchscript/vm/bytesutil"
)

func main() {
	if err := run(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err // loadConfig already printed usage/help
	}

	unlockingScript, err := bytesutil.HexToBin(cfg.UnlockingScript)
	if err != nil {
		return fmt.Errorf("decoding --unlocking: %w", err)
	}
	lockingScript, err := bytesutil.HexToBin(cfg.LockingScript)
	if err != nil {
		return fmt.Errorf("decoding --locking: %w", err)
	}

	external, err := loadExternalState(cfg.ExternalState)
	if err != nil {
		return err
	}

	program := bch.AuthenticationProgram{
		UnlockingScript: unlockingScript,
		LockingScript:   lockingScript,
		State:           external,
	}

	ok, trace := bch.Evaluate(program, bch.DefaultProviders())

	for i, step := range trace {
		if step.Asm == "" {
			fmt.Printf("%4d  %s\n", i, step.Description)
			continue
		}
		fmt.Printf("%4d  %-20s %s\n", i, step.Asm, step.Description)
	}

	fmt.Println()
	if ok {
		fmt.Println("result: valid")
		return nil
	}
	fmt.Println("result: invalid")
	os.Exit(1)
	return nil
}
