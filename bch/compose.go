// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bch

import (
	"github.com/bchscript/vm"
)

// AuthenticationProgram is the caller's request: authorize spending the
// output referenced by state's outpoint fields by running unlockingScript
// against lockingScript.
type AuthenticationProgram struct {
	UnlockingScript []byte
	LockingScript   []byte
	State           ExternalState
}

// isP2SH reports whether lockingScript matches the P2SH template:
// OP_HASH160 <20-byte hash> OP_EQUAL.
func isP2SH(lockingScript []byte) bool {
	return len(lockingScript) == 23 &&
		lockingScript[0] == OP_HASH160 &&
		lockingScript[1] == OP_DATA_20 &&
		lockingScript[22] == OP_EQUAL
}

// isPushOnly re-scans script as a program, instruction by instruction,
// accepting only push opcodes (OP_1NEGATE/OP_0/OP_1..OP_16, OP_DATA_1..75,
// PUSHDATA1/2/4) and correctly skipping each push's payload bytes rather
// than reinterpreting them as opcodes. This replaces the naive byte-range
// scan the source left as a known-buggy TODO.
func isPushOnly(script []byte) bool {
	is := NewInstructionSet(DefaultProviders())
	s := NewState(script, nil, ExternalState{})

	for s.IP < len(s.Script) {
		s = Before(s)
		opcode := OpcodeAt(s)

		if opcode > OP_16 {
			return false
		}

		op := is.Operators[opcode]
		if op.Operation == nil {
			return false
		}
		s = op.Operation(s)
		if s.Error != nil {
			return false
		}
	}
	return true
}

// Compose runs the two- or three-pass evaluation spec describes: unlock,
// then lock, then (when lockingScript matches the P2SH template) a third
// pass over the redeem script popped from the unlocking-final stack.
// Passes share only the stack; ip, lastCodeSeparator, and script reset at
// each boundary.
func Compose(program AuthenticationProgram, providers Providers) []vm.StepRecord[State] {
	is := NewInstructionSet(providers)

	unlockState := NewState(program.UnlockingScript, [][]byte{}, program.State)
	trace := vm.Debug(is, unlockState, "Begin unlocking script evaluation.")
	unlockFinal := trace[len(trace)-1].State
	if unlockFinal.Error != nil {
		return trace
	}

	lockState := NewState(program.LockingScript, unlockFinal.Stack, program.State)
	lockTrace := vm.Debug(is, lockState, "Begin locking script evaluation.")
	trace = append(trace, lockTrace...)
	lockFinal := lockTrace[len(lockTrace)-1].State
	if lockFinal.Error != nil {
		return trace
	}

	if !isP2SH(program.LockingScript) {
		return trace
	}

	if !isPushOnly(program.UnlockingScript) {
		trace = append(trace, vm.StepRecord[State]{
			Description: "P2SH error: unlockingScript must be push-only.",
			State:       Fail(lockFinal, ErrP2SHNotPushOnly, "unlockingScript contains a non-push opcode"),
		})
		return trace
	}

	if len(unlockFinal.Stack) == 0 {
		trace = append(trace, vm.StepRecord[State]{
			Description: "P2SH error: unlockingScript must not leave an empty stack.",
			State:       Fail(lockFinal, ErrP2SHEmptyStack, "unlockingScript left no redeem script to pop"),
		})
		return trace
	}

	redeemStack := make([][]byte, len(unlockFinal.Stack))
	copy(redeemStack, unlockFinal.Stack)
	redeemScript := redeemStack[len(redeemStack)-1]
	redeemStack = redeemStack[:len(redeemStack)-1]

	redeemState := NewState(redeemScript, redeemStack, program.State)
	redeemTrace := vm.Debug(is, redeemState, "Begin P2SH script evaluation.")
	trace = append(trace, redeemTrace...)

	return trace
}

// Evaluate runs Compose and reports whether the program authorizes
// spending: the final pass must end with no error and a truthy top stack
// element.
func Evaluate(program AuthenticationProgram, providers Providers) (bool, []vm.StepRecord[State]) {
	trace := Compose(program, providers)
	final := trace[len(trace)-1].State

	if final.Error != nil {
		return false, trace
	}
	if len(final.Stack) == 0 {
		return false, trace
	}
	return CastToBool(final.Stack[len(final.Stack)-1]), trace
}

// Authorize is Evaluate without the trace, for callers that only care
// whether the program authorizes spending.
func Authorize(program AuthenticationProgram, providers Providers) bool {
	ok, _ := Evaluate(program, providers)
	return ok
}
