// Package vm implements a generic, instruction-set-agnostic virtual machine
// runtime. It knows nothing about stacks, opcodes, or scripts; it only knows
// how to clone a program state, advance it one instruction at a time, and
// record the trace of states an evaluation passes through. Concrete
// instruction sets (see package bch for Bitcoin Cash, package demo for a toy
// example) plug into it by supplying an InstructionSet[S] for their own
// state type S.
package vm

// Rendering produces a human-readable string from a program state. It is
// either a constant (Static) or computed from the post-instruction state
// (Dynamic). Dynamic takes precedence when both are set.
type Rendering[S any] struct {
	Static  string
	Dynamic func(S) string
}

// Render evaluates the rendering against state s.
func (r Rendering[S]) Render(s S) string {
	if r.Dynamic != nil {
		return r.Dynamic(s)
	}
	return r.Static
}

// Static builds a constant Rendering.
func Static[S any](s string) Rendering[S] {
	return Rendering[S]{Static: s}
}

// Dynamic builds a Rendering computed from the state.
func Dynamic[S any](f func(S) string) Rendering[S] {
	return Rendering[S]{Dynamic: f}
}

// Operator is a single opcode's behavior: how to render its disassembly and
// description, and how it mutates program state.
type Operator[S any] struct {
	Asm         Rendering[S]
	Description Rendering[S]
	Operation   func(S) S
}

// InstructionSet bundles everything the generic runtime needs to execute a
// particular scripting language over state type S.
type InstructionSet[S any] struct {
	// Before is the pre-instruction hook. It canonically advances the
	// instruction pointer by one so operator bodies observe the
	// post-opcode position, and is the only place the runtime allows a
	// state mutation before dispatch.
	Before func(S) S

	// Clone produces a deep copy of s, independent of the original.
	Clone func(s S) S

	// Continue is the loop predicate: false halts Evaluate/Debug.
	Continue func(S) bool

	// OpcodeAt returns the opcode byte that Before just consumed, i.e.
	// script[ip-1]. This is the only legal way the runtime (or an
	// operator) learns which opcode is executing.
	OpcodeAt func(S) byte

	// Operators is a sparse, opcode-indexed dispatch table.
	Operators [256]Operator[S]

	// Undefined is dispatched when Operators[opcode] has no Operation.
	Undefined Operator[S]
}

func (is InstructionSet[S]) lookup(opcode byte) Operator[S] {
	if op := is.Operators[opcode]; op.Operation != nil {
		return op
	}
	return is.Undefined
}

// dispatch runs Before then the matching operator, returning both the
// resulting state and the operator that ran (needed by Debug to render
// asm/description against the post-instruction state).
func dispatch[S any](is InstructionSet[S], s S) (S, Operator[S]) {
	s = is.Before(s)
	op := is.lookup(is.OpcodeAt(s))
	return op.Operation(s), op
}

// StepMutate applies Before then dispatches to the matching operator (or
// Undefined), mutating and returning s in place.
func StepMutate[S any](is InstructionSet[S], s S) S {
	s, _ = dispatch(is, s)
	return s
}

// Step clones s and applies StepMutate to the clone, leaving the original
// untouched.
func Step[S any](is InstructionSet[S], s S) S {
	return StepMutate(is, is.Clone(s))
}

// Evaluate clones s, then repeatedly applies StepMutate while Continue
// holds, returning the final state.
func Evaluate[S any](is InstructionSet[S], s S) S {
	state := is.Clone(s)
	for is.Continue(state) {
		state = StepMutate(is, state)
	}
	return state
}

// StepRecord is one entry of a debug trace: a snapshot paired with the
// human-readable rendering produced by the operator that produced it (or a
// synthetic banner for the initial entry).
type StepRecord[S any] struct {
	Asm         string
	Description string
	State       S
}

// Debug clones s, records an initial synthetic step tagged with
// initialDescription, then repeatedly steps the working copy, snapshotting
// via Clone after each instruction and tagging the snapshot with the
// operator's asm/description evaluated against the post-instruction state.
func Debug[S any](is InstructionSet[S], s S, initialDescription string) []StepRecord[S] {
	state := is.Clone(s)
	steps := []StepRecord[S]{{
		Description: initialDescription,
		State:       is.Clone(state),
	}}

	for is.Continue(state) {
		var op Operator[S]
		state, op = dispatch(is, state)
		snapshot := is.Clone(state)
		steps = append(steps, StepRecord[S]{
			Asm:         op.Asm.Render(state),
			Description: op.Description.Render(state),
			State:       snapshot,
		})
	}

	return steps
}
