// Package bch implements the Bitcoin Cash flavored instruction set: Script
// Number codec, push opcode family, common opcodes, BIP143-style sighash
// preimage construction, and the unlock/lock/P2SH program composer. It
// plugs into the generic runtime in package vm via InstructionSet.
package bch

// ExternalState is the per-input, read-only context supplied by the caller.
// It never changes during a pass; operators only read it.
type ExternalState struct {
	BlockHeight uint32
	BlockTime   uint32
	Locktime    uint32
	Version     uint32

	TransactionOutpointsHash       [32]byte
	TransactionOutputsHash         [32]byte
	TransactionSequenceNumbersHash [32]byte
	CorrespondingOutputHash        [32]byte

	OutpointTransactionHash [32]byte
	OutpointIndex           uint32
	OutpointValue           uint64
	SequenceNumber          uint32
}

// State is the Bitcoin Cash instruction set's program state: the minimum
// state (ip, script), the data stack, an optional latched error, the
// internal lastCodeSeparator bookkeeping, and the read-only external state.
type State struct {
	IP     int
	Script []byte

	Stack [][]byte

	Error *Error

	LastCodeSeparator int

	External ExternalState
}

// NewState builds the initial state for one evaluation pass: ip 0, no
// lastCodeSeparator, the given starting stack and script.
func NewState(script []byte, stack [][]byte, external ExternalState) State {
	return State{
		IP:                0,
		Script:            script,
		Stack:             stack,
		LastCodeSeparator: -1,
		External:          external,
	}
}

// Clone produces a deeply independent copy: mutating the clone's stack,
// script, or error leaves the original unchanged.
func Clone(s State) State {
	script := make([]byte, len(s.Script))
	copy(script, s.Script)

	stack := make([][]byte, len(s.Stack))
	for i, elem := range s.Stack {
		cp := make([]byte, len(elem))
		copy(cp, elem)
		stack[i] = cp
	}

	var errCopy *Error
	if s.Error != nil {
		e := *s.Error
		errCopy = &e
	}

	return State{
		IP:                s.IP,
		Script:            script,
		Stack:             stack,
		Error:             errCopy,
		LastCodeSeparator: s.LastCodeSeparator,
		External:          s.External,
	}
}

// Before advances ip by one, so the dispatched operator's body observes the
// post-opcode position. If the script is exhausted, ip is left unchanged;
// Evaluate and Debug never step such a state (Continue is already false),
// but a direct Step or StepMutate still dispatches on script[ip-1].
func Before(s State) State {
	if s.IP < len(s.Script) {
		s.IP++
	}
	return s
}

// Continue halts execution once an error has latched or the instruction
// pointer has run off the end of the script.
func Continue(s State) bool {
	return s.Error == nil && s.IP < len(s.Script)
}

// OpcodeAt returns the opcode byte that Before just consumed: script[ip-1].
func OpcodeAt(s State) byte {
	return s.Script[s.IP-1]
}

// Pop removes and returns the top stack element. ok is false (and s is
// unchanged) if the stack is empty.
func Pop(s State) (State, []byte, bool) {
	if len(s.Stack) == 0 {
		return s, nil, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return s, top, true
}

// Push appends v to the top of the stack.
func Push(s State, v []byte) State {
	s.Stack = append(s.Stack, v)
	return s
}

// Fail latches a VM error onto s.
func Fail(s State, kind ErrorKind, format string, args ...interface{}) State {
	s.Error = newError(kind, format, args...)
	return s
}
