// Package demo is a toy instruction set used to demonstrate that package vm
// is instruction-set agnostic: its stack holds plain integers rather than
// byte arrays, and its dispatch table has five entries instead of the
// Bitcoin Cash instruction set's dozens.
package demo

import "github.com/bchscript/vm"

// Opcode values for the demo instruction set.
const (
	OpZero    = 0
	OpInc     = 1
	OpDec     = 2
	OpAdd     = 3
	OpCodeSep = 171
)

// State is the demo instruction set's program state.
type State struct {
	IP                int
	Script            []byte
	Stack             []int64
	LastCodeSeparator int
}

func clone(s State) State {
	script := make([]byte, len(s.Script))
	copy(script, s.Script)
	stack := make([]int64, len(s.Stack))
	copy(stack, s.Stack)
	return State{
		IP:                s.IP,
		Script:            script,
		Stack:             stack,
		LastCodeSeparator: s.LastCodeSeparator,
	}
}

// before advances ip by one so operator bodies observe the post-opcode
// position. If the script is already exhausted, ip is left unchanged (mirrors
// package bch's Before); Evaluate and Debug stop before that case because
// Continue's bounds check is false, while a direct Step still dispatches.
func before(s State) State {
	if s.IP < len(s.Script) {
		s.IP++
	}
	return s
}

func continueState(s State) bool {
	return s.IP < len(s.Script)
}

func opcodeAt(s State) byte {
	return s.Script[s.IP-1]
}

func pop(s State) (State, int64) {
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return s, top
}

func push(s State, v int64) State {
	s.Stack = append(s.Stack, v)
	return s
}

// InstructionSet returns the demo instruction set's vm.InstructionSet.
func InstructionSet() vm.InstructionSet[State] {
	return vm.InstructionSet[State]{
		Before:   before,
		Clone:    clone,
		Continue: continueState,
		OpcodeAt: opcodeAt,
		Undefined: vm.Operator[State]{
			Asm:         vm.Static[State]("[undefined]"),
			Description: vm.Static[State]("Unknown demo opcode."),
			Operation:   func(s State) State { return s },
		},
		Operators: [256]vm.Operator[State]{
			OpZero: {
				Asm:         vm.Static[State]("OP_0"),
				Description: vm.Static[State]("Push 0."),
				Operation:   func(s State) State { return push(s, 0) },
			},
			OpInc: {
				Asm:         vm.Static[State]("OP_INC"),
				Description: vm.Static[State]("Increment the top stack item."),
				Operation: func(s State) State {
					s, top := pop(s)
					return push(s, top+1)
				},
			},
			OpDec: {
				Asm:         vm.Static[State]("OP_DEC"),
				Description: vm.Static[State]("Decrement the top stack item."),
				Operation: func(s State) State {
					s, top := pop(s)
					return push(s, top-1)
				},
			},
			OpAdd: {
				Asm:         vm.Static[State]("OP_ADD"),
				Description: vm.Static[State]("Add the top two stack items."),
				Operation: func(s State) State {
					s, b := pop(s)
					s, a := pop(s)
					return push(s, a+b)
				},
			},
			OpCodeSep: {
				Asm:         vm.Static[State]("OP_CODESEP"),
				Description: vm.Static[State]("Mark the last code separator."),
				Operation: func(s State) State {
					s.LastCodeSeparator = s.IP
					return s
				},
			},
		},
	}
}
