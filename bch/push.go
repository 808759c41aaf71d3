// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bch

import (
	"fmt"

	"github.com/bchscript/vm"
)

// opNPush returns the operator for one of the OP_1NEGATE/OP_0/OP_1..OP_16
// opcodes, which push the constant Script Number n. These never fail.
func opNPush(n int64) vm.Operator[State] {
	return vm.Operator[State]{
		Asm:         vm.Static[State](fmt.Sprintf("OP_%d", n)),
		Description: vm.Static[State](fmt.Sprintf("Push the number %d.", n)),
		Operation: func(s State) State {
			return Push(s, EncodeScriptNumber(n))
		},
	}
}

// opDataPush returns the operator for OP_DATA_n: push the next n script
// bytes verbatim and advance ip past them.
func opDataPush(n int) vm.Operator[State] {
	return vm.Operator[State]{
		Asm: vm.Static[State](fmt.Sprintf("OP_DATA_%d", n)),
		Description: vm.Dynamic(func(s State) string {
			return fmt.Sprintf("Push %d bytes of constant data.", n)
		}),
		Operation: func(s State) State {
			if s.IP+n > len(s.Script) {
				return Fail(s, ErrMalformedPush,
					"OP_DATA_%d requires %d bytes but only %d remain", n, n, len(s.Script)-s.IP)
			}
			data := make([]byte, n)
			copy(data, s.Script[s.IP:s.IP+n])
			s = Push(s, data)
			s.IP += n
			return s
		},
	}
}

// pushDataMinimum is the smallest length that may legally use the
// PUSHDATA opcode with the given length-field width w.
func pushDataMinimum(w int) int {
	switch w {
	case 1:
		return 76
	case 2:
		return 256
	default: // 4
		return 65536
	}
}

// opPushData returns the operator for PUSHDATA1/2/4, whose length field is
// w bytes wide.
func opPushData(name string, w int) vm.Operator[State] {
	return vm.Operator[State]{
		Asm:         vm.Static[State](name),
		Description: vm.Static[State](name + ": push a variable-length data push."),
		Operation: func(s State) State {
			if s.IP+w > len(s.Script) {
				return Fail(s, ErrMalformedPush,
					"%s requires a %d-byte length field but only %d bytes remain", name, w, len(s.Script)-s.IP)
			}

			length := 0
			for i := 0; i < w; i++ {
				length |= int(s.Script[s.IP+i]) << uint(8*i)
			}

			if s.IP+w+length > len(s.Script) {
				return Fail(s, ErrMalformedPush,
					"%s declares %d bytes of data but only %d remain", name, length, len(s.Script)-s.IP-w)
			}

			if length < pushDataMinimum(w) {
				return Fail(s, ErrNonMinimalPush,
					"%s with length %d must use a shorter push opcode", name, length)
			}

			if length > maxPushSize {
				return Fail(s, ErrExceedsMaximumPush,
					"%s pushes %d bytes, exceeding the %d-byte limit", name, length, maxPushSize)
			}

			data := make([]byte, length)
			copy(data, s.Script[s.IP+w:s.IP+w+length])
			s = Push(s, data)
			s.IP = s.IP + w + length
			return s
		},
	}
}

// registerPushOperators populates ops with the full push opcode family:
// OP_1NEGATE/OP_0/OP_1..OP_16, OP_DATA_1..OP_DATA_75, and PUSHDATA1/2/4.
func registerPushOperators(ops *[256]vm.Operator[State]) {
	ops[OP_1NEGATE] = opNPush(-1)
	ops[OP_0] = opNPush(0)
	for opcode := OP_1; opcode <= OP_16; opcode++ {
		ops[opcode] = opNPush(int64(opcode - OP_1 + 1))
	}

	for n := OP_DATA_1; n <= OP_DATA_75; n++ {
		ops[n] = opDataPush(n)
	}

	ops[OP_PUSHDATA1] = opPushData("OP_PUSHDATA1", 1)
	ops[OP_PUSHDATA2] = opPushData("OP_PUSHDATA2", 2)
	ops[OP_PUSHDATA4] = opPushData("OP_PUSHDATA4", 4)
}
