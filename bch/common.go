// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bch

import (
	"bytes"

	"github.com/bchscript/vm"
	"github.com/bchscript/vm/cryptoapi"
)

var opDup = vm.Operator[State]{
	Asm:         vm.Static[State]("OP_DUP"),
	Description: vm.Static[State]("Duplicate the top stack item."),
	Operation: func(s State) State {
		if len(s.Stack) == 0 {
			return Fail(s, ErrEmptyStack, "OP_DUP on an empty stack")
		}
		top := s.Stack[len(s.Stack)-1]
		dup := make([]byte, len(top))
		copy(dup, top)
		return Push(s, dup)
	},
}

var opVerify = vm.Operator[State]{
	Asm:         vm.Static[State]("OP_VERIFY"),
	Description: vm.Static[State]("Pop the top item and fail unless it is truthy."),
	Operation: func(s State) State {
		s, top, ok := Pop(s)
		if !ok {
			return Fail(s, ErrEmptyStack, "OP_VERIFY on an empty stack")
		}
		if !CastToBool(top) {
			return Fail(s, ErrFailedVerify, "OP_VERIFY failed")
		}
		return s
	},
}

// verify applies OP_VERIFY's semantics in-process, for opcodes (like
// OP_EQUALVERIFY) that compose at the semantic level rather than by
// literally re-dispatching OP_VERIFY.
func verify(s State) State {
	return opVerify.Operation(s)
}

var opEqual = vm.Operator[State]{
	Asm:         vm.Static[State]("OP_EQUAL"),
	Description: vm.Static[State]("Pop two items and push whether they are byte-identical."),
	Operation: func(s State) State {
		s, b, ok := Pop(s)
		if !ok {
			return Fail(s, ErrEmptyStack, "OP_EQUAL on an empty stack")
		}
		s, a, ok := Pop(s)
		if !ok {
			return Fail(s, ErrEmptyStack, "OP_EQUAL on an empty stack")
		}
		if bytes.Equal(a, b) {
			return Push(s, EncodeScriptNumber(1))
		}
		return Push(s, EncodeScriptNumber(0))
	},
}

var opEqualVerify = vm.Operator[State]{
	Asm:         vm.Static[State]("OP_EQUALVERIFY"),
	Description: vm.Static[State]("OP_EQUAL followed by OP_VERIFY."),
	Operation: func(s State) State {
		return verify(opEqual.Operation(s))
	},
}

var opCodeSeparator = vm.Operator[State]{
	Asm:         vm.Static[State]("OP_CODESEPARATOR"),
	Description: vm.Static[State]("Mark this position as the most recent code separator."),
	Operation: func(s State) State {
		s.LastCodeSeparator = s.IP
		return s
	},
}

// opHash160 returns the OP_HASH160 operator, which replaces the top stack
// item with RIPEMD160(SHA256(item)) using the supplied hashers.
func opHash160(sha cryptoapi.SHA256Hasher, ripemd cryptoapi.RIPEMD160Hasher) vm.Operator[State] {
	return vm.Operator[State]{
		Asm:         vm.Static[State]("OP_HASH160"),
		Description: vm.Static[State]("Replace the top item with RIPEMD160(SHA256(item))."),
		Operation: func(s State) State {
			s, top, ok := Pop(s)
			if !ok {
				return Fail(s, ErrEmptyStack, "OP_HASH160 on an empty stack")
			}
			shaDigest := sha.Hash(top)
			ripemdDigest := ripemd.Hash(shaDigest[:])
			return Push(s, ripemdDigest[:])
		},
	}
}
