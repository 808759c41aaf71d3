// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bch

import (
	"github.com/bchscript/vm"
	"github.com/bchscript/vm/cryptoapi"
)

// Providers bundles the crypto collaborators OP_HASH160 and OP_CHECKSIG
// depend on. Use DefaultProviders for the standard stdlib/btcec-backed
// implementations, or supply test doubles.
type Providers struct {
	SHA256    cryptoapi.SHA256Hasher
	RIPEMD160 cryptoapi.RIPEMD160Hasher
	Verifier  cryptoapi.SignatureVerifier
}

// DefaultProviders returns the production crypto providers: stdlib SHA-256,
// golang.org/x/crypto RIPEMD-160, and btcec/v2 secp256k1 verification.
func DefaultProviders() Providers {
	return Providers{
		SHA256:    cryptoapi.DefaultSHA256Hasher{},
		RIPEMD160: cryptoapi.DefaultRIPEMD160Hasher{},
		Verifier:  cryptoapi.DefaultSignatureVerifier{},
	}
}

var undefinedOperator = vm.Operator[State]{
	Asm: vm.Dynamic(func(s State) string {
		return "[unknown]"
	}),
	Description: vm.Dynamic(func(s State) string {
		return "Unknown opcode."
	}),
	Operation: func(s State) State {
		return Fail(s, ErrUnknownOpcode, "opcode 0x%02x", OpcodeAt(s))
	},
}

// NewInstructionSet builds the Bitcoin Cash flavored vm.InstructionSet,
// wiring the 256-entry dispatch table once at construction time: every
// entry defaults to Undefined and is overwritten for the opcodes this VM
// implements, making lookup an O(1) array index.
func NewInstructionSet(providers Providers) vm.InstructionSet[State] {
	var operators [256]vm.Operator[State]

	registerPushOperators(&operators)

	operators[OP_VERIFY] = opVerify
	operators[OP_DUP] = opDup
	operators[OP_EQUAL] = opEqual
	operators[OP_EQUALVERIFY] = opEqualVerify
	operators[OP_CODESEPARATOR] = opCodeSeparator
	operators[OP_HASH160] = opHash160(providers.SHA256, providers.RIPEMD160)
	operators[OP_CHECKSIG] = opCheckSig(providers.SHA256, providers.Verifier)

	return vm.InstructionSet[State]{
		Before:    Before,
		Clone:     Clone,
		Continue:  Continue,
		OpcodeAt:  OpcodeAt,
		Operators: operators,
		Undefined: undefinedOperator,
	}
}
