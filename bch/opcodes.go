// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bch

// Opcode values, matching the published Bitcoin Cash opcode table.
const (
	OP_0       = 0x00
	OP_DATA_1  = 0x01
	OP_DATA_20 = 0x14
	OP_DATA_75 = 0x4b

	OP_PUSHDATA1 = 0x4c
	OP_PUSHDATA2 = 0x4d
	OP_PUSHDATA4 = 0x4e

	OP_1NEGATE = 0x4f
	OP_1       = 0x51
	OP_16      = 0x60

	OP_VERIFY = 0x69

	OP_CODESEPARATOR = 0xab

	OP_DUP         = 0x76
	OP_EQUAL       = 0x87
	OP_EQUALVERIFY = 0x88

	OP_HASH160  = 0xa9
	OP_CHECKSIG = 0xac
)

// maxPushSize is the maximum number of bytes a single push opcode may place
// on the stack.
const maxPushSize = 520
