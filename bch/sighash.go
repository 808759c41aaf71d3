// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bch

import (
	"bytes"
	"crypto/sha256"

	"github.com/bchscript/vm/bytesutil"
)

// SighashFlags selects which outputs the signature commits to, mirroring
// the low five bits of a Bitcoin signature's hash-type byte plus the
// ANYONECANPAY modifier bit.
type SighashFlags struct {
	Base         SighashBase
	AnyoneCanPay bool
}

// SighashBase is the base signing mode (mutually exclusive with the others).
type SighashBase int

const (
	// SighashAll commits to every output. OP_CHECKSIG selects SighashAll,
	// SighashNone or SighashSingle (and AnyoneCanPay) from the signature's
	// trailing hash-type byte.
	SighashAll SighashBase = iota
	SighashNone
	SighashSingle
)

// sighashTypeByte reassembles the canonical one-byte sighash type from its
// flags, matching the low-order bits the BCH/BIP143 preimage's final field
// commits to.
func (f SighashFlags) sighashTypeByte() uint32 {
	var b byte
	switch f.Base {
	case SighashNone:
		b = 0x02
	case SighashSingle:
		b = 0x03
	default:
		b = 0x01
	}
	if f.AnyoneCanPay {
		b |= 0x80
	}
	return uint32(b)
}

// doubleSHA256 returns SHA256(SHA256(data)).
func doubleSHA256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// BuildScriptCode assembles the scriptCode embedded in the sighash preimage:
// the VarInt-prefixed tail of the currently executing script starting just
// after the most recent OP_CODESEPARATOR (or the whole script if none has
// executed).
func BuildScriptCode(script []byte, lastCodeSeparator int) []byte {
	start := 0
	if lastCodeSeparator >= 0 {
		start = lastCodeSeparator
	}
	tail := script[start:]

	var buf bytes.Buffer
	buf.Write(bytesutil.PutVarInt(uint64(len(tail))))
	buf.Write(tail)
	return buf.Bytes()
}

// BuildPreimage assembles the BIP143-style, BCH replay-protected signature
// hash preimage from the external state, the scriptCode computed for this
// OP_CHECKSIG, and the requested sighash flags. Field order is fixed by
// spec (version, outpoints hash, sequence numbers hash, outpoint txid,
// outpoint index, scriptCode, outpoint value, sequence number, outputs
// hash, locktime, sighash type).
func BuildPreimage(ext ExternalState, scriptCode []byte, flags SighashFlags) []byte {
	var buf bytes.Buffer

	buf.Write(bytesutil.NumberToBinUint32LE(ext.Version))

	zero32 := [32]byte{}

	outpointsHash := ext.TransactionOutpointsHash
	sequenceHash := ext.TransactionSequenceNumbersHash
	if flags.AnyoneCanPay {
		outpointsHash = zero32
		sequenceHash = zero32
	}
	if flags.Base == SighashSingle || flags.Base == SighashNone {
		sequenceHash = zero32
	}
	buf.Write(outpointsHash[:])
	buf.Write(sequenceHash[:])

	buf.Write(ext.OutpointTransactionHash[:])
	buf.Write(bytesutil.NumberToBinUint32LE(ext.OutpointIndex))

	buf.Write(scriptCode)

	buf.Write(bytesutil.BigIntToBinUint64LE(ext.OutpointValue))
	buf.Write(bytesutil.NumberToBinUint32LE(ext.SequenceNumber))

	outputsHash := ext.TransactionOutputsHash
	switch flags.Base {
	case SighashSingle:
		outputsHash = ext.CorrespondingOutputHash
	case SighashNone:
		outputsHash = zero32
	}
	buf.Write(outputsHash[:])

	buf.Write(bytesutil.NumberToBinUint32LE(ext.Locktime))
	buf.Write(bytesutil.NumberToBinUint32LE(flags.sighashTypeByte()))

	return buf.Bytes()
}

// SignatureHash computes the double-SHA256 digest OP_CHECKSIG verifies
// against: SHA256(SHA256(preimage)).
func SignatureHash(ext ExternalState, scriptCode []byte, flags SighashFlags) [32]byte {
	return doubleSHA256(BuildPreimage(ext, scriptCode, flags))
}
