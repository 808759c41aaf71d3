// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bch

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/bchscript/vm/bytesutil"
	"github.com/stretchr/testify/require"
)

func fixtureExternalState() ExternalState {
	var outpoints, sequences, outputs, corresponding, outpointTx [32]byte
	for i := range outpoints {
		outpoints[i] = byte(i + 1)
		sequences[i] = byte(i + 2)
		outputs[i] = byte(i + 3)
		corresponding[i] = byte(i + 4)
		outpointTx[i] = byte(i + 5)
	}
	return ExternalState{
		Version:                        2,
		Locktime:                       500000,
		TransactionOutpointsHash:       outpoints,
		TransactionSequenceNumbersHash: sequences,
		TransactionOutputsHash:         outputs,
		CorrespondingOutputHash:        corresponding,
		OutpointTransactionHash:        outpointTx,
		OutpointIndex:                  7,
		OutpointValue:                  123456789,
		SequenceNumber:                 0xfffffffe,
	}
}

// TestBuildScriptCodeNoCodeSeparator checks the VarInt-prefixed whole-script
// case (lastCodeSeparator == -1).
func TestBuildScriptCodeNoCodeSeparator(t *testing.T) {
	script := []byte{OP_DUP, OP_HASH160, OP_EQUALVERIFY, OP_CHECKSIG}
	got := BuildScriptCode(script, -1)
	want := append(bytesutil.PutVarInt(uint64(len(script))), script...)
	require.True(t, bytes.Equal(want, got))
}

// TestBuildScriptCodeAfterCodeSeparator checks that only the tail starting
// at lastCodeSeparator is embedded, not the bytes before it.
func TestBuildScriptCodeAfterCodeSeparator(t *testing.T) {
	script := []byte{OP_DUP, OP_CODESEPARATOR, OP_HASH160, OP_EQUAL}
	got := BuildScriptCode(script, 2)
	tail := script[2:]
	want := append(bytesutil.PutVarInt(uint64(len(tail))), tail...)
	require.True(t, bytes.Equal(want, got))
}

// TestBuildPreimageFieldOrderSighashAll asserts BuildPreimage's output is
// byte-exact against a field-by-field concatenation built independently of
// the function under test, per spec §4.6's fixed field order.
func TestBuildPreimageFieldOrderSighashAll(t *testing.T) {
	ext := fixtureExternalState()
	scriptCode := []byte{0x01, OP_CHECKSIG}
	flags := SighashFlags{Base: SighashAll}

	got := BuildPreimage(ext, scriptCode, flags)

	var want bytes.Buffer
	want.Write(bytesutil.NumberToBinUint32LE(ext.Version))
	want.Write(ext.TransactionOutpointsHash[:])
	want.Write(ext.TransactionSequenceNumbersHash[:])
	want.Write(ext.OutpointTransactionHash[:])
	want.Write(bytesutil.NumberToBinUint32LE(ext.OutpointIndex))
	want.Write(scriptCode)
	want.Write(bytesutil.BigIntToBinUint64LE(ext.OutpointValue))
	want.Write(bytesutil.NumberToBinUint32LE(ext.SequenceNumber))
	want.Write(ext.TransactionOutputsHash[:])
	want.Write(bytesutil.NumberToBinUint32LE(ext.Locktime))
	want.Write(bytesutil.NumberToBinUint32LE(0x01)) // SIGHASH_ALL

	require.True(t, bytes.Equal(want.Bytes(), got))
	require.Len(t, got, 4+32+32+32+4+len(scriptCode)+8+4+32+4+4)
}

// TestBuildPreimageSighashNoneZeroesSequenceAndOutputs checks field 3 and
// field 9 are zeroed, per spec §4.6, when the base flag is SIGHASH_NONE.
func TestBuildPreimageSighashNoneZeroesSequenceAndOutputs(t *testing.T) {
	ext := fixtureExternalState()
	scriptCode := []byte{0x01, OP_CHECKSIG}
	got := BuildPreimage(ext, scriptCode, SighashFlags{Base: SighashNone})

	zero32 := make([]byte, 32)
	sequencesOffset := 4 + 32
	outputsOffset := 4 + 32 + 32 + 32 + 4 + len(scriptCode) + 8 + 4

	require.True(t, bytes.Equal(zero32, got[sequencesOffset:sequencesOffset+32]))
	require.True(t, bytes.Equal(zero32, got[outputsOffset:outputsOffset+32]))

	typeOffset := len(got) - 4
	gotType, err := bytesutil.BinToNumberUint32LE(got[typeOffset:])
	require.NoError(t, err)
	require.Equal(t, uint32(0x02), gotType)
}

// TestBuildPreimageSighashSingleUsesCorrespondingOutput checks field 9
// substitutes correspondingOutputHash under SIGHASH_SINGLE.
func TestBuildPreimageSighashSingleUsesCorrespondingOutput(t *testing.T) {
	ext := fixtureExternalState()
	scriptCode := []byte{0x01, OP_CHECKSIG}
	got := BuildPreimage(ext, scriptCode, SighashFlags{Base: SighashSingle})

	outputsOffset := 4 + 32 + 32 + 32 + 4 + len(scriptCode) + 8 + 4
	require.True(t, bytes.Equal(ext.CorrespondingOutputHash[:], got[outputsOffset:outputsOffset+32]))
}

// TestBuildPreimageAnyoneCanPayZeroesOutpointsAndSequence checks the
// ANYONECANPAY modifier zeroes fields 2 and 3 regardless of base flag, and
// sets the high bit of the sighash-type word.
func TestBuildPreimageAnyoneCanPayZeroesOutpointsAndSequence(t *testing.T) {
	ext := fixtureExternalState()
	scriptCode := []byte{0x01, OP_CHECKSIG}
	got := BuildPreimage(ext, scriptCode, SighashFlags{Base: SighashAll, AnyoneCanPay: true})

	zero32 := make([]byte, 32)
	require.True(t, bytes.Equal(zero32, got[4:4+32]))
	require.True(t, bytes.Equal(zero32, got[4+32:4+32+32]))

	typeOffset := len(got) - 4
	gotType, err := bytesutil.BinToNumberUint32LE(got[typeOffset:])
	require.NoError(t, err)
	require.Equal(t, uint32(0x81), gotType)
}

// TestSignatureHashIsDoubleSHA256OfPreimage checks SignatureHash composes
// BuildPreimage with a double-SHA256, not a single round.
func TestSignatureHashIsDoubleSHA256OfPreimage(t *testing.T) {
	ext := fixtureExternalState()
	scriptCode := []byte{0x01, OP_CHECKSIG}
	flags := SighashFlags{Base: SighashAll}

	preimage := BuildPreimage(ext, scriptCode, flags)
	first := sha256.Sum256(preimage)
	want := sha256.Sum256(first[:])

	got := SignatureHash(ext, scriptCode, flags)
	require.Equal(t, want, got)
}
