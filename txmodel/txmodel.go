// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txmodel is a minimal transaction model: just enough of a
// transaction's shape to derive the per-input ExternalState the bch
// instruction set needs. The per-transaction hashes are computed on every
// BuildExternalState call; nothing is cached between calls.
package txmodel

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/bchscript/vm/bch"
	"github.com/bchscript/vm/bytesutil"
)

// Input is one transaction input: the outpoint it spends and its sequence
// number. The signature script is not modeled here — it is the
// AuthenticationProgram's UnlockingScript, supplied separately.
type Input struct {
	PreviousOutpointHash  [32]byte
	PreviousOutpointIndex uint32
	Sequence              uint32
}

// Output is one transaction output: the amount and the locking script that
// guards it.
type Output struct {
	Value         uint64
	LockingScript []byte
}

// Transaction is the minimal shape BuildExternalState needs: enough to
// derive every hash and scalar field the BCH sighash preimage commits to.
type Transaction struct {
	Version  uint32
	Locktime uint32
	Inputs   []Input
	Outputs  []Output
}

func doubleSHA256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// getOutpointsHash is the double-SHA256 of every input's outpoint
// (txid || index), concatenated in input order.
func getOutpointsHash(tx *Transaction) [32]byte {
	var buf bytes.Buffer
	for _, in := range tx.Inputs {
		buf.Write(in.PreviousOutpointHash[:])
		buf.Write(bytesutil.NumberToBinUint32LE(in.PreviousOutpointIndex))
	}
	return doubleSHA256(buf.Bytes())
}

// getSequenceNumbersHash is the double-SHA256 of every input's sequence
// number, concatenated in input order.
func getSequenceNumbersHash(tx *Transaction) [32]byte {
	var buf bytes.Buffer
	for _, in := range tx.Inputs {
		buf.Write(bytesutil.NumberToBinUint32LE(in.Sequence))
	}
	return doubleSHA256(buf.Bytes())
}

// getOutputsHash is the double-SHA256 of every output (value || VarInt
// script length || script), concatenated in output order.
func getOutputsHash(tx *Transaction) [32]byte {
	var buf bytes.Buffer
	for _, out := range tx.Outputs {
		buf.Write(bytesutil.BigIntToBinUint64LE(out.Value))
		buf.Write(bytesutil.PutVarInt(uint64(len(out.LockingScript))))
		buf.Write(out.LockingScript)
	}
	return doubleSHA256(buf.Bytes())
}

// correspondingOutputHash is the double-SHA256 of the single output at
// inputIndex (value || VarInt script length || script), used by
// SIGHASH_SINGLE. ok is false if inputIndex has no matching output.
func correspondingOutputHash(tx *Transaction, inputIndex int) (hash [32]byte, ok bool) {
	if inputIndex < 0 || inputIndex >= len(tx.Outputs) {
		return [32]byte{}, false
	}
	out := tx.Outputs[inputIndex]
	var buf bytes.Buffer
	buf.Write(bytesutil.BigIntToBinUint64LE(out.Value))
	buf.Write(bytesutil.PutVarInt(uint64(len(out.LockingScript))))
	buf.Write(out.LockingScript)
	return doubleSHA256(buf.Bytes()), true
}

// BuildExternalState computes the ExternalState for spending tx's input at
// inputIndex, given the outpoint's value (the previous output's amount,
// since a transaction carries no record of what it spends). The
// transaction-wide hashes (outpoints, sequence numbers, outputs) do not
// depend on inputIndex, but each call recomputes them from tx; they are not
// reused across calls for different inputs.
func BuildExternalState(tx *Transaction, inputIndex int, outpointValue uint64) (bch.ExternalState, error) {
	if inputIndex < 0 || inputIndex >= len(tx.Inputs) {
		return bch.ExternalState{}, fmt.Errorf("txmodel: input index %d out of range (%d inputs)", inputIndex, len(tx.Inputs))
	}
	in := tx.Inputs[inputIndex]

	corresponding, ok := correspondingOutputHash(tx, inputIndex)
	if !ok {
		// SIGHASH_SINGLE has no defined behavior past the final output;
		// a zeroed hash is the safe default for inputs that never use it.
		corresponding = [32]byte{}
	}

	return bch.ExternalState{
		Locktime: tx.Locktime,
		Version:  tx.Version,

		TransactionOutpointsHash:       getOutpointsHash(tx),
		TransactionOutputsHash:         getOutputsHash(tx),
		TransactionSequenceNumbersHash: getSequenceNumbersHash(tx),
		CorrespondingOutputHash:        corresponding,

		OutpointTransactionHash: in.PreviousOutpointHash,
		OutpointIndex:           in.PreviousOutpointIndex,
		OutpointValue:           outpointValue,
		SequenceNumber:          in.Sequence,
	}, nil
}
