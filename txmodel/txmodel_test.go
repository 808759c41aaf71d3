// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTx() *Transaction {
	return &Transaction{
		Version:  2,
		Locktime: 0,
		Inputs: []Input{
			{PreviousOutpointHash: [32]byte{0x01}, PreviousOutpointIndex: 0, Sequence: 0xffffffff},
			{PreviousOutpointHash: [32]byte{0x02}, PreviousOutpointIndex: 1, Sequence: 0xfffffffe},
		},
		Outputs: []Output{
			{Value: 1000, LockingScript: []byte{0x76, 0xa9}},
			{Value: 2000, LockingScript: []byte{0x87}},
		},
	}
}

func TestBuildExternalStateFieldsMatchTransaction(t *testing.T) {
	tx := sampleTx()
	ext, err := BuildExternalState(tx, 0, 5000)
	require.NoError(t, err)

	require.Equal(t, tx.Version, ext.Version)
	require.Equal(t, tx.Locktime, ext.Locktime)
	require.Equal(t, tx.Inputs[0].PreviousOutpointHash, ext.OutpointTransactionHash)
	require.Equal(t, tx.Inputs[0].PreviousOutpointIndex, ext.OutpointIndex)
	require.Equal(t, tx.Inputs[0].Sequence, ext.SequenceNumber)
	require.Equal(t, uint64(5000), ext.OutpointValue)
}

func TestBuildExternalStateHashesAreDeterministic(t *testing.T) {
	tx := sampleTx()
	a, err := BuildExternalState(tx, 0, 5000)
	require.NoError(t, err)
	b, err := BuildExternalState(tx, 1, 5000)
	require.NoError(t, err)

	// Whole-transaction hashes don't depend on which input is being
	// authenticated.
	require.Equal(t, a.TransactionOutpointsHash, b.TransactionOutpointsHash)
	require.Equal(t, a.TransactionOutputsHash, b.TransactionOutputsHash)
	require.Equal(t, a.TransactionSequenceNumbersHash, b.TransactionSequenceNumbersHash)

	// But the per-input corresponding-output hash (for SIGHASH_SINGLE)
	// differs between inputs 0 and 1.
	require.NotEqual(t, a.CorrespondingOutputHash, b.CorrespondingOutputHash)
}

func TestBuildExternalStateOutOfRangeInput(t *testing.T) {
	tx := sampleTx()
	_, err := BuildExternalState(tx, 5, 0)
	require.Error(t, err)
}

func TestCorrespondingOutputHashMissing(t *testing.T) {
	tx := &Transaction{
		Inputs:  []Input{{}, {}, {}},
		Outputs: []Output{{Value: 1, LockingScript: []byte{0x01}}},
	}
	ext, err := BuildExternalState(tx, 2, 0)
	require.NoError(t, err)
	require.Equal(t, [32]byte{}, ext.CorrespondingOutputHash)
}
