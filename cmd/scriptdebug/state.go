// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bchscript/vm/bch"
	"github.com/bchscript/vm/bytesutil"
)

// externalStateFixture is the JSON-friendly mirror of bch.ExternalState: the
// 32-byte hash fields are hex strings on the wire rather than raw arrays.
type externalStateFixture struct {
	BlockHeight uint32 `json:"blockHeight"`
	BlockTime   uint32 `json:"blockTime"`
	Locktime    uint32 `json:"locktime"`
	Version     uint32 `json:"version"`

	TransactionOutpointsHash       string `json:"transactionOutpointsHash"`
	TransactionOutputsHash         string `json:"transactionOutputsHash"`
	TransactionSequenceNumbersHash string `json:"transactionSequenceNumbersHash"`
	CorrespondingOutputHash        string `json:"correspondingOutputHash"`

	OutpointTransactionHash string `json:"outpointTransactionHash"`
	OutpointIndex           uint32 `json:"outpointIndex"`
	OutpointValue           uint64 `json:"outpointValue"`
	SequenceNumber          uint32 `json:"sequenceNumber"`
}

// loadExternalState reads and decodes an externalStateFixture from path, or
// returns the zero ExternalState if path is empty.
func loadExternalState(path string) (bch.ExternalState, error) {
	if path == "" {
		return bch.ExternalState{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return bch.ExternalState{}, fmt.Errorf("loadExternalState: %w", err)
	}
	defer f.Close()

	var fixture externalStateFixture
	if err := json.NewDecoder(f).Decode(&fixture); err != nil {
		return bch.ExternalState{}, fmt.Errorf("loadExternalState: %w", err)
	}

	return fixture.toExternalState()
}

func (f externalStateFixture) toExternalState() (bch.ExternalState, error) {
	var ext bch.ExternalState
	ext.BlockHeight = f.BlockHeight
	ext.BlockTime = f.BlockTime
	ext.Locktime = f.Locktime
	ext.Version = f.Version
	ext.OutpointIndex = f.OutpointIndex
	ext.OutpointValue = f.OutpointValue
	ext.SequenceNumber = f.SequenceNumber

	hashFields := []struct {
		name string
		hex  string
		dest *[32]byte
	}{
		{"transactionOutpointsHash", f.TransactionOutpointsHash, &ext.TransactionOutpointsHash},
		{"transactionOutputsHash", f.TransactionOutputsHash, &ext.TransactionOutputsHash},
		{"transactionSequenceNumbersHash", f.TransactionSequenceNumbersHash, &ext.TransactionSequenceNumbersHash},
		{"correspondingOutputHash", f.CorrespondingOutputHash, &ext.CorrespondingOutputHash},
		{"outpointTransactionHash", f.OutpointTransactionHash, &ext.OutpointTransactionHash},
	}
	for _, field := range hashFields {
		if field.hex == "" {
			continue
		}
		b, err := bytesutil.HexToBin(field.hex)
		if err != nil {
			return bch.ExternalState{}, fmt.Errorf("loadExternalState: %s: %w", field.name, err)
		}
		if len(b) != 32 {
			return bch.ExternalState{}, fmt.Errorf("loadExternalState: %s: want 32 bytes, got %d", field.name, len(b))
		}
		copy(field.dest[:], b)
	}

	return ext, nil
}
