// Copyright (c) 2013-2015 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bch

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/require"
)

func TestIsValidPublicKeyEncoding(t *testing.T) {
	compressed := append([]byte{0x02}, make([]byte, 32)...)
	require.True(t, IsValidPublicKeyEncoding(compressed))

	compressed[0] = 0x03
	require.True(t, IsValidPublicKeyEncoding(compressed))

	uncompressed := append([]byte{0x04}, make([]byte, 64)...)
	require.True(t, IsValidPublicKeyEncoding(uncompressed))

	require.False(t, IsValidPublicKeyEncoding(append([]byte{0x05}, make([]byte, 32)...)))
	require.False(t, IsValidPublicKeyEncoding(compressed[:20]))
}

// a minimal strict-DER signature: 0x30 len 0x02 rLen r... 0x02 sLen s...
func derSig(r, s []byte) []byte {
	body := append([]byte{0x02, byte(len(r))}, r...)
	body = append(body, 0x02, byte(len(s)))
	body = append(body, s...)
	return append([]byte{0x30, byte(len(body))}, body...)
}

func TestIsValidSignatureEncoding(t *testing.T) {
	sig := derSig([]byte{0x01, 0x02}, []byte{0x03})
	withHashType := append(append([]byte{}, sig...), 0x01)
	require.True(t, IsValidSignatureEncoding(withHashType))

	withBadHashType := append(append([]byte{}, sig...), 0x05)
	require.False(t, IsValidSignatureEncoding(withBadHashType))

	withAnyoneCanPay := append(append([]byte{}, sig...), 0x81)
	require.True(t, IsValidSignatureEncoding(withAnyoneCanPay))
}

func TestIsValidSignatureEncodingRejectsHighS(t *testing.T) {
	// DER requires a leading 0x00 pad whenever the top bit of the value's
	// first byte would otherwise be set; without it this fixture would be
	// rejected as non-minimal before the low-S comparison ever runs. The
	// padded value itself is all-0xff, far above halfOrder.
	highS := append([]byte{0x00}, bytes.Repeat([]byte{0xff}, 32)...)
	sig := derSig([]byte{0x01}, highS)
	withHashType := append(append([]byte{}, sig...), 0x01)
	require.False(t, IsValidSignatureEncoding(withHashType))
}

func TestOpCheckSigRejectsMalformedInputs(t *testing.T) {
	final := run([]byte{OP_CHECKSIG}, [][]byte{{0x01}, {0x05, 0x00, 0x00}})
	require.Error(t, errOf(final))
	require.Equal(t, ErrInvalidPublicKeyEncoding, final.Error.Kind)
}

func TestOpCheckSigEmptyStack(t *testing.T) {
	final := run([]byte{OP_CHECKSIG}, nil)
	require.Error(t, errOf(final))
	require.Equal(t, ErrEmptyStack, final.Error.Kind)
}

func TestOpCheckSigAcceptsValidSignature(t *testing.T) {
	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	pubKey := privKey.PubKey().SerializeCompressed()

	script := []byte{OP_CHECKSIG}
	scriptCode := BuildScriptCode(script, -1)
	digest := SignatureHash(ExternalState{}, scriptCode, SighashFlags{Base: SighashAll})

	sig := ecdsa.Sign(privKey, digest[:])
	sigWithHashType := append(sig.Serialize(), 0x01) // SIGHASH_ALL

	final := run(script, [][]byte{sigWithHashType, pubKey})
	require.NoError(t, errOf(final))
	require.Len(t, final.Stack, 1)
	require.True(t, CastToBool(final.Stack[0]))
}

func TestOpCheckSigRejectsWrongKey(t *testing.T) {
	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	otherKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	pubKey := otherKey.PubKey().SerializeCompressed()

	script := []byte{OP_CHECKSIG}
	scriptCode := BuildScriptCode(script, -1)
	digest := SignatureHash(ExternalState{}, scriptCode, SighashFlags{Base: SighashAll})

	sig := ecdsa.Sign(privKey, digest[:])
	sigWithHashType := append(sig.Serialize(), 0x01)

	final := run(script, [][]byte{sigWithHashType, pubKey})
	require.NoError(t, errOf(final))
	require.Len(t, final.Stack, 1)
	require.False(t, CastToBool(final.Stack[0]))
}
