// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptoapi

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// DefaultSHA256Hasher is the standard library SHA-256 implementation.
type DefaultSHA256Hasher struct{}

// Hash implements SHA256Hasher.
func (DefaultSHA256Hasher) Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// DefaultRIPEMD160Hasher backs RIPEMD160Hasher with golang.org/x/crypto.
type DefaultRIPEMD160Hasher struct{}

// Hash implements RIPEMD160Hasher.
func (DefaultRIPEMD160Hasher) Hash(data []byte) [20]byte {
	h := ripemd160.New()
	h.Write(data)
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DefaultSignatureVerifier verifies secp256k1 signatures with btcec/v2. It
// parses the signature as strict DER but does not itself reject a high-S
// value; the low-S rule (BIP0062 rule 5) is enforced before verification by
// bch.IsValidSignatureEncoding.
type DefaultSignatureVerifier struct{}

// VerifySignatureDERLowS implements SignatureVerifier. The caller is
// expected to have already validated strict DER/low-S encoding via
// bch.IsValidSignatureEncoding; this method still re-derives the signature
// from its DER bytes since that is the only way btcec exposes verification.
func (DefaultSignatureVerifier) VerifySignatureDERLowS(signature, publicKey, digest []byte) bool {
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false
	}

	pk, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return false
	}

	return sig.Verify(digest, pk)
}
