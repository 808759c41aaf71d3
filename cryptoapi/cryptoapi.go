// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cryptoapi declares the hash and signature provider interfaces the
// VM depends on, plus default implementations backed by the standard
// library and the same secp256k1 stack the teacher codebase uses. Providers
// are reentrant: they own no mutable state exposed to callers, so the same
// instance may back many concurrent evaluations.
package cryptoapi

// SHA256Hasher computes a single SHA-256 digest.
type SHA256Hasher interface {
	Hash(data []byte) [32]byte
}

// RIPEMD160Hasher computes a RIPEMD-160 digest.
type RIPEMD160Hasher interface {
	Hash(data []byte) [20]byte
}

// SignatureVerifier checks a DER-encoded, low-S secp256k1 signature against
// a public key and a 32-byte digest.
type SignatureVerifier interface {
	VerifySignatureDERLowS(signature, publicKey, digest []byte) bool
}
