// Copyright (c) 2013-2015 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bch

import (
	"math/big"

	"github.com/bchscript/vm"
	"github.com/bchscript/vm/cryptoapi"
)

// halfOrder is half of the secp256k1 curve order, used for the low-S check.
var halfOrder = new(big.Int).Rsh(secp256k1Order(), 1)

// secp256k1Order returns the order n of the secp256k1 curve.
func secp256k1Order() *big.Int {
	n, _ := new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	return n
}

// permittedSighashTypes is the set of base sighash-type values BCH permits
// as the low byte of a signature's trailing hash-type byte.
var permittedSighashTypes = map[byte]bool{
	0x01: true, // SIGHASH_ALL
	0x02: true, // SIGHASH_NONE
	0x03: true, // SIGHASH_SINGLE
}

// IsValidPublicKeyEncoding accepts 33-byte compressed (0x02/0x03 prefix)
// and 65-byte uncompressed (0x04 prefix) public keys; all other shapes are
// rejected.
func IsValidPublicKeyEncoding(pubKey []byte) bool {
	switch {
	case len(pubKey) == 33 && (pubKey[0] == 0x02 || pubKey[0] == 0x03):
		return true
	case len(pubKey) == 65 && pubKey[0] == 0x04:
		return true
	default:
		return false
	}
}

// IsValidSignatureEncoding checks strict DER encoding (BIP66), a low-S
// value, and a permitted trailing sighash-type byte. sigWithHashType is the
// full stack item: DER signature bytes followed by one hash-type byte.
func IsValidSignatureEncoding(sigWithHashType []byte) bool {
	if len(sigWithHashType) < 1 {
		return false
	}
	hashType := sigWithHashType[len(sigWithHashType)-1] &^ 0x80
	if !permittedSighashTypes[hashType] {
		return false
	}

	sig := sigWithHashType[:len(sigWithHashType)-1]
	return isStrictDERLowS(sig)
}

// isStrictDERLowS validates the DER body of a signature (without its
// trailing hash-type byte) per BIP66, plus the low-S rule (BIP62 rule 5).
func isStrictDERLowS(sig []byte) bool {
	if len(sig) < 9 || len(sig) > 72 {
		return false
	}
	if sig[0] != 0x30 {
		return false
	}
	if int(sig[1]) != len(sig)-2 {
		return false
	}

	rLen := int(sig[3])
	if rLen+5 > len(sig) {
		return false
	}
	sLen := int(sig[rLen+5])
	if rLen+sLen+6 != len(sig) {
		return false
	}

	if sig[2] != 0x02 || rLen == 0 {
		return false
	}
	if sig[4]&0x80 != 0 {
		return false
	}
	if rLen > 1 && sig[4] == 0x00 && sig[5]&0x80 == 0 {
		return false
	}

	if sig[rLen+4] != 0x02 || sLen == 0 {
		return false
	}
	if sig[rLen+6]&0x80 != 0 {
		return false
	}
	if sLen > 1 && sig[rLen+6] == 0x00 && sig[rLen+7]&0x80 == 0 {
		return false
	}

	sValue := new(big.Int).SetBytes(sig[rLen+6 : rLen+6+sLen])
	return sValue.Cmp(halfOrder) <= 0
}

// opCheckSig returns the OP_CHECKSIG operator: pop publicKey then signature,
// validate their encodings, compute the BCH sighash digest over scriptCode
// (the script since the last OP_CODESEPARATOR), and push a truthy Script
// Number iff verification succeeds.
func opCheckSig(sha cryptoapi.SHA256Hasher, verifier cryptoapi.SignatureVerifier) vm.Operator[State] {
	return vm.Operator[State]{
		Asm:         vm.Static[State]("OP_CHECKSIG"),
		Description: vm.Static[State]("Verify a signature against a public key."),
		Operation: func(s State) State {
			s, pubKey, ok := Pop(s)
			if !ok {
				return Fail(s, ErrEmptyStack, "OP_CHECKSIG on an empty stack")
			}
			s, sigWithHashType, ok := Pop(s)
			if !ok {
				return Fail(s, ErrEmptyStack, "OP_CHECKSIG on an empty stack")
			}

			if !IsValidPublicKeyEncoding(pubKey) {
				return Fail(s, ErrInvalidPublicKeyEncoding, "%x", pubKey)
			}
			if !IsValidSignatureEncoding(sigWithHashType) {
				return Fail(s, ErrInvalidSignatureEncoding, "%x", sigWithHashType)
			}

			hashType := sigWithHashType[len(sigWithHashType)-1]
			derSig := sigWithHashType[:len(sigWithHashType)-1]

			flags := SighashFlags{AnyoneCanPay: hashType&0x80 != 0}
			switch hashType &^ 0x80 {
			case 0x02:
				flags.Base = SighashNone
			case 0x03:
				flags.Base = SighashSingle
			default:
				flags.Base = SighashAll
			}

			scriptCode := BuildScriptCode(s.Script, s.LastCodeSeparator)
			digest := SignatureHash(s.External, scriptCode, flags)

			if verifier.VerifySignatureDERLowS(derSig, pubKey, digest[:]) {
				return Push(s, EncodeScriptNumber(1))
			}
			return Push(s, EncodeScriptNumber(0))
		},
	}
}

