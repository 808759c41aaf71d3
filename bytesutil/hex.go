// Copyright (c) 2013-2015 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bytesutil provides the low-level byte and numeric codecs that the
// authentication script VM builds on: hex conversion, fixed-width
// little-endian integer codecs, and Bitcoin's VarInt encoding.
package bytesutil

import "encoding/hex"

// HexToBin decodes a lowercase hex string into its raw bytes. The input must
// have an even length and contain only hex digits.
func HexToBin(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// BinToHex encodes b as a lowercase hex string, two characters per byte.
func BinToHex(b []byte) string {
	return hex.EncodeToString(b)
}
