// Copyright (c) 2013-2015 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytesutil

import (
	"encoding/binary"
	"fmt"
)

// NumberToBinUint16LE encodes v as a 2-byte little-endian array.
func NumberToBinUint16LE(v uint16) []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	return buf
}

// BinToNumberUint16LE decodes a 2-byte little-endian array into v.
func BinToNumberUint16LE(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, fmt.Errorf("bytesutil: want 2 bytes for uint16LE, got %d", len(b))
	}
	return binary.LittleEndian.Uint16(b), nil
}

// NumberToBinUint32LE encodes v as a 4-byte little-endian array.
func NumberToBinUint32LE(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

// BinToNumberUint32LE decodes a 4-byte little-endian array into v.
func BinToNumberUint32LE(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("bytesutil: want 4 bytes for uint32LE, got %d", len(b))
	}
	return binary.LittleEndian.Uint32(b), nil
}

// BigIntToBinUint64LE encodes v as an 8-byte little-endian array. Named to
// mirror the source library's convention of routing wide unsigned
// conversions through an arbitrary-precision path even though a uint64
// suffices for every quantity this package needs to encode.
func BigIntToBinUint64LE(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

// BinToBigIntUint64LE decodes an 8-byte little-endian array into v.
func BinToBigIntUint64LE(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("bytesutil: want 8 bytes for uint64LE, got %d", len(b))
	}
	return binary.LittleEndian.Uint64(b), nil
}
