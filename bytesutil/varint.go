// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytesutil

import (
	"encoding/binary"
	"fmt"
	"math"
)

// VarInt is Bitcoin's variable-length unsigned integer encoding:
//
//	Value                   Len   Format
//	-----                   ---   ------
//	<= 0xfc                 1     val as uint8
//	<= 0xffff               3     0xfd followed by val as little-endian uint16
//	<= 0xffffffff           5     0xfe followed by val as little-endian uint32
//	<= 0xffffffffffffffff   9     0xff followed by val as little-endian uint64
type VarInt uint64

// VarIntSerializeSize returns the number of bytes it would take to encode v as a
// VarInt.
func VarIntSerializeSize(v uint64) int {
	switch {
	case v <= 0xfc:
		return 1
	case v <= math.MaxUint16:
		return 3
	case v <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// PutVarInt encodes v into the VarInt wire format and returns the bytes
// written.
func PutVarInt(v uint64) []byte {
	buf := make([]byte, VarIntSerializeSize(v))
	switch {
	case v <= 0xfc:
		buf[0] = byte(v)
	case v <= math.MaxUint16:
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(v))
	case v <= math.MaxUint32:
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(v))
	default:
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:], v)
	}
	return buf
}

// ReadVarInt decodes a VarInt starting at offset 0 of b, returning the
// decoded value and the offset of the byte immediately following it.
func ReadVarInt(b []byte) (value uint64, nextOffset int, err error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("bytesutil: empty VarInt")
	}

	switch prefix := b[0]; {
	case prefix < 0xfd:
		return uint64(prefix), 1, nil
	case prefix == 0xfd:
		if len(b) < 3 {
			return 0, 0, fmt.Errorf("bytesutil: truncated 3-byte VarInt")
		}
		return uint64(binary.LittleEndian.Uint16(b[1:3])), 3, nil
	case prefix == 0xfe:
		if len(b) < 5 {
			return 0, 0, fmt.Errorf("bytesutil: truncated 5-byte VarInt")
		}
		return uint64(binary.LittleEndian.Uint32(b[1:5])), 5, nil
	default: // 0xff
		if len(b) < 9 {
			return 0, 0, fmt.Errorf("bytesutil: truncated 9-byte VarInt")
		}
		return binary.LittleEndian.Uint64(b[1:9]), 9, nil
	}
}
