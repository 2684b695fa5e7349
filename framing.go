// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher's little-endian framing idiom)

package lzans

func appendUint32(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func readUint32(src []byte, pos int) (uint32, int, bool) {
	if pos+4 > len(src) {
		return 0, pos, false
	}
	v := uint32(src[pos]) | uint32(src[pos+1])<<8 | uint32(src[pos+2])<<16 | uint32(src[pos+3])<<24
	return v, pos + 4, true
}
