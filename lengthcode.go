// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher's opcode-length escape idiom,
// generalized per spec.md §3's "classical LZ4-style length escape")

package lzans

// appendEscapedLength appends v using the LZ4-style continuation encoding:
// values under lengthEscape are a single byte; larger values are a run of
// lengthEscape (255) bytes followed by the remainder. This is the byte
// encoding used both for LitLen/MatchLen stream construction and for
// histogram-count serialization (spec.md §3, §4.2).
func appendEscapedLength(dst []byte, v int) []byte {
	for v >= lengthEscape {
		dst = append(dst, lengthEscape)
		v -= lengthEscape
	}
	return append(dst, byte(v))
}

// readEscapedLength parses one escaped length starting at src[pos] and
// returns the value and the position just past it. ok is false if src is
// exhausted mid-run.
func readEscapedLength(src []byte, pos int) (v int, next int, ok bool) {
	for {
		if pos >= len(src) {
			return 0, pos, false
		}
		b := src[pos]
		pos++
		v += int(b)
		if b != lengthEscape {
			return v, pos, true
		}
	}
}
