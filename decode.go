// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher: Decompress's chunk-loop
// shape, generalized from LZO1X's single-stream opcode loop to this
// format's independent-chunk container)

package lzans

// Decode reverses Encode, reading chunks from data until input is
// exhausted. Any malformed chunk aborts the whole call with the sentinel
// error describing what went wrong; there is no partial recovery.
func Decode(data []byte) ([]byte, error) {
	var out []byte
	pos := 0
	for pos < len(data) {
		chunkData, next, err := decodeChunk(data, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, chunkData...)
		pos = next
	}
	return out, nil
}
