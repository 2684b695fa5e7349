// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher: Compress's options-handling
// and level-dispatch shape)

package lzans

// Encode compresses data and returns a framed byte stream decodable by
// Decode. A nil *EncodeOptions behaves as DefaultEncodeOptions(). Encoding
// never fails on well-formed input (spec.md §7: "a total function"); the
// one exception, ErrInputTooLarge, exists only to reject a caller-supplied
// ChunkSize above maxChunkSize — spec.md §7 notes the splitter should
// prevent this from ever arising on its own.
func Encode(data []byte, opts *EncodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}
	if opts.ChunkSize > maxChunkSize {
		return nil, ErrInputTooLarge
	}
	params := levelParamsFor(opts.Level)

	if len(data) == 0 {
		return encodeChunk(nil, params), nil
	}

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = maxChunkSize
	}

	var out []byte
	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		out = append(out, encodeChunk(data[off:end], params)...)
	}
	return out, nil
}
