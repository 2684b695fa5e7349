// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (teacher)

/*
Package lzans implements a general-purpose lossless byte compressor that
combines LZ-style back-reference matching with table-based Asymmetric
Numeral System (tANS) entropy coding, in the style of LZ4/LZO front ends
paired with a Yann-Collet-style FSE (Finite State Entropy) back end.

Input is split into chunks (see format_constants.go for the size bound).
Each chunk is parsed into a sequence of literal runs and back-references
(match.go-equivalent parser in parser.go/parser_greedy.go/parser_optimal.go),
the packet stream is decomposed into four parallel token streams (Lit,
LitLen, MatchLen, OffsetTok/OffsetExtra). LitLen, MatchLen and OffsetTok
are each entropy-coded with their own tANS table, Lit with one table per
64 KiB sub-block; OffsetExtra is stored as raw bits.

# Encode

Options may be nil (default level 1). Levels 1-8 use the look-ahead
parser with progressively larger match caches; level 9 switches to the
optimal dynamic-programming parser:

	out, err := lzans.Encode(data, nil)
	out, err := lzans.Encode(data, &lzans.EncodeOptions{Level: 9})

# Decode

	out, err := lzans.Decode(compressed)

Decode requires no side channel: origLen travels in the chunk header.
*/
package lzans
