// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher); constants redefined for the
// lzans container and tANS model.

package lzans

// Container framing constants.
const (
	// chunkMagic identifies an lzans chunk header.
	chunkMagic = uint32(0x4c7a414e) // reads "LzAN"; written little-endian, so the wire bytes are "NAzL"

	// maxChunkSize is the largest input region a single chunk may cover
	// (2^32 - 1, per spec.md §3).
	maxChunkSize = 0xFFFFFFFF

	// chunkHeaderSize is Magic4 + u32 compLen + u32 origLen.
	chunkHeaderSize = 4 + 4 + 4
)

// Match and packet constants.
const (
	// minMatch is the shortest match length the parsers ever emit.
	minMatch = 4

	// lengthEscape is the LZ4-style continuation byte: a value of 255 means
	// "add 255 and keep reading another byte."
	lengthEscape = 255

	// maxOffsetTokenBits caps the raw-bit width of an offset token, per
	// spec.md §4.5 ("implementations cap at 24"). levelParams.window is
	// bounded by maxWindowSize below so no level can ever produce a
	// larger token; see ring.go's splitOffsetToken.
	maxOffsetTokenBits = 24

	// maxWindowSize is the largest match window that still guarantees
	// maxOffsetTokenBits: the worst case is a ring-miss at the full
	// window distance, transformed to V = window+3 and then bit-split on
	// V+1, so window+4 must not cross 2^(maxOffsetTokenBits+1).
	maxWindowSize = (1 << (maxOffsetTokenBits + 1)) - 5
)

// tANS model constants.
const (
	tableLog  = 12           // TABLE_LOG
	tableSize = 1 << tableLog // TABLE = 4096

	byteAlphabetSize = 256 // Lit / LitLen / MatchLen streams
	tokenAlphabetSize = 28 // OffsetTok stream (tokens 0..27)

	// litSubBlockSize is the maximum number of literal bytes coded under a
	// single tANS histogram before Lit is split into another sub-block.
	litSubBlockSize = 64 * 1024
)

// tansEncodeReversed names the single, package-wide processing-order
// convention spec.md §9 calls out as a footgun: the encoder walks every
// tANS-coded stream back to front, the decoder walks forward. Every stream
// (Lit, LitLen, MatchLen, OffsetTok) uses this same convention because all
// of them go through tansEncodeSymbols/tansDecodeSymbols, which implement
// it directly; no code reads this constant, and changing it has no effect.
const tansEncodeReversed = true
