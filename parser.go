// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher: match.go's "try a candidate,
// reject cheaply via a single probe before the full scan" shape),
// generalized per spec.md §4.3's extension heuristic and §4.4's two
// parsers.

package lzans

import "math"

// packet is the (literal-run, match) pair spec.md §3 defines. offset == 0
// means "no match" — either the chunk's trailing literal tail, or (when
// length == 0 too) the terminating packet.
type packet struct {
	litLen int
	offset int // 0 means no match
	length int
}

// costLiteral and costMatch are the shared log2-based cost estimates
// spec.md §4.4 requires both parsers to use; only the look-ahead parser's
// candidate-ranking step additionally folds in a run-length term (see
// parser_greedy.go).
func costLiteral(n int) float64 {
	return float64(n)
}

func costMatch(offset, length int) float64 {
	return 4 + math.Log2(float64(offset)) - float64(length)
}

// findBestMatch looks up the 4-byte key at i in cache and returns the
// longest legal candidate within windowMax bytes back, ties broken toward
// the smaller offset, per spec.md §4.3. It applies the single-probe
// rejection heuristic before doing a full byte-wise extension.
func findBestMatch(data []byte, cache *matchCache, i, windowMax int) (bestOffset, bestLength int) {
	if i+minMatch > len(data) {
		return 0, 0
	}
	maxLen := len(data) - i
	bestDist := 0

	for _, c32 := range cache.candidates(data, i) {
		c := int(c32)
		if c < 0 || c >= i {
			continue
		}
		dist := i - c
		if dist > windowMax {
			continue
		}
		if data[c] != data[i] || data[c+1] != data[i+1] || data[c+2] != data[i+2] || data[c+3] != data[i+3] {
			continue
		}

		if bestLength > 0 {
			probe := bestLength
			if c+probe < len(data) && i+probe < len(data) && data[c+probe] != data[i+probe] {
				continue
			}
		}

		length := minMatch
		for length < maxLen && data[c+length] == data[i+length] {
			length++
		}

		if length > bestLength || (length == bestLength && dist < bestDist) {
			bestLength = length
			bestOffset = dist
			bestDist = dist
		}
	}
	return bestOffset, bestLength
}

// parseChunk dispatches to the look-ahead or optimal parser for the level's
// chosen parserKind (spec.md §9: "model them as variants selected at chunk
// start, not as dynamic dispatch per packet").
func parseChunk(data []byte, params levelParams) []packet {
	switch params.parser {
	case parserOptimal:
		return parseOptimal(data, params)
	default:
		return parseGreedy(data, params)
	}
}
