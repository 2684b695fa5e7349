// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: derived from spec.md §4.2's normalization recipe, grounded in
// shape on the pack's rANS/FSE examples (EntropyUtils-style normalize +
// correction pass in flanglet-kanzi-go's ANSRangeCodec, and ha1tch-unz's
// BuildTable) but implemented to the proportional-allocation rule spec.md
// actually specifies, since none of the retrieved examples are tANS.

package lzans

// countSymbols builds a raw occurrence histogram over data, sized to
// alphabetSize (256 for byte streams, tokenAlphabetSize for the offset
// token stream).
func countSymbols(data []byte, alphabetSize int) []int {
	counts := make([]int, alphabetSize)
	for _, b := range data {
		counts[b]++
	}
	return counts
}

// normalizeHistogram converts raw counts into a table of exactly tableSize
// total weight, per spec.md §4.2: proportional allocation with a correction
// pass. Symbols with nonzero count that would round to zero are bumped to
// 1; the discrepancy against tableSize is then absorbed by the single
// largest allocation.
func normalizeHistogram(counts []int) []int32 {
	total := 0
	for _, c := range counts {
		total += c
	}
	h := make([]int32, len(counts))
	if total == 0 {
		return h
	}

	var sum int32
	for s, c := range counts {
		if c == 0 {
			continue
		}
		v := int32(int64(c) * int64(tableSize) / int64(total))
		if v == 0 {
			v = 1
		}
		h[s] = v
		sum += v
	}

	diff := int32(tableSize) - sum
	if diff != 0 {
		largest := -1
		for s := range h {
			if h[s] > 0 && (largest == -1 || h[s] > h[largest]) {
				largest = s
			}
		}
		if largest >= 0 {
			h[largest] += diff
		}
	}
	return h
}

// appendHistogram serializes h (one entry per alphabet symbol, in symbol
// order) using the escaped-length byte encoding, per spec.md §4.2. The
// alphabet size is not transmitted: it is fixed by which stream this is.
func appendHistogram(dst []byte, h []int32) []byte {
	for _, v := range h {
		dst = appendEscapedLength(dst, int(v))
	}
	return dst
}

// readHistogram parses alphabetSize escaped entries starting at src[pos]
// and returns the histogram and the position just past it.
func readHistogram(src []byte, pos int, alphabetSize int) ([]int32, int, error) {
	h := make([]int32, alphabetSize)
	for s := 0; s < alphabetSize; s++ {
		v, next, ok := readEscapedLength(src, pos)
		if !ok {
			return nil, 0, ErrTruncatedInput
		}
		h[s] = int32(v)
		pos = next
	}
	var sum int32
	for _, v := range h {
		if v < 0 {
			return nil, 0, ErrBadHistogram
		}
		sum += v
	}
	if sum != 0 && sum != int32(tableSize) {
		return nil, 0, ErrBadHistogram
	}
	return h, pos, nil
}
