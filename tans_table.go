// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: derived from spec.md §4.2 ("Symbol spread... Yann Collet's
// spreading") and the well-known FSE_buildCTable/FSE_buildDTable
// construction it describes; shaped against the pack's klauspost/compress
// huff0 decode tables (entry = nbBits | symbol<<8, see other_examples
// moby-moby vendor huff0 decompress_generic.go) for the decode entry
// layout, since no retrieved example builds a tANS table from scratch.

package lzans

import "math/bits"

// tansSpreadStep is Yann Collet's classical spread step: (TABLE*5/8)+3,
// coprime with tableSize so every slot is visited exactly once per full
// walk of tableSize steps.
const tansSpreadStep = (tableSize >> 1) + (tableSize >> 3) + 3

// spreadSymbols lays out one symbol per table slot (cumulative-count order,
// not final state order) by walking the table with tansSpreadStep, per
// spec.md §4.2.
func spreadSymbols(h []int32) []uint16 {
	slot := make([]uint16, tableSize)
	pos := 0
	const mask = tableSize - 1
	for s, count := range h {
		for i := int32(0); i < count; i++ {
			slot[pos] = uint16(s)
			pos = (pos + tansSpreadStep) & mask
		}
	}
	return slot
}

// tansDecodeEntry is the per-state lookup used during decode: which symbol
// this state represents, how many bits to read next, and the baseline to
// add those bits to for the next state.
type tansDecodeEntry struct {
	symbol  uint16
	nbBits  uint8
	newBase uint16
}

// tansDecodeTable holds one entry per table state (spec.md §4.2's
// "(symbol, nbBits, newState) triple used during decode").
type tansDecodeTable struct {
	entries []tansDecodeEntry
}

// buildDecodeTable constructs the tANS decode table from a normalized
// histogram, following the canonical FSE_buildDTable recurrence: each
// symbol s's instances on the spread table are numbered H[s], H[s]+1, ...,
// 2*H[s]-1 in table-slot order, and the instance numbered k computes
// nbBits = tableLog - floor(log2(k)), newBase = (k << nbBits) - tableSize.
func buildDecodeTable(h []int32) *tansDecodeTable {
	slot := spreadSymbols(h)
	next := make([]int32, len(h))
	copy(next, h)

	dt := &tansDecodeTable{entries: make([]tansDecodeEntry, tableSize)}
	for u := 0; u < tableSize; u++ {
		s := slot[u]
		nextState := next[s]
		next[s]++
		nbBits := uint8(tableLog - highBit32(uint32(nextState)))
		newBase := uint16((nextState << nbBits) - tableSize)
		dt.entries[u] = tansDecodeEntry{symbol: s, nbBits: nbBits, newBase: newBase}
	}
	return dt
}

// tansSymbolTransform is the per-symbol encode-side transform, following
// the canonical FSE_buildCTable delta encoding: given the current state,
// nbBitsOut = (state + deltaNbBits) >> 16 and the next lookup index into
// the shared stateTable is (state >> nbBitsOut) + deltaFindState.
type tansSymbolTransform struct {
	deltaNbBits   uint32
	deltaFindState int32
}

// tansEncodeTable holds the shared state-transition table plus the
// per-symbol transform spec.md §4.2 calls `encodeTable[s]` / `symStart[s]`.
type tansEncodeTable struct {
	stateTable []uint16
	symbolTT   []tansSymbolTransform
}

// buildEncodeTable constructs the tANS encode table from a normalized
// histogram, following the canonical FSE_buildCTable construction.
func buildEncodeTable(h []int32) *tansEncodeTable {
	alphabetSize := len(h)

	cumul := make([]int32, alphabetSize+1)
	for s := 0; s < alphabetSize; s++ {
		cumul[s+1] = cumul[s] + h[s]
	}

	slot := spreadSymbols(h)
	tableSymbol := make([]uint16, tableSize)
	copy(tableSymbol, slot)

	stateTable := make([]uint16, tableSize)
	cumulCursor := make([]int32, alphabetSize)
	copy(cumulCursor, cumul[:alphabetSize])
	for u := 0; u < tableSize; u++ {
		s := tableSymbol[u]
		stateTable[cumulCursor[s]] = uint16(tableSize + u)
		cumulCursor[s]++
	}

	symbolTT := make([]tansSymbolTransform, alphabetSize)
	var total int32
	for s := 0; s < alphabetSize; s++ {
		switch h[s] {
		case 0:
			// symbol does not occur; never looked up.
		case 1:
			symbolTT[s] = tansSymbolTransform{
				deltaNbBits:    (uint32(tableLog) << 16) - uint32(tableSize),
				deltaFindState: total - 1,
			}
			total++
		default:
			maxBitsOut := uint32(tableLog) - highBit32(uint32(h[s]-1))
			minStatePlus := uint32(h[s]) << maxBitsOut
			symbolTT[s] = tansSymbolTransform{
				deltaNbBits:    (maxBitsOut << 16) - minStatePlus,
				deltaFindState: total - h[s],
			}
			total += h[s]
		}
	}

	return &tansEncodeTable{stateTable: stateTable, symbolTT: symbolTT}
}

// highBit32 returns the index of the highest set bit (floor(log2(v))); v
// must be nonzero.
func highBit32(v uint32) uint32 {
	return uint32(bits.Len32(v) - 1)
}
