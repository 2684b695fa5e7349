// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: derived from spec.md §4.2's encode/decode recurrences; the
// collect-then-emit-in-original-order trick below replaces the classical
// backward-growing bitstream buffer (zstd/FSE) with a simple forward
// bitWriter plus a reversal pass, since bitio.go only exposes the forward
// accumulator shape the teacher's reader/writer idiom generalizes to.

package lzans

// tansSymbolBits records one symbol's encode-side contribution: the raw
// bits written and how many of them there are.
type tansSymbolBits struct {
	bits   uint64
	nbBits uint
}

// tansEncodeSymbols entropy-codes symbols (in their original order) against
// table and appends the result — a TABLE_LOG-bit initial state followed by
// each symbol's bits in original order — onto dst.
//
// spec.md §4.2 requires the encoder to walk the stream in reverse (tANS is
// LIFO) while the decoder walks forward. We realize that by running the
// state machine back-to-front, recording each step's bits, and then
// replaying the recorded steps in reverse of collection order (i.e.
// original symbol order) into the output bit writer, with the final state
// written first. A decoder reading forward therefore reproduces symbols in
// original order.
func tansEncodeSymbols(dst []byte, symbols []byte, table *tansEncodeTable) []byte {
	steps := make([]tansSymbolBits, len(symbols))
	state := uint32(tableSize)
	for i := len(symbols) - 1; i >= 0; i-- {
		s := symbols[i]
		tt := table.symbolTT[s]
		nbBitsOut := uint((uint64(state) + uint64(tt.deltaNbBits)) >> 16)
		steps[i] = tansSymbolBits{bits: uint64(state) & ((uint64(1) << nbBitsOut) - 1), nbBits: nbBitsOut}
		idx := int32(state>>nbBitsOut) + tt.deltaFindState
		state = uint32(table.stateTable[idx])
	}

	w := newBitWriter(len(symbols)/2 + 8)
	w.write(uint64(state), tableLog)
	for i := 0; i < len(symbols); i++ {
		w.write(steps[i].bits, steps[i].nbBits)
	}
	return append(dst, w.flush()...)
}

// tansDecodeSymbols reverses tansEncodeSymbols: it reads the initial state,
// then decodes exactly count symbols, in original order, using dt.
func tansDecodeSymbols(data []byte, count int, dt *tansDecodeTable) ([]byte, error) {
	r := newBitReader(data)
	v, ok := r.read(tableLog)
	if !ok {
		return nil, ErrTruncatedInput
	}
	state := uint32(v)

	out := make([]byte, count)
	for i := 0; i < count; i++ {
		if int(state) >= len(dt.entries) {
			return nil, ErrBadState
		}
		e := dt.entries[state]
		out[i] = byte(e.symbol)
		rbits, ok := r.read(uint(e.nbBits))
		if !ok {
			return nil, ErrTruncatedInput
		}
		state = uint32(e.newBase) + uint32(rbits)
	}
	return out, nil
}

// appendTansBlock serializes one "histogram + payload" section, per
// spec.md §4.5: a u32 section byte length, the escaped histogram, a u32
// symbol count, then the tANS bitstream. Alphabet size is implied by the
// caller (256 for byte streams, tokenAlphabetSize for offset tokens).
func appendTansBlock(dst []byte, symbols []byte, alphabetSize int) []byte {
	counts := countSymbols(symbols, alphabetSize)
	h := normalizeHistogram(counts)

	var body []byte
	body = appendHistogram(body, h)
	body = appendUint32(body, uint32(len(symbols)))
	if len(symbols) > 0 {
		table := buildEncodeTable(h)
		body = tansEncodeSymbols(body, symbols, table)
	}

	dst = appendUint32(dst, uint32(len(body)))
	return append(dst, body...)
}

// readTansBlock parses one section written by appendTansBlock, starting at
// src[pos], and returns the decoded symbols and the position just past the
// section.
func readTansBlock(src []byte, pos int, alphabetSize int) ([]byte, int, error) {
	sectionLen, pos, ok := readUint32(src, pos)
	if !ok {
		return nil, 0, ErrTruncatedInput
	}
	sectionEnd := pos + int(sectionLen)
	if sectionEnd > len(src) || sectionEnd < pos {
		return nil, 0, ErrTruncatedInput
	}

	h, pos, err := readHistogram(src, pos, alphabetSize)
	if err != nil {
		return nil, 0, err
	}
	count32, pos, ok := readUint32(src, pos)
	if !ok {
		return nil, 0, ErrTruncatedInput
	}
	count := int(count32)

	if count == 0 {
		return []byte{}, sectionEnd, nil
	}

	dt := buildDecodeTable(h)
	symbols, err := tansDecodeSymbols(src[pos:sectionEnd], count, dt)
	if err != nil {
		return nil, 0, err
	}
	return symbols, sectionEnd, nil
}
