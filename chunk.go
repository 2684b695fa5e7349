// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher's container-framing idiom),
// payload section order and the trailing-packet convention taken directly
// from spec.md §4.5.

package lzans

// encodeChunkPayload runs the parser, decomposes its packet stream into
// the four streams, and serializes the §4.5 payload layout. An empty
// chunk (data has length 0) encodes to a zero-length payload — there is
// nothing to parse, and the header alone (§8 scenario 1) is sufficient to
// round-trip.
func encodeChunkPayload(data []byte, params levelParams) []byte {
	if len(data) == 0 {
		return nil
	}

	packets := parseChunk(data, params)
	litLenBytes := litLenStream(packets)
	matchLenBytes := matchLenStream(packets)
	tokens, extra := offsetStreams(packets)
	lit := packetsToLiteralBytes(data, packets)
	subBlocks := splitIntoLitSubBlocks(lit)

	var out []byte
	out = appendTansBlock(out, litLenBytes, byteAlphabetSize)
	out = appendTansBlock(out, matchLenBytes, byteAlphabetSize)
	out = appendTansBlock(out, tokens, tokenAlphabetSize)

	out = appendUint32(out, uint32(len(extra)))
	out = append(out, extra...)

	out = appendUint32(out, uint32(len(subBlocks)))
	for _, b := range subBlocks {
		out = appendTansBlock(out, b, byteAlphabetSize)
	}

	out = appendUint32(out, uint32(len(packets)))
	return out
}

// decodeChunkPayload inverts encodeChunkPayload, reconstructing exactly
// origLen bytes or failing with one of the sentinel errors from errors.go.
func decodeChunkPayload(src []byte, origLen int) ([]byte, error) {
	if origLen == 0 {
		if len(src) != 0 {
			return nil, ErrLengthMismatch
		}
		return []byte{}, nil
	}

	pos := 0
	litLenBytes, pos, err := readTansBlock(src, pos, byteAlphabetSize)
	if err != nil {
		return nil, err
	}
	matchLenBytes, pos, err := readTansBlock(src, pos, byteAlphabetSize)
	if err != nil {
		return nil, err
	}
	tokens, pos, err := readTansBlock(src, pos, tokenAlphabetSize)
	if err != nil {
		return nil, err
	}

	extraLen, pos, ok := readUint32(src, pos)
	if !ok {
		return nil, ErrTruncatedInput
	}
	if pos+int(extraLen) > len(src) {
		return nil, ErrTruncatedInput
	}
	extra := src[pos : pos+int(extraLen)]
	pos += int(extraLen)

	numSubBlocks, pos, ok := readUint32(src, pos)
	if !ok {
		return nil, ErrTruncatedInput
	}
	lit := make([]byte, 0, origLen)
	for k := 0; k < int(numSubBlocks); k++ {
		var b []byte
		b, pos, err = readTansBlock(src, pos, byteAlphabetSize)
		if err != nil {
			return nil, err
		}
		lit = append(lit, b...)
	}

	packetCount32, _, ok := readUint32(src, pos)
	if !ok {
		return nil, ErrTruncatedInput
	}
	packetCount := int(packetCount32)
	if packetCount == 0 {
		return nil, ErrBadReference
	}

	out := make([]byte, 0, origLen)
	ring := newOffsetRing()
	extraReader := newBitReader(extra)

	litLenPos, matchLenPos, tokIdx := 0, 0, 0
	litCursor := 0

	for i := 0; i < packetCount; i++ {
		litLen, next, ok := readEscapedLength(litLenBytes, litLenPos)
		if !ok {
			return nil, ErrTruncatedInput
		}
		litLenPos = next
		if litCursor+litLen > len(lit) {
			return nil, ErrBadReference
		}
		out = append(out, lit[litCursor:litCursor+litLen]...)
		litCursor += litLen

		if i == packetCount-1 {
			break
		}

		if tokIdx >= len(tokens) {
			return nil, ErrTruncatedInput
		}
		tok := int(tokens[tokIdx])
		tokIdx++
		extraBits, ok := extraReader.read(uint(tok))
		if !ok {
			return nil, ErrTruncatedInput
		}
		v := joinOffsetToken(tok, uint32(extraBits))
		offset := ring.decodeOffset(v)

		mlVal, next2, ok := readEscapedLength(matchLenBytes, matchLenPos)
		if !ok {
			return nil, ErrTruncatedInput
		}
		matchLenPos = next2
		length := mlVal + minMatch

		outPos := len(out)
		if offset < 1 || offset > outPos {
			return nil, ErrBadReference
		}
		if outPos+length > origLen {
			return nil, ErrBadReference
		}
		out = append(out, make([]byte, length)...)
		expandMatch(out, outPos, offset, length)
	}

	if len(out) != origLen {
		return nil, ErrLengthMismatch
	}
	return out, nil
}

// encodeChunk frames one chunk: Magic4, u32 compLen, u32 origLen, payload.
func encodeChunk(data []byte, params levelParams) []byte {
	payload := encodeChunkPayload(data, params)
	out := make([]byte, 0, chunkHeaderSize+len(payload))
	out = appendUint32(out, chunkMagic)
	out = appendUint32(out, uint32(len(payload)))
	out = appendUint32(out, uint32(len(data)))
	out = append(out, payload...)
	return out
}

// decodeChunk parses one framed chunk starting at src[pos] and returns its
// decoded bytes plus the position just past it.
func decodeChunk(src []byte, pos int) ([]byte, int, error) {
	magic, pos, ok := readUint32(src, pos)
	if !ok {
		return nil, 0, ErrTruncatedInput
	}
	if magic != chunkMagic {
		return nil, 0, ErrBadMagic
	}
	compLen, pos, ok := readUint32(src, pos)
	if !ok {
		return nil, 0, ErrTruncatedInput
	}
	origLen, pos, ok := readUint32(src, pos)
	if !ok {
		return nil, 0, ErrTruncatedInput
	}
	end := pos + int(compLen)
	if end > len(src) || end < pos {
		return nil, 0, ErrTruncatedInput
	}
	data, err := decodeChunkPayload(src[pos:end], int(origLen))
	if err != nil {
		return nil, 0, err
	}
	return data, end, nil
}
