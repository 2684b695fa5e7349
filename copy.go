// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: the seed-then-double expansion trick for dist < length is
// github.com/woozymasta/lzo's copy.go (copyBackRef); the bounds checks it
// duplicated on every call are dropped here because both of this codec's
// call sites (decodeChunkPayload, replayPackets in parser_test.go) already
// validate offset/length against the packet they just decoded, against
// origLen/len(out), before reaching this point — spec.md's ErrBadReference
// is raised once, at the decision point, not re-derived inside the copy
// primitive.

package lzans

// expandMatch grows dst[outputPos:outputPos+length] using the dist bytes
// immediately before outputPos. Callers must already have established
// outputPos-dist >= 0 and outputPos+length <= len(dst); this is invariant
// checking, not a general-purpose copy, so it trusts those bounds.
func expandMatch(dst []byte, outputPos, dist, length int) {
	mPos := outputPos - dist
	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return
	}

	copy(dst[outputPos:outputPos+dist], dst[mPos:outputPos])
	copied := dist
	for copied < length {
		n := copy(dst[outputPos+copied:outputPos+length], dst[outputPos:outputPos+copied])
		copied += n
	}
}
