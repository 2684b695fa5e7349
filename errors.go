// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (teacher)

package lzans

import "errors"

// Sentinel errors raised by the core, per spec.md §7. All are fatal to the
// current Encode/Decode call; the core performs no retries or partial
// recovery. Callers can use errors.Is against any of these.
var (
	// ErrInputTooLarge is returned when a single chunk would exceed
	// maxChunkSize bytes.
	ErrInputTooLarge = errors.New("lzans: input too large for a single chunk")

	// ErrTruncatedInput is returned when decode needs bytes past the end
	// of the supplied stream.
	ErrTruncatedInput = errors.New("lzans: truncated input")

	// ErrBadMagic is returned when a chunk header's magic does not match.
	ErrBadMagic = errors.New("lzans: bad chunk magic")

	// ErrBadHistogram is returned when a decoded histogram does not sum to
	// tableSize, or contains a negative count. An all-zero histogram (the
	// one an empty block carries) is accepted.
	ErrBadHistogram = errors.New("lzans: bad histogram")

	// ErrBadState is returned when tANS decode produces a state outside
	// [0, tableSize).
	ErrBadState = errors.New("lzans: bad tANS state")

	// ErrBadReference is returned when a decoded match offset would read
	// before the current chunk start, or its length would run past the
	// declared origLen (overlapping matches, offset < length, are legal). It
	// is also returned when a literal run overruns the decoded Lit stream
	// or a chunk declares zero packets.
	ErrBadReference = errors.New("lzans: bad match reference")

	// ErrLengthMismatch is returned when the reconstructed chunk length
	// disagrees with the declared origLen.
	ErrLengthMismatch = errors.New("lzans: reconstructed length mismatch")
)
