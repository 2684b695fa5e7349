// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher: level_params.go's fixedLevels)

package lzans

// parserKind selects which of the two parsers (spec.md §4.4) a level uses.
// Modeled as a small tagged enumeration, per spec.md §9 ("Parser
// polymorphism... a small tagged enumeration is sufficient"), not dynamic
// dispatch per packet.
type parserKind uint8

const (
	parserLookAhead parserKind = iota
	parserOptimal
)

// levelParams holds the (cache entries E, ways W, look-ahead K, window
// w_max, parser) tuple spec.md §6 assigns to each compression level.
type levelParams struct {
	entries   int // E: number of cache buckets (power of two)
	ways      int // W: candidates per bucket
	lookAhead int // K: look-ahead budget (look-ahead parser only)
	window    int // w_max: maximum back-distance considered
	parser    parserKind
}

// fixedLevels defines parameters for levels 1-9. Higher levels widen the
// cache and window and, at level 9, switch to the optimal parser — the same
// shape as the teacher's fixedLevels table (tryLazy/niceLen/maxChain growing
// monotonically with level), generalized to this codec's cache and parser
// model instead of LZO1X-999's hash-chain/lazy-match parameters.
var fixedLevels = [9]levelParams{
	{entries: 1 << 12, ways: 1, lookAhead: 0, window: 1 << 15, parser: parserLookAhead},
	{entries: 1 << 14, ways: 2, lookAhead: 1, window: 1 << 16, parser: parserLookAhead},
	{entries: 1 << 15, ways: 2, lookAhead: 1, window: 1 << 17, parser: parserLookAhead},
	{entries: 1 << 16, ways: 4, lookAhead: 2, window: 1 << 18, parser: parserLookAhead},
	{entries: 1 << 16, ways: 4, lookAhead: 3, window: 1 << 20, parser: parserLookAhead},
	{entries: 1 << 17, ways: 8, lookAhead: 4, window: 1 << 21, parser: parserLookAhead},
	{entries: 1 << 18, ways: 8, lookAhead: 6, window: 1 << 22, parser: parserLookAhead},
	{entries: 1 << 18, ways: 16, lookAhead: 8, window: 1 << 24, parser: parserLookAhead},
	{entries: 1 << 19, ways: 32, lookAhead: 0, window: maxWindowSize, parser: parserOptimal},
}

// levelParamsFor returns the params for a clamped level in 1..9.
func levelParamsFor(level int) levelParams {
	return fixedLevels[clampLevel(level)-1]
}
