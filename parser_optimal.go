// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: derived from spec.md §4.4's backward cost-array recurrence; no
// retrieved example implements optimal LZ parsing, so this follows the
// spec's DP recurrence directly, reusing the teacher's cache shape
// (cache.go) for candidate discovery instead of LZO1X-999's hash chains.

package lzans

// optimalCandidate is one edge of the parse DAG at a given position: take
// this (offset, length) match and land at position+length.
type optimalCandidate struct {
	offset, length int
}

// parseOptimal implements the dynamic-programming parser: it first walks
// the chunk left to right building, for every position, the full list of
// legal cache candidates (spec.md's "candidate matches... length >= 4,
// offset <= w_max"), then runs the backward cost recurrence from spec.md
// §4.4 to find the minimum-cost packetization, and finally replays the
// chosen edges forward into packets.
func parseOptimal(data []byte, params levelParams) []packet {
	n := len(data)
	cache := newMatchCache(params.entries, params.ways)

	candidatesAt := make([][]optimalCandidate, n)
	for i := 0; i+minMatch <= n; i++ {
		var cs []optimalCandidate
		for _, c32 := range cache.candidates(data, i) {
			c := int(c32)
			if c < 0 || c >= i {
				continue
			}
			dist := i - c
			if dist > params.window {
				continue
			}
			if data[c] != data[i] || data[c+1] != data[i+1] || data[c+2] != data[i+2] || data[c+3] != data[i+3] {
				continue
			}
			length := minMatch
			maxLen := n - i
			for length < maxLen && data[c+length] == data[i+length] {
				length++
			}
			cs = append(cs, optimalCandidate{offset: dist, length: length})
		}
		candidatesAt[i] = cs
		cache.insert(data, i)
	}

	cost := make([]float64, n+1)
	choice := make([]optimalCandidate, n)
	for i := n - 1; i >= 0; i-- {
		best := cost[i+1] + costLiteral(1)
		var bestChoice optimalCandidate
		for _, c := range candidatesAt[i] {
			cc := cost[i+c.length] + costMatch(c.offset, c.length)
			switch {
			case cc < best:
				best = cc
				bestChoice = c
			case cc == best && bestChoice.length > 0 && c.offset < bestChoice.offset:
				bestChoice = c
			}
		}
		cost[i] = best
		choice[i] = bestChoice
	}

	var packets []packet
	i := 0
	litStart := 0
	for i < n {
		c := choice[i]
		if c.length == 0 {
			i++
			continue
		}
		packets = append(packets, packet{litLen: i - litStart, offset: c.offset, length: c.length})
		i += c.length
		litStart = i
	}
	packets = append(packets, packet{litLen: n - litStart})
	return packets
}
