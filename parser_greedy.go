// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher: match.go's lazy-matching
// shape — try the current position, then peek ahead before committing),
// generalized to spec.md §4.4's K-deep look-ahead with an explicit cost
// estimate instead of LZO1X-999's fixed one-step lazy heuristic.

package lzans

import "math"

// parseGreedy implements the look-ahead parser: at each position it
// compares the best match at i against the best matches at i+1..i+K (K the
// level's look-ahead budget) using the shared cost estimate plus a
// run-length penalty, and commits to whichever is cheapest.
func parseGreedy(data []byte, params levelParams) []packet {
	n := len(data)
	cache := newMatchCache(params.entries, params.ways)
	var packets []packet

	i := 0
	litStart := 0
	for i+minMatch <= n {
		chosenOffset, chosenLength := 0, 0
		chosenRun := 0
		bestCost := math.Inf(1)

		if o, l := findBestMatch(data, cache, i, params.window); l > 0 {
			bestCost = costMatch(o, l)
			chosenOffset, chosenLength, chosenRun = o, l, 0
		}

		for k := 1; k <= params.lookAhead; k++ {
			if i+k+minMatch > n {
				break
			}
			o, l := findBestMatch(data, cache, i+k, params.window)
			if l == 0 {
				continue
			}
			cost := 4 + math.Log2(float64(o)) + 0.5*float64(k) - float64(l)
			if cost < bestCost {
				bestCost = cost
				chosenOffset, chosenLength, chosenRun = o, l, k
			}
		}

		if chosenLength == 0 {
			cache.insert(data, i)
			i++
			continue
		}

		matchPos := i + chosenRun
		for p := i; p < matchPos; p++ {
			cache.insert(data, p)
		}
		packets = append(packets, packet{
			litLen: matchPos - litStart,
			offset: chosenOffset,
			length: chosenLength,
		})
		for p := matchPos; p < matchPos+chosenLength; p++ {
			cache.insert(data, p)
		}
		i = matchPos + chosenLength
		litStart = i
	}

	packets = append(packets, packet{litLen: n - litStart})
	return packets
}
