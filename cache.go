// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (teacher: sliding_window.go's bucketed
// hash-chain shape), generalized from LZO1X-999's unbounded chain-per-
// bucket to spec.md §4.3's fixed-width set-associative (E entries, W ways)
// cache.

package lzans

// matchCandidateHashMul is the 32-bit multiplicative mix spec.md §4.3
// calls for; 2654435761 is Knuth's 2^32 golden-ratio constant, the same
// family the teacher's sliding window hash uses.
const matchCandidateHashMul = 2654435761

// matchCache is the set-associative hash dictionary over 4-byte keys that
// both parsers consult. It is chunk-local: callers must build a fresh one
// per chunk (spec.md §9, "Cache reset").
type matchCache struct {
	entries int // E, power of two
	ways    int // W
	mask    uint32
	buckets []int32 // entries * ways, most-recent-first within a bucket; -1 = empty
}

func newMatchCache(entries, ways int) *matchCache {
	c := &matchCache{
		entries: entries,
		ways:    ways,
		mask:    uint32(entries - 1),
		buckets: make([]int32, entries*ways),
	}
	for i := range c.buckets {
		c.buckets[i] = -1
	}
	return c
}

func (c *matchCache) hash(data []byte, i int) uint32 {
	key := uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
	return ((key * matchCandidateHashMul) >> (32 - bitsForValue(uint64(c.entries-1)))) & c.mask
}

// insert records position i under its 4-byte key, shifting older entries
// in the bucket down by one and dropping the oldest (spec.md §4.3).
func (c *matchCache) insert(data []byte, i int) {
	if i+4 > len(data) {
		return
	}
	b := int(c.hash(data, i)) * c.ways
	copy(c.buckets[b+1:b+c.ways], c.buckets[b:b+c.ways-1])
	c.buckets[b] = int32(i)
}

// candidates returns up to W candidate positions for the 4-byte key at i,
// most-recent first, per spec.md §4.3. The returned slice aliases cache
// storage and must not be retained past the next insert.
func (c *matchCache) candidates(data []byte, i int) []int32 {
	b := int(c.hash(data, i)) * c.ways
	return c.buckets[b : b+c.ways]
}
