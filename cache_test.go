package lzans

import "testing"

func TestMatchCacheFindsInsertedCandidate(t *testing.T) {
	data := []byte("the quick brown fox the quick brown fox")
	cache := newMatchCache(1<<10, 4)
	for i := 0; i+4 <= len(data); i++ {
		cache.insert(data, i)
	}

	offset, length := findBestMatch(data, cache, 20, 1<<15)
	if length < minMatch {
		t.Fatalf("expected a match at position 20, got length %d", length)
	}
	if offset != 20 {
		t.Fatalf("expected offset 20 (repeat of the whole prefix), got %d", offset)
	}
}

func TestMatchCacheRespectsWindow(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i % 7)
	}
	cache := newMatchCache(1<<8, 4)
	for i := 0; i+4 <= len(data); i++ {
		cache.insert(data, i)
	}

	_, length := findBestMatch(data, cache, 90, 3)
	if length != 0 {
		t.Fatalf("expected no match within a window of 3, got length %d", length)
	}
}

func TestMatchCacheInsertOrderingMostRecentFirst(t *testing.T) {
	cache := newMatchCache(4, 2)
	data := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	cache.insert(data, 0)
	cache.insert(data, 1)
	cache.insert(data, 2)

	cands := cache.candidates(data, 3)
	if cands[0] != 2 || cands[1] != 1 {
		t.Fatalf("expected [2,1] most-recent-first, got %v", cands)
	}
}
