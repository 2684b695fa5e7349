package lzans

import (
	"math/rand"
	"testing"
)

func TestOffsetRingRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	offsets := make([]int, 200)
	pool := []int{1, 4, 8, 17, 1000, 65536}
	for i := range offsets {
		offsets[i] = pool[rng.Intn(len(pool))]
	}

	encRing := newOffsetRing()
	var values []int
	for _, o := range offsets {
		values = append(values, encRing.encodeOffset(o))
	}

	decRing := newOffsetRing()
	for i, v := range values {
		got := decRing.decodeOffset(v)
		if got != offsets[i] {
			t.Fatalf("entry %d: decodeOffset(%d) = %d, want %d", i, v, got, offsets[i])
		}
	}
}

func TestOffsetTokenSplitBijection(t *testing.T) {
	for v := 0; v < 1<<20; v++ {
		tok, extra, bits := splitOffsetToken(v)
		if bits != uint(tok) {
			t.Fatalf("v=%d: extraBits %d != tok %d", v, bits, tok)
		}
		got := joinOffsetToken(tok, extra)
		if got != v {
			t.Fatalf("v=%d: round-trip got %d (tok=%d extra=%d)", v, got, tok, extra)
		}
	}
}

func TestOffsetTokenCapRespectedByMaxWindow(t *testing.T) {
	// Worst case: a ring-miss offset equal to the largest window any level
	// uses (maxWindowSize, see levels.go's level-9 entry and
	// format_constants.go's derivation).
	v := maxWindowSize + 3
	tok, _, _ := splitOffsetToken(v)
	if tok > maxOffsetTokenBits {
		t.Fatalf("splitOffsetToken(%d) = tok %d, want <= %d", v, tok, maxOffsetTokenBits)
	}
	for _, p := range fixedLevels {
		if p.window > maxWindowSize {
			t.Fatalf("level window %d exceeds maxWindowSize %d", p.window, maxWindowSize)
		}
	}
}

func TestOffsetTokenSplitPanicsPastCap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected splitOffsetToken to panic past maxOffsetTokenBits")
		}
	}()
	splitOffsetToken(maxWindowSize + 4)
}

func TestOffsetTokenDistinctForSmallValues(t *testing.T) {
	seen := make(map[[2]uint32]int)
	for v := 0; v < 8; v++ {
		tok, extra, _ := splitOffsetToken(v)
		key := [2]uint32{uint32(tok), extra}
		if prev, ok := seen[key]; ok {
			t.Fatalf("v=%d collides with v=%d at (tok=%d,extra=%d)", v, prev, tok, extra)
		}
		seen[key] = v
	}
}
